package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tokTypes(toks []Token) []TokenType {
	res := make([]TokenType, len(toks))
	for i := range toks {
		res[i] = toks[i].Type
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []TokenType
	}{
		{"object", ".a = 1", []TokenType{TDot, TWord, TEquals, TInteger}},
		{"map", "{k} = 'v'", []TokenType{TLCurl, TWord, TRCurl, TEquals, TString}},
		{"implicit", "[+] = true", []TokenType{TLSquare, TPlus, TRSquare, TEquals, TTrue}},
		{"explicit numeric", "[0] = null", []TokenType{TLSquare, TWord, TRSquare, TEquals, TNull}},
		{"number", ".x = -1.5e3", []TokenType{TDot, TWord, TEquals, TNumber}},
		{"keyword as ident", ".true = false", []TokenType{TDot, TWord, TEquals, TFalse}},
		{"comment", "# hi\n.a = 1", []TokenType{TComment, TNewline, TDot, TWord, TEquals, TInteger}},
		{"quoted ident", `.'a b'."c" = 1`, []TokenType{TDot, TString, TDot, TString, TEquals, TInteger}},
		{"crlf", ".a = 1\r\n.b = 2", []TokenType{TDot, TWord, TEquals, TInteger, TNewline, TDot, TWord, TEquals, TInteger}},
		{"multiline", ".a = '''\nx\n'''", []TokenType{TDot, TWord, TEquals, TString}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(nil, []byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, tokTypes(toks)); diff != "" {
				t.Errorf("types (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeSpans(t *testing.T) {
	toks, err := Tokenize(nil, []byte(".ab = 'x'"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Span{{0, 1}, {1, 3}, {4, 5}, {6, 9}}
	got := make([]Span, len(toks))
	for i := range toks {
		got[i] = toks[i].Span
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("spans (-want +got):\n%s", diff)
	}
	if c := toks[3].Content(); c != "x" {
		t.Errorf("content %q", c)
	}
	if s := toks[3].ContentSpan(); s != (Span{7, 8}) {
		t.Errorf("content span %s", s)
	}
}

func TestTokenizeComment(t *testing.T) {
	toks, err := Tokenize(nil, []byte("#  two spaces\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if string(toks[0].Bytes) != "  two spaces" {
		t.Errorf("comment text %q", toks[0].Bytes)
	}
	if toks[0].Span != (Span{0, 13}) {
		t.Errorf("span %s", toks[0].Span)
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
		span Span
	}{
		{"bad utf8", ".a = 'x\xff'", ErrBadUTF8, Span{7, 8}},
		{"unterminated", ".a = 'x", ErrUnterminated, Span{5, 7}},
		{"unterminated at newline", ".a = \"x\n", ErrUnterminated, Span{5, 7}},
		{"leading zero", ".a = 012", ErrNumberLeadingZero, Span{5, 8}},
		{"bare value", ".a = yes", ErrUnexpected, Span{5, 8}},
		{"trailing comment", ".a = 1 # no", ErrUnexpected, Span{7, 8}},
		{"stray char", ".a$ = 1", ErrUnexpected, Span{2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(nil, []byte(tt.in))
			if !errors.Is(err, tt.err) {
				t.Fatalf("got %v want %v", err, tt.err)
			}
			var te *TokenizeErr
			if !errors.As(err, &te) {
				t.Fatalf("not a TokenizeErr: %T", err)
			}
			if te.Span != tt.span {
				t.Errorf("span %s want %s", te.Span, tt.span)
			}
		})
	}
}

func TestTokenizeExpected(t *testing.T) {
	_, err := Tokenize(nil, []byte(".a = yes"))
	var te *TokenizeErr
	if !errors.As(err, &te) {
		t.Fatal(err)
	}
	if diff := cmp.Diff(valueExpected, te.Expected); diff != "" {
		t.Errorf("expected (-want +got):\n%s", diff)
	}
}

func TestPosDoc(t *testing.T) {
	pd := NewPosDoc([]byte("ab\r\ncd\n\nef"))
	if n := pd.NumLines(); n != 4 {
		t.Fatalf("lines %d", n)
	}
	ln, col := pd.LineCol(5)
	if ln != 1 || col != 1 {
		t.Errorf("line col %d:%d", ln, col)
	}
	if l := pd.Line(0); l != "ab" {
		t.Errorf("line 0 %q", l)
	}
	if l := pd.Line(2); l != "" {
		t.Errorf("line 2 %q", l)
	}
	if l := pd.Line(3); l != "ef" {
		t.Errorf("line 3 %q", l)
	}
	if off := pd.Offset(3, 1); off != 9 {
		t.Errorf("offset %d", off)
	}
	if ln, col := pd.Pos(9).LineCol(); ln != 3 || col != 1 {
		t.Errorf("pos %d:%d", ln, col)
	}
}

func TestSpanJoin(t *testing.T) {
	a := NewSpan(3, 5)
	if got := a.Join(Span{}); got != a {
		t.Errorf("zero not identity: %s", got)
	}
	if got := a.Join(NewSpan(1, 4)); got != NewSpan(1, 5) {
		t.Errorf("join %s", got)
	}
}
