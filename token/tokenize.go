package token

import (
	"unicode/utf8"

	"github.com/signadot/marc-format/marc/debug"
)

var valueExpected = []string{"string", "integer", "number", "true", "false", "null"}

type tkState struct {
	// reset every '\n'
	lnToks  int
	afterEq bool
}

// Tokenize appends the tokens of src to dst.
//
// Outside of value position (left of '='), bare words are identifiers.
// Right of '=', bare words must be one of the keywords true, false or null,
// and '-' or a digit starts a number.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	if !utf8.Valid(src) {
		i := firstInvalid(src)
		return nil, NewTokenizeErr(ErrBadUTF8, Span{Start: i, End: i + 1})
	}
	ts := &tkState{}
	i := 0
	n := len(src)
	for i < n {
		c := src[i]
		switch c {
		case '\n':
			dst = append(dst, Token{Type: TNewline, Span: Span{i, i + 1}, Bytes: src[i : i+1]})
			ts.lnToks = 0
			ts.afterEq = false
			i++
			continue
		case ' ', '\t', '\r':
			i++
			continue
		case '#':
			if ts.lnToks != 0 {
				return nil, UnexpectedErr(`"#"`, Span{i, i + 1}, "newline")
			}
			j := i + 1
			for j < n && src[j] != '\n' {
				j++
			}
			end := j
			if end > i+1 && src[end-1] == '\r' {
				end--
			}
			dst = append(dst, Token{Type: TComment, Span: Span{i, end}, Bytes: src[i+1 : end]})
			ts.lnToks++
			i = j
			continue
		case '\'', '"':
			kind, sz, err := quoted(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, Span{i, i + sz})
			}
			dst = append(dst, Token{Type: TString, Span: Span{i, i + sz}, Bytes: src[i : i+sz], StringKind: kind})
			ts.lnToks++
			i += sz
			continue
		}
		var tok Token
		if tt, ok := punct(c); ok {
			tok = Token{Type: tt, Span: Span{i, i + 1}, Bytes: src[i : i+1]}
			if tt == TEquals {
				ts.afterEq = true
			}
		} else if ts.afterEq {
			t, err := valueToken(src, i)
			if err != nil {
				return nil, err
			}
			tok = *t
		} else if isWordByte(c) {
			j := i + 1
			for j < n && isWordByte(src[j]) {
				j++
			}
			tok = Token{Type: TWord, Span: Span{i, j}, Bytes: src[i:j]}
		} else {
			_, sz := utf8.DecodeRune(src[i:])
			return nil, UnexpectedErr(strconvQuote(src[i:i+sz]), Span{i, i + sz},
				TDot.Describe(), TLCurl.Describe(), TLSquare.Describe(), "comment")
		}
		dst = append(dst, tok)
		ts.lnToks++
		i = tok.Span.End
	}
	if debug.Tokens() {
		PrintTokens(dst, "tokenize")
	}
	return dst, nil
}

func punct(c byte) (TokenType, bool) {
	switch c {
	case '.':
		return TDot, true
	case '{':
		return TLCurl, true
	case '}':
		return TRCurl, true
	case '[':
		return TLSquare, true
	case ']':
		return TRSquare, true
	case '+':
		return TPlus, true
	case '=':
		return TEquals, true
	}
	return 0, false
}

func valueToken(src []byte, i int) (*Token, error) {
	c := src[i]
	if c == '-' || asciiDigit(c) {
		sz, isFloat, err := number(src[i:])
		if err != nil {
			return nil, NewTokenizeErr(err, Span{i, i + max(sz, 1)})
		}
		tt := TInteger
		if isFloat {
			tt = TNumber
		}
		return &Token{Type: tt, Span: Span{i, i + sz}, Bytes: src[i : i+sz]}, nil
	}
	j := i
	for j < len(src) && isWordByte(src[j]) {
		j++
	}
	if j == i {
		_, sz := utf8.DecodeRune(src[i:])
		return nil, UnexpectedErr(strconvQuote(src[i:i+sz]), Span{i, i + sz}, valueExpected...)
	}
	var tt TokenType
	switch string(src[i:j]) {
	case "true":
		tt = TTrue
	case "false":
		tt = TFalse
	case "null":
		tt = TNull
	default:
		return nil, UnexpectedErr(strconvQuote(src[i:j]), Span{i, j}, valueExpected...)
	}
	return &Token{Type: tt, Span: Span{i, j}, Bytes: src[i:j]}, nil
}

func firstInvalid(d []byte) int {
	i := 0
	for i < len(d) {
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz <= 1 {
			return i
		}
		i += sz
	}
	return i
}
