package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/signadot/marc-format/marc/eval"
	"github.com/signadot/marc-format/marc/ir"
	"github.com/signadot/marc-format/marc/parse"
	"github.com/signadot/marc-format/marc/token"
)

func load(t *testing.T, src string) *ir.Node {
	t.Helper()
	stmts, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	node, err := eval.Evaluate(stmts)
	if err != nil {
		t.Fatalf("eval %q: %v", src, err)
	}
	return node
}

func format(t *testing.T, src string) string {
	t.Helper()
	return MustString(load(t, src))
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "sorted fields",
			in:   ".b = 1\n.a.y = 2\n.a.x = 3\n",
			want: ".a.x = 3\n.a.y = 2\n.b = 1\n",
		},
		{
			name: "map and array",
			in:   "{k}[+] = 'x'\n{k}[+] = 'y'\n{j}[n].v = true\n",
			want: "{j}[n].v = true\n{k}[+] = 'x'\n{k}[+] = 'y'\n",
		},
		{
			name: "array keeps insertion order",
			in:   "[b].name = 1\n[a].name = 2\n[a].age = 3\n[b].age = 4\n",
			want: "[b].age = 4\n[b].name = 1\n[a].age = 3\n[a].name = 2\n",
		},
		{
			name: "scalars",
			in:   ".i = -3\n.n = 1.50\n.e = 1e2\n.z = null\n.t = false\n",
			want: ".e = 100.0\n.i = -3\n.n = 1.5\n.t = false\n.z = null\n",
		},
		{
			name: "quoted keys",
			in:   ".'a b' = 1\n.'c' = 2\n.d = 3\n",
			want: ".'a b' = 1\n.'c' = 2\n.d = 3\n",
		},
		{
			name: "strings",
			in:   ".a = \"it's\"\n.b = \"x\\ny\"\n.c = \"tab\\there\"\n.d = \"bell\\u0007\"\n",
			want: ".a = '''it's'''\n.b = '''\nx\ny\n'''\n.c = 'tab\there'\n.d = \"bell\\u0007\"\n",
		},
		{
			name: "comments",
			in:   "# top\n.a = 1\n#  second\n# block\n.b = 2\n.c = 3\n# dangling\n",
			want: "# top\n.a = 1\n\n#  second\n# block\n.b = 2\n.c = 3\n",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "more than nine slots",
			in:   strings.Repeat("[+] = 1\n", 5) + "[+] = 2\n" + strings.Repeat("[+] = 1\n", 5),
			want: strings.Repeat("[+] = 1\n", 5) + "[+] = 2\n" + strings.Repeat("[+] = 1\n", 5),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := format(t, tt.in)
			if got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

var roundTripCorpus = []string{
	".a.b.c = 123",
	"{a}{b}{c} = 123",
	"[b].name = 1\n[a].name = 2\n[a].age = 3\n[b].age = 4",
	".x[+][+] = 1\n.x[+][+] = 2\n.x[+].y = 'z'",
	"# c1\n.a = '''\nmulti\nline\n'''\n# c2\n# c3\n.b = \"\\u{1F600}\"",
	".s = \"a'''b\\nc\"\n.t = \"'quoted'\"\n.u = ''\n.v = '''\n\n'''",
	".'weird key' {'}'} = 1\n.'weird key'{x}[\"y z\"] = null",
	".n = 123456789012345678901234567890\n.m = -0.000001\n.k = 1E+3",
}

func TestRoundTrip(t *testing.T) {
	for _, src := range roundTripCorpus {
		once := format(t, src)
		twice := format(t, once)
		if once != twice {
			t.Errorf("not stable for %q:\nonce\n%s\ntwice\n%s", src, once, twice)
		}
		if !ir.Equal(load(t, once), load(t, twice)) {
			t.Errorf("trees differ for %q", src)
		}
	}
}

func TestIdempotentOnBuiltTree(t *testing.T) {
	g := ir.NewKeyGen()
	root := ir.NewContainer(ir.ObjectType, token.Span{})
	arr := ir.NewContainer(ir.ArrayType, token.Span{})
	arr.Set(g.Next(), ir.FromString("x\ny"))
	arr.Set(ir.Explicit(ir.Unquoted("7")), ir.FromNumber(decimal.New(5, -1)))
	root.Set(ir.Explicit(ir.NewIdentifier("a key")), arr)
	root.Set(ir.Explicit(ir.Unquoted("b")), ir.FromInt(1).WithComment("note"))
	out := MustString(root)
	want := ".'a key'[+] = '''\nx\ny\n'''\n.'a key'[7] = 0.5\n\n#note\n.b = 1\n"
	if out != want {
		t.Errorf("got\n%s\nwant\n%s", out, want)
	}
	if again := format(t, out); again != out {
		t.Errorf("reprint differs:\n%s", again)
	}
}

func TestEncodeErrors(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(ir.FromInt(1), buf); !errors.Is(err, ErrRootScalar) {
		t.Errorf("got %v", err)
	}
	root := ir.NewContainer(ir.ObjectType, token.Span{})
	root.Slot(ir.Explicit(ir.Unquoted("a")), token.Span{})
	if err := Encode(root, buf); !errors.Is(err, ErrUninitialized) {
		t.Errorf("got %v", err)
	}
}

func TestEncodeNoComments(t *testing.T) {
	n := load(t, "# c\n.a = 1\n# d\n.b = 2")
	if got := MustString(n, EncodeComments(false)); got != ".a = 1\n.b = 2\n" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeColors(t *testing.T) {
	n := load(t, "{m}.a = 1")
	colors := &Colors{
		Default: func(s string, _ ...any) string { return "<" + s + ">" },
		Map:     map[Colorable]func(string, ...any) string{},
	}
	got := MustString(n, EncodeColors(colors))
	want := "<{><m><}><.><a>< = ><1>\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestLower(t *testing.T) {
	n := load(t, ".b[+] = 1\n.a{k} = 2")
	lines, err := Lower(n)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, ln := range lines {
		got = append(got, ln.Path.String()+"="+Literal(ln.Value))
	}
	if strings.Join(got, ",") != ".a{k}=2,.b[+]=1" {
		t.Errorf("got %v", got)
	}
}

func TestNumberLiteral(t *testing.T) {
	tests := map[string]string{
		"1":       "1.0",
		"1.25":    "1.25",
		"-2e3":    "-2000.0",
		"1.0e-2":  "0.01",
		"100.000": "100.0",
	}
	for in, want := range tests {
		if got := NumberLiteral(decimal.RequireFromString(in)); got != want {
			t.Errorf("%s: got %s want %s", in, got, want)
		}
	}
}
