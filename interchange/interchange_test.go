package interchange

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/marc-format/marc/encode"
	"github.com/signadot/marc-format/marc/eval"
	"github.com/signadot/marc-format/marc/ir"
	"github.com/signadot/marc-format/marc/parse"
)

func load(t *testing.T, src string) *ir.Node {
	t.Helper()
	stmts, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	n, err := eval.Evaluate(stmts)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestFromJSON(t *testing.T) {
	n, err := NodeFromJSON([]byte(`{"b": 1, "a key": [1, {"x": 1, "y": 2}, {"z": 1.50}], "c": null}`))
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(n)
	want := `.'a key'[+] = 1
.'a key'[1].x = 1
.'a key'[1].y = 2
.'a key'[+].z = 1.5
.b = 1
.c = null
`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if n.Keys[0].Ident.Value != "b" {
		t.Errorf("insertion order lost: %v", n.Keys)
	}
}

func TestRoundTripThroughMarc(t *testing.T) {
	in := `{"items":[{"name":"a","tags":["x","y"]},{"name":"b","tags":[]}],"n":12345678901234567890123,"f":0.1,"s":"line\nbreak"}`
	n, err := NodeFromJSON([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	text := encode.MustString(n)
	back := load(t, text)
	v, err := ToInterchange(back)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"items": []any{
			map[string]any{"name": "a", "tags": []any{"x", "y"}},
			map[string]any{"name": "b"},
		},
		"n": 1.2345678901234568e22,
		"f": 0.1,
		"s": "line\nbreak",
	}
	if diff := cmp.Diff(want, Plain(v)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if o := v.(*Object); o.Values["n"] != Number("12345678901234567890123.0") {
		t.Errorf("big number %v", o.Values["n"])
	}
}

func TestToJSON(t *testing.T) {
	n := load(t, ".b[+] = 1\n.b[+] = 'two'\n.a{k} = true\n.c = 1.5\n.d = null")
	d, err := NodeToJSON(n, false)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"b":[1,"two"],"a":{"k":true},"c":1.5,"d":null}`
	if string(d) != want {
		t.Errorf("got %s want %s", d, want)
	}
	d, err = NodeToJSON(n, true)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(d), "\n  \"b\": [1, \"two\"],\n") {
		t.Errorf("indented:\n%s", d)
	}
}

func TestJSONStringEscapes(t *testing.T) {
	d, err := EncodeJSON("<a>\"\n", false)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != `"<a>\"\n"` {
		t.Errorf("got %s", d)
	}
}

func TestYAML(t *testing.T) {
	src := "z: 1\na:\n  - x\n  - k: 2.5\n    j: true\nn: null\n"
	n, err := NodeFromYAML([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(n)
	want := ".a[+] = 'x'\n.a[1].j = true\n.a[1].k = 2.5\n.n = null\n.z = 1\n"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	out, err := NodeToYAML(n)
	if err != nil {
		t.Fatal(err)
	}
	again, err := NodeFromYAML(out)
	if err != nil {
		t.Fatalf("%v in\n%s", err, out)
	}
	if !ir.Equal(n, again) {
		t.Errorf("yaml round trip differs:\n%s", out)
	}
	if !strings.HasPrefix(string(out), "z: 1\n") {
		t.Errorf("order lost:\n%s", out)
	}
}

func TestErrors(t *testing.T) {
	if _, err := NodeFromJSON([]byte(`{"a":`)); !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("got %v", err)
	}
	if _, err := NodeFromJSON([]byte(`"scalar"`)); !errors.Is(err, ErrRootScalar) {
		t.Errorf("got %v", err)
	}
	if _, err := FromInterchange([]any{struct{}{}}); !errors.Is(err, ErrUnsupportedValue) {
		t.Errorf("got %v", err)
	}
	if _, err := FromInterchange([]any{Number("1.2.3")}); !errors.Is(err, ErrBadNumber) {
		t.Errorf("got %v", err)
	}
	if _, err := NodeFromYAML([]byte("a: [")); !errors.Is(err, ErrInvalidYAML) {
		t.Errorf("got %v", err)
	}
	for _, err := range []error{ErrRootScalar, ErrPatch, ErrBadNumber} {
		if !errors.Is(err, ErrInterchange) {
			t.Errorf("%v is not an interchange error", err)
		}
	}
}

func TestApplyJSONPatch(t *testing.T) {
	n := load(t, ".a = 1\n.list[+] = 'x'")
	out, err := ApplyJSONPatch(n, []byte(`[
		{"op": "replace", "path": "/a", "value": 2},
		{"op": "add", "path": "/list/-", "value": "y"},
		{"op": "add", "path": "/b", "value": {"c": true}}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	want := load(t, ".a = 2\n.b.c = true\n.list[+] = 'x'\n.list[+] = 'y'")
	if encode.MustString(out) != encode.MustString(want) {
		t.Errorf("got\n%s", encode.MustString(out))
	}
	_, err = ApplyJSONPatch(n, []byte(`[{"op": "remove", "path": "/nope"}]`))
	if !errors.Is(err, ErrPatch) {
		t.Errorf("got %v", err)
	}
}

func TestApplyMergePatch(t *testing.T) {
	n := load(t, ".a = 1\n.b.c = 2")
	out, err := ApplyMergePatch(n, []byte(`{"a": null, "b": {"d": "x"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(out); got != ".b.c = 2\n.b.d = 'x'\n" {
		t.Errorf("got\n%s", got)
	}
}

func TestTOML(t *testing.T) {
	in := `name = "svc"
replicas = 3
ratio = 2.0
ports = [80, 443]

[labels]
tier = "web"
app = "x"

[[containers]]
image = "nginx"

[[containers]]
image = "redis"
`
	n, err := NodeFromTOML([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(n)
	want := `.containers[+].image = 'nginx'
.containers[+].image = 'redis'
.labels.app = 'x'
.labels.tier = 'web'
.name = 'svc'
.ports[+] = 80
.ports[+] = 443
.ratio = 2.0
.replicas = 3
`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	var keys []string
	for _, k := range n.Keys {
		keys = append(keys, k.Ident.Value)
	}
	if diff := cmp.Diff([]string{"name", "replicas", "ratio", "ports", "labels", "containers"}, keys); diff != "" {
		t.Errorf("document order (-want +got):\n%s", diff)
	}
	labels, _ := n.Get(ir.Path{{Kind: ir.ObjectAccess, Key: ir.NewIdentifier("labels")}})
	if labels == nil || labels.Keys[0].Ident.Value != "tier" {
		t.Errorf("labels order: %v", labels)
	}

	out, err := NodeToTOML(n)
	if err != nil {
		t.Fatal(err)
	}
	back, err := NodeFromTOML(out)
	if err != nil {
		t.Fatalf("%v\n%s", err, out)
	}
	if encode.MustString(back) != want {
		t.Errorf("round trip\n%s", out)
	}
}

func TestTOMLErrors(t *testing.T) {
	if _, err := NodeFromTOML([]byte("a = [")); !errors.Is(err, ErrInvalidTOML) {
		t.Errorf("got %v", err)
	}
	if _, err := NodeToTOML(load(t, ".a = null")); !errors.Is(err, ErrUnsupportedValue) {
		t.Errorf("null: got %v", err)
	}
	if _, err := NodeToTOML(load(t, "[+] = 1")); !errors.Is(err, ErrUnsupportedValue) {
		t.Errorf("array root: got %v", err)
	}
}

func TestPlainBadNumber(t *testing.T) {
	got := Plain([]any{Number("7"), Number("1.5"), Number("1.2.3")})
	if diff := cmp.Diff([]any{int64(7), 1.5, "1.2.3"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
