package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/marc-format/marc/eval"
	"github.com/signadot/marc-format/marc/ir"
	"github.com/signadot/marc-format/marc/parse"
)

func TestDiffText(t *testing.T) {
	got := DiffText(".a = 1\n.b = 2\n.c = 3\n", ".a = 1\n.b = 5\n.c = 3\n.d = 4\n")
	want := []Line{
		{Equal, ".a = 1"},
		{Delete, ".b = 2"},
		{Insert, ".b = 5"},
		{Equal, ".c = 3"},
		{Insert, ".d = 4"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Error("Changed")
	}
	if Changed(DiffText("x\n", "x\n")) {
		t.Error("identical inputs changed")
	}
}

func TestReverse(t *testing.T) {
	lines := DiffText("a\nx\n", "b\nx\n")
	want := []Line{{Insert, "a"}, {Delete, "b"}, {Equal, "x"}}
	if diff := cmp.Diff(want, Reverse(lines)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFormat(t *testing.T) {
	lines := []Line{
		{Equal, "1"}, {Equal, "2"}, {Equal, "3"},
		{Delete, "4"}, {Insert, "four"},
		{Equal, "5"}, {Equal, "6"}, {Equal, "7"},
	}
	got := Format(lines, Context(1), Names("a", "b"))
	want := "--- a\n+++ b\n@@ ... @@\n 3\n-4\n+four\n 5\n@@ ... @@\n"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if all := Format(lines[:2]); all != " 1\n 2\n" {
		t.Errorf("got %q", all)
	}
}

func node(t *testing.T, src string) *ir.Node {
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

func TestDiffNodes(t *testing.T) {
	lines, err := DiffNodes(node(t, "# c\n.b = 1\n.a = 1"), node(t, ".a = 1\n.b = 1"))
	if err != nil {
		t.Fatal(err)
	}
	if Changed(lines) {
		t.Errorf("order and comments should not matter: %v", lines)
	}
	lines, err = DiffNodes(node(t, ".a = 1"), node(t, ".a = 2"))
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[0].Op != Delete || lines[1].Op != Insert {
		t.Errorf("got %v", lines)
	}
}
