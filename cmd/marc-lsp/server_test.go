package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

func open(t *testing.T, content string) *document {
	t.Helper()
	s := newServer()
	return s.docs.put("file:///t.marc", content, 1)
}

func TestValidateDocument(t *testing.T) {
	doc := open(t, ".x = 2\n.x = 3\n")
	diags := validateDocument(doc)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics", len(diags))
	}
	d := diags[0]
	want := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 5},
		End:   protocol.Position{Line: 1, Character: 6},
	}
	if diff := cmp.Diff(want, d.Range); diff != "" {
		t.Errorf("range (-want +got):\n%s", diff)
	}
	if !strings.HasPrefix(d.Message, "Duplicate Assignment") {
		t.Errorf("message %q", d.Message)
	}
	if len(d.RelatedInformation) != 1 || d.RelatedInformation[0].Location.Range.Start.Line != 0 {
		t.Errorf("related %+v", d.RelatedInformation)
	}
	if diags := validateDocument(open(t, ".x = 1\n")); len(diags) != 0 {
		t.Errorf("valid document: %+v", diags)
	}
}

func TestKeepsLastTree(t *testing.T) {
	s := newServer()
	s.docs.put("u", ".a.b = 1\n", 1)
	doc := s.docs.put("u", ".a.b = 1\n.a.", 2)
	if doc.err == nil {
		t.Fatal("expected an error")
	}
	if doc.node == nil || doc.node.Field("a") == nil {
		t.Fatal("previous tree not kept")
	}
}

func TestPositions(t *testing.T) {
	doc := open(t, ".a = 'é😀x'\n.b = 1\n")
	off := strings.Index(doc.content, "x")
	p := doc.lspPosition(off)
	// é is one UTF-16 unit, the emoji two.
	if p.Line != 0 || p.Character != 9 {
		t.Errorf("got %+v", p)
	}
	if got := doc.offset(p); got != off {
		t.Errorf("offset %d, want %d", got, off)
	}
	if got := doc.offset(protocol.Position{Line: 1, Character: 1}); doc.content[got] != 'b' {
		t.Errorf("offset %d", got)
	}
}

func TestApplyChange(t *testing.T) {
	content := ".a = 1\n.b = 2\n"
	got := applyChange(content, protocol.TextDocumentContentChangeEvent{
		Range: protocol.Range{
			Start: protocol.Position{Line: 1, Character: 5},
			End:   protocol.Position{Line: 1, Character: 6},
		},
		Text: "30",
	}, protocol.TextDocumentSyncKindIncremental)
	if got != ".a = 1\n.b = 30\n" {
		t.Errorf("got %q", got)
	}
	got = applyChange(content, protocol.TextDocumentContentChangeEvent{Text: "# top\n"}, protocol.TextDocumentSyncKindIncremental)
	if got != "# top\n"+content {
		t.Errorf("insert at start: got %q", got)
	}
	if got := applyChange(content, protocol.TextDocumentContentChangeEvent{Text: "x"}, protocol.TextDocumentSyncKindFull); got != "x" {
		t.Errorf("full replace: got %q", got)
	}
}

func TestFormatEdits(t *testing.T) {
	doc := open(t, ".b = 1\n.a = 2")
	edits := formatEdits(doc)
	if len(edits) != 1 {
		t.Fatalf("got %d edits", len(edits))
	}
	if edits[0].NewText != ".a = 2\n.b = 1\n" {
		t.Errorf("got %q", edits[0].NewText)
	}
	if end := edits[0].Range.End; end.Line != 1 || end.Character != 6 {
		t.Errorf("end %+v", end)
	}
	if edits := formatEdits(open(t, ".a = 2\n")); len(edits) != 0 {
		t.Errorf("canonical input: %+v", edits)
	}
	if edits := formatEdits(open(t, ".a = \n")); edits != nil {
		t.Errorf("broken input: %+v", edits)
	}
}

func TestHover(t *testing.T) {
	doc := open(t, "# replicas\n.spec.replicas = 3\n.spec.ports[+] = 80\n")
	off := strings.Index(doc.content, "spec")
	text := buildHoverText(doc, off)
	for _, want := range []string{"`.spec`", "Object", "**Entries:** 2"} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q in\n%s", want, text)
		}
	}
	text = buildHoverText(doc, strings.Index(doc.content, "3"))
	for _, want := range []string{"`.spec.replicas`", "Integer", "`3`", "replicas"} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q in\n%s", want, text)
		}
	}
	text = buildHoverText(doc, strings.Index(doc.content, "ports"))
	if !strings.Contains(text, "Array") || !strings.Contains(text, "**Entries:** 1") {
		t.Errorf("got\n%s", text)
	}
	if text := buildHoverText(doc, 2); text != "" {
		t.Errorf("comment hover: %q", text)
	}
}

func labels(items []protocol.CompletionItem) []string {
	var res []string
	for _, it := range items {
		res = append(res, it.Label)
	}
	return res
}

func TestCompletion(t *testing.T) {
	doc := open(t, ".spec.b = 1\n.spec.a = 2\n.labels{app} = 'x'\n.xs[k] = 1\n")
	tests := []struct {
		line string
		want []string
	}{
		{".", []string{"spec", "labels", "xs"}},
		{".spec.", []string{"b", "a"}},
		{".labels{", []string{"app"}},
		{".xs[", []string{"+", "k"}},
		{".spec{", nil},
		{".nope.", nil},
		{".spec.a = ", []string{"true", "false", "null", "string"}},
		{".spec.a = 1", nil},
	}
	for _, tt := range tests {
		d := open(t, doc.content+tt.line)
		d.node = doc.node
		pos := d.lspPosition(len(d.content))
		got := labels(completions(d, pos))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestSemanticTokens(t *testing.T) {
	doc := open(t, "# c\n.a{'k'} = \"v\"\n")
	got := collectSemanticTokens(doc)
	types := make([]protocol.SemanticTokenTypes, len(got))
	for i, ti := range got {
		types[i] = ti.tokenType
	}
	want := []protocol.SemanticTokenTypes{
		protocol.SemanticTokenComment,
		protocol.SemanticTokenOperator,
		protocol.SemanticTokenProperty,
		protocol.SemanticTokenOperator,
		protocol.SemanticTokenProperty,
		protocol.SemanticTokenOperator,
		protocol.SemanticTokenOperator,
		protocol.SemanticTokenString,
	}
	if diff := cmp.Diff(want, types); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if len(got[4].modifiers) != 1 || got[2].modifiers != nil {
		t.Errorf("definition modifier on wrong token: %+v", got)
	}
	data := encodeSemanticTokens(got[:2])
	if diff := cmp.Diff([]uint32{0, 0, 3, 0, 0, 1, 0, 1, 4, 0}, data); diff != "" {
		t.Errorf("encoding (-want +got):\n%s", diff)
	}
}

func TestSemanticTokensMultiline(t *testing.T) {
	doc := open(t, ".a = '''\nx\n'''\n")
	got := collectSemanticTokens(doc)
	last := got[len(got)-3:]
	for i, ti := range last {
		if ti.tokenType != protocol.SemanticTokenString || ti.line != uint32(i) {
			t.Errorf("piece %d: %+v", i, ti)
		}
	}
}

func TestSemanticTokensBrokenLine(t *testing.T) {
	doc := open(t, ".a = 1\n.b = 'x\n.c = true\n")
	got := collectSemanticTokens(doc)
	lines := map[uint32]bool{}
	for _, ti := range got {
		lines[ti.line] = true
	}
	if !lines[0] || lines[1] || !lines[2] {
		t.Errorf("lines %v", lines)
	}
}
