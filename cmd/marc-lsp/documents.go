package main

import (
	"sync"
	"unicode/utf16"

	"github.com/signadot/marc-format/marc/debug"
	"github.com/signadot/marc-format/marc/eval"
	"github.com/signadot/marc-format/marc/ir"
	"github.com/signadot/marc-format/marc/parse"
	"github.com/signadot/marc-format/marc/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	pos     *token.PosDoc

	// stmts and err are from the current content.  node is the tree of
	// the last content that evaluated, so completion keeps working while
	// the document is being edited.
	stmts []parse.Statement
	node  *ir.Node
	err   error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := &document{
		uri:     uri,
		content: content,
		version: version,
		pos:     token.NewPosDoc([]byte(content)),
	}
	doc.stmts, doc.err = parse.Parse([]byte(content))
	if doc.err == nil {
		doc.node, doc.err = eval.Evaluate(doc.stmts)
	}
	if debug.LSP() {
		debug.Logf("%s v%d: %d statements, err=%v\n", uri, version, len(doc.stmts), doc.err)
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()
	if doc.node == nil {
		if prev := ds.docs[uri]; prev != nil {
			doc.node = prev.node
		}
	}
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// lspPosition maps a byte offset to a position whose character counts
// UTF-16 code units.
func (doc *document) lspPosition(off int) protocol.Position {
	off = min(max(off, 0), len(doc.content))
	ln, col := doc.pos.LineCol(off)
	start := doc.pos.LineStart(ln)
	units := 0
	for _, r := range doc.content[start : start+col] {
		units += utf16.RuneLen(r)
	}
	return protocol.Position{Line: uint32(ln), Character: uint32(units)}
}

func (doc *document) lspRange(s token.Span) protocol.Range {
	return protocol.Range{
		Start: doc.lspPosition(s.Start),
		End:   doc.lspPosition(s.End),
	}
}

// offset is the inverse of lspPosition.
func (doc *document) offset(p protocol.Position) int {
	return utf16Offset(doc.content, doc.pos, p)
}

func utf16Offset(content string, pd *token.PosDoc, p protocol.Position) int {
	ln := int(p.Line)
	if ln >= pd.NumLines() {
		return len(content)
	}
	start, end := pd.LineStart(ln), pd.LineEnd(ln)
	units := 0
	for i, r := range content[start:end] {
		if units >= int(p.Character) {
			return start + i
		}
		units += utf16.RuneLen(r)
	}
	return end
}

// applyChange applies one content change.  Under full sync every change
// carries the whole document; under incremental sync the change replaces
// its range, and an empty range at 0:0 inserts at the start.
func applyChange(content string, change protocol.TextDocumentContentChangeEvent, kind protocol.TextDocumentSyncKind) string {
	if kind != protocol.TextDocumentSyncKindIncremental {
		return change.Text
	}
	r := change.Range
	pd := token.NewPosDoc([]byte(content))
	start := utf16Offset(content, pd, r.Start)
	end := utf16Offset(content, pd, r.End)
	if start > end {
		return content
	}
	return content[:start] + change.Text + content[end:]
}
