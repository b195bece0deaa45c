package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/marc-format/marc/eval"
	"github.com/signadot/marc-format/marc/ir"
	"github.com/signadot/marc-format/marc/parse"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	hoverText := buildHoverText(doc, doc.offset(params.Position))
	if hoverText == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// entryAt finds the entry under off and the index of the access under
// it.  The index is len(Path) when off is on the value or the '='.
func entryAt(stmts []parse.Statement, off int) (*parse.Entry, int) {
	for _, st := range stmts {
		e, ok := st.(*parse.Entry)
		if !ok {
			continue
		}
		sp := e.Span()
		if off < sp.Start || off > sp.End {
			continue
		}
		for i, a := range e.Path {
			if off >= a.Span.Start && off < a.Span.End {
				return e, i
			}
		}
		return e, len(e.Path)
	}
	return nil, 0
}

func buildHoverText(doc *document, off int) string {
	e, i := entryAt(doc.stmts, off)
	if e == nil {
		return ""
	}
	atValue := i >= len(e.Path)-1
	path := e.Path
	if !atValue {
		path = e.Path[:i+1]
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("**Path:** `%s`", path))

	if !atValue {
		t := e.Path[i+1].Kind.Type()
		parts = append(parts, fmt.Sprintf("**Type:** %s", t))
		if n := resolve(doc.node, path); n != nil && n.Type == t {
			parts = append(parts, fmt.Sprintf("**Entries:** %d", n.Len()))
		}
		return strings.Join(parts, "\n\n")
	}

	scalar, err := eval.Scalar(&e.Value)
	if err != nil {
		parts = append(parts, fmt.Sprintf("**Type:** %s", e.Value.Kind))
	} else {
		parts = append(parts, fmt.Sprintf("**Type:** %s", scalar.Type))
	}
	val := e.Value.Text
	if len(val) > 50 {
		val = val[:50] + "..."
	}
	parts = append(parts, fmt.Sprintf("**Value:** `%s`", val))
	if len(e.Comment) != 0 {
		parts = append(parts, strings.TrimSpace(strings.Join(e.Comment, "\n")))
	}
	return strings.Join(parts, "\n\n")
}

// resolve looks up path in root unless it holds implicit accesses,
// which do not name one value.
func resolve(root *ir.Node, path ir.Path) *ir.Node {
	if root == nil {
		return nil
	}
	for _, a := range path {
		if a.Kind == ir.ArrayAccessImplicit {
			return nil
		}
	}
	n, err := root.Get(path)
	if err != nil {
		return nil
	}
	return n
}
