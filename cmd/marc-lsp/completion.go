package main

import (
	"context"
	"strings"

	"github.com/signadot/marc-format/marc/ir"
	"github.com/signadot/marc-format/marc/parse"
	"go.lsp.dev/protocol"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completions(doc, params.Position),
	}, nil
}

func completions(doc *document, pos protocol.Position) []protocol.CompletionItem {
	off := doc.offset(pos)
	before := doc.content[doc.pos.LineStart(int(pos.Line)):off]
	before = strings.TrimLeft(before, " \t")

	items := []protocol.CompletionItem{}
	if eq := strings.IndexByte(before, '='); eq >= 0 {
		if strings.TrimSpace(before[eq+1:]) != "" {
			return items
		}
		for _, kw := range []string{"true", "false", "null"} {
			items = append(items, protocol.CompletionItem{
				Label:      kw,
				Kind:       protocol.CompletionItemKindKeyword,
				InsertText: kw,
			})
		}
		return append(items, protocol.CompletionItem{
			Label:      "string",
			Kind:       protocol.CompletionItemKindSnippet,
			InsertText: "''",
		})
	}
	if before == "" {
		return items
	}
	var (
		want  ir.Type
		suffix string
		kind  protocol.CompletionItemKind
	)
	switch before[len(before)-1] {
	case '.':
		want, kind = ir.ObjectType, protocol.CompletionItemKindField
	case '{':
		want, suffix, kind = ir.MapType, "}", protocol.CompletionItemKindProperty
	case '[':
		want, suffix, kind = ir.ArrayType, "]", protocol.CompletionItemKindValue
	default:
		return items
	}
	container := doc.node
	if prefix := before[:len(before)-1]; prefix != "" {
		path, err := parse.ParsePath(prefix)
		if err != nil {
			return items
		}
		container = resolve(doc.node, path)
	}
	if want == ir.ArrayType {
		items = append(items, protocol.CompletionItem{
			Label:      ir.ImplicitGlyph,
			Kind:       protocol.CompletionItemKindOperator,
			InsertText: ir.ImplicitGlyph + suffix,
			Detail:     "append a new element",
		})
	}
	if container == nil || container.Type != want {
		return items
	}
	for i, k := range container.Keys {
		if k.IsImplicit() {
			continue
		}
		label := k.Ident.String()
		items = append(items, protocol.CompletionItem{
			Label:      label,
			Kind:       kind,
			InsertText: label + suffix,
			Detail:     container.Values[i].Type.String(),
		})
	}
	return items
}
