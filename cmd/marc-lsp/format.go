package main

import (
	"context"

	"github.com/signadot/marc-format/marc"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return formatEdits(doc), nil
}

// formatEdits returns a single edit replacing the whole document with
// its canonical form.  Documents with errors are left alone.
func formatEdits(doc *document) []protocol.TextEdit {
	if doc.err != nil {
		return nil
	}
	formatted, err := marc.Format([]byte(doc.content))
	if err != nil {
		return nil
	}
	if string(formatted) == doc.content {
		return []protocol.TextEdit{}
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   doc.lspPosition(len(doc.content)),
			},
			NewText: string(formatted),
		},
	}
}
