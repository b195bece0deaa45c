package main

import (
	"context"

	"github.com/signadot/marc-format/marc/diag"
	"go.lsp.dev/protocol"
)

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	diagnostics := validateDocument(doc)
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(doc.uri),
			Diagnostics: diagnostics,
		})
	}
}

// validateDocument turns the error of doc into one diagnostic.  The
// first error annotation gives its range, the others become related
// information.
func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	report := diag.FromError(doc.err)
	d := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Source:   "marc",
		Message:  report.Title,
	}
	primary := -1
	for i, a := range report.Annotations {
		if a.Severity == diag.Error {
			primary = i
			break
		}
	}
	if primary >= 0 {
		a := report.Annotations[primary]
		d.Range = doc.lspRange(a.Span)
		if a.Label != "" {
			d.Message += ": " + a.Label
		}
	}
	for i, a := range report.Annotations {
		if i == primary {
			continue
		}
		d.RelatedInformation = append(d.RelatedInformation, protocol.DiagnosticRelatedInformation{
			Location: protocol.Location{
				URI:   protocol.DocumentURI(doc.uri),
				Range: doc.lspRange(a.Span),
			},
			Message: a.Severity.String() + ": " + a.Label,
		})
	}
	return append(diagnostics, d)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := s.docs.get(uri)
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		content = applyChange(content, change, s.sync)
	}
	doc = s.docs.put(uri, content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
