package lsp

import (
	"icalls/internal/document"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (ls *Server) textDocumentDidOpen(context *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.docs.Open(params.TextDocument.URI, params.TextDocument.Text, int32(params.TextDocument.Version))
	ls.publishDiagnostics(context, params.TextDocument.URI)
	return nil
}

func (ls *Server) textDocumentDidChange(context *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	changes := make([]document.Change, 0, len(params.ContentChanges))
	for _, change := range params.ContentChanges {
		switch event := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			changes = append(changes, document.Change{Text: event.Text})
		case protocol.TextDocumentContentChangeEvent:
			var rng *document.Range
			if event.Range != nil {
				rng = &document.Range{
					Start: document.Position{
						Line:      uint32(event.Range.Start.Line),
						Character: uint32(event.Range.Start.Character),
					},
					End: document.Position{
						Line:      uint32(event.Range.End.Line),
						Character: uint32(event.Range.End.Character),
					},
				}
			}
			changes = append(changes, document.Change{Range: rng, Text: event.Text})
		}
	}

	uri := params.TextDocument.URI
	if err := ls.docs.Apply(uri, int32(params.TextDocument.Version), changes); err != nil {
		return err
	}
	ls.publishDiagnostics(context, uri)
	return nil
}

func (ls *Server) textDocumentDidClose(context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.docs.Close(params.TextDocument.URI)
	return nil
}

func (ls *Server) publishDiagnostics(context *glsp.Context, uri protocol.DocumentUri) {
	doc, err := ls.docs.Get(uri)
	if err != nil {
		ls.log.Errorf("diagnostics for unknown document %s: %s", uri, err)
		return
	}

	diagnostics := ls.diagnose(doc.Text)
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}

	docVersion := protocol.UInteger(doc.Version)
	context.Notify("textDocument/publishDiagnostics", protocol.PublishDiagnosticsParams{
		URI:         uri,
		Version:     &docVersion,
		Diagnostics: diagnostics,
	})
}
