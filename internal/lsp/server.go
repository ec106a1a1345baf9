// Package lsp wires the analysis layers to the language server protocol:
// document synchronization, hover, completion, and diagnostics over a
// glsp stdio server.
package lsp

import (
	"icalls/internal/document"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "icalls"

var version = "0.1.0"

// Server holds the per-session state: the open documents, the negotiated
// feature set, and the shutdown flag.
type Server struct {
	handler *protocol.Handler
	docs    *document.Store
	log     commonlog.Logger

	hoverEnabled      bool
	completionEnabled bool
	stopping          bool
}

// NewServer builds the protocol handler and the stdio server around it.
func NewServer() *server.Server {
	ls := &Server{
		docs:              document.NewStore(document.EncodingUTF16),
		log:               commonlog.GetLogger(lsName),
		hoverEnabled:      true,
		completionEnabled: true,
	}

	ls.handler = &protocol.Handler{
		Initialize:             ls.initialize,
		Initialized:            ls.initialized,
		Shutdown:               ls.shutdown,
		Exit:                   ls.exit,
		SetTrace:               ls.setTrace,
		TextDocumentDidOpen:    ls.textDocumentDidOpen,
		TextDocumentDidChange:  ls.textDocumentDidChange,
		TextDocumentDidClose:   ls.textDocumentDidClose,
		TextDocumentHover:      ls.textDocumentHover,
		TextDocumentCompletion: ls.textDocumentCompletion,
		CompletionItemResolve:  ls.completionItemResolve,
	}

	return server.NewServer(ls.handler, lsName, false)
}
