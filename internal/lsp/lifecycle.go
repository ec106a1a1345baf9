package lsp

import (
	"encoding/json"
	"errors"

	"icalls/internal/document"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// protocol_3_16 predates the positionEncoding capability field, so the
// negotiated encoding is spliced into the capabilities at the JSON level.
type serverCapabilities struct {
	protocol.ServerCapabilities
	PositionEncoding string `json:"positionEncoding"`
}

type initializeResult struct {
	Capabilities serverCapabilities                   `json:"capabilities"`
	ServerInfo   *protocol.InitializeResultServerInfo `json:"serverInfo,omitempty"`
}

type initializationOptions struct {
	EnableCompletion *bool `json:"enable_completion"`
	EnableHover      *bool `json:"enable_hover"`
}

func (ls *Server) initialize(context *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		ResolveProvider: &protocol.True,
	}

	enc := negotiateEncoding(context.Params)
	ls.docs.SetEncoding(enc)

	opts := decodeInitializationOptions(params.InitializationOptions)
	if opts.EnableHover != nil && !*opts.EnableHover {
		ls.hoverEnabled = false
		capabilities.HoverProvider = nil
	}
	if opts.EnableCompletion != nil && !*opts.EnableCompletion {
		ls.completionEnabled = false
		capabilities.CompletionProvider = nil
	}

	ls.log.Infof("initialized with %s columns", enc)

	return initializeResult{
		Capabilities: serverCapabilities{
			ServerCapabilities: capabilities,
			PositionEncoding:   enc.String(),
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

// negotiateEncoding picks UTF-8 columns when the client offers them, and
// falls back to the mandatory UTF-16 otherwise. The typed initialize
// params predate general.positionEncodings, so the raw params are
// consulted.
func negotiateEncoding(raw json.RawMessage) document.Encoding {
	var params struct {
		Capabilities struct {
			General struct {
				PositionEncodings []string `json:"positionEncodings"`
			} `json:"general"`
		} `json:"capabilities"`
	}
	if err := json.Unmarshal(raw, &params); err != nil {
		return document.EncodingUTF16
	}
	for _, pe := range params.Capabilities.General.PositionEncodings {
		if pe == "utf-8" {
			return document.EncodingUTF8
		}
	}
	return document.EncodingUTF16
}

func decodeInitializationOptions(raw any) initializationOptions {
	var opts initializationOptions
	if raw == nil {
		return opts
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return opts
	}
	_ = json.Unmarshal(encoded, &opts)
	return opts
}

func (ls *Server) initialized(context *glsp.Context, params *protocol.InitializedParams) error {
	ls.log.Info("server initialized")
	return nil
}

func (ls *Server) setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) shutdown(context *glsp.Context) error {
	ls.log.Info("shutting down")
	protocol.SetTraceValue(protocol.TraceValueOff)
	ls.stopping = true
	return nil
}

func (ls *Server) exit(context *glsp.Context) error {
	if !ls.stopping {
		return errors.New("received exit notification before shutdown request")
	}
	return nil
}

// errAfterShutdown is returned for requests arriving after shutdown.
var errAfterShutdown = errors.New("received request after shutdown")
