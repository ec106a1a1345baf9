package lsp

import (
	"icalls/internal/document"
	"icalls/internal/parser"
	"icalls/internal/value"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (ls *Server) textDocumentHover(context *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	if ls.stopping {
		return nil, errAfterShutdown
	}
	if !ls.hoverEnabled {
		return nil, nil
	}

	text, err := ls.docs.Text(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	enc := ls.docs.Encoding()
	line := int(params.Position.Line)
	col := document.ByteColumn(document.Line(text, line), uint32(params.Position.Character), enc)

	t := locate(parser.Parse(text), line, col)

	var content string
	switch t.kind {
	case targetName:
		if t.property.Resolved == nil {
			return nil, nil
		}
		content = renderProperty(t.property.Resolved)
	case targetParamName:
		if t.param.Resolved == nil {
			return nil, nil
		}
		content = renderParameter(t.param.Resolved)
	case targetValue:
		if t.property.Resolved == nil {
			return nil, nil
		}
		// A value that fails its type check hovers as the failure
		// reason, doubling as inline documentation.
		v, err := value.Parse(t.property.Resolved.ValueType, t.span.Text)
		if err != nil {
			content = err.Error()
		} else {
			content = v.Prettify()
		}
	default:
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: content,
		},
	}, nil
}
