package lsp

import (
	"strings"

	"icalls/internal/document"
	"icalls/internal/parser"
	"icalls/internal/schema"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const completionLimit = 100

// Completion item data tags, round-tripped through the client so resolve
// knows which vocabulary to consult.
const (
	completionKindProperty  = "property"
	completionKindParameter = "parameter"
)

func (ls *Server) textDocumentCompletion(context *glsp.Context, params *protocol.CompletionParams) (any, error) {
	if ls.stopping {
		return nil, errAfterShutdown
	}
	if !ls.completionEnabled {
		return nil, nil
	}

	text, err := ls.docs.Text(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	// Look one column left of the cursor so completion fires while the
	// word is still being typed.
	character := uint32(params.Position.Character)
	if character > 0 {
		character--
	}

	enc := ls.docs.Encoding()
	line := int(params.Position.Line)
	col := document.ByteColumn(document.Line(text, line), character, enc)

	t := locate(parser.Parse(text), line, col)

	switch t.kind {
	case targetName:
		partial := strings.ToLower(t.span.Text[:col-t.span.Start])
		var items []protocol.CompletionItem
		for _, p := range schema.Properties() {
			if len(items) == completionLimit {
				break
			}
			if matchesKeywords(p.Keywords, partial) {
				items = append(items, completionItem(p.Name, completionKindProperty))
			}
		}
		return protocol.CompletionList{
			IsIncomplete: len(items) == completionLimit,
			Items:        items,
		}, nil

	case targetParamName:
		partial := strings.ToLower(t.span.Text[:col-t.span.Start])
		var items []protocol.CompletionItem
		for _, p := range schema.Parameters() {
			if len(items) == completionLimit {
				break
			}
			if matchesKeywords(p.Keywords, partial) {
				items = append(items, completionItem(p.Name, completionKindParameter))
			}
		}
		return protocol.CompletionList{
			IsIncomplete: len(items) == completionLimit,
			Items:        items,
		}, nil
	}

	return nil, nil
}

func matchesKeywords(keywords []string, partial string) bool {
	for _, kw := range keywords {
		if strings.Contains(kw, partial) {
			return true
		}
	}
	return false
}

func completionItem(label, kind string) protocol.CompletionItem {
	itemKind := protocol.CompletionItemKindText
	return protocol.CompletionItem{
		Label: label,
		Kind:  &itemKind,
		Data:  kind,
	}
}

// completionItemResolve attaches the full documentation to a candidate,
// deferred from the initial list so that list stays cheap.
func (ls *Server) completionItemResolve(context *glsp.Context, params *protocol.CompletionItem) (*protocol.CompletionItem, error) {
	if ls.stopping {
		return nil, errAfterShutdown
	}

	kind, _ := params.Data.(string)

	var documentation string
	switch kind {
	case completionKindProperty:
		if p, ok := schema.PropertyByName(params.Label); ok {
			documentation = renderProperty(p)
		}
	case completionKindParameter:
		if p, ok := schema.ParameterByName(params.Label); ok {
			documentation = renderParameter(p)
		}
	}

	if documentation != "" {
		params.Documentation = protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: documentation,
		}
	}
	return params, nil
}
