package lsp

import (
	"fmt"

	"icalls/internal/document"
	"icalls/internal/parser"
	"icalls/internal/value"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// diagnose runs a full-document pass: unknown property names, unknown
// parameter names, and value text that fails its property's value type
// all become warnings anchored to the offending span.
func (ls *Server) diagnose(text string) []protocol.Diagnostic {
	enc := ls.docs.Encoding()
	warning := protocol.DiagnosticSeverityWarning

	var diagnostics []protocol.Diagnostic
	for _, prop := range parser.Parse(text) {
		if prop.Resolved == nil {
			diagnostics = append(diagnostics, protocol.Diagnostic{
				Range:    spanRange(text, prop.Name, enc),
				Severity: &warning,
				Message:  fmt.Sprintf("Unknown property %q", prop.Name.Text),
			})
		} else if prop.Value != nil {
			if err := value.Check(prop.Resolved.ValueType, prop.Value.Text); err != nil {
				diagnostics = append(diagnostics, protocol.Diagnostic{
					Range:    spanRange(text, *prop.Value, enc),
					Severity: &warning,
					Message:  fmt.Sprintf("Failed to match expected type %s\n\n%s", prop.Resolved.ValueType, err),
				})
			}
		}

		for _, param := range prop.Params {
			if param.Resolved == nil {
				diagnostics = append(diagnostics, protocol.Diagnostic{
					Range:    spanRange(text, param.Name, enc),
					Severity: &warning,
					Message:  fmt.Sprintf("Unknown parameter %q", param.Name.Text),
				})
			}
		}
	}
	return diagnostics
}

// spanRange converts a parser span to a protocol range in the session's
// position encoding.
func spanRange(text string, span parser.Span, enc document.Encoding) protocol.Range {
	lineText := document.Line(text, span.Line)
	return protocol.Range{
		Start: protocol.Position{
			Line:      uint32(span.Line),
			Character: document.ColumnAt(lineText, span.Start, enc),
		},
		End: protocol.Position{
			Line:      uint32(span.Line),
			Character: document.ColumnAt(lineText, span.End, enc),
		},
	}
}
