package lsp

import "icalls/internal/parser"

type targetKind int

const (
	targetNone targetKind = iota
	targetName
	targetParamName
	targetValue
)

// target identifies the syntactic element enclosing a cursor position.
type target struct {
	kind     targetKind
	property *parser.Property
	param    *parser.Param
	span     parser.Span
}

// locate maps a (line, byte column) coordinate to the enclosing span.
// Properties are line-ordered, so the scan stops at the first property
// past the query line. Within a property the name, then each parameter
// name, then the value is tested left to right.
func locate(props []parser.Property, line, col int) target {
	for i := range props {
		prop := &props[i]
		if prop.Name.Line < line {
			continue
		}
		if prop.Name.Line > line {
			break
		}

		if prop.Name.Contains(col) {
			return target{kind: targetName, property: prop, span: prop.Name}
		}
		for j := range prop.Params {
			param := &prop.Params[j]
			if param.Name.Contains(col) {
				return target{kind: targetParamName, property: prop, param: param, span: param.Name}
			}
		}
		if prop.Value != nil && prop.Value.Contains(col) {
			return target{kind: targetValue, property: prop, span: *prop.Value}
		}
	}
	return target{kind: targetNone}
}
