package lsp

import (
	"fmt"
	"strings"

	"icalls/internal/schema"
	"icalls/internal/value"
)

// renderProperty renders a property's registry entry as markdown for
// hover and completion documentation.
func renderProperty(p *schema.Property) string {
	return renderEntry(p.Name, p.ValueType, p.Purpose, p.Examples)
}

// renderParameter renders a parameter's registry entry as markdown.
func renderParameter(p *schema.Parameter) string {
	return renderEntry(p.Name, p.ValueType, p.Purpose, p.Examples)
}

func renderEntry(name string, vt value.Type, purpose string, examples []string) string {
	blocks := []string{
		"# " + name,
		fmt.Sprintf("_%s_", vt),
		purpose,
	}
	if len(examples) > 0 {
		lines := []string{"## Examples\n"}
		for _, example := range examples {
			lines = append(lines, "- "+example)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}
