// Package schema holds the static property and parameter vocabulary of
// the iCalendar format: for each name, its metadata and the value type
// its value text must satisfy. The tables are read-only after process
// start.
package schema

import (
	"strings"

	"icalls/internal/value"
)

// Property describes one member of the closed property vocabulary.
type Property struct {
	Name        string
	Purpose     string
	ValueType   value.Type
	Description string
	Examples    []string
	Keywords    []string
}

// Parameter describes one member of the closed parameter vocabulary.
type Parameter struct {
	Name        string
	Purpose     string
	ValueType   value.Type
	Description string
	Examples    []string
	Keywords    []string
}

var (
	propertyIndex  = make(map[string]*Property, len(properties))
	parameterIndex = make(map[string]*Parameter, len(parameters))
)

func init() {
	for _, p := range properties {
		propertyIndex[strings.ToLower(p.Name)] = p
	}
	for _, p := range parameters {
		parameterIndex[strings.ToLower(p.Name)] = p
	}
}

// Properties returns the full property vocabulary in table order.
func Properties() []*Property { return properties }

// Parameters returns the full parameter vocabulary in table order.
func Parameters() []*Parameter { return parameters }

// PropertyByName resolves a property name case-insensitively.
func PropertyByName(name string) (*Property, bool) {
	p, ok := propertyIndex[strings.ToLower(name)]
	return p, ok
}

// ParameterByName resolves a parameter name case-insensitively.
func ParameterByName(name string) (*Parameter, bool) {
	p, ok := parameterIndex[strings.ToLower(name)]
	return p, ok
}
