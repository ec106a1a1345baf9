// Package parser splits raw document text into span-annotated property
// lines. The scanner is deliberately tolerant: a document that is mid-edit
// is almost always malformed, so missing names, dangling parameters, and
// absent values are captured as-is and judged later by the semantic
// layers.
package parser

import (
	"strings"

	"icalls/internal/schema"
)

// Span locates a token on a single line of the source text. Start and End
// are byte columns within that line, half-open.
type Span struct {
	Line  int
	Start int
	End   int
	Text  string
}

// Contains reports whether the byte column falls inside the span.
func (s Span) Contains(col int) bool {
	return col >= s.Start && col < s.End
}

// Param is one ;NAME=VALUE parameter of a property line. Value is nil
// when the line was cut off before the =.
type Param struct {
	Name     Span
	Resolved *schema.Parameter
	Value    *Span
}

// Property is one parsed property line. Resolved is nil when the name is
// not part of the property vocabulary; Value is nil when the line has no
// : part.
type Property struct {
	Name     Span
	Resolved *schema.Property
	Params   []Param
	Value    *Span
}

// Parse splits text into property lines. It never fails: malformed or
// truncated input yields properties with missing parts, and every branch
// of the scanner advances, so parsing always terminates.
func Parse(text string) []Property {
	var props []Property
	s := scanner{src: text}
	for !s.eof() {
		props = append(props, s.property())
	}
	return props
}

type scanner struct {
	src  string
	off  int
	line int
	col  int
}

func (s *scanner) eof() bool { return s.off >= len(s.src) }

func (s *scanner) peek() byte { return s.src[s.off] }

func (s *scanner) bump() {
	s.off++
	s.col++
}

func (s *scanner) property() Property {
	var p Property

	p.Name = s.scanUntil(";:\r\n")
	if r, ok := schema.PropertyByName(p.Name.Text); ok {
		p.Resolved = r
	}

	for !s.eof() && s.peek() == ';' {
		s.bump()
		var param Param
		param.Name = s.scanParamName()
		if r, ok := schema.ParameterByName(param.Name.Text); ok {
			param.Resolved = r
		}
		if !s.eof() && s.peek() == '=' {
			s.bump()
			v := s.scanUntil(";:\r\n")
			param.Value = &v
		}
		p.Params = append(p.Params, param)
	}

	if !s.eof() && s.peek() == ':' {
		s.bump()
		v := s.scanUntil("\r\n")
		p.Value = &v
	}

	s.lineEnding()
	return p
}

// scanUntil consumes up to (not including) the first byte in stop or the
// end of input, returning the consumed run as a span. The span may be
// empty.
func (s *scanner) scanUntil(stop string) Span {
	start := s.off
	startCol := s.col
	for !s.eof() && !strings.ContainsRune(stop, rune(s.peek())) {
		s.bump()
	}
	return Span{
		Line:  s.line,
		Start: startCol,
		End:   s.col,
		Text:  s.src[start:s.off],
	}
}

// scanParamName consumes a run of alphabetic characters and dashes.
func (s *scanner) scanParamName() Span {
	start := s.off
	startCol := s.col
	for !s.eof() && isParamNameByte(s.peek()) {
		s.bump()
	}
	return Span{
		Line:  s.line,
		Start: startCol,
		End:   s.col,
		Text:  s.src[start:s.off],
	}
}

// lineEnding consumes a \r, \n, or \r\n terminator if present.
func (s *scanner) lineEnding() {
	terminated := false
	if !s.eof() && s.peek() == '\r' {
		s.off++
		terminated = true
	}
	if !s.eof() && s.peek() == '\n' {
		s.off++
		terminated = true
	}
	if terminated {
		s.line++
		s.col = 0
	}
}

func isParamNameByte(b byte) bool {
	return b == '-' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
