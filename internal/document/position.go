package document

import "strings"

// Encoding selects the unit used for protocol column offsets. The choice
// is negotiated once at session start and every consumer of columns must
// use the same one.
type Encoding int

const (
	EncodingUTF16 Encoding = iota
	EncodingUTF8
)

func (e Encoding) String() string {
	if e == EncodingUTF8 {
		return "utf-8"
	}
	return "utf-16"
}

// Line returns the nth 0-based line of text without its terminator.
func Line(text string, n int) string {
	for ; n > 0; n-- {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			return ""
		}
		text = text[i+1:]
	}
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSuffix(text, "\r")
}

// PositionToOffset converts a protocol position to a byte offset into
// text. Positions past the end of a line or of the document are clamped.
func PositionToOffset(text string, pos Position, enc Encoding) int {
	lineStart := 0
	for line := uint32(0); line < pos.Line; line++ {
		i := strings.IndexByte(text[lineStart:], '\n')
		if i < 0 {
			return len(text)
		}
		lineStart += i + 1
	}
	lineText := text[lineStart:]
	if i := strings.IndexByte(lineText, '\n'); i >= 0 {
		lineText = lineText[:i]
	}
	lineText = strings.TrimSuffix(lineText, "\r")
	return lineStart + ByteColumn(lineText, pos.Character, enc)
}

// ByteColumn converts a protocol column to a byte column within a line.
func ByteColumn(lineText string, character uint32, enc Encoding) int {
	if enc == EncodingUTF8 {
		if int(character) > len(lineText) {
			return len(lineText)
		}
		return int(character)
	}
	units := uint32(0)
	for i, r := range lineText {
		if units >= character {
			return i
		}
		units += utf16Len(r)
	}
	return len(lineText)
}

// ColumnAt converts a byte column within a line to a protocol column.
func ColumnAt(lineText string, byteCol int, enc Encoding) uint32 {
	if byteCol > len(lineText) {
		byteCol = len(lineText)
	}
	if enc == EncodingUTF8 {
		return uint32(byteCol)
	}
	units := uint32(0)
	for i, r := range lineText {
		if i >= byteCol {
			break
		}
		units += utf16Len(r)
	}
	return units
}

func utf16Len(r rune) uint32 {
	if r >= 0x10000 {
		return 2
	}
	return 1
}
