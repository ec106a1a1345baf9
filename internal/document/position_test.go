package document

import "testing"

func TestLine(t *testing.T) {
	text := "first\r\nsecond\nthird"
	tests := []struct {
		n    int
		want string
	}{
		{0, "first"},
		{1, "second"},
		{2, "third"},
		{3, ""},
	}

	for _, tt := range tests {
		if got := Line(text, tt.n); got != tt.want {
			t.Errorf("Line(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestByteColumnASCII(t *testing.T) {
	// For pure ASCII both encodings agree.
	line := "DTSTART:20221008"
	for _, enc := range []Encoding{EncodingUTF16, EncodingUTF8} {
		if got := ByteColumn(line, 7, enc); got != 7 {
			t.Errorf("%s: ByteColumn = %d, want 7", enc, got)
		}
	}
}

func TestByteColumnUTF16(t *testing.T) {
	// é is 2 bytes in UTF-8, 1 UTF-16 unit. 🎂 is 4 bytes, 2 units.
	tests := []struct {
		line      string
		character uint32
		want      int
	}{
		{"Café:x", 4, 4},
		{"Café:x", 5, 6}, // after é: byte 6
		{"\U0001f382:x", 2, 4},
		{"\U0001f382:x", 3, 5},
		{"abc", 99, 3}, // clamped
	}

	for _, tt := range tests {
		if got := ByteColumn(tt.line, tt.character, EncodingUTF16); got != tt.want {
			t.Errorf("ByteColumn(%q, %d) = %d, want %d", tt.line, tt.character, got, tt.want)
		}
	}
}

func TestByteColumnUTF8(t *testing.T) {
	if got := ByteColumn("Café:x", 6, EncodingUTF8); got != 6 {
		t.Errorf("ByteColumn = %d, want 6", got)
	}
	if got := ByteColumn("abc", 99, EncodingUTF8); got != 3 {
		t.Errorf("ByteColumn clamp = %d, want 3", got)
	}
}

func TestColumnAt(t *testing.T) {
	line := "\U0001f382:x"
	if got := ColumnAt(line, 4, EncodingUTF16); got != 2 {
		t.Errorf("ColumnAt utf-16 = %d, want 2", got)
	}
	if got := ColumnAt(line, 4, EncodingUTF8); got != 4 {
		t.Errorf("ColumnAt utf-8 = %d, want 4", got)
	}
	if got := ColumnAt("abc", 99, EncodingUTF8); got != 3 {
		t.Errorf("ColumnAt clamp = %d, want 3", got)
	}
}

func TestPositionToOffset(t *testing.T) {
	text := "BEGIN:VCALENDAR\r\nVERSION:2.0\nEND:VCALENDAR\n"
	tests := []struct {
		pos  Position
		want int
	}{
		{Position{0, 0}, 0},
		{Position{0, 6}, 6},
		{Position{1, 0}, 17},
		{Position{1, 8}, 25},
		{Position{2, 4}, 33},
		{Position{0, 999}, 15}, // clamped before the \r\n
		{Position{99, 0}, len(text)},
	}

	for _, tt := range tests {
		if got := PositionToOffset(text, tt.pos, EncodingUTF16); got != tt.want {
			t.Errorf("PositionToOffset(%v) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestEncodingString(t *testing.T) {
	if EncodingUTF16.String() != "utf-16" || EncodingUTF8.String() != "utf-8" {
		t.Error("encoding names wrong")
	}
}
