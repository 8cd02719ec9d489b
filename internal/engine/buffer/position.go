package buffer

import (
	"fmt"
	"unicode/utf8"
)

// ByteOffset represents a byte position in a text snapshot.
type ByteOffset = int

// Point represents a line and column position.
// Both Line and Column are 0-indexed.
// Column is measured in runes from the start of the line.
type Point struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Clamp restricts offset to [0, len(text)] and moves it back to the start
// of the rune it falls inside.
func Clamp(text string, offset ByteOffset) ByteOffset {
	if offset <= 0 {
		return 0
	}
	if offset >= len(text) {
		return len(text)
	}
	for offset > 0 && !utf8.RuneStart(text[offset]) {
		offset--
	}
	return offset
}

// PrevRune returns the offset of the rune before offset, or 0.
func PrevRune(text string, offset ByteOffset) ByteOffset {
	offset = Clamp(text, offset)
	if offset == 0 {
		return 0
	}
	_, size := utf8.DecodeLastRuneInString(text[:offset])
	return offset - size
}

// NextRune returns the offset just past the rune at offset, or len(text).
func NextRune(text string, offset ByteOffset) ByteOffset {
	offset = Clamp(text, offset)
	if offset >= len(text) {
		return len(text)
	}
	_, size := utf8.DecodeRuneInString(text[offset:])
	return offset + size
}

// Column returns the number of runes between the start of the line
// containing offset and offset itself.
func Column(text string, offset ByteOffset) int {
	offset = Clamp(text, offset)
	return utf8.RuneCountInString(text[LineStart(text, offset):offset])
}

// OffsetForColumn walks col runes forward from lineStart, stopping early at
// the end of that line. The result never crosses the line's newline.
func OffsetForColumn(text string, lineStart ByteOffset, col int) ByteOffset {
	lineStart = Clamp(text, lineStart)
	end := LineEnd(text, lineStart)
	offset := lineStart
	for i := 0; i < col && offset < end; i++ {
		_, size := utf8.DecodeRuneInString(text[offset:])
		offset += size
	}
	return offset
}

// PointAt converts an offset into a line/column point.
func PointAt(text string, offset ByteOffset) Point {
	offset = Clamp(text, offset)
	line := 0
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
		}
	}
	return Point{Line: line, Column: Column(text, offset)}
}
