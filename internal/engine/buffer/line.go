package buffer

import "strings"

// LineStart returns the offset of the first byte of the line containing offset.
func LineStart(text string, offset ByteOffset) ByteOffset {
	offset = Clamp(text, offset)
	return strings.LastIndexByte(text[:offset], '\n') + 1
}

// LineEnd returns the offset of the newline terminating the line containing
// offset, or len(text) on the last line.
func LineEnd(text string, offset ByteOffset) ByteOffset {
	offset = Clamp(text, offset)
	if i := strings.IndexByte(text[offset:], '\n'); i >= 0 {
		return offset + i
	}
	return len(text)
}

// LineEndInclusive is LineEnd plus the trailing newline when the line has one.
func LineEndInclusive(text string, offset ByteOffset) ByteOffset {
	end := LineEnd(text, offset)
	if end < len(text) {
		return end + 1
	}
	return end
}

// LineRange returns the range of the line containing offset, excluding its
// newline.
func LineRange(text string, offset ByteOffset) Range {
	return Range{Start: LineStart(text, offset), End: LineEnd(text, offset)}
}

// HasNewline reports whether the line containing offset ends with '\n'.
func HasNewline(text string, offset ByteOffset) bool {
	return LineEnd(text, offset) < len(text)
}

// IsLastLine reports whether offset is on the final line of text.
func IsLastLine(text string, offset ByteOffset) bool {
	return LineEnd(text, offset) == len(text)
}

// IsFirstLine reports whether offset is on the first line of text.
func IsFirstLine(text string, offset ByteOffset) bool {
	return LineStart(text, offset) == 0
}
