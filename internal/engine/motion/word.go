package motion

import (
	"unicode"
	"unicode/utf8"

	"github.com/dshills/chatvim/internal/engine/buffer"
)

// WordForward moves to the start of the next word: it skips the rest of the
// current run of non-whitespace, then the run of whitespace after it.
// At the end of the text it stays at len(text).
func WordForward(text string, cursor int) int {
	offset := buffer.Clamp(text, cursor)
	offset = skipForward(text, offset, false)
	return skipForward(text, offset, true)
}

// WordBackward moves to the start of the previous word: it skips whitespace
// backward, then the run of non-whitespace before it.
func WordBackward(text string, cursor int) int {
	offset := buffer.Clamp(text, cursor)
	offset = skipBackward(text, offset, true)
	return skipBackward(text, offset, false)
}

// WordEnd moves to the last rune of the current or next word. It starts one
// rune past the cursor so repeated presses advance. When no word remains the
// result is len(text).
func WordEnd(text string, cursor int) int {
	offset := buffer.NextRune(text, cursor)
	offset = skipForward(text, offset, true)
	if offset >= len(text) {
		return len(text)
	}
	offset = skipForward(text, offset, false)
	return buffer.PrevRune(text, offset)
}

// skipForward advances past runes whose whitespace-ness equals space.
func skipForward(text string, offset int, space bool) int {
	for offset < len(text) {
		r, size := utf8.DecodeRuneInString(text[offset:])
		if unicode.IsSpace(r) != space {
			break
		}
		offset += size
	}
	return offset
}

// skipBackward retreats past runes whose whitespace-ness equals space.
func skipBackward(text string, offset int, space bool) int {
	for offset > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:offset])
		if unicode.IsSpace(r) != space {
			break
		}
		offset -= size
	}
	return offset
}
