package app

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/chatvim/internal/engine/buffer"
)

// row is one screen row of wrapped text, as a byte range of the source.
type row struct {
	start int
	end   int
}

// wrapText splits text into rows no wider than width cells. Every line
// yields at least one row, so an empty text has one empty row.
func wrapText(text string, width int) []row {
	if width < 1 {
		width = 1
	}

	var rows []row
	start := 0
	for {
		end := buffer.LineEnd(text, start)
		rowStart, w := start, 0
		for i, r := range text[start:end] {
			rw := runewidth.RuneWidth(r)
			if w+rw > width && w > 0 {
				rows = append(rows, row{start: rowStart, end: start + i})
				rowStart, w = start+i, 0
			}
			w += rw
		}
		rows = append(rows, row{start: rowStart, end: end})

		if end >= len(text) {
			return rows
		}
		start = end + 1
	}
}

// caretCell returns the row index and cell column of offset within rows.
// An offset on a wrap boundary belongs to the following row.
func caretCell(text string, rows []row, offset int) (x, y int) {
	offset = buffer.Clamp(text, offset)
	for i, r := range rows {
		if offset < r.start || offset > r.end {
			continue
		}
		y = i
		if offset == r.end && i+1 < len(rows) && rows[i+1].start == offset {
			continue
		}
		break
	}
	r := rows[y]
	return runewidth.StringWidth(text[r.start:offset]), y
}

// scrollOffset returns the first visible row so that the caret row stays
// within a window of height rows.
func scrollOffset(caretRow, height int) int {
	if height < 1 || caretRow < height {
		return 0
	}
	return caretRow - height + 1
}

// wrapTranscript wraps each message with a prompt prefix and returns the
// rendered lines.
func wrapTranscript(messages []string, width int) []string {
	const prefix = "› "
	var lines []string
	for _, msg := range messages {
		text := prefix + msg
		for i, r := range wrapText(text, width) {
			line := text[r.start:r.end]
			if i > 0 && r.start > 0 && text[r.start-1] == '\n' {
				line = "  " + line
			}
			lines = append(lines, line)
		}
	}
	return lines
}
