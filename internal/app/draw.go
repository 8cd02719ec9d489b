package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/chatvim/internal/input/mode"
)

// maxInputRows is the tallest the input box grows before scrolling.
const maxInputRows = 5

var (
	styleDefault   = tcell.StyleDefault
	styleSelection = tcell.StyleDefault.Reverse(true)
	styleStatus    = tcell.StyleDefault.Reverse(true)
	styleSeparator = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleMessage   = tcell.StyleDefault.Foreground(tcell.ColorTeal)
)

// draw renders the whole screen.
func (app *Application) draw() {
	s := app.screen
	s.Clear()

	width, height := s.Size()
	if width < 1 || height < 3 {
		s.Show()
		return
	}

	st := app.box.State()
	rows := wrapText(st.Text, width)
	caretX, caretY := caretCell(st.Text, rows, st.Caret)

	inputRows := min(len(rows), maxInputRows, height-2)
	statusY := height - 1
	inputTop := statusY - inputRows
	separatorY := inputTop - 1

	// Transcript, bottom-aligned above the separator.
	lines := wrapTranscript(app.transcript, width)
	if separatorY > 0 {
		first := max(0, len(lines)-separatorY)
		for i, line := range lines[first:] {
			drawText(s, 0, i, width, styleMessage, line)
		}
	}
	if separatorY >= 0 {
		for x := 0; x < width; x++ {
			s.SetContent(x, separatorY, '─', nil, styleSeparator)
		}
	}

	// Input box.
	top := scrollOffset(caretY, inputRows)
	for i := 0; i < inputRows && top+i < len(rows); i++ {
		r := rows[top+i]
		x := 0
		for off, ch := range st.Text[r.start:r.end] {
			style := styleDefault
			if sel := st.Vim.Selection; st.VimEnabled && sel != nil && sel.Contains(r.start+off) {
				style = styleSelection
			}
			s.SetContent(x, inputTop+i, ch, nil, style)
			x += runewidth.RuneWidth(ch)
		}
	}

	// Status line.
	left, right := app.statusText()
	for x := 0; x < width; x++ {
		s.SetContent(x, statusY, ' ', nil, styleStatus)
	}
	drawText(s, 0, statusY, width, styleStatus, left)
	rx := width - runewidth.StringWidth(right)
	if rx > runewidth.StringWidth(left) {
		drawText(s, rx, statusY, width, styleStatus, right)
	}

	// Caret.
	cursorStyle := tcell.CursorStyleSteadyBar
	if st.VimEnabled && st.Vim.Mode.CursorStyle() == mode.CursorBlock {
		cursorStyle = tcell.CursorStyleSteadyBlock
	}
	s.SetCursorStyle(cursorStyle)
	s.ShowCursor(min(caretX, width-1), inputTop+caretY-top)

	s.Show()
}

// drawText writes str starting at (x, y), clipped at maxX.
func drawText(s tcell.Screen, x, y, maxX int, style tcell.Style, str string) int {
	for _, r := range str {
		w := runewidth.RuneWidth(r)
		if x+w > maxX {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}
