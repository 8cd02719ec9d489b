package vim

import (
	"github.com/dshills/chatvim/internal/engine/buffer"
	"github.com/dshills/chatvim/internal/input/key"
	"github.com/dshills/chatvim/internal/input/mode"
)

// handleInsert leaves Insert mode on the exit key and passes everything
// else back to the host.
func (e *Engine) handleInsert(text string, ev key.Event) Result {
	if !e.isExit(ev) {
		return Result{}
	}

	e.store.SetMode(mode.Normal)
	e.store.SetCursor(buffer.PrevRune(text, e.store.Cursor()))
	return Result{Consumed: true}
}

// enterInsert switches to Insert mode with the cursor at offset.
func (e *Engine) enterInsert(text string, offset int) {
	e.store.SetMode(mode.Insert)
	e.store.SetCursor(buffer.Clamp(text, offset))
}
