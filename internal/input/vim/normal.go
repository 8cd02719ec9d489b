package vim

import (
	"github.com/dshills/chatvim/internal/engine/buffer"
	"github.com/dshills/chatvim/internal/engine/motion"
	"github.com/dshills/chatvim/internal/input/key"
	"github.com/dshills/chatvim/internal/input/mode"
)

// handleNormal runs Normal mode commands. Every key is consumed.
func (e *Engine) handleNormal(text string, ev key.Event) Result {
	res := Result{Consumed: true}
	cursor := e.store.Cursor()

	if e.isExit(ev) {
		e.store.ClearCommandBuffer()
		return res
	}

	if e.store.CommandBuffer() != "" {
		return e.handlePending(text, cursor, ev)
	}

	r := ev.Char()
	if m, ok := motion.Lookup(r); ok {
		e.store.SetCursor(m.Apply(text, cursor))
		return res
	}

	switch r {
	case 'i':
		e.enterInsert(text, cursor)
	case 'I':
		e.enterInsert(text, buffer.LineStart(text, cursor))
	case 'a':
		e.enterInsert(text, buffer.NextRune(text, cursor))
	case 'A':
		e.enterInsert(text, buffer.LineEnd(text, cursor))
	case 'o':
		at := buffer.LineEnd(text, cursor)
		text = buffer.Insert(text, at, "\n")
		e.commit(text, &res)
		e.enterInsert(text, at+1)
		res.Command = "o"
	case 'O':
		at := buffer.LineStart(text, cursor)
		text = buffer.Insert(text, at, "\n")
		e.commit(text, &res)
		e.enterInsert(text, at)
		res.Command = "O"
	case 'v':
		e.enterVisual(text, mode.Visual, cursor)
	case 'V':
		e.enterVisual(text, mode.VisualLine, cursor)
	case 'y':
		e.store.AppendToCommandBuffer(r)
	case 'p':
		return e.put(text, cursor, true)
	case 'P':
		return e.put(text, cursor, false)
	}
	return res
}
