package vim

import (
	"github.com/dshills/chatvim/internal/engine/buffer"
	"github.com/dshills/chatvim/internal/engine/motion"
	"github.com/dshills/chatvim/internal/input/key"
	"github.com/dshills/chatvim/internal/input/mode"
)

// enterVisual starts a selection anchored at cursor.
func (e *Engine) enterVisual(text string, m mode.Mode, cursor int) {
	e.store.SetMode(m)
	e.store.SetAnchor(cursor)
	e.updateSelection(text)
}

// updateSelection recomputes the selection from the anchor to the cursor.
// VisualLine snaps it to whole lines, excluding the last newline.
func (e *Engine) updateSelection(text string) {
	sel := buffer.NewRange(e.store.Anchor(), e.store.Cursor()).Clamp(text)
	if e.store.Mode() == mode.VisualLine {
		sel = buffer.Range{
			Start: buffer.LineStart(text, sel.Start),
			End:   buffer.LineEnd(text, sel.End),
		}
	}
	e.store.SetSelection(&sel)
}

// handleVisual runs Visual and VisualLine commands.
func (e *Engine) handleVisual(text string, ev key.Event) Result {
	res := Result{Consumed: true}
	current := e.store.Mode()

	if e.isExit(ev) {
		e.store.SetMode(mode.Normal)
		return res
	}

	sel, ok := e.store.Selection()
	if !ok {
		e.store.SetAnchor(e.store.Cursor())
		e.updateSelection(text)
		sel, _ = e.store.Selection()
	}

	r := ev.Char()
	if m, ok := motion.Lookup(r); ok {
		e.store.SetCursor(m.Apply(text, e.store.Cursor()))
		e.updateSelection(text)
		return res
	}

	switch r {
	case 'y':
		span := sel
		if current == mode.VisualLine {
			span.End = buffer.LineEndInclusive(text, sel.End)
		}
		e.store.Yank(buffer.Slice(text, span))
		e.store.SetMode(mode.Normal)
		e.store.SetCursor(sel.Start)
		res.Command = "y"
	case 'd':
		text = buffer.Delete(text, sel)
		e.commit(text, &res)
		e.store.SetMode(mode.Normal)
		e.store.SetCursor(buffer.Clamp(text, sel.Start))
		res.Command = "d"
	case 'v', 'V':
		next := mode.Visual
		if r == 'V' {
			next = mode.VisualLine
		}
		if next == current {
			e.store.SetMode(mode.Normal)
			break
		}
		e.store.SetMode(next)
		e.updateSelection(text)
	}
	return res
}
