package vim

import (
	"strings"

	"github.com/dshills/chatvim/internal/engine/buffer"
	"github.com/dshills/chatvim/internal/engine/motion"
	"github.com/dshills/chatvim/internal/input/key"
)

// handlePending completes an operator waiting for its operand. The
// command buffer is cleared whether or not the operand is valid.
func (e *Engine) handlePending(text string, cursor int, ev key.Event) Result {
	res := Result{Consumed: true}
	pending := e.store.CommandBuffer()
	e.store.ClearCommandBuffer()

	if pending != "y" {
		return res
	}

	r := ev.Char()
	if r == 'y' {
		line := buffer.Range{
			Start: buffer.LineStart(text, cursor),
			End:   buffer.LineEndInclusive(text, cursor),
		}
		e.store.Yank(buffer.Slice(text, line))
		res.Command = "yy"
		return res
	}

	if m, ok := motion.Lookup(r); ok {
		target := m.Apply(text, cursor)
		e.store.Yank(buffer.Slice(text, buffer.NewRange(cursor, target)))
		res.Command = "y" + string(r)
	}
	return res
}

// put pastes the default register after or before the cursor. Content
// containing a newline is pasted line-wise.
func (e *Engine) put(text string, cursor int, after bool) Result {
	res := Result{Consumed: true}
	content := e.store.Paste()
	if content == "" {
		return res
	}

	res.Command = "P"
	if after {
		res.Command = "p"
	}

	if strings.Contains(content, "\n") {
		text, cursor = putLines(text, cursor, content, after)
	} else {
		at := cursor
		if after {
			at = buffer.NextRune(text, cursor)
		}
		text = buffer.Insert(text, at, content)
		cursor = buffer.PrevRune(text, at+len(content))
	}

	e.commit(text, &res)
	e.store.SetCursor(buffer.Clamp(text, cursor))
	return res
}

// putLines inserts content as whole lines below or above the cursor line
// and returns the new text with the offset of the first pasted line.
func putLines(text string, cursor int, content string, after bool) (string, int) {
	if !after {
		at := buffer.LineStart(text, cursor)
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		return buffer.Insert(text, at, content), at
	}

	end := buffer.LineEnd(text, cursor)
	if end < len(text) {
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		return buffer.Insert(text, end+1, content), end + 1
	}

	// Last line without a newline: add a separator and drop the pasted one.
	content = "\n" + strings.TrimSuffix(content, "\n")
	return buffer.Insert(text, end, content), end + 1
}
