// Package vim implements a Vim-style modal editing engine for a single-line
// or multi-line text input such as a chat box.
//
// The engine is made of two cooperating parts:
//
//   - Store: the authoritative editing state for one editor surface. It owns
//     the active mode, cursor offset, optional selection, the transient
//     command buffer and the registers. It is a plain value container with
//     explicit mutators and no hidden globals.
//   - Engine: the command dispatcher. Given a key event it reads the current
//     mode from the Store, dispatches to the handler for that mode, computes
//     cursor motions (see package motion) and buffer mutations, and writes
//     the results back through the Store.
//
// The host owns the text. The engine reads it through Host.Text and requests
// replacements through Host.Commit; it never mutates text in place.
//
// # Modes
//
// Normal mode treats every key as a motion or command:
//
//	h l j k        character and line motions
//	w b e          word motions
//	0 $            line start / line end
//	i I a A o O    enter Insert mode
//	v V            enter Visual / VisualLine mode
//	y{motion} yy   yank
//	p P            paste after / before
//
// Insert mode passes every key back to the host (Result.Passthrough) except
// the mode-exit key, which returns to Normal and steps the cursor left.
//
// Visual and VisualLine modes extend a selection with motions and act on it
// with y (yank) and d (delete).
//
// # Registers
//
// Every yank writes the target register, the unnamed register (") and the
// last-yank register (0). The "+" and "*" registers additionally mirror the
// text to the platform clipboard on a best-effort basis; failures are logged
// and never reach the editing flow.
//
// # Concurrency
//
// The engine is synchronous and single threaded. Each key event is handled
// to completion before the next one; hosts must deliver events from one
// goroutine.
//
// # Usage
//
//	eng := vim.New(box, vim.WithLogger(logger))
//	res := eng.Handle(key.FromHost("w", false, false))
//	if res.Passthrough {
//	    // Insert mode: type the key into the host text.
//	}
//	st := eng.State() // mode, cursor, selection, pending command
package vim
