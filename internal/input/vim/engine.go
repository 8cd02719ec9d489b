package vim

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/dshills/chatvim/internal/clipboard"
	"github.com/dshills/chatvim/internal/engine/buffer"
	"github.com/dshills/chatvim/internal/input/key"
	"github.com/dshills/chatvim/internal/input/mode"
)

// Host owns the text being edited.
type Host interface {
	// Text returns the current text.
	Text() string

	// Commit replaces the text.
	Commit(text string)
}

// Result reports how the engine handled a key.
type Result struct {
	// Consumed is false when the host should treat the key as literal
	// input. Only Insert mode passes keys through.
	Consumed bool

	// Committed is true when the engine replaced the host text.
	Committed bool

	// Command names the command completed by this key, if any.
	Command string
}

// Engine dispatches key events against a Store.
type Engine struct {
	id      string
	host    Host
	store   *Store
	exitKey key.Event
	logger  *log.Logger
}

// New creates an engine editing host's text.
func New(host Host, opts ...Option) *Engine {
	e := &Engine{
		id:     uuid.NewString(),
		host:   host,
		store:  NewStore(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.logger = e.logger.With("surface", e.id)
	e.store.Registers().SetLogger(e.logger)
	e.store.SetCursor(buffer.Clamp(host.Text(), e.store.Cursor()))
	return e
}

// ID returns the surface identifier.
func (e *Engine) ID() string {
	return e.id
}

// Store returns the engine state.
func (e *Engine) Store() *Store {
	return e.store
}

// Mode returns the active mode.
func (e *Engine) Mode() mode.Mode {
	return e.store.Mode()
}

// State returns a snapshot of the engine state.
func (e *Engine) State() State {
	return e.store.Snapshot()
}

// SetExitKey replaces the additional mode-exit key.
func (e *Engine) SetExitKey(ev key.Event) {
	e.exitKey = ev
}

// SetClipboard replaces the clipboard used by the + and * registers.
func (e *Engine) SetClipboard(cb clipboard.Clipboard) {
	e.store.Registers().SetClipboard(cb)
}

// SetDefaultRegister changes the register used by y and p.
func (e *Engine) SetDefaultRegister(name rune) {
	e.store.SetDefaultRegister(name)
}

// SyncCursor moves the cursor after the host edited the text itself.
func (e *Engine) SyncCursor(offset int) {
	e.store.SetCursor(buffer.Clamp(e.host.Text(), offset))
}

// Reset returns to Normal mode with the cursor at the start of the text.
func (e *Engine) Reset() {
	e.store.SetMode(mode.Normal)
	e.store.SetCursor(0)
}

// Handle processes one key event.
func (e *Engine) Handle(ev key.Event) Result {
	text := e.host.Text()
	e.clamp(text)

	var res Result
	switch m := e.store.Mode(); m {
	case mode.Normal:
		res = e.handleNormal(text, ev)
	case mode.Insert:
		res = e.handleInsert(text, ev)
	case mode.Visual, mode.VisualLine:
		res = e.handleVisual(text, ev)
	default:
		e.logger.Warn("unknown mode, resetting", "mode", m)
		e.store.SetMode(mode.Normal)
		res = Result{Consumed: true}
	}

	if res.Command != "" {
		e.store.ExecuteCommand(res.Command)
		e.logger.Debug("command",
			"cmd", res.Command,
			"mode", e.store.Mode(),
			"cursor", e.store.Cursor(),
		)
	}
	return res
}

// clamp keeps the cursor and selection valid after external text changes.
func (e *Engine) clamp(text string) {
	e.store.SetCursor(buffer.Clamp(text, e.store.Cursor()))
	if sel, ok := e.store.Selection(); ok {
		sel = sel.Clamp(text)
		e.store.SetSelection(&sel)
	}
}

// isExit reports whether ev leaves the current mode.
func (e *Engine) isExit(ev key.Event) bool {
	if ev.IsEscape() {
		return true
	}
	return e.exitKey.Key != key.KeyNone && ev.Equals(e.exitKey)
}

// commit replaces the host text.
func (e *Engine) commit(text string, res *Result) {
	e.host.Commit(text)
	res.Committed = true
}
