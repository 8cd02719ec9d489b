package vim

import (
	"github.com/charmbracelet/log"

	"github.com/dshills/chatvim/internal/clipboard"
	"github.com/dshills/chatvim/internal/input/key"
	"github.com/dshills/chatvim/internal/input/mode"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClipboard sets the clipboard that mirrors the + and * registers.
func WithClipboard(cb clipboard.Clipboard) Option {
	return func(e *Engine) {
		e.store.Registers().SetClipboard(cb)
	}
}

// WithExitKey adds a key that leaves Insert and Visual modes in addition
// to Escape.
func WithExitKey(ev key.Event) Option {
	return func(e *Engine) {
		e.exitKey = ev
	}
}

// WithRegister sets the default register for yank and paste.
func WithRegister(name rune) Option {
	return func(e *Engine) {
		e.store.SetDefaultRegister(name)
	}
}

// WithStartMode sets the initial mode. Visual modes are not valid start
// modes and fall back to Normal.
func WithStartMode(m mode.Mode) Option {
	return func(e *Engine) {
		if m.IsVisual() {
			m = mode.Normal
		}
		e.store.SetMode(m)
	}
}

// WithID sets the surface identifier used in log output.
func WithID(id string) Option {
	return func(e *Engine) {
		if id != "" {
			e.id = id
		}
	}
}
