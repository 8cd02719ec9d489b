package config

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/chatvim/internal/clipboard"
	"github.com/dshills/chatvim/internal/input/key"
	"github.com/dshills/chatvim/internal/input/mode"
	"github.com/dshills/chatvim/internal/input/vim"
)

// Config is the resolved chatvim configuration.
type Config struct {
	Editor    EditorConfig    `toml:"editor" yaml:"editor"`
	Clipboard ClipboardConfig `toml:"clipboard" yaml:"clipboard"`
	Log       LogConfig       `toml:"log" yaml:"log"`
}

// EditorConfig configures the modal editing engine.
type EditorConfig struct {
	// Vim enables modal editing. When false the input box is a plain
	// text field.
	Vim bool `toml:"vim" yaml:"vim"`

	// StartMode is the mode a new input box starts in ("normal" or "insert").
	StartMode string `toml:"start_mode" yaml:"start_mode"`

	// ExitKey is an additional key that leaves Insert and Visual modes,
	// in key notation (e.g. "<C-c>"). Escape always works.
	ExitKey string `toml:"exit_key" yaml:"exit_key"`

	// Register is the default register for yank and paste.
	Register string `toml:"register" yaml:"register"`
}

// ClipboardConfig configures clipboard mirroring.
type ClipboardConfig struct {
	// Backend is one of "system", "osc52", "memory" or "none".
	Backend string `toml:"backend" yaml:"backend"`

	// OSC52Tmux wraps OSC 52 sequences for tmux passthrough.
	OSC52Tmux bool `toml:"osc52_tmux" yaml:"osc52_tmux"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// Level is a charmbracelet/log level name.
	Level string `toml:"level" yaml:"level"`

	// File receives log output. Empty disables logging.
	File string `toml:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			Vim:       true,
			StartMode: mode.Normal.String(),
			ExitKey:   "<Esc>",
			Register:  string(vim.RegisterUnnamed),
		},
		Clipboard: ClipboardConfig{
			Backend: clipboard.BackendSystem,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks every setting and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error

	if m, err := mode.Parse(c.Editor.StartMode); err != nil {
		errs = append(errs, fmt.Errorf("editor.start_mode: %w: %q", ErrInvalidMode, c.Editor.StartMode))
	} else if m.IsVisual() {
		errs = append(errs, fmt.Errorf("editor.start_mode: %w: %q cannot be a start mode", ErrInvalidMode, c.Editor.StartMode))
	}

	if c.Editor.ExitKey != "" {
		if _, err := key.Parse(c.Editor.ExitKey); err != nil {
			errs = append(errs, fmt.Errorf("editor.exit_key: %w: %w", ErrInvalidKey, err))
		}
	}

	if !validRegister(c.Editor.Register) {
		errs = append(errs, fmt.Errorf("editor.register: %w: %q", ErrInvalidRegister, c.Editor.Register))
	}

	if !slices.Contains(clipboard.Backends(), strings.ToLower(c.Clipboard.Backend)) {
		errs = append(errs, fmt.Errorf("clipboard.backend: %w: %q", ErrInvalidBackend, c.Clipboard.Backend))
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w: %q", ErrInvalidLevel, c.Log.Level))
	}

	return errors.Join(errs...)
}

func validRegister(s string) bool {
	if utf8.RuneCountInString(s) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return vim.IsValidRegister(r)
}

// StartModeValue returns the configured start mode, or Normal when the
// setting is invalid.
func (c *Config) StartModeValue() mode.Mode {
	m, err := mode.Parse(c.Editor.StartMode)
	if err != nil || m.IsVisual() {
		return mode.Normal
	}
	return m
}

// ExitKeyEvent returns the configured exit key, or the zero Event when it
// is unset or invalid.
func (c *Config) ExitKeyEvent() key.Event {
	if c.Editor.ExitKey == "" {
		return key.Event{}
	}
	ev, err := key.Parse(c.Editor.ExitKey)
	if err != nil {
		return key.Event{}
	}
	return ev
}

// RegisterName returns the default register, or the unnamed register when
// the setting is invalid.
func (c *Config) RegisterName() rune {
	if !validRegister(c.Editor.Register) {
		return vim.RegisterUnnamed
	}
	r, _ := utf8.DecodeRuneInString(c.Editor.Register)
	return r
}

// LogLevel returns the configured log level, or info when it is invalid.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// WriteTOML encodes the configuration as TOML.
func (c *Config) WriteTOML(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
