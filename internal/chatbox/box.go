package chatbox

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dshills/chatvim/internal/engine/buffer"
	"github.com/dshills/chatvim/internal/engine/motion"
	"github.com/dshills/chatvim/internal/input/key"
	"github.com/dshills/chatvim/internal/input/mode"
	"github.com/dshills/chatvim/internal/input/vim"
)

// State is a snapshot of a Box for rendering.
type State struct {
	// Text is the draft message.
	Text string

	// Caret is the caret byte offset.
	Caret int

	// VimEnabled reports whether modal editing is on.
	VimEnabled bool

	// Vim is the engine state. Only meaningful when VimEnabled is true.
	Vim vim.State
}

// Outcome reports the effect of a key on the box.
type Outcome struct {
	// Sent is true when the key submitted the draft.
	Sent bool

	// Message is the submitted text when Sent is true.
	Message string

	// Changed is true when the draft text changed.
	Changed bool

	// Command is the vim command completed by the key, if any.
	Command string
}

// Option configures a Box.
type Option func(*Box)

// WithVim sets whether modal editing starts enabled.
func WithVim(enabled bool) Option {
	return func(b *Box) {
		b.vimEnabled = enabled
	}
}

// WithEngineOptions passes options to the vim engine.
func WithEngineOptions(opts ...vim.Option) Option {
	return func(b *Box) {
		b.engineOpts = append(b.engineOpts, opts...)
	}
}

// WithLogger sets the logger used by the box and its engine.
func WithLogger(logger *log.Logger) Option {
	return func(b *Box) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// Box is a chat input box.
type Box struct {
	text  string
	caret int

	vimEnabled bool
	startMode  mode.Mode
	engine     *vim.Engine
	engineOpts []vim.Option

	logger *log.Logger
}

// New creates an empty box. Vim is enabled unless WithVim(false) is given.
func New(opts ...Option) *Box {
	b := &Box{
		vimEnabled: true,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}

	engineOpts := append([]vim.Option{vim.WithLogger(b.logger)}, b.engineOpts...)
	b.engine = vim.New(b, engineOpts...)
	b.startMode = b.engine.Mode()
	return b
}

// Text implements vim.Host.
func (b *Box) Text() string {
	return b.text
}

// Commit implements vim.Host.
func (b *Box) Commit(text string) {
	b.text = text
	b.caret = buffer.Clamp(text, b.caret)
}

// Engine returns the vim engine.
func (b *Box) Engine() *vim.Engine {
	return b.engine
}

// VimEnabled reports whether modal editing is on.
func (b *Box) VimEnabled() bool {
	return b.vimEnabled
}

// Caret returns the caret offset.
func (b *Box) Caret() int {
	return b.caret
}

// SetText replaces the draft and moves the caret to its end.
func (b *Box) SetText(text string) {
	b.text = text
	b.setCaret(len(text))
}

// State returns a snapshot for rendering.
func (b *Box) State() State {
	return State{
		Text:       b.text,
		Caret:      b.caret,
		VimEnabled: b.vimEnabled,
		Vim:        b.engine.State(),
	}
}

// ToggleVim switches between modal and plain editing. Either way the
// engine restarts in its start mode at the caret.
func (b *Box) ToggleVim() bool {
	b.vimEnabled = !b.vimEnabled
	b.engine.Store().SetMode(b.startMode)
	b.engine.SyncCursor(b.caret)
	b.logger.Debug("vim toggled", "enabled", b.vimEnabled)
	return b.vimEnabled
}

// HandleKey applies one key event to the box.
func (b *Box) HandleKey(ev key.Event) Outcome {
	if isSend(ev) {
		return b.submit()
	}

	if !b.vimEnabled {
		if ev.IsEnter() {
			return b.submit()
		}
		return b.literal(ev)
	}

	if ev.IsEnter() && b.engine.Mode() == mode.Normal {
		return b.submit()
	}

	before := b.text
	res := b.engine.Handle(ev)
	b.caret = b.engine.Store().Cursor()
	if !res.Consumed {
		return b.literal(ev)
	}
	return Outcome{Changed: b.text != before, Command: res.Command}
}

// isSend reports whether ev is the send-from-anywhere chord.
func isSend(ev key.Event) bool {
	return ev.Key == key.KeyRune && ev.Rune == 's' && ev.Modifiers.HasCtrl()
}

// Submit sends the draft. Whitespace-only drafts are not sent.
func (b *Box) Submit() (string, bool) {
	out := b.submit()
	return out.Message, out.Sent
}

func (b *Box) submit() Outcome {
	msg := strings.TrimSpace(b.text)
	if msg == "" {
		return Outcome{}
	}

	b.text = ""
	b.caret = 0
	b.engine.Reset()
	b.engine.Store().SetMode(b.startMode)
	b.logger.Debug("message submitted", "bytes", len(msg))
	return Outcome{Sent: true, Message: msg, Changed: true}
}

// literal applies ev as plain text editing.
func (b *Box) literal(ev key.Event) Outcome {
	before := b.text
	switch {
	case ev.IsChar() && !ev.IsModified():
		b.InsertRune(ev.Rune)
	case ev.Key == key.KeyEnter:
		b.InsertNewline()
	case ev.Key == key.KeyTab:
		b.InsertRune('\t')
	case ev.Key == key.KeyBackspace:
		b.Backspace()
	case ev.Key == key.KeyDelete:
		b.DeleteForward()
	case ev.Key == key.KeyLeft:
		b.MoveLeft()
	case ev.Key == key.KeyRight:
		b.MoveRight()
	case ev.Key == key.KeyUp:
		b.setCaret(motion.Up(b.text, b.caret))
	case ev.Key == key.KeyDown:
		b.setCaret(motion.Down(b.text, b.caret))
	case ev.Key == key.KeyHome:
		b.MoveHome()
	case ev.Key == key.KeyEnd:
		b.MoveEnd()
	}
	return Outcome{Changed: b.text != before}
}

// InsertRune inserts r at the caret.
func (b *Box) InsertRune(r rune) {
	s := string(r)
	b.text = buffer.Insert(b.text, b.caret, s)
	b.setCaret(b.caret + len(s))
}

// InsertNewline inserts a line break at the caret.
func (b *Box) InsertNewline() {
	b.InsertRune('\n')
}

// Backspace deletes the rune before the caret.
func (b *Box) Backspace() {
	if b.caret == 0 {
		return
	}
	prev := buffer.PrevRune(b.text, b.caret)
	b.text = buffer.Delete(b.text, buffer.Range{Start: prev, End: b.caret})
	b.setCaret(prev)
}

// DeleteForward deletes the rune at the caret.
func (b *Box) DeleteForward() {
	next := buffer.NextRune(b.text, b.caret)
	b.text = buffer.Delete(b.text, buffer.Range{Start: b.caret, End: next})
	b.setCaret(b.caret)
}

// MoveLeft moves the caret one rune left.
func (b *Box) MoveLeft() {
	b.setCaret(buffer.PrevRune(b.text, b.caret))
}

// MoveRight moves the caret one rune right.
func (b *Box) MoveRight() {
	b.setCaret(buffer.NextRune(b.text, b.caret))
}

// MoveHome moves the caret to the start of its line.
func (b *Box) MoveHome() {
	b.setCaret(buffer.LineStart(b.text, b.caret))
}

// MoveEnd moves the caret to the end of its line.
func (b *Box) MoveEnd() {
	b.setCaret(buffer.LineEnd(b.text, b.caret))
}

// setCaret clamps offset and keeps the engine cursor in step.
func (b *Box) setCaret(offset int) {
	b.caret = buffer.Clamp(b.text, offset)
	b.engine.SyncCursor(b.caret)
}
