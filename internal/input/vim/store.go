package vim

import (
	"github.com/dshills/chatvim/internal/engine/buffer"
	"github.com/dshills/chatvim/internal/input/mode"
)

// State is a value snapshot of a Store for rendering.
type State struct {
	// Mode is the active mode.
	Mode mode.Mode

	// Cursor is the caret byte offset.
	Cursor int

	// Selection is the active selection, nil outside Visual modes.
	Selection *buffer.Range

	// Pending is the partially entered command (e.g. "y").
	Pending string

	// LastCommand is the most recently completed command.
	LastCommand string
}

// Store is the editing state of one editor surface.
type Store struct {
	mode      mode.Mode
	cursor    int
	selection *buffer.Range

	// anchor is the fixed end of a Visual selection.
	anchor int

	commandBuffer []rune
	lastCommand   string

	registers       *RegisterStore
	defaultRegister rune
}

// NewStore creates a store in Normal mode with the cursor at 0.
func NewStore() *Store {
	return &Store{
		mode:            mode.Normal,
		registers:       NewRegisterStore(),
		defaultRegister: RegisterUnnamed,
	}
}

// Mode returns the active mode.
func (s *Store) Mode() mode.Mode {
	return s.mode
}

// SetMode switches modes. Leaving the Visual modes drops the selection,
// and every transition clears the command buffer.
func (s *Store) SetMode(m mode.Mode) {
	if !m.Valid() {
		m = mode.Normal
	}
	if !m.IsVisual() {
		s.selection = nil
	}
	s.mode = m
	s.commandBuffer = s.commandBuffer[:0]
}

// Cursor returns the caret byte offset.
func (s *Store) Cursor() int {
	return s.cursor
}

// SetCursor stores the caret offset as given. Callers clamp.
func (s *Store) SetCursor(offset int) {
	s.cursor = offset
}

// Selection returns the active selection, if any.
func (s *Store) Selection() (buffer.Range, bool) {
	if s.selection == nil {
		return buffer.Range{}, false
	}
	return *s.selection, true
}

// SetSelection replaces the selection. Pass nil to clear it.
func (s *Store) SetSelection(r *buffer.Range) {
	if r == nil {
		s.selection = nil
		return
	}
	n := r.Normalize()
	s.selection = &n
}

// Anchor returns the fixed end of the Visual selection.
func (s *Store) Anchor() int {
	return s.anchor
}

// SetAnchor sets the fixed end of the Visual selection.
func (s *Store) SetAnchor(offset int) {
	s.anchor = offset
}

// Registers returns the register store.
func (s *Store) Registers() *RegisterStore {
	return s.registers
}

// DefaultRegister returns the register used when none is named.
func (s *Store) DefaultRegister() rune {
	return s.defaultRegister
}

// SetDefaultRegister changes the register used when none is named.
// Invalid names fall back to the unnamed register.
func (s *Store) SetDefaultRegister(name rune) {
	if !IsValidRegister(name) {
		name = RegisterUnnamed
	}
	s.defaultRegister = name
}

// Yank stores text in the named register, or the default register when
// none is given.
func (s *Store) Yank(text string, register ...rune) {
	s.registers.Yank(text, s.pick(register))
}

// Paste returns the content of the named register, or the default
// register when none is given.
func (s *Store) Paste(register ...rune) string {
	return s.registers.Get(s.pick(register))
}

func (s *Store) pick(register []rune) rune {
	if len(register) > 0 && IsValidRegister(register[0]) {
		return register[0]
	}
	return s.defaultRegister
}

// AppendToCommandBuffer adds a key to the pending command.
func (s *Store) AppendToCommandBuffer(r rune) {
	s.commandBuffer = append(s.commandBuffer, r)
}

// ClearCommandBuffer drops the pending command.
func (s *Store) ClearCommandBuffer() {
	s.commandBuffer = s.commandBuffer[:0]
}

// CommandBuffer returns the pending command.
func (s *Store) CommandBuffer() string {
	return string(s.commandBuffer)
}

// ExecuteCommand records cmd as completed and clears the command buffer.
func (s *Store) ExecuteCommand(cmd string) {
	s.lastCommand = cmd
	s.commandBuffer = s.commandBuffer[:0]
}

// LastCommand returns the most recently completed command.
func (s *Store) LastCommand() string {
	return s.lastCommand
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	st := State{
		Mode:        s.mode,
		Cursor:      s.cursor,
		Pending:     s.CommandBuffer(),
		LastCommand: s.lastCommand,
	}
	if s.selection != nil {
		sel := *s.selection
		st.Selection = &sel
	}
	return st
}
