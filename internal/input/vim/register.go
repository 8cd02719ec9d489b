package vim

import (
	"io"
	"sort"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/dshills/chatvim/internal/clipboard"
)

// Well-known register names.
const (
	// RegisterUnnamed is the default register (").
	RegisterUnnamed rune = '"'

	// RegisterLastYank is the yank register (0).
	RegisterLastYank rune = '0'

	// RegisterClipboard is the system clipboard register (+).
	RegisterClipboard rune = '+'

	// RegisterSelection is the primary selection register (*).
	RegisterSelection rune = '*'
)

// RegisterStore holds the named registers of one editor surface.
type RegisterStore struct {
	registers map[rune]string

	// clipboard receives best-effort mirrors of the + and * registers.
	clipboard clipboard.Clipboard

	logger *log.Logger
}

// NewRegisterStore creates a register store with the default registers.
func NewRegisterStore() *RegisterStore {
	return &RegisterStore{
		registers: map[rune]string{
			RegisterUnnamed:   "",
			RegisterLastYank:  "",
			RegisterClipboard: "",
			RegisterSelection: "",
		},
		logger: log.New(io.Discard),
	}
}

// SetClipboard sets the clipboard used to mirror the + and * registers.
// A nil clipboard disables mirroring.
func (rs *RegisterStore) SetClipboard(cb clipboard.Clipboard) {
	rs.clipboard = cb
}

// SetLogger sets the logger used to report clipboard failures.
func (rs *RegisterStore) SetLogger(logger *log.Logger) {
	if logger != nil {
		rs.logger = logger
	}
}

// Get returns the content of a register, or "" when it is unset.
func (rs *RegisterStore) Get(name rune) string {
	return rs.registers[name]
}

// Yank stores content in the named register. The unnamed and last-yank
// registers are always updated with it, and clipboard registers are
// mirrored to the platform clipboard.
func (rs *RegisterStore) Yank(content string, name rune) {
	if !IsValidRegister(name) {
		name = RegisterUnnamed
	}

	rs.registers[name] = content
	rs.registers[RegisterUnnamed] = content
	rs.registers[RegisterLastYank] = content

	if IsClipboardRegister(name) {
		rs.mirror(name, content)
	}
}

// mirror writes content to the clipboard. Errors and panics from the
// backend are logged and dropped.
func (rs *RegisterStore) mirror(name rune, content string) {
	if rs.clipboard == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			rs.logger.Warn("clipboard mirror panicked", "register", string(name), "panic", r)
		}
	}()

	if err := rs.clipboard.Set(content); err != nil {
		rs.logger.Warn("clipboard mirror failed", "register", string(name), "err", err)
		return
	}
	rs.logger.Debug("clipboard mirrored", "register", string(name), "bytes", len(content))
}

// Names returns the names of all registers in sorted order.
func (rs *RegisterStore) Names() []rune {
	names := make([]rune, 0, len(rs.registers))
	for name := range rs.registers {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// IsClipboardRegister reports whether name mirrors to the platform clipboard.
func IsClipboardRegister(name rune) bool {
	return name == RegisterClipboard || name == RegisterSelection
}

// IsValidRegister returns true if name can address a register: any
// printable, non-space character.
func IsValidRegister(name rune) bool {
	return unicode.IsPrint(name) && !unicode.IsSpace(name)
}
