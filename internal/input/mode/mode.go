package mode

import (
	"errors"
	"fmt"
	"strings"
)

// Mode identifies the interpretation context for incoming keys.
// The zero value is Normal.
type Mode uint8

const (
	// Normal interprets keys as motions and commands.
	Normal Mode = iota

	// Insert passes keys through to the host as literal text.
	Insert

	// Visual selects text character by character.
	Visual

	// VisualLine selects whole lines.
	VisualLine
)

// ErrUnknownMode is returned by Parse for unrecognized mode names.
var ErrUnknownMode = errors.New("unknown mode")

// All returns every mode in declaration order.
func All() []Mode {
	return []Mode{Normal, Insert, Visual, VisualLine}
}

// String returns the mode identifier used in configuration files.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Insert:
		return "insert"
	case Visual:
		return "visual"
	case VisualLine:
		return "visual-line"
	default:
		return fmt.Sprintf("mode(%d)", m)
	}
}

// DisplayName returns a human-readable name for the status line.
func (m Mode) DisplayName() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	case Visual:
		return "VISUAL"
	case VisualLine:
		return "VISUAL LINE"
	default:
		return strings.ToUpper(m.String())
	}
}

// IsVisual reports whether m is one of the selection modes.
func (m Mode) IsVisual() bool {
	return m == Visual || m == VisualLine
}

// Valid reports whether m is a declared mode.
func (m Mode) Valid() bool {
	return m <= VisualLine
}

// CursorStyle returns the cursor style for this mode.
func (m Mode) CursorStyle() CursorStyle {
	if m == Insert {
		return CursorBar
	}
	return CursorBlock
}

// Parse converts a mode name into a Mode. Matching is case-insensitive and
// accepts "visual_line" and "visualline" as aliases.
func Parse(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal", "":
		return Normal, nil
	case "insert":
		return Insert, nil
	case "visual":
		return Visual, nil
	case "visual-line", "visual_line", "visualline":
		return VisualLine, nil
	default:
		return Normal, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal and visual modes).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	default:
		return "unknown"
	}
}
