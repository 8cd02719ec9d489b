package mode

import (
	"errors"
	"testing"
)

func TestModeNames(t *testing.T) {
	tests := []struct {
		mode    Mode
		name    string
		display string
		style   CursorStyle
		visual  bool
	}{
		{Normal, "normal", "NORMAL", CursorBlock, false},
		{Insert, "insert", "INSERT", CursorBar, false},
		{Visual, "visual", "VISUAL", CursorBlock, true},
		{VisualLine, "visual-line", "VISUAL LINE", CursorBlock, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.mode.DisplayName(); got != tt.display {
				t.Errorf("DisplayName() = %q, want %q", got, tt.display)
			}
			if got := tt.mode.CursorStyle(); got != tt.style {
				t.Errorf("CursorStyle() = %v, want %v", got, tt.style)
			}
			if got := tt.mode.IsVisual(); got != tt.visual {
				t.Errorf("IsVisual() = %v, want %v", got, tt.visual)
			}
			if !tt.mode.Valid() {
				t.Error("Valid() = false")
			}
		})
	}
}

func TestZeroValueIsNormal(t *testing.T) {
	var m Mode
	if m != Normal {
		t.Errorf("zero Mode = %v, want normal", m)
	}
}

func TestParse(t *testing.T) {
	for _, m := range All() {
		got, err := Parse(m.String())
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", m.String(), err)
		}
		if got != m {
			t.Errorf("Parse(%q) = %v, want %v", m.String(), got, m)
		}
	}

	if got, _ := Parse("Visual_Line"); got != VisualLine {
		t.Errorf("Parse(Visual_Line) = %v", got)
	}

	if _, err := Parse("replace"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Parse(replace) error = %v, want ErrUnknownMode", err)
	}
}

func TestUnknownMode(t *testing.T) {
	m := Mode(42)
	if m.Valid() {
		t.Error("Mode(42) should be invalid")
	}
	if got := m.String(); got != "mode(42)" {
		t.Errorf("String() = %q", got)
	}
	if got := CursorStyle(9).String(); got != "unknown" {
		t.Errorf("CursorStyle(9).String() = %q", got)
	}
}
