package key

import (
	"errors"
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyEscape, "Escape"},
		{KeyEnter, "Enter"},
		{KeyLeft, "Left"},
		{KeyF1, "F1"},
		{KeyF12, "F12"},
		{KeyRune, "Rune"},
		{Key(999), "Key(999)"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"Escape", KeyEscape},
		{"esc", KeyEscape},
		{"ArrowLeft", KeyLeft},
		{"ArrowDown", KeyDown},
		{" Enter ", KeyEnter},
		{"F5", KeyF5},
		{"Shift", KeyNone},
	}

	for _, tt := range tests {
		if got := KeyFromName(tt.name); got != tt.want {
			t.Errorf("KeyFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestModifier(t *testing.T) {
	m := ModCtrl.With(ModShift)
	if !m.HasCtrl() || !m.HasShift() || m.HasAlt() {
		t.Errorf("unexpected modifier set %v", m)
	}
	if got := m.String(); got != "Ctrl+Shift" {
		t.Errorf("String() = %q, want %q", got, "Ctrl+Shift")
	}
	if m.Without(ModCtrl) != ModShift {
		t.Error("Without(ModCtrl) should leave Shift")
	}
	if ModifierFromName("Control") != ModCtrl {
		t.Error("ModifierFromName(Control) should be Ctrl")
	}
}

func TestFromHost(t *testing.T) {
	tests := []struct {
		name      string
		keyName   string
		shift     bool
		ctrl      bool
		wantKey   Key
		wantRune  rune
		wantChar  rune
		wantShift bool
	}{
		{"lower letter", "w", false, false, KeyRune, 'w', 'w', false},
		{"upper letter", "V", true, false, KeyRune, 'V', 'V', true},
		{"dollar", "$", true, false, KeyRune, '$', '$', true},
		{"ctrl letter", "C", false, true, KeyRune, 'c', 0, false},
		{"escape", "Escape", false, false, KeyEscape, 0, 0, false},
		{"arrow", "ArrowUp", false, false, KeyUp, 0, 0, false},
		{"space name", "Space", false, false, KeyRune, ' ', ' ', false},
		{"space char", " ", false, false, KeyRune, ' ', ' ', false},
		{"modifier only", "Shift", true, false, KeyNone, 0, 0, true},
		{"multibyte", "é", false, false, KeyRune, 'é', 'é', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := FromHost(tt.keyName, tt.shift, tt.ctrl)
			if ev.Key != tt.wantKey {
				t.Errorf("Key = %v, want %v", ev.Key, tt.wantKey)
			}
			if ev.Rune != tt.wantRune {
				t.Errorf("Rune = %q, want %q", ev.Rune, tt.wantRune)
			}
			if ev.Char() != tt.wantChar {
				t.Errorf("Char() = %q, want %q", ev.Char(), tt.wantChar)
			}
			if ev.Modifiers.HasShift() != tt.wantShift {
				t.Errorf("Shift = %v, want %v", ev.Modifiers.HasShift(), tt.wantShift)
			}
		})
	}
}

func TestEventEquals(t *testing.T) {
	a := FromHost("A", true, false)
	b := NewRuneEvent('A', ModNone)
	if !a.Equals(b) {
		t.Error("Shift should be ignored for character events")
	}

	if NewRuneEvent('c', ModCtrl).Equals(NewRuneEvent('c', ModNone)) {
		t.Error("Ctrl must distinguish character events")
	}

	if !FromHost("Escape", false, false).Matches("<Esc>") {
		t.Error("Escape should match <Esc>")
	}
	if FromHost("Escape", false, true).IsEscape() {
		t.Error("Ctrl+Escape is not a plain escape")
	}
}

func TestEventStrings(t *testing.T) {
	tests := []struct {
		ev      Event
		wantStr string
		wantVim string
	}{
		{NewRuneEvent('a', ModNone), "a", "a"},
		{NewRuneEvent(' ', ModNone), "Space", "<Space>"},
		{NewRuneEvent('s', ModCtrl), "C-s", "<C-s>"},
		{NewSpecialEvent(KeyEscape, ModNone), "Escape", "<Esc>"},
		{NewSpecialEvent(KeyEnter, ModShift), "S-Enter", "<S-CR>"},
	}

	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.wantStr {
			t.Errorf("String() = %q, want %q", got, tt.wantStr)
		}
		if got := tt.ev.VimString(); got != tt.wantVim {
			t.Errorf("VimString() = %q, want %q", got, tt.wantVim)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec     string
		wantKey  Key
		wantRune rune
		wantMods Modifier
	}{
		{"a", KeyRune, 'a', ModNone},
		{"A", KeyRune, 'A', ModShift},
		{"$", KeyRune, '$', ModNone},
		{"<", KeyRune, '<', ModNone},
		{"Escape", KeyEscape, 0, ModNone},
		{"<Esc>", KeyEscape, 0, ModNone},
		{"<CR>", KeyEnter, 0, ModNone},
		{"<C-c>", KeyRune, 'c', ModCtrl},
		{"<C-[>", KeyRune, '[', ModCtrl},
		{"<C-->", KeyRune, '-', ModCtrl},
		{"<C-S-p>", KeyRune, 'p', ModCtrl | ModShift},
		{"<Space>", KeyRune, ' ', ModNone},
		{"Ctrl+C", KeyRune, 'c', ModCtrl},
		{"Ctrl+Enter", KeyEnter, 0, ModCtrl},
		{"+", KeyRune, '+', ModNone},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			ev, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if ev.Key != tt.wantKey || ev.Rune != tt.wantRune || ev.Modifiers != tt.wantMods {
				t.Errorf("Parse(%q) = %#v", tt.spec, ev)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"jk", ErrInvalidSpec},
		{"<X-a>", ErrInvalidSpec},
		{"Hyper+a", ErrInvalidSpec},
	}

	for _, tt := range tests {
		if _, err := Parse(tt.spec); !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid spec")
		}
	}()
	MustParse("not a key")
}
