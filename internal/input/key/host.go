package key

import (
	"unicode"
	"unicode/utf8"
)

// FromHost converts a host key-press record into an Event.
//
// name is the key identifier as the host reports it: a single character
// ("a", "A", "$", " ") or a named key ("Escape", "Enter", "ArrowLeft").
// Single characters become rune events; Shift is kept only as a modifier
// flag since it is already reflected in the character. Unrecognized
// multi-character names (e.g. "Shift", "Dead") yield an event with KeyNone,
// which every mode treats as a no-op.
func FromHost(name string, shift, ctrl bool) Event {
	var mods Modifier
	if shift {
		mods = mods.With(ModShift)
	}
	if ctrl {
		mods = mods.With(ModCtrl)
	}

	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if ctrl {
			r = unicode.ToLower(r)
		}
		return NewRuneEvent(r, mods)
	}

	if name == "Space" || name == "Spacebar" {
		return NewRuneEvent(' ', mods)
	}

	return NewSpecialEvent(KeyFromName(name), mods)
}
