package app

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/chatvim/internal/input/key"
)

// convertKeyEvent converts a tcell key event into a key.Event.
func convertKeyEvent(ev *tcell.EventKey) key.Event {
	mods := convertMod(ev.Modifiers())

	k := ev.Key()
	if k == tcell.KeyRune {
		r := ev.Rune()
		if mods.HasCtrl() {
			r = unicode.ToLower(r)
		}
		return key.NewRuneEvent(r, mods)
	}

	if special := convertKey(k); special != key.KeyNone {
		return key.NewSpecialEvent(special, mods)
	}

	// Legacy control codes for Ctrl+letter.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods.With(key.ModCtrl))
	}

	return key.Event{}
}

// convertKey converts tcell key to our Key type.
func convertKey(k tcell.Key) key.Key {
	switch k {
	case tcell.KeyEscape:
		return key.KeyEscape
	case tcell.KeyEnter:
		return key.KeyEnter
	case tcell.KeyTab:
		return key.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace
	case tcell.KeyDelete:
		return key.KeyDelete
	case tcell.KeyInsert:
		return key.KeyInsert
	case tcell.KeyHome:
		return key.KeyHome
	case tcell.KeyEnd:
		return key.KeyEnd
	case tcell.KeyPgUp:
		return key.KeyPageUp
	case tcell.KeyPgDn:
		return key.KeyPageDown
	case tcell.KeyUp:
		return key.KeyUp
	case tcell.KeyDown:
		return key.KeyDown
	case tcell.KeyLeft:
		return key.KeyLeft
	case tcell.KeyRight:
		return key.KeyRight
	case tcell.KeyF1:
		return key.KeyF1
	case tcell.KeyF2:
		return key.KeyF2
	case tcell.KeyF3:
		return key.KeyF3
	case tcell.KeyF4:
		return key.KeyF4
	case tcell.KeyF5:
		return key.KeyF5
	case tcell.KeyF6:
		return key.KeyF6
	case tcell.KeyF7:
		return key.KeyF7
	case tcell.KeyF8:
		return key.KeyF8
	case tcell.KeyF9:
		return key.KeyF9
	case tcell.KeyF10:
		return key.KeyF10
	case tcell.KeyF11:
		return key.KeyF11
	case tcell.KeyF12:
		return key.KeyF12
	default:
		return key.KeyNone
	}
}

// convertMod converts tcell modifier mask to key modifiers.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result = result.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		result = result.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		result = result.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		result = result.With(key.ModMeta)
	}
	return result
}
