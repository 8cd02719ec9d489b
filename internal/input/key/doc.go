// Package key defines the key events fed to the modal editing engine.
//
// Hosts deliver one event per physical key press. A host that only knows a
// key identifier plus Shift/Ctrl flags (the shape of a browser or widget
// keydown event) converts it with FromHost:
//
//	ev := key.FromHost("Escape", false, false)
//	ev = key.FromHost("y", false, false)
//
// Configuration files name keys with Parse, which accepts Vim notation
// ("<Esc>", "<C-[>") and modifier notation ("Ctrl+C"):
//
//	exit, err := key.Parse("<C-c>")
package key
