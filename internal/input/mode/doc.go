// Package mode defines the editing modes of the modal input engine.
//
// Exactly one mode is active at a time:
//   - Normal: keys are motions and commands, never literal input
//   - Insert: keys are literal text input handled by the host
//   - Visual: character-wise selection
//   - VisualLine: line-wise selection
//
// Mode is a small closed enum. The engine dispatches on it with a single
// switch, one handler per variant, so adding a mode is a compile-visible
// change in one place.
package mode
