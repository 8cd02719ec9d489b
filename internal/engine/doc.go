// Package engine groups the text primitives used by the modal editor.
//
// The sub-packages work on plain Go strings addressed by byte offsets:
//
//   - buffer: offset clamping, rune stepping, line lookup and edits
//   - motion: cursor motions (h, j, k, l, w, b, e, 0, $)
//
// Every function is pure. Offsets are clamped to [0, len(text)] and never
// land inside a UTF-8 sequence.
package engine
