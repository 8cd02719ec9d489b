// Package buffer provides helpers for working with an immutable text
// snapshot owned by a host.
//
// The modal editing engine never mutates text in place. Instead it computes
// offsets against the current snapshot and builds a replacement string that
// the host commits. This package supplies the pieces needed for that:
//
//   - ByteOffset and Range for addressing text ([Start, End) byte ranges)
//   - Line scanning (LineStart, LineEnd, LineEndInclusive, LineRange)
//   - Rune-aware stepping (PrevRune, NextRune) and column math
//   - Pure edits (Insert, Delete, Replace) that return new strings
//
// All helpers are total: offsets outside [0, len(text)] are clamped rather
// than rejected, and results always land on a UTF-8 rune boundary.
//
// Basic usage:
//
//	text := "hello\nworld"
//	start := buffer.LineStart(text, 8) // 6
//	end := buffer.LineEnd(text, 8)     // 11
//	text = buffer.Insert(text, end, "!")
package buffer
