// Package motion implements cursor motions over an immutable text snapshot.
//
// A motion is a pure function from (text, cursor) to a new cursor offset.
// Motions serve two purposes: plain cursor movement in Normal mode, and
// operands for operators such as yank ("yw" yanks from the cursor to the
// target of "w").
//
// Every motion is total. For any text and any cursor, the result lies in
// [0, len(text)]; out-of-range input is clamped rather than rejected.
//
// # Word Boundaries
//
// Words are runs of non-whitespace. "w" skips the rest of the current word
// and the whitespace after it, "b" mirrors that scanning backward, and "e"
// lands on the last rune of the current or next word.
//
// # Lookup
//
// The Table maps motion keys to Motion descriptors:
//
//	m, ok := motion.Lookup('w')
//	if ok {
//	    cursor = m.Apply(text, cursor)
//	}
package motion
