package motion

import (
	"sort"

	"github.com/dshills/chatvim/internal/engine/buffer"
)

// Func computes a target offset from a cursor offset.
type Func func(text string, cursor int) int

// Motion describes a cursor motion bound to a key.
type Motion struct {
	// Name is the motion identifier (e.g., "wordForward", "lineEnd").
	Name string

	// Key is the Normal mode key that triggers this motion.
	Key rune

	// Func computes the target offset.
	Func Func

	// Linewise indicates the motion moves between lines rather than
	// within one.
	Linewise bool
}

// Apply runs the motion and clamps its result to the text.
func (m Motion) Apply(text string, cursor int) int {
	if m.Func == nil {
		return buffer.Clamp(text, cursor)
	}
	return buffer.Clamp(text, m.Func(text, buffer.Clamp(text, cursor)))
}

// Standard motions.
var (
	MotionLeft         = Motion{Name: "left", Key: 'h', Func: Left}
	MotionRight        = Motion{Name: "right", Key: 'l', Func: Right}
	MotionDown         = Motion{Name: "down", Key: 'j', Func: Down, Linewise: true}
	MotionUp           = Motion{Name: "up", Key: 'k', Func: Up, Linewise: true}
	MotionWordForward  = Motion{Name: "wordForward", Key: 'w', Func: WordForward}
	MotionWordBackward = Motion{Name: "wordBackward", Key: 'b', Func: WordBackward}
	MotionWordEnd      = Motion{Name: "wordEnd", Key: 'e', Func: WordEnd}
	MotionLineStart    = Motion{Name: "lineStart", Key: '0', Func: LineStart}
	MotionLineEnd      = Motion{Name: "lineEnd", Key: '$', Func: LineEnd}
)

var table = map[rune]Motion{}

func init() {
	for _, m := range []Motion{
		MotionLeft, MotionRight, MotionDown, MotionUp,
		MotionWordForward, MotionWordBackward, MotionWordEnd,
		MotionLineStart, MotionLineEnd,
	} {
		table[m.Key] = m
	}
}

// Lookup returns the motion bound to key.
func Lookup(key rune) (Motion, bool) {
	m, ok := table[key]
	return m, ok
}

// All returns every registered motion ordered by key.
func All() []Motion {
	out := make([]Motion, 0, len(table))
	for _, m := range table {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Left moves one rune back, stopping at 0.
func Left(text string, cursor int) int {
	return buffer.PrevRune(text, cursor)
}

// Right moves one rune forward, stopping at len(text).
func Right(text string, cursor int) int {
	return buffer.NextRune(text, cursor)
}

// Down moves to the same column on the next line, clamped to that line's
// length. On the last line the cursor does not move.
func Down(text string, cursor int) int {
	cursor = buffer.Clamp(text, cursor)
	end := buffer.LineEnd(text, cursor)
	if end >= len(text) {
		return cursor
	}
	col := buffer.Column(text, cursor)
	return buffer.OffsetForColumn(text, end+1, col)
}

// Up moves to the same column on the previous line, clamped to that line's
// length. On the first line the cursor does not move.
func Up(text string, cursor int) int {
	cursor = buffer.Clamp(text, cursor)
	start := buffer.LineStart(text, cursor)
	if start == 0 {
		return cursor
	}
	col := buffer.Column(text, cursor)
	return buffer.OffsetForColumn(text, buffer.LineStart(text, start-1), col)
}

// LineStart moves to the first byte of the current line.
func LineStart(text string, cursor int) int {
	return buffer.LineStart(text, cursor)
}

// LineEnd moves to the end of the current line, before its newline.
func LineEnd(text string, cursor int) int {
	return buffer.LineEnd(text, cursor)
}
