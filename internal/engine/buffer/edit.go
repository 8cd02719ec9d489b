package buffer

import "fmt"

// Edit represents a text edit operation.
// It specifies a range to replace and the new text.
type Edit struct {
	Range   Range  // The range to replace
	NewText string // The replacement text
}

// NewInsert creates an Edit that inserts text at a position.
func NewInsert(offset ByteOffset, text string) Edit {
	return Edit{
		Range:   Range{Start: offset, End: offset},
		NewText: text,
	}
}

// NewDelete creates an Edit that deletes a range of text.
func NewDelete(r Range) Edit {
	return Edit{Range: r.Normalize()}
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.Range.IsEmpty() {
		return fmt.Sprintf("Insert(%d, %q)", e.Range.Start, e.NewText)
	}
	if e.NewText == "" {
		return fmt.Sprintf("Delete%s", e.Range.String())
	}
	return fmt.Sprintf("Replace%s with %q", e.Range.String(), e.NewText)
}

// IsNoOp returns true if this edit does nothing.
func (e Edit) IsNoOp() bool {
	return e.Range.IsEmpty() && e.NewText == ""
}

// Apply returns text with the edit applied. The range is clamped first.
func (e Edit) Apply(text string) string {
	r := e.Range.Clamp(text)
	return text[:r.Start] + e.NewText + text[r.End:]
}

// Insert returns text with s inserted at offset.
func Insert(text string, offset ByteOffset, s string) string {
	return NewInsert(offset, s).Apply(text)
}

// Delete returns text with r removed.
func Delete(text string, r Range) string {
	return NewDelete(r).Apply(text)
}

// Slice returns the text covered by r after clamping.
func Slice(text string, r Range) string {
	c := r.Clamp(text)
	return text[c.Start:c.End]
}
