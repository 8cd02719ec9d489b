package buffer

import "fmt"

// Range represents a byte range in a text snapshot.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start ByteOffset // Inclusive start position
	End   ByteOffset // Exclusive end position
}

// NewRange creates a Range from two offsets in either order.
func NewRange(a, b ByteOffset) Range {
	return Range{Start: a, End: b}.Normalize()
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Normalize returns the range with Start <= End.
func (r Range) Normalize() Range {
	if r.Start > r.End {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// Len returns the length of the range in bytes.
func (r Range) Len() ByteOffset {
	n := r.Normalize()
	return n.End - n.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if the given offset is within the range.
func (r Range) Contains(offset ByteOffset) bool {
	n := r.Normalize()
	return offset >= n.Start && offset < n.End
}

// Clamp normalizes the range and restricts both ends to text.
func (r Range) Clamp(text string) Range {
	n := r.Normalize()
	return Range{Start: Clamp(text, n.Start), End: Clamp(text, n.End)}
}
