package clip

import "fmt"

// BoundingRectangle describes a rectangular screen region. Bottom and Right
// are exclusive.
type BoundingRectangle struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Width returns the number of columns the rectangle spans.
func (b BoundingRectangle) Width() int {
	return b.Right - b.Left
}

// Height returns the number of rows the rectangle spans.
func (b BoundingRectangle) Height() int {
	return b.Bottom - b.Top
}

// Contains reports whether the point (y, x) falls inside the rectangle.
func (b BoundingRectangle) Contains(y, x int) bool {
	return y >= b.Top && y < b.Bottom && x >= b.Left && x < b.Right
}

// Offset returns a copy of the rectangle translated by y rows and x columns.
func (b BoundingRectangle) Offset(y, x int) BoundingRectangle {
	return BoundingRectangle{
		Top:    b.Top + y,
		Bottom: b.Bottom + y,
		Left:   b.Left + x,
		Right:  b.Right + x,
	}
}

// Clip returns the rectangle constrained to bounds. Each edge is clamped
// independently against the opposing extremes of bounds, so the result can
// be degenerate (zero width or height) but never negative-size.
func (b BoundingRectangle) Clip(bounds BoundingRectangle) BoundingRectangle {
	return BoundingRectangle{
		Top:    min(max(b.Top, bounds.Top), bounds.Bottom),
		Bottom: max(min(b.Bottom, bounds.Bottom), bounds.Top),
		Left:   min(max(b.Left, bounds.Left), bounds.Right),
		Right:  max(min(b.Right, bounds.Right), bounds.Left),
	}
}

func (b BoundingRectangle) String() string {
	return fmt.Sprintf("BoundingRectangle(top=%d, bottom=%d, left=%d, right=%d)",
		b.Top, b.Bottom, b.Left, b.Right)
}
