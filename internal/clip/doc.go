// Package clip provides the rectangle geometry used by every paint call.
//
// A BoundingRectangle is half-open on its bottom and right edges, so a point
// (y, x) is contained iff top <= y < bottom and left <= x < right. All
// coordinates are 1-based to match VT-100 cursor addressing, where the top
// left of the screen is (1, 1).
//
// Rectangles are immutable values. Clipping one rectangle against another
// can produce a degenerate (zero-size) result; that is never an error, and
// callers are expected to check Width/Height before painting.
package clip
