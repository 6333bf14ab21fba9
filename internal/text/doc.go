// Package text implements the styled-text model: text paired with a
// parallel per-character attribute array, word wrapping that carries that
// metadata through every break, markup and HTML conversion into styled
// lines, and the incremental paint primitive that puts styled lines on the
// device with the minimum possible byte stream.
//
// The pairing invariant is absolute: for every line, the number of
// characters equals the number of attribute entries. Any mismatch means an
// upstream contract was violated and is treated as a defect (panic), never
// degraded silently.
package text
