// Font files express glyph outlines and metrics in fixed point
// arithmetic, and textkit keeps that representation instead of
// converting to floats at the boundary: fixed point values are
// compact, exact for the common cases and cheap to use as cache
// key components.
//
// The fract subpackage defines the [Unit] type, a 26.6 fixed point
// value bit-compatible with [golang.org/x/image/math/fixed.Int26_6],
// alongside the [Point] and [Rect] helper types built on top of it.
package fract
