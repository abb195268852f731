//go:build gtxt

package textkit

import "image"

// A GlyphMask is the image that results from rasterizing a glyph.
//
// Without Ebitengine (gtxt version), GlyphMask defaults to
// [*image.Alpha]. The image bounds are adjusted to allow drawing the
// glyph at its intended position: bounds.Min.Y is typically negative,
// with y = 0 corresponding to the glyph's baseline.
//
// With Ebitengine, GlyphMask defaults to *ebiten.Image.
type GlyphMask = *image.Alpha

// per-mask fixed overhead (image header and slice)
const constMaskSizeFactor = 56

// Returns the memory taken by the given [GlyphMask], in bytes. With
// gtxt the value is exact. Nil masks still have a cost: the cache
// stores them to remember that a glyph has nothing to draw.
func glyphMaskByteSize(mask GlyphMask) int {
	if mask == nil { return constMaskSizeFactor }
	bounds := mask.Bounds()
	return bounds.Dx()*bounds.Dy() + constMaskSizeFactor
}

// this doesn't do anything in gtxt, only ebiten needs it
func convertAlphaToGlyphMask(alpha *image.Alpha) GlyphMask { return alpha }
