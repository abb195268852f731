//go:build !gtxt

package textkit

import "image"

import "github.com/hajimehoshi/ebiten/v2"

// A GlyphMask is the image that results from rasterizing a glyph.
//
// With Ebitengine, GlyphMask defaults to *ebiten.Image, ready to be
// drawn to any target through DrawImage. The image bounds are
// adjusted to allow drawing the glyph at its intended position:
// bounds.Min.Y is typically negative, with y = 0 corresponding to
// the glyph's baseline.
//
// Without Ebitengine (gtxt version), GlyphMask defaults to
// [*image.Alpha].
type GlyphMask = *ebiten.Image

// Based on Ebitengine internals; the exact amount of mipmaps and
// helper fields is not known, so treat this as a lower bound.
const constMaskSizeFactor = 192

// Returns an approximation of the memory taken by the given
// [GlyphMask], in bytes. Nil masks still have a cost: the cache
// stores them to remember that a glyph has nothing to draw.
func glyphMaskByteSize(mask GlyphMask) int {
	if mask == nil { return constMaskSizeFactor }
	width, height := mask.Size()
	return width*height*4 + constMaskSizeFactor
}

// Ebitengine doesn't have good support for alpha-only images, so
// masks get expanded to RGBA on upload.
func convertAlphaToGlyphMask(alpha *image.Alpha) GlyphMask {
	if alpha == nil { return nil }

	rgba := image.NewRGBA(alpha.Rect)
	pixels := rgba.Pix
	index := 0
	for _, value := range alpha.Pix {
		pixels[index + 0] = value
		pixels[index + 1] = value
		pixels[index + 2] = value
		pixels[index + 3] = value
		index += 4
	}
	opts := &ebiten.NewImageFromImageOptions{ PreserveBounds: true }
	return ebiten.NewImageFromImageWithOptions(rgba, opts)
}
