package textkit

import "golang.org/x/image/font/sfnt"

import "github.com/textkit-dev/textkit/fract"

// Helper types, wrappers and aliases.

// An alias for sfnt.Font so you don't need to import sfnt yourself
// when already working with textkit.
type Font = sfnt.Font

// Glyph indices specify which font glyph we are working with. They
// are a low level construct, but an important one: glyphs without
// any direct mapping to unicode code points can only be referenced
// through their index, which is what makes toolkits like this one
// usable with text shapers and complex scripts.
type GlyphIndex = sfnt.GlyphIndex

// Scaled font metrics, in fractional pixels. All values are absolute
// (descent grows downwards but is reported as a positive unit).
type Metrics struct {
	// Recommended baseline to baseline distance.
	LineHeight fract.Unit

	// Distance from the baseline to the top of the tallest glyphs.
	Ascent fract.Unit

	// Distance from the baseline to the bottom of the deepest glyphs.
	Descent fract.Unit

	// Recommended additional spacing between lines:
	// LineHeight - Ascent - Descent.
	LineGap fract.Unit

	// Height of lowercase glyphs without ascenders ("x").
	XHeight fract.Unit

	// Height of uppercase glyphs ("H").
	CapHeight fract.Unit
}
