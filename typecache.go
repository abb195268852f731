package textkit

import "sync"

import "golang.org/x/image/font/sfnt"

import "github.com/textkit-dev/textkit/cache"
import "github.com/textkit-dev/textkit/fract"
import "github.com/textkit-dev/textkit/mask"

// Key for cached glyph outlines and advances.
type glyphKey struct {
	typeface uint64
	size     fract.Unit
	index    GlyphIndex
}

// Key for cached glyph masks. Rasterizers can produce different
// masks for the same outline, so their signature is part of the key.
type maskKey struct {
	glyphKey
	rast uint64
}

// approximate in-memory cost of one outline segment (operation tag
// plus three fixed point coordinate pairs, padded)
const outlineSegmentBytes = 28

// A TypeCache memoizes the expensive glyph artifacts of any number
// of typefaces: rasterized masks, outlines and advances. All three
// artifact types share a single [cache.Cache] with a fixed byte
// budget, and compete for it through one global recency order: a
// burst of mask rasterization can push old outlines out, and vice
// versa. Cached artifacts are ephemeral for the same reason: any
// value may be gone by the next call and get rebuilt on demand.
//
// Masks are stored at whole-pixel positions; subpixel variants, if
// needed, are better rasterized directly through the mask subpackage.
//
// TypeCaches are safe for concurrent use, though artifact misses are
// built one at a time (the rasterizer is stateful).
type TypeCache struct {
	mutex      sync.Mutex
	shared     *cache.Cache
	rasterizer mask.Rasterizer
	masks      *cache.Segment[maskKey, GlyphMask]
	outlines   *cache.Segment[glyphKey, sfnt.Segments]
	advances   *cache.Segment[glyphKey, fract.Unit]
	peakSize   int
}

// Creates a new [TypeCache] with the given capacity, in bytes, and
// the given rasterizer. A nil rasterizer defaults to a fresh
// [mask.SweepRasterizer]. Negative capacities will panic.
//
// Values below 32*1024 (32KiB) are not recommended; letting the
// cache grow up to a few MiBs is generally preferable. [PeakSize]()
// can help you tune the capacity to your actual usage.
//
// [PeakSize]: https://pkg.go.dev/github.com/textkit-dev/textkit#TypeCache.PeakSize
func NewTypeCache(capacityBytes int, rasterizer mask.Rasterizer) *TypeCache {
	if rasterizer == nil { rasterizer = &mask.SweepRasterizer{} }
	shared := cache.New(capacityBytes)
	return &TypeCache{
		shared: shared,
		rasterizer: rasterizer,
		masks: cache.NewSegment[maskKey, GlyphMask](shared,
			func(key maskKey, glyphMask GlyphMask) int {
				return glyphMaskByteSize(glyphMask)
			}),
		outlines: cache.NewSegment[glyphKey, sfnt.Segments](shared,
			func(key glyphKey, outline sfnt.Segments) int {
				return 16 + len(outline)*outlineSegmentBytes
			}),
		advances: cache.NewSegment[glyphKey, fract.Unit](shared, nil),
	}
}

// Returns the advance width of the given glyph at the given size, in
// fractional pixels.
func (self *TypeCache) GlyphAdvance(typeface *Typeface, size fract.Unit, index GlyphIndex) (fract.Unit, error) {
	key := glyphKey{ typeface: typeface.id, size: size, index: index }
	self.mutex.Lock()
	defer self.mutex.Unlock()

	if advance, found := self.advances.Get(key); found { return advance, nil }
	advance, err := typeface.loadAdvance(index, size)
	if err != nil { return 0, err }
	self.advances.Set(key, advance)
	self.trackPeak()
	return advance, nil
}

// Returns the outline of the given glyph at the given size. The
// returned segments are shared with the cache and must be treated
// as read-only.
func (self *TypeCache) GlyphOutline(typeface *Typeface, size fract.Unit, index GlyphIndex) (sfnt.Segments, error) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.glyphOutline(typeface, size, index)
}

// Returns the rasterized mask of the given glyph at the given size.
// The mask may be nil for glyphs with nothing to draw (e.g. spaces):
// that's a valid, cacheable result, not an error.
//
// The returned mask is shared with the cache and must be treated as
// read-only.
func (self *TypeCache) GlyphMask(typeface *Typeface, size fract.Unit, index GlyphIndex) (GlyphMask, error) {
	key := maskKey{
		glyphKey: glyphKey{ typeface: typeface.id, size: size, index: index },
		rast: self.rasterizer.Signature(),
	}
	self.mutex.Lock()
	defer self.mutex.Unlock()

	if glyphMask, found := self.masks.Get(key); found { return glyphMask, nil }

	// miss: reuse the cached outline if we still have it around
	outline, err := self.glyphOutline(typeface, size, index)
	if err != nil { return nil, err }
	alphaMask, err := mask.Rasterize(outline, self.rasterizer, fract.Point{})
	if err != nil { return nil, err }

	glyphMask := convertAlphaToGlyphMask(alphaMask)
	self.masks.Set(key, glyphMask)
	self.trackPeak()
	return glyphMask, nil
}

// Returns the combined size of all currently cached artifacts, in
// bytes (mask sizes are approximations, see [GlyphMask]).
func (self *TypeCache) ApproxByteSize() int { return self.shared.Size() }

// Returns the maximum size the cache has reached at any point of its
// life. This is useful to determine the actual cache usage within
// your application and set capacities to reasonable values.
func (self *TypeCache) PeakSize() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.peakSize
}

// Returns the capacity the cache was created with, in bytes.
func (self *TypeCache) Capacity() int { return self.shared.Capacity() }

// Removes every cached artifact.
func (self *TypeCache) Clear() {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.shared.Clear()
}

// Provides access to the underlying shared [cache.Cache]. Additional
// artifact producers can bind their own segments to it and join the
// same eviction budget.
func (self *TypeCache) SharedCache() *cache.Cache { return self.shared }

// Precondition: self.mutex is held.
func (self *TypeCache) glyphOutline(typeface *Typeface, size fract.Unit, index GlyphIndex) (sfnt.Segments, error) {
	key := glyphKey{ typeface: typeface.id, size: size, index: index }
	if outline, found := self.outlines.Get(key); found { return outline, nil }
	outline, err := typeface.loadOutline(index, size)
	if err != nil { return nil, err }
	self.outlines.Set(key, outline)
	self.trackPeak()
	return outline, nil
}

// Precondition: self.mutex is held.
func (self *TypeCache) trackPeak() {
	if size := self.shared.Size(); size > self.peakSize {
		self.peakSize = size
	}
}
