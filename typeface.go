package textkit

import "sync"
import "sync/atomic"

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

import "github.com/textkit-dev/textkit/font"
import "github.com/textkit-dev/textkit/fract"

// sfnt hinting is not applied, see sfnt's own documentation
const hintingNone = 0

// Typeface ids are handed out sequentially; they only need to be
// unique within the process, as cache key components.
var typefaceIDSeq uint64

// A Typeface binds a parsed font to textkit's introspection APIs:
// naming properties, scaled metrics, glyph lookups. It also owns the
// [sfnt.Buffer] used for those operations, so unlike a bare
// [sfnt.Font], a typeface is safe for concurrent use.
//
// Typefaces are identified by a process-unique id that [TypeCache]
// mixes into its keys, so two typefaces created from the same
// underlying font will cache their artifacts separately.
type Typeface struct {
	sfntFont *sfnt.Font
	name     string
	id       uint64
	mutex    sync.Mutex
	buffer   sfnt.Buffer
}

// Creates a [Typeface] from an already parsed font. Nil fonts will
// panic. The font's full name is looked up on creation; fonts with
// broken naming tables get an empty name but remain usable.
func NewTypeface(sfntFont *sfnt.Font) *Typeface {
	if sfntFont == nil { panic("nil font") } // likely a dev mistake
	name, err := font.FullName(sfntFont)
	if err != nil { name = "" }
	return &Typeface{
		sfntFont: sfntFont,
		name: name,
		id: atomic.AddUint64(&typefaceIDSeq, 1),
	}
}

// Parses the given font bytes and returns a [Typeface] for them. The
// bytes must not be modified while the typeface is in use.
func LoadTypeface(fontBytes []byte) (*Typeface, error) {
	sfntFont, name, err := font.Parse(fontBytes)
	if err != nil { return nil, err }
	typeface := NewTypeface(sfntFont)
	typeface.name = name
	return typeface, nil
}

// The equivalent of [LoadTypeface]() for font filepaths.
func LoadTypefaceFile(path string) (*Typeface, error) {
	sfntFont, name, err := font.ParseFile(path)
	if err != nil { return nil, err }
	typeface := NewTypeface(sfntFont)
	typeface.name = name
	return typeface, nil
}

// Returns the full font name reported by the font's naming table,
// or an empty string if the font doesn't provide one.
func (self *Typeface) Name() string { return self.name }

// Returns the underlying [sfnt.Font]. The font is shared, not
// copied: don't use it concurrently with this typeface unless you
// bring your own [sfnt.Buffer].
func (self *Typeface) SfntFont() *sfnt.Font { return self.sfntFont }

// Returns the number of glyphs in the typeface's font.
func (self *Typeface) NumGlyphs() int { return self.sfntFont.NumGlyphs() }

// Returns the number of font units per em square. Raw font table
// values are expressed relative to this.
func (self *Typeface) UnitsPerEm() fract.Unit {
	return fract.Unit(self.sfntFont.UnitsPerEm())
}

// Returns the glyph index for the given rune. Index zero is the
// font's "missing glyph" placeholder: a zero index with a nil error
// means the rune is simply not covered by the font.
func (self *Typeface) GlyphIndex(codePoint rune) (GlyphIndex, error) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.sfntFont.GlyphIndex(&self.buffer, codePoint)
}

// Returns the typeface metrics scaled to the given text size, where
// the size is given in fractional pixels (e.g. fract.FromInt(16) for
// a 16px size).
func (self *Typeface) Metrics(size fract.Unit) (Metrics, error) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	sfntMetrics, err := self.sfntFont.Metrics(&self.buffer, fixed.Int26_6(size), hintingNone)
	if err != nil { return Metrics{}, err }
	metrics := Metrics{
		LineHeight: fract.Unit(sfntMetrics.Height),
		Ascent: fract.Unit(sfntMetrics.Ascent),
		Descent: fract.Unit(sfntMetrics.Descent),
		XHeight: fract.Unit(sfntMetrics.XHeight),
		CapHeight: fract.Unit(sfntMetrics.CapHeight),
	}
	metrics.LineGap = metrics.LineHeight - metrics.Ascent - metrics.Descent
	return metrics, nil
}

// --- uncached artifact access, used by TypeCache on misses ---

func (self *Typeface) loadAdvance(index GlyphIndex, size fract.Unit) (fract.Unit, error) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	advance, err := self.sfntFont.GlyphAdvance(&self.buffer, index, fixed.Int26_6(size), hintingNone)
	return fract.Unit(advance), err
}

func (self *Typeface) loadOutline(index GlyphIndex, size fract.Unit) (sfnt.Segments, error) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	segments, err := self.sfntFont.LoadGlyph(&self.buffer, index, fixed.Int26_6(size), nil)
	if err != nil { return nil, err }

	// the segments are backed by the typeface buffer and would be
	// overwritten by the next load, clone them before they escape
	return append(sfnt.Segments(nil), segments...), nil
}
