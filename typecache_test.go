//go:build gtxt

package textkit

import "testing"

import "golang.org/x/image/font/gofont/goregular"

import "github.com/textkit-dev/textkit/fract"

func TestTypeCacheMemoization(t *testing.T) {
	typeface, err := LoadTypeface(goregular.TTF)
	if err != nil { t.Fatalf("LoadTypeface error: %s", err) }
	typeCache := NewTypeCache(64*1024, nil)
	size := fract.FromInt(16)

	index, err := typeface.GlyphIndex('g')
	if err != nil || index == 0 { t.Fatalf("glyph index lookup failed (%d, %s)", index, err) }

	advance, err := typeCache.GlyphAdvance(typeface, size, index)
	if err != nil { t.Fatalf("GlyphAdvance error: %s", err) }
	if advance <= 0 { t.Fatalf("expected positive advance, got %d", advance) }
	again, err := typeCache.GlyphAdvance(typeface, size, index)
	if err != nil { t.Fatalf("GlyphAdvance error: %s", err) }
	if again != advance { t.Fatalf("advance changed between calls (%d vs %d)", advance, again) }
	if typeCache.advances.Len() != 1 {
		t.Fatalf("expected 1 cached advance, got %d", typeCache.advances.Len())
	}

	outline, err := typeCache.GlyphOutline(typeface, size, index)
	if err != nil { t.Fatalf("GlyphOutline error: %s", err) }
	if len(outline) == 0 { t.Fatal("expected a non-empty outline for 'g'") }
	if typeCache.outlines.Len() != 1 {
		t.Fatalf("expected 1 cached outline, got %d", typeCache.outlines.Len())
	}

	glyphMask, err := typeCache.GlyphMask(typeface, size, index)
	if err != nil { t.Fatalf("GlyphMask error: %s", err) }
	if glyphMask == nil { t.Fatal("expected a non-nil mask for 'g'") }
	if glyphMask.Bounds().Empty() { t.Fatal("expected non-empty mask bounds") }
	if glyphMask.Bounds().Min.Y >= 0 {
		t.Fatalf("expected mask to extend above the baseline, got min y %d",
			glyphMask.Bounds().Min.Y)
	}
	sameMask, err := typeCache.GlyphMask(typeface, size, index)
	if err != nil { t.Fatalf("GlyphMask error: %s", err) }
	if sameMask != glyphMask { t.Fatal("expected the memoized mask back") }

	cached := typeCache.ApproxByteSize()
	if cached <= 0 { t.Fatal("expected a positive cached size") }
	if typeCache.PeakSize() < cached {
		t.Fatalf("peak size %d below current size %d", typeCache.PeakSize(), cached)
	}
}

func TestTypeCacheEmptyGlyphMask(t *testing.T) {
	typeface, err := LoadTypeface(goregular.TTF)
	if err != nil { t.Fatalf("LoadTypeface error: %s", err) }
	typeCache := NewTypeCache(64*1024, nil)
	size := fract.FromInt(16)

	index, err := typeface.GlyphIndex(' ')
	if err != nil || index == 0 { t.Fatalf("glyph index lookup failed (%d, %s)", index, err) }

	glyphMask, err := typeCache.GlyphMask(typeface, size, index)
	if err != nil { t.Fatalf("GlyphMask error: %s", err) }
	if glyphMask != nil { t.Fatal("expected a nil mask for the space glyph") }

	// the nil result must be cached too, the space advance must not
	advance, err := typeCache.GlyphAdvance(typeface, size, index)
	if err != nil { t.Fatalf("GlyphAdvance error: %s", err) }
	if advance <= 0 { t.Fatalf("expected positive space advance, got %d", advance) }
	if typeCache.masks.Len() != 1 {
		t.Fatalf("expected the nil mask to be cached, got %d masks", typeCache.masks.Len())
	}
}

func TestTypeCacheSharedBudget(t *testing.T) {
	typeface, err := LoadTypeface(goregular.TTF)
	if err != nil { t.Fatalf("LoadTypeface error: %s", err) }

	// a capacity this small forces masks, outlines and advances to
	// fight for space while we go through the whole alphabet
	typeCache := NewTypeCache(2048, nil)
	size := fract.FromInt(14)

	for codePoint := 'A'; codePoint <= 'z'; codePoint++ {
		index, err := typeface.GlyphIndex(codePoint)
		if err != nil { t.Fatalf("GlyphIndex error: %s", err) }
		if index == 0 { continue }
		_, err = typeCache.GlyphAdvance(typeface, size, index)
		if err != nil { t.Fatalf("GlyphAdvance error: %s", err) }
		_, err = typeCache.GlyphMask(typeface, size, index)
		if err != nil { t.Fatalf("GlyphMask error: %s", err) }

		if typeCache.ApproxByteSize() > typeCache.Capacity() {
			t.Fatalf("cache size %d exceeds capacity %d",
				typeCache.ApproxByteSize(), typeCache.Capacity())
		}
	}

	if typeCache.PeakSize() > typeCache.Capacity() {
		t.Fatalf("peak size %d exceeds capacity %d",
			typeCache.PeakSize(), typeCache.Capacity())
	}

	// evicted artifacts must be transparently rebuilt
	index, err := typeface.GlyphIndex('A')
	if err != nil || index == 0 { t.Fatalf("glyph index lookup failed (%d, %s)", index, err) }
	advance, err := typeCache.GlyphAdvance(typeface, size, index)
	if err != nil { t.Fatalf("GlyphAdvance error: %s", err) }
	if advance <= 0 { t.Fatalf("expected positive advance after eviction, got %d", advance) }
}

func TestTypeCacheClear(t *testing.T) {
	typeface, err := LoadTypeface(goregular.TTF)
	if err != nil { t.Fatalf("LoadTypeface error: %s", err) }
	typeCache := NewTypeCache(64*1024, nil)
	size := fract.FromInt(16)

	index, err := typeface.GlyphIndex('Q')
	if err != nil || index == 0 { t.Fatalf("glyph index lookup failed (%d, %s)", index, err) }
	_, err = typeCache.GlyphMask(typeface, size, index)
	if err != nil { t.Fatalf("GlyphMask error: %s", err) }

	peak := typeCache.PeakSize()
	typeCache.Clear()
	if typeCache.ApproxByteSize() != 0 {
		t.Fatalf("expected size 0 after clear, got %d", typeCache.ApproxByteSize())
	}
	if typeCache.PeakSize() != peak {
		t.Fatal("clear must not reset the peak size")
	}

	// the cache stays usable after a clear
	glyphMask, err := typeCache.GlyphMask(typeface, size, index)
	if err != nil { t.Fatalf("GlyphMask error: %s", err) }
	if glyphMask == nil { t.Fatal("expected a rebuilt mask after clear") }
}

func TestTypeCacheSeparateTypefaces(t *testing.T) {
	typefaceA, err := LoadTypeface(goregular.TTF)
	if err != nil { t.Fatalf("LoadTypeface error: %s", err) }
	typefaceB := NewTypeface(typefaceA.SfntFont())
	typeCache := NewTypeCache(64*1024, nil)
	size := fract.FromInt(16)

	index, err := typefaceA.GlyphIndex('A')
	if err != nil || index == 0 { t.Fatalf("glyph index lookup failed (%d, %s)", index, err) }
	_, err = typeCache.GlyphAdvance(typefaceA, size, index)
	if err != nil { t.Fatalf("GlyphAdvance error: %s", err) }
	_, err = typeCache.GlyphAdvance(typefaceB, size, index)
	if err != nil { t.Fatalf("GlyphAdvance error: %s", err) }
	if typeCache.advances.Len() != 2 {
		t.Fatalf("expected separate cache entries per typeface, got %d", typeCache.advances.Len())
	}
}
