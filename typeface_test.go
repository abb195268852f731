package textkit

import "testing"

import "golang.org/x/image/font/gofont/goregular"

import "github.com/textkit-dev/textkit/fract"

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}

func TestTypefaceBasics(t *testing.T) {
	typeface, err := LoadTypeface(goregular.TTF)
	if err != nil { t.Fatalf("LoadTypeface error: %s", err) }

	if typeface.Name() == "" { t.Fatal("expected a non-empty font name") }
	if typeface.NumGlyphs() <= 0 { t.Fatal("expected a positive glyph count") }
	if typeface.SfntFont() == nil { t.Fatal("expected a non-nil sfnt font") }
	if typeface.UnitsPerEm() <= 0 { t.Fatal("expected a positive em size") }

	index, err := typeface.GlyphIndex('A')
	if err != nil { t.Fatalf("GlyphIndex error: %s", err) }
	if index == 0 { t.Fatal("expected 'A' to be covered by the font") }

	// private use area rune, missing glyph expected
	index, err = typeface.GlyphIndex('')
	if err != nil { t.Fatalf("GlyphIndex error: %s", err) }
	if index != 0 { t.Fatalf("expected missing glyph, got index %d", index) }
}

func TestTypefaceMetrics(t *testing.T) {
	typeface, err := LoadTypeface(goregular.TTF)
	if err != nil { t.Fatalf("LoadTypeface error: %s", err) }

	metrics, err := typeface.Metrics(fract.FromInt(16))
	if err != nil { t.Fatalf("Metrics error: %s", err) }
	if metrics.Ascent <= 0 { t.Fatalf("expected positive ascent, got %d", metrics.Ascent) }
	if metrics.Descent <= 0 { t.Fatalf("expected positive descent, got %d", metrics.Descent) }
	if metrics.LineHeight < metrics.Ascent + metrics.Descent {
		t.Fatalf("line height %d smaller than ascent %d + descent %d",
			metrics.LineHeight, metrics.Ascent, metrics.Descent)
	}
	gap := metrics.LineHeight - metrics.Ascent - metrics.Descent
	if metrics.LineGap != gap {
		t.Fatalf("expected line gap %d, got %d", gap, metrics.LineGap)
	}
	if metrics.CapHeight <= metrics.XHeight {
		t.Fatalf("expected cap height %d above x-height %d",
			metrics.CapHeight, metrics.XHeight)
	}
}

func TestTypefaceIDs(t *testing.T) {
	typefaceA, err := LoadTypeface(goregular.TTF)
	if err != nil { t.Fatalf("LoadTypeface error: %s", err) }
	typefaceB := NewTypeface(typefaceA.SfntFont())
	if typefaceA.id == typefaceB.id {
		t.Fatal("expected distinct ids for distinct typefaces")
	}
}

func TestTypefaceContracts(t *testing.T) {
	if doesNotPanic(func() { NewTypeface(nil) }) {
		t.Fatal("expected panic on nil font")
	}
	_, err := LoadTypeface([]byte("definitely not a font"))
	if err == nil { t.Fatal("expected parse error on garbage bytes") }
}
