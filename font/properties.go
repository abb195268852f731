package font

import "sync"
import "errors"

import "golang.org/x/image/font/sfnt"

// Returned when a naming table property is missing or empty.
var ErrNotFound = errors.New("font property not found or empty")

// Naming table lookups need an [sfnt.Buffer], which can't be used
// concurrently. A pool keeps repeated property reads allocation-free
// without serializing independent callers.
var bufferPool = sync.Pool{
	New: func() any { return &sfnt.Buffer{} },
}

// Returns the requested naming table property for the given font.
// If the property is missing, [ErrNotFound] will be returned. Other
// errors are also possible (e.g., if the naming table is invalid).
func Property(font *sfnt.Font, property sfnt.NameID) (string, error) {
	buffer := bufferPool.Get().(*sfnt.Buffer)
	value, err := font.Name(buffer, property)
	bufferPool.Put(buffer)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return value, err
}

// Returns the family name of the given font (e.g. "Noto Sans").
func Family(font *sfnt.Font) (string, error) {
	return Property(font, sfnt.NameIDFamily)
}

// Returns the subfamily name of the given font. In most cases, the
// value will be one of: Regular, Italic, Bold, Bold Italic.
func Subfamily(font *sfnt.Font) (string, error) {
	return Property(font, sfnt.NameIDSubfamily)
}

// Returns the full name of the given font (e.g. "Noto Sans Bold").
// This is the name textkit uses to identify fonts.
func FullName(font *sfnt.Font) (string, error) {
	return Property(font, sfnt.NameIDFull)
}

// Returns the unique identifier of the given font.
func Identifier(font *sfnt.Font) (string, error) {
	return Property(font, sfnt.NameIDUniqueIdentifier)
}

// Returns the version string of the given font.
func Version(font *sfnt.Font) (string, error) {
	return Property(font, sfnt.NameIDVersion)
}

// Returns the runes in the given text that can't be represented by
// the font. If runes are repeated in the input text, the returned
// slice may contain them multiple times too.
//
// When loading fonts dynamically, checking them against the glyphs
// your application requires is good practice.
func MissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	buffer := bufferPool.Get().(*sfnt.Buffer)
	defer bufferPool.Put(buffer)

	missing := make([]rune, 0)
	for _, codePoint := range text {
		index, err := font.GlyphIndex(buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}
