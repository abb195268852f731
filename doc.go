// textkit is a font introspection and glyph preparation toolkit.
// It wraps [golang.org/x/image/font/sfnt] for font parsing, naming
// table and metric access, and prepares the derived artifacts that
// text display code actually consumes: glyph outlines, advances and
// rasterized alpha masks.
//
// Deriving those artifacts is expensive, so the toolkit routes them
// through a shared, capacity-bounded LRU cache (see the cache
// subpackage): one budget bounds the memory of all the producers at
// once, with the globally least recently used artifact being evicted
// first regardless of its type.
//
// The main entry points are [Typeface], which binds a parsed font to
// the metric and naming APIs, and [TypeCache], which memoizes glyph
// artifacts for any number of typefaces.
//
// Like the rest of the Ebitengine ecosystem, the package can be
// compiled with '-tags gtxt' to strip the Ebitengine dependency and
// operate on standard [image.Alpha] masks instead.
package textkit
