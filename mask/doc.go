// The mask subpackage converts glyph outlines into alpha masks.
//
// Rasterization is the most expensive step of any glyph pipeline,
// which is why textkit memoizes its results through the shared
// cache; this subpackage only cares about producing the masks.
// The [Rasterizer] interface keeps the process pluggable, and
// [SweepRasterizer] provides the standard implementation on top of
// [golang.org/x/image/vector].
package mask
