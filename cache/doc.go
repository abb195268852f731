// The cache subpackage provides the shared LRU cache that textkit
// uses to memoize expensive derived artifacts like glyph masks,
// outlines and advances.
//
// The design revolves around one [Cache] with a fixed capacity and
// many typed [Segment] namespaces bound to it. Each segment stores
// values of a single type and sizes them with its own [SizeFunc],
// but all the segments draw from the same budget and share a single
// cache-wide recency order: under pressure, the globally least
// recently used entry is evicted regardless of which segment owns
// it. This lets one capacity figure bound the memory of several
// heterogeneous producers at once, instead of having to guess a
// separate budget for each.
//
// Capacity units are abstract. The simplest setups count entries
// (one unit each), while textkit's own [TypeCache] mixes byte-sized
// glyph masks with unit-sized advances in one cache; both are fine,
// as long as each segment's size function is consistent with what
// the capacity is supposed to mean.
//
// All cache and segment operations are safe for concurrent use. The
// cache serializes reads and writes with a single exclusive mutex:
// reads also reposition entries in the recency order, so they are
// writes at the structural level and a reader-writer lock would buy
// nothing here.
//
// [TypeCache]: https://pkg.go.dev/github.com/textkit-dev/textkit#TypeCache
package cache
