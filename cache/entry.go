package cache

// A node in the shared recency ring. Every cached entry embeds one,
// and the [Cache] itself anchors the ring with a sentinel node. For
// any linked node, newer points towards more recently used entries
// and older towards less recently used ones, with the sentinel
// closing the circle at both ends (sentinel.older is the most
// recently used entry, sentinel.newer the least recently used one).
//
// All node manipulation happens while holding the cache mutex.
type node struct {
	newer *node
	older *node
	size  int
	owner dropper
}

// Whether the node is currently part of a recency ring.
func (self *node) linked() bool { return self.newer != nil }

// The bridge between a ring node and the typed entry that embeds it.
// Eviction walks the ring, which only sees nodes; dropping the entry
// from its owning segment's mapping requires knowing the key type,
// so the generic entry takes care of that part itself.
type dropper interface {
	// Removes the entry from its owning segment's mapping. It does
	// not touch the ring nor the size accounting, and it must only
	// be called while holding the cache mutex.
	dropFromSegment()
}

// A single cached key-value pair. The segment's mapping owns the
// entry; the embedded ring node is only a structural reference.
type entry[K comparable, V any] struct {
	ringNode node
	key      K
	value    V
	segment  *Segment[K, V]
}

// Implements [dropper]. Must be called while holding the cache mutex.
func (self *entry[K, V]) dropFromSegment() {
	delete(self.segment.entries, self.key)
}
