package cache

import "sync"

// A Cache is a concurrent-safe, capacity-bounded LRU cache shared by
// any number of [Segment] values. Each segment contributes entries of
// its own key and value types, but recency is tracked globally: when
// the cache runs out of space, the least recently used entry is
// evicted no matter which segment owns it.
//
// The zero value is not valid, use [New]() to create caches.
type Cache struct {
	mutex    sync.Mutex
	capacity int
	total    int
	ring     node // sentinel anchoring the global recency ring
}

// Creates a new cache bounded by the given capacity. The capacity is
// measured in whatever units the segment size functions report (entry
// counts, bytes, element counts...) and stays fixed for the cache's
// whole lifetime. Negative capacities will panic.
func New(capacity int) *Cache {
	if capacity < 0 { panic("capacity < 0") } // likely a dev mistake
	cache := &Cache{ capacity: capacity }
	cache.ring.newer = &cache.ring
	cache.ring.older = &cache.ring
	return cache
}

// Returns the capacity the cache was created with.
func (self *Cache) Capacity() int { return self.capacity }

// Returns the combined size of all currently cached entries, in the
// same units as the cache capacity.
func (self *Cache) Size() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.total
}

// Evicts the globally least recently used entries, regardless of
// their owning segments, until the combined size of the remaining
// entries no longer exceeds maxSize. Trim(0) empties the cache.
//
// The mutex is reacquired for each eviction step, so concurrent
// reads and writes can interleave with a long trim.
func (self *Cache) Trim(maxSize int) {
	if maxSize < 0 { maxSize = 0 }
	for {
		self.mutex.Lock()
		if self.total <= maxSize {
			self.mutex.Unlock()
			return
		}
		oldest := self.ring.newer
		if oldest == &self.ring {
			self.mutex.Unlock()
			return
		}

		// evict through the internal removal path. going through the
		// owning segment's public API here would try to lock the
		// mutex we are already holding
		oldest.owner.dropFromSegment()
		self.removeLocked(oldest)
		self.mutex.Unlock()
	}
}

// Removes every entry from the cache, leaving all bound segments
// empty and the cache size at zero.
func (self *Cache) Clear() {
	self.mutex.Lock()
	defer self.mutex.Unlock()

	// each entry must be dropped from its segment's mapping too,
	// resetting the ring pointers alone would leave the segments
	// pointing to unlinked entries
	current := self.ring.newer
	for current != &self.ring {
		newer := current.newer
		current.owner.dropFromSegment()
		current.newer = nil
		current.older = nil
		current = newer
	}
	self.ring.newer = &self.ring
	self.ring.older = &self.ring
	self.total = 0
}

// --- internal ring operations (cache mutex must be held) ---

// Links the given node as the most recently used one and adds its
// size to the cache total.
func (self *Cache) insertLocked(node *node) {
	self.linkFrontLocked(node)
	self.total += node.size
}

// Unlinks the given node and subtracts its size from the cache total.
func (self *Cache) removeLocked(node *node) {
	self.unlinkLocked(node)
	self.total -= node.size
}

// Relinks an already linked node as the most recently used one.
// The cache total doesn't change.
func (self *Cache) promoteLocked(node *node) {
	self.unlinkLocked(node)
	self.linkFrontLocked(node)
}

func (self *Cache) linkFrontLocked(node *node) {
	newest := self.ring.older
	node.newer = &self.ring
	node.older = newest
	newest.newer = node
	self.ring.older = node
}

func (self *Cache) unlinkLocked(node *node) {
	node.newer.older = node.older
	node.older.newer = node.newer
	node.newer = nil
	node.older = nil
}
