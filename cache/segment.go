package cache

// A SizeFunc reports the cache space consumed by a single entry, in
// the same units as the cache capacity. Size functions must be pure:
// the reported size is recorded on insertion and subtracted verbatim
// on removal or eviction.
type SizeFunc[K comparable, V any] func(key K, value V) int

// A Segment is a typed namespace within a shared [Cache]. Segments
// are cheap: each producer of derived values creates its own, with
// its own key and value types and its own [SizeFunc], and all the
// segments bound to one cache compete for the same capacity budget.
//
// Because of that, cached values must be treated as ephemeral: any
// write through any segment may evict entries owned by any other
// segment sharing the cache.
//
// Segments must be created with [NewSegment]() and stay bound to
// their cache for their whole lifetime.
type Segment[K comparable, V any] struct {
	cache   *Cache
	entries map[K]*entry[K, V]
	sizeOf  SizeFunc[K, V]
}

// Creates a new segment bound to the given cache. A nil sizeOf
// function assigns every entry a cost of one unit, turning the
// shared capacity into a plain entry count.
func NewSegment[K comparable, V any](cache *Cache, sizeOf SizeFunc[K, V]) *Segment[K, V] {
	if cache == nil { panic("nil cache") } // likely a dev mistake
	if sizeOf == nil {
		sizeOf = func(K, V) int { return 1 }
	}
	return &Segment[K, V]{
		cache: cache,
		entries: make(map[K]*entry[K, V], 32),
		sizeOf: sizeOf,
	}
}

// Returns the value cached under the given key, marking the entry as
// the most recently used one of the whole cache. The second return
// value indicates whether the key was found. Reads never evict.
func (self *Segment[K, V]) Get(key K) (V, bool) {
	cache := self.cache
	cache.mutex.Lock()
	cachedEntry, found := self.entries[key]
	if !found {
		cache.mutex.Unlock()
		var zero V
		return zero, false
	}
	cache.promoteLocked(&cachedEntry.ringNode)
	value := cachedEntry.value
	cache.mutex.Unlock()
	return value, true
}

// Caches the given value under the given key, as the most recently
// used entry of the whole cache. If this pushes the combined size of
// the cached entries beyond the cache capacity, the least recently
// used entries are evicted right afterwards, which may affect any
// segment sharing the cache (including this one: a single value
// bigger than the whole capacity is evicted immediately).
//
// Keys must be unique within a segment. Setting a key that's already
// present is a contract violation and will panic without modifying
// the cache; remove the key first if replacement is intended.
func (self *Segment[K, V]) Set(key K, value V) {
	newEntry := &entry[K, V]{ key: key, value: value, segment: self }
	newEntry.ringNode.size = self.sizeOf(key, value) // user code, keep outside the mutex
	newEntry.ringNode.owner = newEntry
	if newEntry.ringNode.size < 0 { panic("SizeFunc returned a negative size") }

	cache := self.cache
	cache.mutex.Lock()
	_, alreadyPresent := self.entries[key]
	if alreadyPresent {
		cache.mutex.Unlock()
		panic("duplicate key in cache segment")
	}
	self.entries[key] = newEntry
	cache.insertLocked(&newEntry.ringNode)
	cache.mutex.Unlock()

	// the mutex can't be held here: trimming reacquires it per step
	cache.Trim(cache.capacity)
}

// Removes the entry cached under the given key, if any, releasing
// exactly the space its size function reported on insertion.
func (self *Segment[K, V]) Remove(key K) {
	cache := self.cache
	cache.mutex.Lock()
	defer cache.mutex.Unlock()
	cachedEntry, found := self.entries[key]
	if !found { return }
	delete(self.entries, key)
	cache.removeLocked(&cachedEntry.ringNode)
}

// Returns the number of entries currently cached in this segment.
func (self *Segment[K, V]) Len() int {
	self.cache.mutex.Lock()
	defer self.cache.mutex.Unlock()
	return len(self.entries)
}
