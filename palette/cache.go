package palette

// LabCache memoizes ToLab. Once the cache holds capacity entries, the next miss
// flushes it entirely before storing the new conversion.
//
// A LabCache is not safe for concurrent use; the Extractor owning it serializes access.
type LabCache struct {
	enabled  bool
	capacity int
	entries  map[Color]Lab
	flushes  int
}

// NewLabCache returns a cache holding at most capacity conversions. A disabled cache
// recomputes every lookup.
func NewLabCache(enabled bool, capacity int) *LabCache {
	if capacity <= 0 {
		capacity = DefaultMaxCacheSize
	}
	return &LabCache{
		enabled:  enabled,
		capacity: capacity,
		entries:  make(map[Color]Lab),
	}
}

// Get returns the Lab coordinates of c.
func (lc *LabCache) Get(c Color) Lab {
	if !lc.enabled {
		return ToLab(c)
	}
	if lab, ok := lc.entries[c]; ok {
		return lab
	}

	if len(lc.entries) >= lc.capacity {
		lc.entries = make(map[Color]Lab, lc.capacity)
		lc.flushes++
	}
	lab := ToLab(c)
	lc.entries[c] = lab
	return lab
}

// Len returns the number of cached conversions.
func (lc *LabCache) Len() int { return len(lc.entries) }

// Flushes returns how many times the cache overflowed and was cleared.
func (lc *LabCache) Flushes() int { return lc.flushes }

// Reset drops every cached conversion.
func (lc *LabCache) Reset() {
	lc.entries = make(map[Color]Lab)
}
