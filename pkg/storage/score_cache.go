package storage

import (
	"container/list"
	"sync"
	"time"
)

// cacheEntry wraps a stored value with its insertion metadata.
type cacheEntry struct {
	key       string
	value     interface{}
	timestamp time.Time
	element   *list.Element
}

// ScoreCache is an in-memory key-value cache with TTL expiry and
// FIFO-by-insertion eviction once the entry cap is exceeded.
//
// Updating an existing key refreshes its value and timestamp but keeps its
// original insertion position, so eviction order follows first insertion.
// Expired entries are removed lazily on read.
type ScoreCache struct {
	maxSize   int
	ttl       time.Duration
	items     map[string]*cacheEntry
	fifoList  *list.List
	mu        sync.Mutex
	now       func() time.Time
	hits      uint64
	misses    uint64
	evictions uint64
}

// NewScoreCache creates a cache holding at most maxSize entries, each valid
// for ttl after insertion.
func NewScoreCache(maxSize int, ttl time.Duration) *ScoreCache {
	return &ScoreCache{
		maxSize:  maxSize,
		ttl:      ttl,
		items:    make(map[string]*cacheEntry),
		fifoList: list.New(),
		now:      time.Now,
	}
}

// Get returns the cached value for key if present and fresh. A stale entry is
// removed and reported as a miss.
func (sc *ScoreCache) Get(key string) (interface{}, bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	entry, exists := sc.items[key]
	if !exists {
		sc.misses++
		return nil, false
	}

	if sc.ttl > 0 && sc.now().Sub(entry.timestamp) >= sc.ttl {
		sc.removeEntry(entry)
		sc.misses++
		return nil, false
	}

	sc.hits++
	return entry.value, true
}

// Set inserts or overwrites the value for key with the current timestamp,
// evicting the oldest-inserted entry when the cap is exceeded.
func (sc *ScoreCache) Set(key string, value interface{}) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if entry, exists := sc.items[key]; exists {
		entry.value = value
		entry.timestamp = sc.now()
		return
	}

	entry := &cacheEntry{
		key:       key,
		value:     value,
		timestamp: sc.now(),
	}
	entry.element = sc.fifoList.PushBack(entry)
	sc.items[key] = entry

	if len(sc.items) > sc.maxSize {
		sc.evictOldest()
	}
}

// Size returns the current number of entries.
func (sc *ScoreCache) Size() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return len(sc.items)
}

// Stats returns a snapshot of cache counters.
func (sc *ScoreCache) Stats() CacheStats {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	return CacheStats{
		Size:      len(sc.items),
		MaxSize:   sc.maxSize,
		TTL:       sc.ttl,
		Hits:      sc.hits,
		Misses:    sc.misses,
		Evictions: sc.evictions,
	}
}

// SetClock overrides the cache's time source. Intended for tests.
func (sc *ScoreCache) SetClock(now func() time.Time) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.now = now
}

func (sc *ScoreCache) evictOldest() {
	element := sc.fifoList.Front()
	if element != nil {
		sc.removeEntry(element.Value.(*cacheEntry))
		sc.evictions++
	}
}

func (sc *ScoreCache) removeEntry(entry *cacheEntry) {
	delete(sc.items, entry.key)
	sc.fifoList.Remove(entry.element)
}

// CacheStats describes cache occupancy and counters.
type CacheStats struct {
	Size      int           `json:"size"`
	MaxSize   int           `json:"max_size"`
	TTL       time.Duration `json:"ttl"`
	Hits      uint64        `json:"hits"`
	Misses    uint64        `json:"misses"`
	Evictions uint64        `json:"evictions"`
}
