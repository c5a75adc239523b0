package storage

import (
	"testing"
	"time"
)

func TestScoreCache_HitBeforeTTL(t *testing.T) {
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	cache := NewScoreCache(10, 6*time.Hour)
	cache.SetClock(func() time.Time { return base })

	cache.Set("seo tips", "score")

	cache.SetClock(func() time.Time { return base.Add(6*time.Hour - time.Second) })
	value, ok := cache.Get("seo tips")
	if !ok {
		t.Fatal("Expected cache hit just before TTL expiry")
	}
	if value != "score" {
		t.Errorf("Expected cached value 'score', got %v", value)
	}
}

func TestScoreCache_MissAfterTTLRemovesEntry(t *testing.T) {
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	cache := NewScoreCache(10, 6*time.Hour)
	cache.SetClock(func() time.Time { return base })

	cache.Set("seo tips", "score")

	cache.SetClock(func() time.Time { return base.Add(6*time.Hour + time.Second) })
	if _, ok := cache.Get("seo tips"); ok {
		t.Error("Expected cache miss after TTL expiry")
	}
	if cache.Size() != 0 {
		t.Errorf("Expected stale entry to be removed, size is %d", cache.Size())
	}
}

func TestScoreCache_FIFOEviction(t *testing.T) {
	cache := NewScoreCache(3, time.Hour)

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("c", 3)
	cache.Set("d", 4)

	if _, ok := cache.Get("a"); ok {
		t.Error("Expected oldest-inserted entry 'a' to be evicted")
	}
	for _, key := range []string{"b", "c", "d"} {
		if _, ok := cache.Get(key); !ok {
			t.Errorf("Expected entry %q to survive eviction", key)
		}
	}
}

func TestScoreCache_UpdateKeepsInsertionOrder(t *testing.T) {
	cache := NewScoreCache(3, time.Hour)

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("c", 3)
	cache.Set("a", 10) // refresh, not reinsertion
	cache.Set("d", 4)

	if _, ok := cache.Get("a"); ok {
		t.Error("Expected 'a' to be evicted by insertion order despite update")
	}
	value, ok := cache.Get("b")
	if !ok || value != 2 {
		t.Errorf("Expected 'b' to survive with value 2, got %v (present=%t)", value, ok)
	}
}

func TestScoreCache_Stats(t *testing.T) {
	cache := NewScoreCache(5, time.Hour)

	cache.Set("a", 1)
	cache.Get("a")
	cache.Get("missing")

	stats := cache.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("Expected 1 hit and 1 miss, got %d/%d", stats.Hits, stats.Misses)
	}
	if stats.Size != 1 || stats.MaxSize != 5 {
		t.Errorf("Expected size 1 of max 5, got %d/%d", stats.Size, stats.MaxSize)
	}
}
