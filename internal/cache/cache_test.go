package cache

import (
	"sync"
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := New[string, int](time.Minute)

	c.Set("quantity", 100)
	val, ok := c.Get("quantity")
	if !ok {
		t.Fatal("expected to find key")
	}
	if val != 100 {
		t.Errorf("expected 100, got %d", val)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("expected not to find missing key")
	}
}

func TestCacheExpiryWithMockedTime(t *testing.T) {
	c := New[string, string](time.Minute)

	// Mock time
	currentTime := time.Now()
	c.nowFunc = func() time.Time {
		return currentTime
	}

	c.Set("categories", "cached")

	if _, ok := c.Get("categories"); !ok {
		t.Fatal("expected to find fresh entry")
	}

	currentTime = currentTime.Add(2 * time.Minute)

	if _, ok := c.Get("categories"); ok {
		t.Error("expected entry to be expired after time advance")
	}
}

func TestCacheSetResetsExpiry(t *testing.T) {
	c := New[string, int](time.Minute)

	currentTime := time.Now()
	c.nowFunc = func() time.Time {
		return currentTime
	}

	c.Set("key", 1)
	currentTime = currentTime.Add(45 * time.Second)
	c.Set("key", 2)
	currentTime = currentTime.Add(45 * time.Second)

	// 90 seconds after the first Set, but only 45 after the second.
	val, ok := c.Get("key")
	if !ok {
		t.Fatal("expected re-set entry to still be live")
	}
	if val != 2 {
		t.Errorf("expected overwritten value 2, got %d", val)
	}
}

func TestCacheDelete(t *testing.T) {
	c := New[string, int](time.Minute)

	c.Set("key", 7)
	c.Delete("key")

	if _, ok := c.Get("key"); ok {
		t.Error("expected key to be deleted")
	}

	// Deleting a missing key must not panic.
	c.Delete("missing")
}

func TestCacheClear(t *testing.T) {
	c := New[string, int](time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("expected empty cache, got len=%d", c.Len())
	}
}

func TestCachePrune(t *testing.T) {
	c := New[string, string](time.Minute)

	currentTime := time.Now()
	c.nowFunc = func() time.Time {
		return currentTime
	}

	c.Set("stale1", "x")
	c.Set("stale2", "y")
	currentTime = currentTime.Add(2 * time.Minute)
	c.Set("fresh", "z")

	c.Prune()

	if c.Len() != 1 {
		t.Errorf("expected 1 entry after prune, got %d", c.Len())
	}
	if val, ok := c.Get("fresh"); !ok || val != "z" {
		t.Errorf("expected fresh entry to survive prune, got %q ok=%v", val, ok)
	}
}

func TestCacheConcurrency(t *testing.T) {
	c := New[int, int](time.Minute)

	var wg sync.WaitGroup
	const workers = 100

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Set(i, i*3)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			val, ok := c.Get(i)
			if !ok {
				t.Errorf("expected to find key %d", i)
				return
			}
			if val != i*3 {
				t.Errorf("expected %d, got %d", i*3, val)
			}
		}(i)
	}
	wg.Wait()
}

func TestCacheWithSliceValues(t *testing.T) {
	// Product lists are cached per category id.
	c := New[string, []string](time.Minute)

	c.Set("cat-cards", []string{"classic", "premium"})
	c.Set("cat-flyers", []string{"a5"})

	cards, ok := c.Get("cat-cards")
	if !ok {
		t.Fatal("expected to find cat-cards")
	}
	if len(cards) != 2 {
		t.Errorf("expected 2 products, got %d", len(cards))
	}

	if _, ok := c.Get("cat-posters"); ok {
		t.Error("expected not to find uncached category")
	}
}
