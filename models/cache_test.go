package models

import (
	"reflect"
	"sync"
	"testing"
)

func TestWindowCacheMatchesCalculate(t *testing.T) {
	c := NewWindowCache(8)
	birth := mustDate(t, DefaultBirthDate)
	center := mustDate(t, "2024-01-15")

	first := c.Get(birth, center)
	second := c.Get(birth, center)
	want := Calculate(birth, center)

	if !reflect.DeepEqual(first, want) || !reflect.DeepEqual(second, want) {
		t.Error("cached window differs from Calculate")
	}
	if hits, misses := c.Stats(); hits != 1 || misses != 1 {
		t.Errorf("stats: got %d hits %d misses, want 1/1", hits, misses)
	}
}

func TestWindowCacheReturnsCopies(t *testing.T) {
	c := NewWindowCache(8)
	birth := mustDate(t, DefaultBirthDate)
	center := mustDate(t, "2024-01-15")

	w := c.Get(birth, center)
	w[0].Physical = -1

	if again := c.Get(birth, center); again[0].Physical == -1 {
		t.Error("caller mutation leaked into the cache")
	}
}

func TestWindowCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewWindowCache(2)
	birth := mustDate(t, DefaultBirthDate)

	c.Get(birth, mustDate(t, "2024-01-01"))
	c.Get(birth, mustDate(t, "2024-01-02"))
	c.Get(birth, mustDate(t, "2024-01-01"))
	c.Get(birth, mustDate(t, "2024-01-03"))
	if c.Len() != 2 {
		t.Fatalf("len: got %d, want 2", c.Len())
	}

	c.Get(birth, mustDate(t, "2024-01-01"))
	if hits, misses := c.Stats(); hits != 2 || misses != 3 {
		t.Errorf("recently used entry should survive: got %d hits %d misses, want 2/3", hits, misses)
	}
	c.Get(birth, mustDate(t, "2024-01-02"))
	if _, misses := c.Stats(); misses != 4 {
		t.Errorf("expected the evicted entry to miss again, misses = %d", misses)
	}
}

func TestWindowCacheDefaultSize(t *testing.T) {
	if c := NewWindowCache(0); c.size != DefaultCacheSize {
		t.Errorf("size: got %d, want %d", c.size, DefaultCacheSize)
	}
}

func TestWindowCacheConcurrent(t *testing.T) {
	c := NewWindowCache(16)
	birth := mustDate(t, DefaultBirthDate)
	center := mustDate(t, "2024-01-15")
	want := Calculate(birth, center)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := c.Get(birth, center); !reflect.DeepEqual(got, want) {
				t.Error("concurrent Get returned a different window")
			}
		}()
	}
	wg.Wait()
	if c.Len() != 1 {
		t.Errorf("len: got %d, want 1", c.Len())
	}
}
