package status

import (
	"sync"
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	r := NewRegistry()

	a := r.Ints.Get(KeyFrames)
	b := r.Ints.Get(KeyFrames)
	if a != b {
		t.Error("Expected Get to return the same pointer for a key")
	}

	a.Store(42)
	if b.Load() != 42 {
		t.Errorf("Expected 42 through cached pointer, got %d", b.Load())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Floats.Get(KeyActualFPS).Add(1)
			}
		}()
	}
	wg.Wait()

	if got := r.Floats.Get(KeyActualFPS).Get(); got != 1600 {
		t.Errorf("Expected 1600 after concurrent adds, got %v", got)
	}
	if r.Floats.Count() != 1 {
		t.Errorf("Expected 1 float metric, got %d", r.Floats.Count())
	}
}

func TestRangeSorted(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	m.Get("b")
	m.Get("a")
	m.Get("c")

	var keys []string
	m.Range(func(key string, _ *AtomicFloat) {
		keys = append(keys, key)
	})

	want := []string{"a", "b", "c"}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("Expected sorted keys %v, got %v", want, keys)
		}
	}
}
