package discord

import (
	"fmt"
	"sync"
	"testing"
)

func TestGuildIndex(t *testing.T) {
	ix := newGuildIndex()
	ix.Add(1, "One")
	ix.Add(2, "Two")
	ix.Add(1, "Uno")
	ix.Add(0, "ignored")

	if ix.Size() != 2 {
		t.Errorf("Size: got %d, want 2", ix.Size())
	}
	if name, ok := ix.Name(1); !ok || name != "Uno" {
		t.Errorf("Name(1): got %q, %v", name, ok)
	}
	if _, ok := ix.Name(3); ok {
		t.Error("Name(3): expected miss")
	}
}

func TestGuildIndex_Concurrent(t *testing.T) {
	ix := newGuildIndex()

	const goroutines = 20
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id uint64) {
			defer wg.Done()
			ix.Add(id, fmt.Sprintf("guild-%d", id))
			ix.Name(id)
		}(uint64(i + 1))
	}
	wg.Wait()

	if ix.Size() != goroutines {
		t.Errorf("Size: got %d, want %d", ix.Size(), goroutines)
	}
}
