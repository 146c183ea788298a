package status

import (
	"slices"
	"sync"
)

// Table holds named metric cells kept in key order
// A cell never moves once allocated, systems hold the pointer for the life of the run
type Table[T any] struct {
	mu    sync.Mutex
	keys  []string
	cells map[string]*T
}

func newTable[T any]() *Table[T] {
	return &Table[T]{cells: make(map[string]*T)}
}

// Get returns the cell for key, allocating a zero cell on first use
func (t *Table[T]) Get(key string) *T {
	t.mu.Lock()
	defer t.mu.Unlock()

	if cell, ok := t.cells[key]; ok {
		return cell
	}
	cell := new(T)
	t.cells[key] = cell
	i, _ := slices.BinarySearch(t.keys, key)
	t.keys = slices.Insert(t.keys, i, key)
	return cell
}

// Range visits cells in key order
func (t *Table[T]) Range(fn func(key string, cell *T)) {
	t.mu.Lock()
	keys := slices.Clone(t.keys)
	cells := make([]*T, len(keys))
	for i, k := range keys {
		cells[i] = t.cells[k]
	}
	t.mu.Unlock()

	for i, k := range keys {
		fn(k, cells[i])
	}
}

// Count returns the number of allocated cells
func (t *Table[T]) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.keys)
}
