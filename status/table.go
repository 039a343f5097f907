package status

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Table maps metric names to values of type T allocated on first Get
// The zero value is ready to use; returned pointers stay valid for the table's lifetime
type Table[T any] struct {
	entries sync.Map // string -> *T
	size    atomic.Int64
}

func (t *Table[T]) Get(name string) *T {
	if v, ok := t.entries.Load(name); ok {
		return v.(*T)
	}
	v, loaded := t.entries.LoadOrStore(name, new(T))
	if !loaded {
		t.size.Add(1)
	}
	return v.(*T)
}

func (t *Table[T]) Len() int {
	return int(t.size.Load())
}

// Each visits every metric in name order
func (t *Table[T]) Each(fn func(name string, v *T)) {
	names := make([]string, 0, t.Len())
	t.entries.Range(func(k, _ any) bool {
		names = append(names, k.(string))
		return true
	})
	slices.Sort(names)
	for _, name := range names {
		fn(name, t.Get(name))
	}
}
