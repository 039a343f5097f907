package status

import (
	"fmt"
	"sync/atomic"
)

// Registry is the shared metrics facade
// The render loop writes through cached pointers; the HUD and exit summary read them
type Registry struct {
	Bools   Table[atomic.Bool]
	Ints    Table[atomic.Int64]
	Floats  Table[Float]
	Strings Table[Text]
}

func NewRegistry() *Registry {
	return &Registry{}
}

// TotalCount returns the number of metrics across all kinds
func (r *Registry) TotalCount() int {
	return r.Bools.Len() + r.Ints.Len() + r.Floats.Len() + r.Strings.Len()
}

// Lines formats every metric as "key: value", grouped by kind and sorted by key
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Strings.Each(func(key string, ptr *Text) {
		lines = append(lines, fmt.Sprintf("%s: %s", key, ptr.Load()))
	})
	r.Ints.Each(func(key string, ptr *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s: %d", key, ptr.Load()))
	})
	r.Floats.Each(func(key string, ptr *Float) {
		lines = append(lines, fmt.Sprintf("%s: %.2f", key, ptr.Load()))
	})
	r.Bools.Each(func(key string, ptr *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s: %t", key, ptr.Load()))
	})
	return lines
}
