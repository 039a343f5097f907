package status

import (
	"math"
	"sync/atomic"
	"unicode/utf8"
)

// MaxTextLen caps Text values in bytes so a HUD field stays one row wide
const MaxTextLen = 20

// Float is a float64 metric kept as IEEE-754 bits
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Load() float64 { return math.Float64frombits(f.bits.Load()) }

func (f *Float) Store(v float64) { f.bits.Store(math.Float64bits(v)) }

// Update replaces the value with fn(old), retrying if another writer got there first
func (f *Float) Update(fn func(old float64) float64) float64 {
	for {
		old := f.bits.Load()
		next := fn(math.Float64frombits(old))
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// Text is a short label metric
type Text struct {
	v atomic.Value // string
}

func (t *Text) Load() string {
	s, _ := t.v.Load().(string)
	return s
}

// Store keeps at most MaxTextLen bytes of s, cut on a rune boundary
func (t *Text) Store(s string) {
	if len(s) > MaxTextLen {
		n := MaxTextLen
		for n > 0 && !utf8.RuneStart(s[n]) {
			n--
		}
		s = s[:n]
	}
	t.v.Store(s)
}
