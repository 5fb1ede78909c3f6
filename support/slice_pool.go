package support

import (
	"sync"

	"github.com/timpalpant/gameforms"
)

var (
	contingencySlicePool = sync.Pool{
		New: func() interface{} {
			return make(gameforms.Contingency, 0)
		},
	}

	floatSlicePool = sync.Pool{
		New: func() interface{} {
			return make([]float64, 0)
		},
	}
)

// allocContingency returns a contingency of length n with nil entries.
func allocContingency(n int) gameforms.Contingency {
	c := contingencySlicePool.Get().(gameforms.Contingency)
	for i := 0; i < n; i++ {
		c = append(c, nil)
	}
	return c
}

func freeContingency(c gameforms.Contingency) {
	if cap(c) > 0 {
		for i := range c {
			c[i] = nil
		}
		contingencySlicePool.Put(c[:0])
	}
}

// allocFloatSlice returns a zeroed slice of length n.
func allocFloatSlice(n int) []float64 {
	s := floatSlicePool.Get().([]float64)
	for i := 0; i < n; i++ {
		s = append(s, 0)
	}
	return s
}

func freeFloatSlice(s []float64) {
	if cap(s) > 0 {
		floatSlicePool.Put(s[:0])
	}
}
