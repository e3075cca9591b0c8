package pqueue

import "fmt"

// InvariantCheck inspects the private position/inverse/heap-order state of
// an IndexedDHeap and returns a description of the first violation found,
// or "" if the structure is consistent. Test-only export.
func InvariantCheck(h *IndexedDHeap) string {
	// 1) pm and im must be mutually inverse over the occupied prefix.
	for s := 0; s < h.size; s++ {
		k := h.im[s]
		if k == absent {
			return fmt.Sprintf("slot %d occupied but im[%d]==absent", s, s)
		}
		if h.pm[k] != s {
			return fmt.Sprintf("pm[im[%d]]=%d, want %d", s, h.pm[k], s)
		}
	}

	// 2) Slots past size must be vacated.
	for s := h.size; s < h.n; s++ {
		if h.im[s] != absent {
			return fmt.Sprintf("slot %d beyond size=%d still holds key %d", s, h.size, h.im[s])
		}
	}

	// 3) Every present key must point into the occupied prefix.
	present := 0
	for k := 0; k < h.n; k++ {
		if h.pm[k] == absent {
			continue
		}
		present++
		if h.pm[k] >= h.size {
			return fmt.Sprintf("pm[%d]=%d beyond size=%d", k, h.pm[k], h.size)
		}
	}
	if present != h.size {
		return fmt.Sprintf("present keys %d != size %d", present, h.size)
	}

	// 4) Heap order under branching factor D.
	for s := 0; s < h.size; s++ {
		for k := 0; k < h.d; k++ {
			c := h.child(s, k)
			if c >= h.size {
				break
			}
			if h.values[h.im[s]] > h.values[h.im[c]] {
				return fmt.Sprintf("heap order broken: slot %d value %d > child slot %d value %d",
					s, h.values[h.im[s]], c, h.values[h.im[c]])
			}
		}
	}

	return ""
}
