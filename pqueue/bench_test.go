package pqueue_test

import (
	"math/rand"
	"testing"

	"github.com/hristev/shortpath/pqueue"
)

// benchValues produces a fixed random workload shared by the benchmarks.
func benchValues(n int) []int64 {
	rng := rand.New(rand.NewSource(42))
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(rng.Intn(1 << 20))
	}

	return out
}

// BenchmarkBinaryHeap_PushPop measures the lazy binary heap on an
// insert-all-then-drain workload.
func BenchmarkBinaryHeap_PushPop(b *testing.B) {
	const n = 4096
	values := benchValues(n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := pqueue.NewBinaryHeap(n)
		for k, v := range values {
			h.Push(k, v)
		}
		for h.Len() > 0 {
			_, _, _ = h.Pop()
		}
	}
}

// BenchmarkIndexedDHeap_ByArity measures insert+decrease+drain across
// branching factors; larger D shortens swims at the cost of wider sinks.
func BenchmarkIndexedDHeap_ByArity(b *testing.B) {
	const n = 4096
	values := benchValues(n)

	for _, d := range []int{2, 4, 8, 16} {
		b.Run(map[int]string{2: "D2", 4: "D4", 8: "D8", 16: "D16"}[d], func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				h, _ := pqueue.NewIndexedDHeap(d, n)
				for k, v := range values {
					_ = h.Insert(k, v)
				}
				for k := 0; k < n; k++ {
					_ = h.Decrease(k, values[k]/2)
				}
				for !h.Empty() {
					_, _, _ = h.ExtractMin()
				}
			}
		})
	}
}

// BenchmarkRadixHeap_Monotone measures the radix heap under its natural
// monotone access pattern.
func BenchmarkRadixHeap_Monotone(b *testing.B) {
	const n = 4096
	values := benchValues(n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := pqueue.NewRadixHeap()
		for k, v := range values {
			_ = h.Push(v, k)
		}
		for h.Len() > 0 {
			_, _, _ = h.Pop()
		}
	}
}
