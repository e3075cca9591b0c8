// Package pqueue_test provides runnable examples for the priority
// structures. Each example is runnable via "go test -run Example".
package pqueue_test

import (
	"fmt"

	"github.com/hristev/shortpath/pqueue"
)

// ExampleIndexedDHeap demonstrates true decrease-key: key 2 is lowered
// after insertion and overtakes the previous minimum.
func ExampleIndexedDHeap() {
	// 1) A 4-ary heap over keys 0..9.
	h, err := pqueue.NewIndexedDHeap(4, 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Insert three keys.
	_ = h.Insert(0, 12)
	_ = h.Insert(1, 7)
	_ = h.Insert(2, 40)

	// 3) Lower key 2 below everything else — an O(log_D n) swim, no
	//    duplicate entries involved.
	_ = h.Decrease(2, 3)

	// 4) Drain in non-decreasing value order.
	for !h.Empty() {
		k, v, _ := h.ExtractMin()
		fmt.Printf("key=%d value=%d\n", k, v)
	}
	// Output:
	// key=2 value=3
	// key=1 value=7
	// key=0 value=12
}

// ExampleRadixHeap demonstrates the monotone contract: pops never
// decrease, and pushes below the last pop are rejected.
func ExampleRadixHeap() {
	h := pqueue.NewRadixHeap()
	_ = h.Push(4, 1)
	_ = h.Push(9, 2)

	v, k, _ := h.Pop()
	fmt.Printf("min value=%d key=%d\n", v, k)

	// The floor is now 4: a push of 2 violates monotonicity.
	err := h.Push(2, 3)
	fmt.Println(err != nil)
	// Output:
	// min value=4 key=1
	// true
}
