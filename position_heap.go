package iterbar

import "container/heap"

var _ heap.Interface = (*positionHeap)(nil)

// positionHeap is a min-heap of released display positions.
type positionHeap []int

func (h positionHeap) Len() int { return len(h) }

func (h positionHeap) Less(i, j int) bool { return h[i] < h[j] }

func (h positionHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *positionHeap) Push(x interface{}) {
	*h = append(*h, x.(int))
}

func (h *positionHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
