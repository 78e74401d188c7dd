package transform

import (
	"container/heap"
	"slices"
)

// MaxHeap is a priority queue of strings; the greatest string (byte-wise)
// comes out first. The zero value is an empty heap.
type MaxHeap struct {
	items maxItems
}

// NewMaxHeap builds a heap from values. values is not retained.
func NewMaxHeap(values ...string) *MaxHeap {
	return ToMaxHeap(slices.Values(values))
}

// Len returns the number of queued strings.
func (h *MaxHeap) Len() int {
	return len(h.items)
}

// Push adds s.
func (h *MaxHeap) Push(s string) {
	heap.Push(&h.items, s)
}

// Pop removes and returns the greatest string.
func (h *MaxHeap) Pop() (string, bool) {
	if len(h.items) == 0 {
		return "", false
	}
	return heap.Pop(&h.items).(string), true
}

// Peek returns the greatest string without removing it.
func (h *MaxHeap) Peek() (string, bool) {
	if len(h.items) == 0 {
		return "", false
	}
	return h.items[0], true
}

// Items returns a copy of the backing array in heap order.
func (h *MaxHeap) Items() []string {
	return slices.Clone(h.items)
}

// Sorted returns the queued strings greatest first, leaving h untouched.
func (h *MaxHeap) Sorted() []string {
	out := slices.Clone(h.items)
	slices.Sort(out)
	slices.Reverse(out)
	return out
}

type maxItems []string

func (m maxItems) Len() int           { return len(m) }
func (m maxItems) Less(i, j int) bool { return m[i] > m[j] }
func (m maxItems) Swap(i, j int)      { m[i], m[j] = m[j], m[i] }

func (m *maxItems) Push(x any) {
	*m = append(*m, x.(string))
}

func (m *maxItems) Pop() any {
	old := *m
	n := len(old)
	x := old[n-1]
	*m = old[:n-1]
	return x
}
