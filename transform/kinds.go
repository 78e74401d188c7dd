package transform

import (
	"container/heap"
	"iter"
	"slices"

	list "github.com/bahlo/generic-list-go"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gammazero/deque"
	"github.com/google/btree"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const sortedSetDegree = 16

// ToSlice collects seq in order. The result is never nil.
func ToSlice(seq iter.Seq[string]) []string {
	return slices.AppendSeq([]string{}, seq)
}

// ToHashSet collects seq into an unordered set.
func ToHashSet(seq iter.Seq[string]) mapset.Set[string] {
	s := mapset.NewThreadUnsafeSet[string]()
	for v := range seq {
		s.Add(v)
	}
	return s
}

// ToSortedSet collects seq into a set iterated in ascending order.
func ToSortedSet(seq iter.Seq[string]) *btree.BTreeG[string] {
	t := btree.NewOrderedG[string](sortedSetDegree)
	for v := range seq {
		t.ReplaceOrInsert(v)
	}
	return t
}

// ToOrderedSet collects seq into a set that remembers first insertion order.
func ToOrderedSet(seq iter.Seq[string]) *orderedmap.OrderedMap[string, struct{}] {
	m := orderedmap.New[string, struct{}]()
	for v := range seq {
		m.Set(v, struct{}{})
	}
	return m
}

// ToDeque collects seq into a double-ended queue, front to back.
func ToDeque(seq iter.Seq[string]) *deque.Deque[string] {
	d := new(deque.Deque[string])
	for v := range seq {
		d.PushBack(v)
	}
	return d
}

// ToList collects seq into a doubly linked list, front to back.
func ToList(seq iter.Seq[string]) *list.List[string] {
	l := list.New[string]()
	for v := range seq {
		l.PushBack(v)
	}
	return l
}

// ToMaxHeap collects seq and heapifies it in one pass.
func ToMaxHeap(seq iter.Seq[string]) *MaxHeap {
	h := &MaxHeap{items: ToSlice(seq)}
	heap.Init(&h.items)
	return h
}
