package trimdecode

import (
	"encoding/json"
	"slices"

	list "github.com/bahlo/generic-list-go"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gammazero/deque"
	"github.com/google/btree"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/Gobd/trimdecode/transform"
)

// Slice is a list of strings trimmed when decoded, in document order.
type Slice[P Policy] []string

func (Slice[P]) shape() fieldShape {
	return fieldShape{array: true, policy: policyOf[P]()}
}

// UnmarshalJSON implements json.Unmarshaler. null leaves the field unchanged.
func (s *Slice[P]) UnmarshalJSON(b []byte) error { return decodeJSON(b, s.decode) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Slice[P]) UnmarshalYAML(n *yaml.Node) error { return s.decode(n) }

func (s *Slice[P]) decode(d Decoder) error {
	v, err := pick[P](DecodeSlice, DecodeSliceNonEmpty)(d)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// HashSet is an unordered set of strings trimmed when decoded.
type HashSet[P Policy] struct {
	set mapset.Set[string]
}

func (HashSet[P]) shape() fieldShape {
	return fieldShape{array: true, unique: true, policy: policyOf[P]()}
}

// Set returns the underlying set. It is never nil.
func (s HashSet[P]) Set() mapset.Set[string] {
	if s.set == nil {
		return mapset.NewThreadUnsafeSet[string]()
	}
	return s.set
}

// Contains reports whether v is in the set.
func (s HashSet[P]) Contains(v string) bool { return s.set != nil && s.set.Contains(v) }

// Len returns the number of elements.
func (s HashSet[P]) Len() int {
	if s.set == nil {
		return 0
	}
	return s.set.Cardinality()
}

// Values returns the elements sorted, so output is deterministic.
func (s HashSet[P]) Values() []string {
	out := s.Set().ToSlice()
	slices.Sort(out)
	return out
}

// MarshalJSON implements json.Marshaler.
func (s HashSet[P]) MarshalJSON() ([]byte, error) { return json.Marshal(s.Values()) }

// MarshalYAML implements yaml.Marshaler.
func (s HashSet[P]) MarshalYAML() (any, error) { return s.Values(), nil }

// UnmarshalJSON implements json.Unmarshaler. null leaves the field unchanged.
func (s *HashSet[P]) UnmarshalJSON(b []byte) error { return decodeJSON(b, s.decode) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *HashSet[P]) UnmarshalYAML(n *yaml.Node) error { return s.decode(n) }

func (s *HashSet[P]) decode(d Decoder) error {
	v, err := pick[P](DecodeHashSet, DecodeHashSetNonEmpty)(d)
	if err != nil {
		return err
	}
	s.set = v
	return nil
}

// SortedSet is a set of strings trimmed when decoded, iterated in ascending
// order.
type SortedSet[P Policy] struct {
	tree *btree.BTreeG[string]
}

func (SortedSet[P]) shape() fieldShape {
	return fieldShape{array: true, unique: true, policy: policyOf[P]()}
}

// Tree returns the underlying B-tree. It is never nil.
func (s SortedSet[P]) Tree() *btree.BTreeG[string] {
	if s.tree == nil {
		return transform.ToSortedSet(slices.Values([]string(nil)))
	}
	return s.tree
}

// Has reports whether v is in the set.
func (s SortedSet[P]) Has(v string) bool { return s.tree != nil && s.tree.Has(v) }

// Len returns the number of elements.
func (s SortedSet[P]) Len() int {
	if s.tree == nil {
		return 0
	}
	return s.tree.Len()
}

// Values returns the elements in ascending order.
func (s SortedSet[P]) Values() []string {
	out := make([]string, 0, s.Len())
	if s.tree != nil {
		s.tree.Ascend(func(v string) bool {
			out = append(out, v)
			return true
		})
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (s SortedSet[P]) MarshalJSON() ([]byte, error) { return json.Marshal(s.Values()) }

// MarshalYAML implements yaml.Marshaler.
func (s SortedSet[P]) MarshalYAML() (any, error) { return s.Values(), nil }

// UnmarshalJSON implements json.Unmarshaler. null leaves the field unchanged.
func (s *SortedSet[P]) UnmarshalJSON(b []byte) error { return decodeJSON(b, s.decode) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *SortedSet[P]) UnmarshalYAML(n *yaml.Node) error { return s.decode(n) }

func (s *SortedSet[P]) decode(d Decoder) error {
	v, err := pick[P](DecodeSortedSet, DecodeSortedSetNonEmpty)(d)
	if err != nil {
		return err
	}
	s.tree = v
	return nil
}

// OrderedSet is a set of strings trimmed when decoded that keeps the
// position of each value's first occurrence.
type OrderedSet[P Policy] struct {
	m *orderedmap.OrderedMap[string, struct{}]
}

func (OrderedSet[P]) shape() fieldShape {
	return fieldShape{array: true, unique: true, policy: policyOf[P]()}
}

// Map returns the underlying ordered map. It is never nil.
func (s OrderedSet[P]) Map() *orderedmap.OrderedMap[string, struct{}] {
	if s.m == nil {
		return orderedmap.New[string, struct{}]()
	}
	return s.m
}

// Has reports whether v is in the set.
func (s OrderedSet[P]) Has(v string) bool {
	if s.m == nil {
		return false
	}
	_, ok := s.m.Get(v)
	return ok
}

// Len returns the number of elements.
func (s OrderedSet[P]) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Values returns the elements in first-occurrence order.
func (s OrderedSet[P]) Values() []string {
	out := make([]string, 0, s.Len())
	if s.m != nil {
		for p := s.m.Oldest(); p != nil; p = p.Next() {
			out = append(out, p.Key)
		}
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (s OrderedSet[P]) MarshalJSON() ([]byte, error) { return json.Marshal(s.Values()) }

// MarshalYAML implements yaml.Marshaler.
func (s OrderedSet[P]) MarshalYAML() (any, error) { return s.Values(), nil }

// UnmarshalJSON implements json.Unmarshaler. null leaves the field unchanged.
func (s *OrderedSet[P]) UnmarshalJSON(b []byte) error { return decodeJSON(b, s.decode) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *OrderedSet[P]) UnmarshalYAML(n *yaml.Node) error { return s.decode(n) }

func (s *OrderedSet[P]) decode(d Decoder) error {
	v, err := pick[P](DecodeOrderedSet, DecodeOrderedSetNonEmpty)(d)
	if err != nil {
		return err
	}
	s.m = v
	return nil
}

// Deque is a double-ended queue of strings trimmed when decoded, front to
// back in document order.
type Deque[P Policy] struct {
	d *deque.Deque[string]
}

func (Deque[P]) shape() fieldShape {
	return fieldShape{array: true, policy: policyOf[P]()}
}

// Deque returns the underlying deque. It is never nil.
func (q Deque[P]) Deque() *deque.Deque[string] {
	if q.d == nil {
		return new(deque.Deque[string])
	}
	return q.d
}

// Len returns the number of elements.
func (q Deque[P]) Len() int {
	if q.d == nil {
		return 0
	}
	return q.d.Len()
}

// Values returns the elements front to back.
func (q Deque[P]) Values() []string {
	out := make([]string, 0, q.Len())
	for i := range q.Len() {
		out = append(out, q.d.At(i))
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (q Deque[P]) MarshalJSON() ([]byte, error) { return json.Marshal(q.Values()) }

// MarshalYAML implements yaml.Marshaler.
func (q Deque[P]) MarshalYAML() (any, error) { return q.Values(), nil }

// UnmarshalJSON implements json.Unmarshaler. null leaves the field unchanged.
func (q *Deque[P]) UnmarshalJSON(b []byte) error { return decodeJSON(b, q.decode) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (q *Deque[P]) UnmarshalYAML(n *yaml.Node) error { return q.decode(n) }

func (q *Deque[P]) decode(d Decoder) error {
	v, err := pick[P](DecodeDeque, DecodeDequeNonEmpty)(d)
	if err != nil {
		return err
	}
	q.d = v
	return nil
}

// List is a doubly linked list of strings trimmed when decoded, in document
// order.
type List[P Policy] struct {
	l *list.List[string]
}

func (List[P]) shape() fieldShape {
	return fieldShape{array: true, policy: policyOf[P]()}
}

// List returns the underlying list. It is never nil.
func (l List[P]) List() *list.List[string] {
	if l.l == nil {
		return list.New[string]()
	}
	return l.l
}

// Len returns the number of elements.
func (l List[P]) Len() int {
	if l.l == nil {
		return 0
	}
	return l.l.Len()
}

// Values returns the elements front to back.
func (l List[P]) Values() []string {
	out := make([]string, 0, l.Len())
	if l.l != nil {
		for e := l.l.Front(); e != nil; e = e.Next() {
			out = append(out, e.Value)
		}
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (l List[P]) MarshalJSON() ([]byte, error) { return json.Marshal(l.Values()) }

// MarshalYAML implements yaml.Marshaler.
func (l List[P]) MarshalYAML() (any, error) { return l.Values(), nil }

// UnmarshalJSON implements json.Unmarshaler. null leaves the field unchanged.
func (l *List[P]) UnmarshalJSON(b []byte) error { return decodeJSON(b, l.decode) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *List[P]) UnmarshalYAML(n *yaml.Node) error { return l.decode(n) }

func (l *List[P]) decode(d Decoder) error {
	v, err := pick[P](DecodeList, DecodeListNonEmpty)(d)
	if err != nil {
		return err
	}
	l.l = v
	return nil
}

// PriorityQueue is a max-heap of strings trimmed when decoded. The heap is
// built from the trimmed values.
type PriorityQueue[P Policy] struct {
	h *transform.MaxHeap
}

func (PriorityQueue[P]) shape() fieldShape {
	return fieldShape{array: true, policy: policyOf[P]()}
}

// Heap returns the underlying heap. It is never nil.
func (q PriorityQueue[P]) Heap() *transform.MaxHeap {
	if q.h == nil {
		return new(transform.MaxHeap)
	}
	return q.h
}

// Len returns the number of elements.
func (q PriorityQueue[P]) Len() int {
	if q.h == nil {
		return 0
	}
	return q.h.Len()
}

// Values returns the elements in heap order, the layout of the backing
// array. Encoding and decoding that order again yields the same heap.
func (q PriorityQueue[P]) Values() []string {
	if q.h == nil {
		return []string{}
	}
	return q.h.Items()
}

// Sorted returns the elements greatest first.
func (q PriorityQueue[P]) Sorted() []string {
	if q.h == nil {
		return []string{}
	}
	return q.h.Sorted()
}

// MarshalJSON implements json.Marshaler.
func (q PriorityQueue[P]) MarshalJSON() ([]byte, error) { return json.Marshal(q.Values()) }

// MarshalYAML implements yaml.Marshaler.
func (q PriorityQueue[P]) MarshalYAML() (any, error) { return q.Values(), nil }

// UnmarshalJSON implements json.Unmarshaler. null leaves the field unchanged.
func (q *PriorityQueue[P]) UnmarshalJSON(b []byte) error { return decodeJSON(b, q.decode) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (q *PriorityQueue[P]) UnmarshalYAML(n *yaml.Node) error { return q.decode(n) }

func (q *PriorityQueue[P]) decode(d Decoder) error {
	v, err := pick[P](DecodePriorityQueue, DecodePriorityQueueNonEmpty)(d)
	if err != nil {
		return err
	}
	q.h = v
	return nil
}
