package trimdecode

import (
	"slices"

	list "github.com/bahlo/generic-list-go"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gammazero/deque"
	"github.com/google/btree"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/Gobd/trimdecode/transform"
)

// DecodeString decodes a string and trims it. A blank value yields "".
func DecodeString(d Decoder) (string, error) {
	var s string
	if err := d.Decode(&s); err != nil {
		return "", err
	}
	return transform.Space(s), nil
}

// DecodeOptionalString decodes a nullable string and trims it. Null and
// blank values both yield nil.
func DecodeOptionalString(d Decoder) (*string, error) {
	var s *string
	if err := d.Decode(&s); err != nil {
		return nil, err
	}
	return transform.Optional(s), nil
}

// decodeCollection decodes a list of strings and rebuilds it as C. Every
// collection function below is this routine with a kind and a policy.
func decodeCollection[C any](d Decoder, p transform.Policy, build transform.Builder[C]) (C, error) {
	var raw []string
	if err := d.Decode(&raw); err != nil {
		var zero C
		return zero, err
	}
	return transform.Rebuild(slices.Values(raw), p, build), nil
}

// DecodeSlice decodes a list and trims every element, keeping order and
// blank elements.
func DecodeSlice(d Decoder) ([]string, error) {
	return decodeCollection(d, transform.KeepEmpty, transform.ToSlice)
}

// DecodeSliceNonEmpty is like [DecodeSlice] but drops blank elements.
func DecodeSliceNonEmpty(d Decoder) ([]string, error) {
	return decodeCollection(d, transform.DropEmpty, transform.ToSlice)
}

// DecodeHashSet decodes a list into a set of trimmed strings. Elements that
// only differ by surrounding whitespace collapse into one.
func DecodeHashSet(d Decoder) (mapset.Set[string], error) {
	return decodeCollection(d, transform.KeepEmpty, transform.ToHashSet)
}

// DecodeHashSetNonEmpty is like [DecodeHashSet] but never contains "".
func DecodeHashSetNonEmpty(d Decoder) (mapset.Set[string], error) {
	return decodeCollection(d, transform.DropEmpty, transform.ToHashSet)
}

// DecodeSortedSet decodes a list into a sorted set of trimmed strings.
func DecodeSortedSet(d Decoder) (*btree.BTreeG[string], error) {
	return decodeCollection(d, transform.KeepEmpty, transform.ToSortedSet)
}

// DecodeSortedSetNonEmpty is like [DecodeSortedSet] but never contains "".
func DecodeSortedSetNonEmpty(d Decoder) (*btree.BTreeG[string], error) {
	return decodeCollection(d, transform.DropEmpty, transform.ToSortedSet)
}

// DecodeOrderedSet decodes a list into a set of trimmed strings that keeps
// the position of each value's first occurrence.
func DecodeOrderedSet(d Decoder) (*orderedmap.OrderedMap[string, struct{}], error) {
	return decodeCollection(d, transform.KeepEmpty, transform.ToOrderedSet)
}

// DecodeOrderedSetNonEmpty is like [DecodeOrderedSet] but never contains "".
func DecodeOrderedSetNonEmpty(d Decoder) (*orderedmap.OrderedMap[string, struct{}], error) {
	return decodeCollection(d, transform.DropEmpty, transform.ToOrderedSet)
}

// DecodeDeque decodes a list into a deque of trimmed strings, front to back.
func DecodeDeque(d Decoder) (*deque.Deque[string], error) {
	return decodeCollection(d, transform.KeepEmpty, transform.ToDeque)
}

// DecodeDequeNonEmpty is like [DecodeDeque] but drops blank elements.
func DecodeDequeNonEmpty(d Decoder) (*deque.Deque[string], error) {
	return decodeCollection(d, transform.DropEmpty, transform.ToDeque)
}

// DecodeList decodes a list into a linked list of trimmed strings.
func DecodeList(d Decoder) (*list.List[string], error) {
	return decodeCollection(d, transform.KeepEmpty, transform.ToList)
}

// DecodeListNonEmpty is like [DecodeList] but drops blank elements.
func DecodeListNonEmpty(d Decoder) (*list.List[string], error) {
	return decodeCollection(d, transform.DropEmpty, transform.ToList)
}

// DecodePriorityQueue decodes a list into a max-heap ordered by the trimmed
// values.
func DecodePriorityQueue(d Decoder) (*transform.MaxHeap, error) {
	return decodeCollection(d, transform.KeepEmpty, transform.ToMaxHeap)
}

// DecodePriorityQueueNonEmpty is like [DecodePriorityQueue] but drops blank
// elements before heapifying.
func DecodePriorityQueueNonEmpty(d Decoder) (*transform.MaxHeap, error) {
	return decodeCollection(d, transform.DropEmpty, transform.ToMaxHeap)
}
