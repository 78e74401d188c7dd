package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxHeap_PushPop(t *testing.T) {
	h := NewMaxHeap("b", "d", "a")
	h.Push("c")
	require.Equal(t, 4, h.Len())

	var drained []string
	for {
		s, ok := h.Pop()
		if !ok {
			break
		}
		drained = append(drained, s)
	}
	assert.Equal(t, []string{"d", "c", "b", "a"}, drained)
	assert.Equal(t, 0, h.Len())
}

func TestMaxHeap_ZeroValue(t *testing.T) {
	var h MaxHeap
	_, ok := h.Pop()
	assert.False(t, ok)
	_, ok = h.Peek()
	assert.False(t, ok)
	assert.Empty(t, h.Items())

	h.Push("x")
	top, ok := h.Peek()
	assert.True(t, ok)
	assert.Equal(t, "x", top)
}

func TestMaxHeap_ItemsIsACopy(t *testing.T) {
	h := NewMaxHeap("a", "b")
	items := h.Items()
	items[0] = "zzz"
	top, _ := h.Peek()
	assert.Equal(t, "b", top)
}

func TestMaxHeap_SortedLeavesHeapIntact(t *testing.T) {
	h := NewMaxHeap("", "foo", "b ar", "hello", "rust")
	before := h.Items()
	assert.Equal(t, []string{"rust", "hello", "foo", "b ar", ""}, h.Sorted())
	assert.Equal(t, before, h.Items())
}
