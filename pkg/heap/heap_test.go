package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeap(t *testing.T) {
	h := New(func(a, b int) bool { return a < b })
	for _, v := range []int{5, 3, 2, 6, 10, 23, 1, 43, 5} {
		h.PushItem(v)
	}
	require.Equal(t, 9, h.Len())
	assert.Equal(t, 1, h.PopItem())
	assert.Equal(t, []int{2, 3, 5, 5, 6, 10, 23, 43}, h.Drain())
	assert.Zero(t, h.Len())
}

func TestMaxHeapStrings(t *testing.T) {
	h := New(func(a, b string) bool { return a > b })
	for _, v := range []string{"mars", "jupiter", "venus", "earth"} {
		h.PushItem(v)
	}
	assert.Equal(t, []string{"venus", "mars", "jupiter", "earth"}, h.Drain())
}

func TestDrainEmpty(t *testing.T) {
	h := New(func(a, b int) bool { return a < b })
	assert.Empty(t, h.Drain())
	assert.Panics(t, func() { h.PopItem() })
}
