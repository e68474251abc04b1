package heap

import (
	"container/heap"
)

// GenericHeap 泛型堆，堆顶是 less 意义下最小的元素
type GenericHeap[T any] struct {
	data []T
	less func(a, b T) bool
}

func New[T any](less func(a, b T) bool) *GenericHeap[T] {
	h := &GenericHeap[T]{less: less}
	heap.Init(h)
	return h
}

func (h GenericHeap[T]) Len() int           { return len(h.data) }
func (h GenericHeap[T]) Less(i, j int) bool { return h.less(h.data[i], h.data[j]) }
func (h GenericHeap[T]) Swap(i, j int)      { h.data[i], h.data[j] = h.data[j], h.data[i] }

// Push 和 Pop 给 container/heap 用，外部请用 PushItem/PopItem
func (h *GenericHeap[T]) Push(x any) {
	h.data = append(h.data, x.(T))
}

func (h *GenericHeap[T]) Pop() any {
	n := len(h.data)
	x := h.data[n-1]
	var zero T
	h.data[n-1] = zero
	h.data = h.data[:n-1]
	return x
}

func (h *GenericHeap[T]) PushItem(x T) {
	heap.Push(h, x)
}

func (h *GenericHeap[T]) PopItem() T {
	return heap.Pop(h).(T)
}

// Drain 依次弹出全部元素，结果按 less 升序
func (h *GenericHeap[T]) Drain() []T {
	out := make([]T, 0, h.Len())
	for h.Len() > 0 {
		out = append(out, h.PopItem())
	}
	return out
}
