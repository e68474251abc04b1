package toolutil

import (
	"golang.org/x/exp/constraints"
)

type step[T any] struct {
	name string
	run  func(Stream[T]) Stream[T]
}

// StreamBuilder 先记录步骤，Build 的时候才真正执行
// 只能串联不改变元素类型的步骤，改变类型用 MapTo
type StreamBuilder[T any] struct {
	steps []step[T]
}

// 新建构建器
func NewStreamBuilder[T any]() *StreamBuilder[T] {
	return &StreamBuilder[T]{}
}

func (b *StreamBuilder[T]) add(name string, run func(Stream[T]) Stream[T]) *StreamBuilder[T] {
	b.steps = append(b.steps, step[T]{name: name, run: run})
	return b
}

func (b *StreamBuilder[T]) Filter(pred func(T) bool) *StreamBuilder[T] {
	return b.add("Filter", func(s Stream[T]) Stream[T] { return Filter(s, pred) })
}

func (b *StreamBuilder[T]) FilterSafe(pred func(T) bool) *StreamBuilder[T] {
	return b.add("FilterSafe", func(s Stream[T]) Stream[T] { return FilterSafe(s, pred) })
}

// Map(就地追加步骤并且return自己，保持链条不断)
func (b *StreamBuilder[T]) Map(f func(T) T) *StreamBuilder[T] {
	return b.add("Map", func(s Stream[T]) Stream[T] { return Map(s, f) })
}

func (b *StreamBuilder[T]) MapSafe(f func(T) T) *StreamBuilder[T] {
	return b.add("MapSafe", func(s Stream[T]) Stream[T] { return MapSafe(s, f) })
}

func (b *StreamBuilder[T]) Sorted(less func(T, T) bool) *StreamBuilder[T] {
	return b.add("Sorted", func(s Stream[T]) Stream[T] { return Sorted(s, less) })
}

func (b *StreamBuilder[T]) SortedSafe(less func(T, T) bool) *StreamBuilder[T] {
	return b.add("SortedSafe", func(s Stream[T]) Stream[T] { return SortedSafe(s, less) })
}

func (b *StreamBuilder[T]) Distinct(eq func(T, T) bool) *StreamBuilder[T] {
	return b.add("Distinct", func(s Stream[T]) Stream[T] { return Distinct(s, eq) })
}

func (b *StreamBuilder[T]) Take(n int) *StreamBuilder[T] {
	return b.add("Take", func(s Stream[T]) Stream[T] { return Take(s, n) })
}

func (b *StreamBuilder[T]) Skip(n int) *StreamBuilder[T] {
	return b.add("Skip", func(s Stream[T]) Stream[T] { return Skip(s, n) })
}

func (b *StreamBuilder[T]) Reverse() *StreamBuilder[T] {
	return b.add("Reverse", Reverse[T])
}

// Peek（仅副作用）
func (b *StreamBuilder[T]) Peek(f func(T)) *StreamBuilder[T] {
	return b.add("Peek", func(s Stream[T]) Stream[T] { return Peek(s, f) })
}

// Stages 按顺序返回每一步的名字，画流水线图用
func (b *StreamBuilder[T]) Stages() []string {
	names := make([]string, len(b.steps))
	for i, st := range b.steps {
		names[i] = st.name
	}
	return names
}

// 执行构建并返回最终 Stream
func (b *StreamBuilder[T]) Build(data []T) Stream[T] {
	stream := StreamOf(data)
	for _, st := range b.steps {
		stream = st.run(stream)
	}
	return stream
}

// Any和Build一样是终结函数
func (b *StreamBuilder[T]) Any(data []T, pred func(T) bool) bool {
	return Any(b.Build(data), pred)
}

func (b *StreamBuilder[T]) All(data []T, pred func(T) bool) bool {
	return All(b.Build(data), pred)
}

func (b *StreamBuilder[T]) Find(data []T, pred func(T) bool) (T, bool) {
	return Find(b.Build(data), pred)
}

// Projection 是 StreamBuilder 末尾接一个改变类型的步骤(MapTo 或 FlatMapTo)
type Projection[T any, R any] struct {
	src   *StreamBuilder[T]
	stage string
	run   func(Stream[T]) Stream[R]
}

// MapTo 方法不能引入新的类型参数，只能写成函数
//
//	streets := MapTo(NewStreamBuilder[Address]().Filter(at1200), street).Build(addrs)
func MapTo[T any, R any](b *StreamBuilder[T], f func(T) R) *Projection[T, R] {
	return &Projection[T, R]{src: b, stage: "MapTo", run: func(s Stream[T]) Stream[R] { return Map(s, f) }}
}

// FlatMapTo 末尾接 FlatMap，只展开一层
func FlatMapTo[T any, R any](b *StreamBuilder[T], f func(T) []R) *Projection[T, R] {
	return &Projection[T, R]{src: b, stage: "FlatMapTo", run: func(s Stream[T]) Stream[R] { return FlatMap(s, f) }}
}

func (p *Projection[T, R]) Build(data []T) Stream[R] {
	return p.run(p.src.Build(data))
}

func (p *Projection[T, R]) Stages() []string {
	return append(p.src.Stages(), p.stage)
}

// 保留链式调用，同时在类型系统里告诉编译器：放心，流里的元素是能比较大小的
type OrderedStreamBuilder[T constraints.Ordered] struct {
	StreamBuilder[T]
}

func NewOrderedStreamBuilder[T constraints.Ordered]() *OrderedStreamBuilder[T] {
	return &OrderedStreamBuilder[T]{}
}

// 这些转发函数不是多余的，保证返回的类型正确，不至于变成StreamBuilder
func (b *OrderedStreamBuilder[T]) Filter(f func(T) bool) *OrderedStreamBuilder[T] {
	b.StreamBuilder.Filter(f)
	return b
}

func (b *OrderedStreamBuilder[T]) Map(f func(T) T) *OrderedStreamBuilder[T] {
	b.StreamBuilder.Map(f)
	return b
}

func (b *OrderedStreamBuilder[T]) Sorted(less func(T, T) bool) *OrderedStreamBuilder[T] {
	b.StreamBuilder.Sorted(less)
	return b
}

func (b *OrderedStreamBuilder[T]) SortedAsc() *OrderedStreamBuilder[T] {
	b.add("SortedAsc", SortedNatural[T])
	return b
}

func (b *OrderedStreamBuilder[T]) SortedDesc() *OrderedStreamBuilder[T] {
	b.add("SortedDesc", func(s Stream[T]) Stream[T] { return Sorted(s, Desc[T]) })
	return b
}

func (b *OrderedStreamBuilder[T]) Take(n int) *OrderedStreamBuilder[T] {
	b.StreamBuilder.Take(n)
	return b
}

func (b *OrderedStreamBuilder[T]) Max(data []T) (T, bool) {
	return Max(b.Build(data))
}

func (b *OrderedStreamBuilder[T]) Min(data []T) (T, bool) {
	return Min(b.Build(data))
}
