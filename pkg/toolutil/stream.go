package toolutil

import (
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/google/btree"
	"github.com/mohae/deepcopy"
	"golang.org/x/exp/constraints"

	"hof_tool/pkg/heap"
)

// Stream 是一个只读的数据流容器，所有操作都返回新的 Stream，不修改输入切片
type Stream[T any] struct {
	data []T
}

// StreamOf 将切片包装为 Stream 对象(不拷贝，后续操作也不会写回它)
func StreamOf[T any](data []T) Stream[T] {
	return Stream[T]{data}
}

// Of 变参版本的 StreamOf
func Of[T any](items ...T) Stream[T] {
	return Stream[T]{items}
}

// ToSlice 返回一份拷贝，调用方随便改
func (s Stream[T]) ToSlice() []T {
	out := make([]T, len(s.data))
	copy(out, s.data)
	return out
}

func (s Stream[T]) Count() int {
	return len(s.data)
}

func (s Stream[T]) IsEmpty() bool {
	return len(s.data) == 0
}

func (s Stream[T]) First() (T, bool) {
	if len(s.data) == 0 {
		var zero T
		return zero, false
	}
	return s.data[0], true
}

func (s Stream[T]) Last() (T, bool) {
	if len(s.data) == 0 {
		var zero T
		return zero, false
	}
	return s.data[len(s.data)-1], true
}

// ForEach 只执行副作用，不产生新流
func (s Stream[T]) ForEach(f func(T)) {
	for _, v := range s.data {
		f(v)
	}
}

// Map 按输入顺序对每个元素执行 f，结果长度和输入一致
func Map[T any, R any](s Stream[T], f func(T) R) Stream[R] {
	out := make([]R, len(s.data))
	for i, v := range s.data {
		out[i] = f(v)
	}
	return Stream[R]{out}
}

// MapSafe 对 f 的每个返回值做深拷贝，防止结果和输入共享引用
func MapSafe[T any, R any](s Stream[T], f func(T) R) Stream[R] {
	out := make([]R, len(s.data))
	for i, v := range s.data {
		out[i] = clone(f(v))
	}
	return Stream[R]{out}
}

// Filter 保留 pred 为真的元素，相对顺序不变
func Filter[T any](s Stream[T], pred func(T) bool) Stream[T] {
	out := make([]T, 0, len(s.data))
	for _, v := range s.data {
		if pred(v) {
			out = append(out, v)
		}
	}
	return Stream[T]{out}
}

// FilterSafe 保留的元素是深拷贝
func FilterSafe[T any](s Stream[T], pred func(T) bool) Stream[T] {
	out := make([]T, 0, len(s.data))
	for _, v := range s.data {
		if pred(v) {
			out = append(out, clone(v))
		}
	}
	return Stream[T]{out}
}

// Reduce 从 init 开始从左到右折叠；空流直接返回 init
// 平局时保留哪一个由 comb 自己决定，这里不做任何假设
func Reduce[T any, R any](s Stream[T], init R, comb func(R, T) R) R {
	acc := init
	for _, v := range s.data {
		acc = comb(acc, v)
	}
	return acc
}

// FlatMap 把每个元素映射成一个切片再按顺序拼接，只展开一层
// 可选值的"映射并丢弃缺失"请用 CompactMap
func FlatMap[T any, R any](s Stream[T], f func(T) []R) Stream[R] {
	out := make([]R, 0, len(s.data))
	for _, v := range s.data {
		out = append(out, f(v)...)
	}
	return Stream[R]{out}
}

// FlatMapSafe 拼接前对每个产出元素做深拷贝
func FlatMapSafe[T any, R any](s Stream[T], f func(T) []R) Stream[R] {
	out := make([]R, 0, len(s.data))
	for _, v := range s.data {
		for _, r := range f(v) {
			out = append(out, clone(r))
		}
	}
	return Stream[R]{out}
}

// Flatten 展开一层嵌套
func Flatten[T any](s Stream[[]T]) Stream[T] {
	return FlatMap(s, func(part []T) []T { return part })
}

// less 必须是严格弱序(非自反、可传递、不可比较关系可传递)，
// 否则相等元素之间的输出顺序没有保证
func sortStream[T any](data []T, less func(T, T) bool) Stream[T] {
	sort.SliceStable(data, func(i, j int) bool {
		return less(data[i], data[j])
	})
	return Stream[T]{data}
}

// Sorted 稳定排序，less(a, b) 为真表示 a 排在 b 前面
func Sorted[T any](s Stream[T], less func(T, T) bool) Stream[T] {
	return sortStream(s.ToSlice(), less)
}

// SortedSafe 在深拷贝上排序，元素里带引用类型时用它
func SortedSafe[T any](s Stream[T], less func(T, T) bool) Stream[T] {
	cloned := make([]T, len(s.data))
	for i, v := range s.data {
		cloned[i] = clone(v)
	}
	return sortStream(cloned, less)
}

// SortedNatural 不带比较函数的排序，按 T 的自然顺序升序
func SortedNatural[T constraints.Ordered](s Stream[T]) Stream[T] {
	return Sorted(s, Asc[T])
}

// SortedDistinct 去重并升序，借助 btree 做有序集合
func SortedDistinct[T constraints.Ordered](s Stream[T]) Stream[T] {
	tr := btree.NewG[T](8, Asc[T])
	for _, v := range s.data {
		tr.ReplaceOrInsert(v)
	}
	out := make([]T, 0, tr.Len())
	tr.Ascend(func(v T) bool {
		out = append(out, v)
		return true
	})
	return Stream[T]{out}
}

// Peek 对每个元素执行副作用操作（如打印），返回原流
func Peek[T any](s Stream[T], f func(T)) Stream[T] {
	for _, v := range s.data {
		f(v)
	}
	return s
}

// Distinct 保留第一次出现的元素，eq 判断是否相等
func Distinct[T any](s Stream[T], eq func(T, T) bool) Stream[T] {
	var out []T
	for _, v := range s.data {
		found := false
		for _, r := range out {
			if eq(v, r) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, v)
		}
	}
	return Stream[T]{out}
}

// Take 获取前 n 项
func Take[T any](s Stream[T], n int) Stream[T] {
	if n <= 0 {
		return Stream[T]{}
	}
	if n >= len(s.data) {
		return s
	}
	return Stream[T]{s.data[:n:n]}
}

// TopN 结果与 Take(Sorted(s, less), n) 相同，等价元素保持原有顺序
// 只维护 n 个元素的堆，不对整个流排序
func TopN[T any](s Stream[T], n int, less func(a, b T) bool) Stream[T] {
	if n <= 0 {
		return Stream[T]{}
	}
	before := func(a, b ranked[T]) bool {
		if less(a.v, b.v) {
			return true
		}
		if less(b.v, a.v) {
			return false
		}
		return a.i < b.i
	}
	// 堆顶是目前保留的元素中排在最后的那个
	h := heap.New(func(a, b ranked[T]) bool { return before(b, a) })
	for i, v := range s.data {
		h.PushItem(ranked[T]{v, i})
		if h.Len() > n {
			h.PopItem()
		}
	}
	// Drain 先弹出排在最后的
	kept := h.Drain()
	out := make([]T, len(kept))
	for k, r := range kept {
		out[len(kept)-1-k] = r.v
	}
	return Stream[T]{out}
}

// 元素和它在输入中的位置
type ranked[T any] struct {
	v T
	i int
}

// Skip 跳过前 n 项
func Skip[T any](s Stream[T], n int) Stream[T] {
	if n <= 0 {
		return s
	}
	if n >= len(s.data) {
		return Stream[T]{}
	}
	return Stream[T]{s.data[n:]}
}

// Reverse 反转流中元素顺序
func Reverse[T any](s Stream[T]) Stream[T] {
	cloned := s.ToSlice()
	for i, j := 0, len(cloned)-1; i < j; i, j = i+1, j-1 {
		cloned[i], cloned[j] = cloned[j], cloned[i]
	}
	return Stream[T]{cloned}
}

// Any 只要有一个元素满足条件就是真
func Any[T any](s Stream[T], pred func(T) bool) bool {
	for _, v := range s.data {
		if pred(v) {
			return true
		}
	}
	return false
}

func All[T any](s Stream[T], pred func(T) bool) bool {
	for _, v := range s.data {
		if !pred(v) {
			return false
		}
	}
	return true
}

func None[T any](s Stream[T], pred func(T) bool) bool {
	return !Any(s, pred)
}

// Find 返回满足条件的第一个元素
func Find[T any](s Stream[T], pred func(T) bool) (T, bool) {
	for _, v := range s.data {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// 找不到索引返回 -1
func IndexOf[T any](s Stream[T], pred func(T) bool) int {
	for i, v := range s.data {
		if pred(v) {
			return i
		}
	}
	return -1
}

func Max[T constraints.Ordered](s Stream[T]) (T, bool) {
	if len(s.data) == 0 {
		var zero T
		return zero, false
	}
	return Reduce(Skip(s, 1), s.data[0], func(acc, v T) T {
		if v > acc {
			return v
		}
		return acc
	}), true
}

func Min[T constraints.Ordered](s Stream[T]) (T, bool) {
	if len(s.data) == 0 {
		var zero T
		return zero, false
	}
	return Reduce(Skip(s, 1), s.data[0], func(acc, v T) T {
		if v < acc {
			return v
		}
		return acc
	}), true
}

// Number 支持 + 运算的数值类型
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum 空流的和就是 0
func Sum[T Number](s Stream[T]) T {
	return Reduce(s, T(0), func(acc, v T) T { return acc + v })
}

// GroupBy 按 key 分组，组内保持输入顺序
func GroupBy[T any, K comparable](s Stream[T], keyFunc func(T) K) map[K][]T {
	result := make(map[K][]T)
	for _, v := range s.data {
		k := keyFunc(v)
		result[k] = append(result[k], v)
	}
	return result
}

// Partition 一次遍历拆成满足/不满足两部分
func Partition[T any](s Stream[T], pred func(T) bool) (Stream[T], Stream[T]) {
	matched := make([]T, 0)
	unmatched := make([]T, 0)
	for _, v := range s.data {
		if pred(v) {
			matched = append(matched, v)
		} else {
			unmatched = append(unmatched, v)
		}
	}
	return Stream[T]{matched}, Stream[T]{unmatched}
}

// Zip 长度取较短的一边
func Zip[A any, B any, R any](a Stream[A], b Stream[B], f func(A, B) R) Stream[R] {
	n := min(len(a.data), len(b.data))
	out := make([]R, n)
	for i := 0; i < n; i++ {
		out[i] = f(a.data[i], b.data[i])
	}
	return Stream[R]{out}
}

// clone 深拷贝 v；deepcopy 复制不了的类型原样返回，宁可共享也不丢数据
func clone[T any](v T) T {
	if !deepCopyable(reflect.TypeOf(v)) {
		return v
	}
	// deepcopy 对 nil 接口返回 nil，断言会失败
	c, ok := deepcopy.Copy(v).(T)
	if !ok {
		return v
	}
	return c
}

var (
	copyableTypes sync.Map // reflect.Type -> bool
	timeType      = reflect.TypeOf(time.Time{})
)

// deepCopyable deepcopy 只设置导出字段，带未导出字段的结构体(比如 mo.Option)
// 拷贝出来是零值。接口字段的动态类型没法提前检查，也按不可复制处理
func deepCopyable(t reflect.Type) bool {
	if t == nil {
		return true
	}
	if ok, found := copyableTypes.Load(t); found {
		return ok.(bool)
	}
	ok := walkCopyable(t, map[reflect.Type]bool{})
	copyableTypes.Store(t, ok)
	return ok
}

func walkCopyable(t reflect.Type, seen map[reflect.Type]bool) bool {
	// 递归类型走到自己时按可复制算，由其余字段决定
	if seen[t] || t == timeType {
		return true
	}
	seen[t] = true
	switch t.Kind() {
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || !walkCopyable(f.Type, seen) {
				return false
			}
		}
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return walkCopyable(t.Elem(), seen)
	case reflect.Map:
		return walkCopyable(t.Key(), seen) && walkCopyable(t.Elem(), seen)
	case reflect.Interface:
		return false
	}
	return true
}
