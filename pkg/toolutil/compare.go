package toolutil

import (
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Asc 自然升序
func Asc[T constraints.Ordered](a, b T) bool {
	return a < b
}

// Desc 自然降序
func Desc[T constraints.Ordered](a, b T) bool {
	return a > b
}

// Reversed 把 less 反过来用，相等元素依旧保持稳定
func Reversed[T any](less func(T, T) bool) func(T, T) bool {
	return func(a, b T) bool {
		return less(b, a)
	}
}

// By 按提取出的键比较
func By[T any, K constraints.Ordered](key func(T) K) func(T, T) bool {
	return func(a, b T) bool {
		return key(a) < key(b)
	}
}

// FromComparator 把 gods 风格的三路比较器(负数/0/正数)转成 less 函数
// 比如 FromComparator[string](utils.StringComparator)
func FromComparator[T any](cmp utils.Comparator) func(T, T) bool {
	return func(a, b T) bool {
		return cmp(a, b) < 0
	}
}
