package toolutil

import (
	"strconv"

	"github.com/samber/mo"
)

// CompactMap 先映射为可选值，再丢弃缺失的，保留有值元素的相对顺序
// 它是"移除"而不是"拼接"，和 FlatMap 语义不同
func CompactMap[T any, R any](s Stream[T], f func(T) mo.Option[R]) Stream[R] {
	out := make([]R, 0, len(s.data))
	for _, v := range s.data {
		if r, ok := f(v).Get(); ok {
			out = append(out, r)
		}
	}
	return Stream[R]{out}
}

// MapOption 映射为可选值序列，缺失的值原样保留在结果中
func MapOption[T any, R any](s Stream[T], f func(T) mo.Option[R]) Stream[mo.Option[R]] {
	return Map(s, f)
}

// Present 只取出有值的部分
func Present[T any](s Stream[mo.Option[T]]) Stream[T] {
	return CompactMap(s, func(o mo.Option[T]) mo.Option[T] { return o })
}

// FromResult 把 (值, 错误) 风格的调用结果转换成可选值，出错即缺失
func FromResult[T any](v T, err error) mo.Option[T] {
	if err != nil {
		return mo.None[T]()
	}
	return mo.Some(v)
}

// ParseInt 十进制整数解析，失败返回 None
// 不去掉空白，" 7 " 也是 None
func ParseInt(s string) mo.Option[int] {
	v, err := strconv.Atoi(s)
	return FromResult(v, err)
}

// ParseFloat 解析失败返回 None
func ParseFloat(s string) mo.Option[float64] {
	v, err := strconv.ParseFloat(s, 64)
	return FromResult(v, err)
}
