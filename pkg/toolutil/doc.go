// Package toolutil 提供基于泛型的集合高阶函数：Map、Filter、Reduce、Sorted、
// FlatMap、CompactMap 以及它们的链式组合。
//
// 所有操作都是纯函数，输入切片不会被修改，输出顺序只由输入顺序和操作本身决定。
//
// Map:
//
//	feet := Map(Of(10.0, 22.0), func(m float64) float64 { return m * 3.281 })
//
// Filter + Map:
//
//	streets := Map(
//		Filter(StreamOf(addrs), func(a Address) bool { return a.Zipcode == 1200 }),
//		func(a Address) string { return a.Street },
//	)
//	// ["Nice Boulevard"]
//
// Reduce，平局规则写在 comb 里:
//
//	longest := Reduce(StreamOf(planets), "", func(acc, p string) string {
//		if len(acc) > len(p) {
//			return acc
//		}
//		return p
//	})
//
// Sorted 是稳定排序，less 必须是严格弱序:
//
//	desc := Sorted(StreamOf(nums), Desc[int])
//	asc := SortedNatural(StreamOf(nums))
//	top3 := TopN(StreamOf(nums), 3, Desc[int])
//
// FlatMap 只用于"切片的切片":
//
//	flat := FlatMap(StreamOf(groups), func(g []string) []string { return SortedNatural(StreamOf(g)).ToSlice() })
//
// CompactMap 丢弃缺失值，MapOption 保留缺失值:
//
//	nums := CompactMap(Of("1", "2", "three"), ParseInt) // [1 2]
//	opts := MapOption(Of("1", "three"), ParseInt)      // [Some(1) None]
//
// StreamBuilder:
//
//	b := NewStreamBuilder[string]().
//		Filter(func(s string) bool { return strings.HasPrefix(s, "m") }).
//		Sorted(Asc[string])
//	result := b.Build(planets).ToSlice()
package toolutil
