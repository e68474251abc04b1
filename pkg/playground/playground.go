// Package playground 用 toolutil 重现高阶函数演示：map、filter、reduce、
// sorted、flatMap、compactMap 以及链式调用
package playground

import (
	"slices"
	"strings"

	"hof_tool/pkg/dataset"
	"hof_tool/pkg/toolutil"
	"hof_tool/pkg/toolutil/str"

	"github.com/samber/mo"
)

// FeetPerMeter 米转英尺的系数
const FeetPerMeter = 3.281

// Result 一条演示结果
type Result struct {
	Section string `json:"section"`
	Title   string `json:"title"`
	Value   any    `json:"value"`
}

// Section 一组同类演示
type Section struct {
	Name string
	Run  func(dataset.Set) []Result
}

// Sections 按演示顺序排列
var Sections = []Section{
	{Name: "map", Run: MapExamples},
	{Name: "filter", Run: FilterExamples},
	{Name: "reduce", Run: ReduceExamples},
	{Name: "sorted", Run: SortedExamples},
	{Name: "flatmap", Run: FlatMapExamples},
	{Name: "compactmap", Run: CompactMapExamples},
	{Name: "chain", Run: ChainExamples},
}

// Lookup 按名字找演示分组
func Lookup(name string) (Section, bool) {
	for _, s := range Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// RunAll 依次执行全部分组
func RunAll(set dataset.Set) []Result {
	var out []Result
	for _, s := range Sections {
		out = append(out, s.Run(set)...)
	}
	return out
}

// ---- MAP ----

func MetersToFeet(meters []float64) []float64 {
	return toolutil.Map(toolutil.StreamOf(meters), func(m float64) float64 { return m * FeetPerMeter }).ToSlice()
}

func CapitalizedPlanets(planets []string) []string {
	return toolutil.Map(toolutil.StreamOf(planets), str.Capitalize).ToSlice()
}

func Zipcodes(addrs []dataset.Address) []int {
	return toolutil.Map(toolutil.StreamOf(addrs), zipcode).ToSlice()
}

func MapExamples(set dataset.Set) []Result {
	return []Result{
		{"map", "Meters converted to feet", MetersToFeet(set.Meters)},
		{"map", "Planet names capitalized", CapitalizedPlanets(set.Planets)},
		{"map", "Zip codes", Zipcodes(set.Addresses)},
	}
}

// ---- FILTER ----

// PlanetsStartingWith 首字母不区分大小写
func PlanetsStartingWith(planets []string, letter string) []string {
	return toolutil.Filter(toolutil.StreamOf(planets), func(p string) bool {
		return str.HasPrefixFold(p, letter)
	}).ToSlice()
}

func AddressesAt(addrs []dataset.Address, zip int) []dataset.Address {
	return toolutil.Filter(toolutil.StreamOf(addrs), atZipcode(zip)).ToSlice()
}

func FilterExamples(set dataset.Set) []Result {
	return []Result{
		{"filter", "Count of filtered planet names", len(PlanetsStartingWith(set.Planets, "M"))},
		{"filter", "Count of filtered addresses", len(AddressesAt(set.Addresses, 1200))},
	}
}

// ---- REDUCE ----

func SumOfNumbers(numbers []int) int {
	return toolutil.Reduce(toolutil.StreamOf(numbers), 0, func(acc, n int) int { return acc + n })
}

// LongerOrLater 严格更长才保留 acc，等长时取后来的那个
func LongerOrLater(acc, next string) string {
	if str.RuneLen(acc) > str.RuneLen(next) {
		return acc
	}
	return next
}

// LongerOrFirst 等长时保留先出现的那个
func LongerOrFirst(acc, next string) string {
	if str.RuneLen(next) > str.RuneLen(acc) {
		return next
	}
	return acc
}

func LongestPlanetName(planets []string) string {
	return toolutil.Reduce(toolutil.StreamOf(planets), "", LongerOrLater)
}

func ReduceExamples(set dataset.Set) []Result {
	return []Result{
		{"reduce", "Sum of numbers - version 1", SumOfNumbers(set.Numbers)},
		{"reduce", "Sum of numbers - version 2", toolutil.Sum(toolutil.StreamOf(set.Numbers))},
		{"reduce", "Longest planet name", LongestPlanetName(set.Planets)},
	}
}

// ---- SORTED ----

func SortedAscending(numbers []int) []int {
	return toolutil.SortedNatural(toolutil.StreamOf(numbers)).ToSlice()
}

func SortedDescending(numbers []int) []int {
	return toolutil.Sorted(toolutil.StreamOf(numbers), func(a, b int) bool { return a > b }).ToSlice()
}

func SortedExamples(set dataset.Set) []Result {
	nums := toolutil.StreamOf(set.Numbers)
	return []Result{
		{"sorted", "Sorted numbers ascending", SortedAscending(set.Numbers)},
		{"sorted", "Sorted numbers descending - version 1", SortedDescending(set.Numbers)},
		{"sorted", "Sorted numbers descending - version 2", toolutil.Sorted(nums, toolutil.Desc[int]).ToSlice()},
		{"sorted", "Sorted numbers descending - version 3", toolutil.Sorted(nums, toolutil.Reversed(toolutil.Asc[int])).ToSlice()},
	}
}

// ---- FLATMAP ----

// FlatSortedNames 每组先排序再拼接
func FlatSortedNames(names [][]string) []string {
	return toolutil.FlatMap(toolutil.StreamOf(names), func(g []string) []string {
		return toolutil.SortedNatural(toolutil.StreamOf(g)).ToSlice()
	}).ToSlice()
}

// SortedLetters 把每个名字拆成字符并排序后拼接
func SortedLetters(names []string) []string {
	return toolutil.FlatMap(toolutil.StreamOf(names), func(name string) []string {
		letters := strings.Split(name, "")
		slices.Sort(letters)
		return letters
	}).ToSlice()
}

func ScoresAsOptions(scores []string) []mo.Option[int] {
	return toolutil.MapOption(toolutil.StreamOf(scores), toolutil.ParseInt).ToSlice()
}

func FlatMapExamples(set dataset.Set) []Result {
	flat := FlatSortedNames(set.Names)
	return []Result{
		{"flatmap", "Flatmap of names sorted", flat},
		{"flatmap", "Flat Flatmap of names sorted", SortedLetters(flat)},
		{"flatmap", "Map of scores to optional numbers", ScoresAsOptions(set.Scores)},
	}
}

// ---- COMPACTMAP ----

func CompactScores(scores []string) []int {
	return toolutil.CompactMap(toolutil.StreamOf(scores), toolutil.ParseInt).ToSlice()
}

func CompactMapExamples(set dataset.Set) []Result {
	return []Result{
		{"compactmap", "Compact map of scores", CompactScores(set.Scores)},
		{"compactmap", "Present values of mapped scores", toolutil.Present(toolutil.StreamOf(ScoresAsOptions(set.Scores))).ToSlice()},
	}
}

// ---- CHAINING ----

func zipcode(a dataset.Address) int { return a.Zipcode }

func street(a dataset.Address) string { return a.Street }

func atZipcode(zip int) func(dataset.Address) bool {
	return func(a dataset.Address) bool { return a.Zipcode == zip }
}

// StreetsPipeline filter(zipcode==zip) 然后 map(street)
func StreetsPipeline(zip int) *toolutil.Projection[dataset.Address, string] {
	return toolutil.MapTo(toolutil.NewStreamBuilder[dataset.Address]().Filter(atZipcode(zip)), street)
}

// CapitalizedPipeline map(capitalized) 然后 sorted()
func CapitalizedPipeline() *toolutil.StreamBuilder[string] {
	return toolutil.NewStreamBuilder[string]().Map(str.Capitalize).Sorted(toolutil.Asc[string])
}

func StreetNamesAt(addrs []dataset.Address, zip int) []string {
	return StreetsPipeline(zip).Build(addrs).ToSlice()
}

func SortedCapitalizedPlanets(planets []string) []string {
	return CapitalizedPipeline().Build(planets).ToSlice()
}

// DescendingNamesPipeline map(每组降序) 然后 flatMap 拼接
func DescendingNamesPipeline() *toolutil.Projection[[]string, string] {
	descending := func(g []string) []string {
		return toolutil.Sorted(toolutil.StreamOf(g), toolutil.Desc[string]).ToSlice()
	}
	return toolutil.FlatMapTo(toolutil.NewStreamBuilder[[]string]().Map(descending), func(g []string) []string { return g })
}

// DescendingFlatNames 每组降序后拼接
func DescendingFlatNames(names [][]string) []string {
	return DescendingNamesPipeline().Build(names).ToSlice()
}

func ChainExamples(set dataset.Set) []Result {
	return []Result{
		{"chain", "Street names from specific zipcode", StreetNamesAt(set.Addresses, 1200)},
		{"chain", "Sorted capitalized planet names", SortedCapitalizedPlanets(set.Planets)},
		{"chain", "Descending sorted flat map names", DescendingFlatNames(set.Names)},
	}
}

// Pipeline 链式演示的步骤名，用来画图
type Pipeline struct {
	Name   string
	Stages []string
}

func ChainPipelines() []Pipeline {
	return []Pipeline{
		{Name: "street names from specific zipcode", Stages: StreetsPipeline(1200).Stages()},
		{Name: "sorted capitalized planet names", Stages: CapitalizedPipeline().Stages()},
		{Name: "descending sorted flat map names", Stages: DescendingNamesPipeline().Stages()},
	}
}
