package playground

import (
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hof_tool/pkg/dataset"
)

func TestMapExamples(t *testing.T) {
	set := dataset.Default()

	assert.InDeltaSlice(t, []float64{32.81, 72.182, 180.455, 242.794}, MetersToFeet(set.Meters), 1e-9)
	assert.Equal(t,
		[]string{"Mars", "Jupiter", "Mercury", "Saturn", "Earth", "Neptune", "Uranus", "Venus"},
		CapitalizedPlanets(set.Planets))
	assert.Equal(t, []int{1200, 4560}, Zipcodes(set.Addresses))
	assert.Empty(t, MetersToFeet(nil))
}

func TestFilterExamples(t *testing.T) {
	set := dataset.Default()

	assert.Equal(t, []string{"mars", "mercury"}, PlanetsStartingWith(set.Planets, "M"))
	assert.Equal(t, []string{"mars", "mercury"}, PlanetsStartingWith(set.Planets, "m"))
	assert.Empty(t, PlanetsStartingWith(set.Planets, "z"))
	assert.Equal(t, []dataset.Address{{Street: "Nice Boulevard", Zipcode: 1200}}, AddressesAt(set.Addresses, 1200))

	results := FilterExamples(set)
	require.Len(t, results, 2)
	assert.Equal(t, 2, results[0].Value)
	assert.Equal(t, 1, results[1].Value)
}

func TestReduceExamples(t *testing.T) {
	set := dataset.Default()

	assert.Equal(t, 122, SumOfNumbers(set.Numbers))
	assert.Equal(t, 0, SumOfNumbers(nil))
	// jupiter、mercury、neptune 一样长，取最后一个
	assert.Equal(t, "neptune", LongestPlanetName(set.Planets))
	assert.Equal(t, "", LongestPlanetName(nil))

	assert.Equal(t, "ab", LongerOrLater("ab", "a"))
	assert.Equal(t, "cd", LongerOrLater("ab", "cd"))
	assert.Equal(t, "ab", LongerOrFirst("ab", "cd"))
	// 按字符数比较
	assert.Equal(t, "abc", LongerOrFirst("地球", "abc"))

	results := ReduceExamples(set)
	require.Len(t, results, 3)
	assert.Equal(t, results[0].Value, results[1].Value)
}

func TestSortedExamples(t *testing.T) {
	set := dataset.Default()
	asc := []int{1, 2, 3, 5, 5, 6, 7, 8, 9, 10, 23, 43}
	desc := []int{43, 23, 10, 9, 8, 7, 6, 5, 5, 3, 2, 1}

	assert.Equal(t, asc, SortedAscending(set.Numbers))
	assert.Equal(t, desc, SortedDescending(set.Numbers))

	results := SortedExamples(set)
	require.Len(t, results, 4)
	assert.Equal(t, asc, results[0].Value)
	for _, r := range results[1:] {
		assert.Equal(t, desc, r.Value, r.Title)
	}
	// 原始数据不变
	assert.Equal(t, dataset.Default().Numbers, set.Numbers)
}

func TestFlatMapExamples(t *testing.T) {
	set := dataset.Default()

	flat := FlatSortedNames(set.Names)
	assert.Equal(t, []string{"jacob", "morten", "peter", "roxana", "iben", "nicolai", "nour"}, flat)
	assert.Equal(t, []string{"a", "b", "c", "j", "o", "b", "e", "i", "n"}, SortedLetters([]string{"jacob", "iben"}))
	assert.Len(t, SortedLetters(flat), 37)

	assert.Equal(t, []mo.Option[int]{
		mo.Some(1), mo.Some(2), mo.None[int](), mo.None[int](), mo.Some(5),
	}, ScoresAsOptions(set.Scores))
}

func TestCompactMapExamples(t *testing.T) {
	set := dataset.Default()

	assert.Equal(t, []int{1, 2, 5}, CompactScores(set.Scores))
	assert.Empty(t, CompactScores([]string{"one", "two"}))

	results := CompactMapExamples(set)
	require.Len(t, results, 2)
	assert.Equal(t, results[0].Value, results[1].Value)
}

func TestChainExamples(t *testing.T) {
	set := dataset.Default()

	assert.Equal(t, []string{"Nice Boulevard"}, StreetNamesAt(set.Addresses, 1200))
	assert.Empty(t, StreetNamesAt(set.Addresses, 9999))
	assert.Equal(t,
		[]string{"Earth", "Jupiter", "Mars", "Mercury", "Neptune", "Saturn", "Uranus", "Venus"},
		SortedCapitalizedPlanets(set.Planets))
	assert.Equal(t,
		[]string{"roxana", "peter", "morten", "jacob", "nour", "nicolai", "iben"},
		DescendingFlatNames(set.Names))
}

func TestChainPipelines(t *testing.T) {
	pipes := ChainPipelines()
	require.Len(t, pipes, 3)
	assert.Equal(t, []string{"Filter", "MapTo"}, pipes[0].Stages)
	assert.Equal(t, []string{"Map", "Sorted"}, pipes[1].Stages)
	assert.Equal(t, []string{"Map", "FlatMapTo"}, pipes[2].Stages)
}

func TestSections(t *testing.T) {
	names := make([]string, len(Sections))
	for i, s := range Sections {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"map", "filter", "reduce", "sorted", "flatmap", "compactmap", "chain"}, names)

	s, ok := Lookup("reduce")
	require.True(t, ok)
	assert.Equal(t, "reduce", s.Name)
	_, ok = Lookup("zip")
	assert.False(t, ok)

	all := RunAll(dataset.Default())
	assert.Len(t, all, 3+2+3+4+3+2+3)
	for _, r := range all {
		assert.NotEmpty(t, r.Title)
		assert.NotNil(t, r.Value, r.Title)
	}
}

func TestRunAllCustomData(t *testing.T) {
	set, err := dataset.Parse([]byte(`{"addresses": [{"street": "harbour lane", "zipcode": 1200}]}`))
	require.NoError(t, err)

	results := ChainExamples(set)
	assert.Equal(t, []string{"harbour lane"}, results[0].Value)
}
