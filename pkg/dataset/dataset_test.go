package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hof_tool/internal/testutils"
	"hof_tool/pkg/errorutil"
	"hof_tool/pkg/toolutil"
)

func TestDefault(t *testing.T) {
	set := Default()

	assert.Len(t, set.Meters, 4)
	assert.Len(t, set.Numbers, 12)
	assert.Len(t, set.Planets, 8)
	assert.Len(t, set.Names, 2)
	assert.Equal(t, []string{"1", "2", "three", "four", "5"}, set.Scores)
	assert.Equal(t, Address{Street: "Nice Boulevard", Zipcode: 1200}, set.Addresses[0])

	// 每次返回新的切片
	set.Numbers[0] = 100
	assert.Equal(t, 5, Default().Numbers[0])
}

func TestLoadFile(t *testing.T) {
	set, err := LoadFile(filepath.Join("testdata", "custom.json"))
	require.NoError(t, err)

	assert.Equal(t, []int{3, 1, 2}, set.Numbers)
	assert.Equal(t, []string{"pluto", "mars"}, set.Planets)
	assert.Equal(t, [][]string{{"zed", "amy"}, {"bob"}}, set.Names)
	assert.Equal(t, []Address{{"Harbour Lane", 1200}, {"Old Road", 8000}}, set.Addresses)
	// 与 encoding/json 解码的结果一致
	raw := testutils.ReadJSONFile[Set](t, filepath.Join("testdata", "custom.json"))
	testutils.AssertJSONEqual(t, raw.Addresses, set.Addresses)
	testutils.AssertJSONEqual(t, raw.Names, set.Names)

	// 没给的键用内置数据
	assert.Equal(t, Default().Meters, set.Meters)
	assert.Equal(t, Default().Scores, set.Scores)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Equal(t, errorutil.CodeMissingInput, errorutil.ExitCodeFromError(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadScores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	require.NoError(t, os.WriteFile(path, []byte("7\r\nseven\n 8 \n"), 0o644))

	scores, err := LoadScores(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"7", "seven", " 8 "}, scores)
	assert.Equal(t, []int{7}, toolutil.CompactMap(toolutil.StreamOf(scores), toolutil.ParseInt).ToSlice())

	_, err = LoadScores(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Equal(t, errorutil.CodeMissingInput, errorutil.ExitCodeFromError(err))
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"NotJSON", `{"numbers": [1, 2`},
		{"TopLevelArray", `[1, 2, 3]`},
		{"NumbersNotArray", `{"numbers": 3}`},
		{"NumbersNotInt", `{"numbers": [1, 2.5]}`},
		{"MetersNotNumber", `{"meters": ["10"]}`},
		{"PlanetsNotString", `{"planets": ["mars", 4]}`},
		{"NamesNotNested", `{"names": ["roxana"]}`},
		{"AddressMissingZip", `{"addresses": [{"street": "Green Street"}]}`},
		{"AddressNotObject", `{"addresses": ["Green Street"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			require.Error(t, err)
			assert.Equal(t, errorutil.CodeInvalidData, errorutil.ExitCodeFromError(err))
		})
	}
}

func TestParseEmptyObject(t *testing.T) {
	set, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, Default(), set)
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry(Default())
	assert.Equal(t, 6, reg.Len())

	names := func(es []Entry) []string {
		out := make([]string, len(es))
		for i, e := range es {
			out[i] = e.Name
		}
		return out
	}
	assert.Equal(t, []string{"addresses", "meters", "names", "numbers", "planets", "scores"}, names(reg.Match("")))
	assert.Equal(t, []string{"names", "numbers"}, names(reg.Match("n")))
	assert.Empty(t, reg.Match("x"))

	e, err := reg.Resolve("pl")
	require.NoError(t, err)
	assert.Equal(t, "planets", e.Name)
	assert.Equal(t, 8, e.Count)
	assert.Equal(t, "[]string", e.Kind)

	e, err = reg.Resolve("names")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"roxana", "peter", "jacob", "morten"}, {"iben", "nour", "nicolai"}}, e.Value)

	_, err = reg.Resolve("n")
	assert.ErrorContains(t, err, "不唯一")
	_, err = reg.Resolve("pluto")
	assert.Error(t, err)
}
