package dataset

import (
	"fmt"
	"os"

	"hof_tool/pkg/errorutil"
	"hof_tool/pkg/logutil"
	"hof_tool/pkg/toolutil"

	"github.com/tidwall/gjson"
)

// Address 普通值类型，没有身份，字段相等就是相等
type Address struct {
	Street  string `json:"street"`
	Zipcode int    `json:"zipcode"`
}

// Set 一次演示需要的全部输入数据
type Set struct {
	Meters    []float64  `json:"meters"`
	Numbers   []int      `json:"numbers"`
	Planets   []string   `json:"planets"`
	Names     [][]string `json:"names"`
	Scores    []string   `json:"scores"`
	Addresses []Address  `json:"addresses"`
}

// Default 内置的演示数据，每次返回新的切片
func Default() Set {
	return Set{
		Meters:  []float64{10.0, 22.0, 55.0, 74.0},
		Numbers: []int{5, 3, 2, 6, 10, 23, 1, 43, 5, 7, 8, 9},
		Planets: []string{"mars", "jupiter", "mercury", "saturn", "earth", "neptune", "uranus", "venus"},
		Names: [][]string{
			{"roxana", "peter", "jacob", "morten"},
			{"iben", "nour", "nicolai"},
		},
		Scores: []string{"1", "2", "three", "four", "5"},
		Addresses: []Address{
			{Street: "Nice Boulevard", Zipcode: 1200},
			{Street: "Green Street", Zipcode: 4560},
		},
	}
}

// LoadFile 读取 JSON 数据文件，缺失的键沿用内置数据
func LoadFile(path string) (Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Set{}, errorutil.NewExitErrorWithMessage(
			errorutil.CodeMissingInput, fmt.Sprintf("无法读取数据文件 %s", path), err)
	}
	return Parse(raw)
}

// LoadScores 读取纯文本的分数文件，每行一个，原样保留(包括无法解析的行)
func LoadScores(path string) ([]string, error) {
	lines, err := toolutil.ReadFileToLines(path)
	if err != nil {
		return nil, errorutil.NewExitErrorWithMessage(
			errorutil.CodeMissingInput, fmt.Sprintf("无法读取分数文件 %s", path), err)
	}
	return lines, nil
}

// Parse 解析 JSON 数据，形状不对返回 CodeInvalidData
func Parse(raw []byte) (Set, error) {
	if !gjson.ValidBytes(raw) {
		return Set{}, invalid("数据不是合法的 JSON", nil)
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return Set{}, invalid("数据顶层必须是对象", nil)
	}

	set := Default()
	var err error
	if r := doc.Get("meters"); r.Exists() {
		if set.Meters, err = floats(r); err != nil {
			return Set{}, invalid("meters", err)
		}
	}
	if r := doc.Get("numbers"); r.Exists() {
		if set.Numbers, err = ints(r); err != nil {
			return Set{}, invalid("numbers", err)
		}
	}
	if r := doc.Get("planets"); r.Exists() {
		if set.Planets, err = strs(r); err != nil {
			return Set{}, invalid("planets", err)
		}
	}
	if r := doc.Get("scores"); r.Exists() {
		if set.Scores, err = strs(r); err != nil {
			return Set{}, invalid("scores", err)
		}
	}
	if r := doc.Get("names"); r.Exists() {
		if set.Names, err = groups(r); err != nil {
			return Set{}, invalid("names", err)
		}
	}
	if r := doc.Get("addresses"); r.Exists() {
		if set.Addresses, err = addresses(r); err != nil {
			return Set{}, invalid("addresses", err)
		}
	}

	logutil.Debug("dataset loaded: %v", set)
	return set, nil
}

func invalid(what string, err error) error {
	msg := what
	if err != nil {
		msg = fmt.Sprintf("字段 %s 格式错误: %v", what, err)
	}
	return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, msg, err)
}

func array(r gjson.Result) ([]gjson.Result, error) {
	if !r.IsArray() {
		return nil, fmt.Errorf("期望数组，实际是 %s", r.Type)
	}
	return r.Array(), nil
}

func floats(r gjson.Result) ([]float64, error) {
	items, err := array(r)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(items))
	for i, it := range items {
		if it.Type != gjson.Number {
			return nil, fmt.Errorf("第 %d 项不是数字: %s", i, it.Raw)
		}
		out = append(out, it.Float())
	}
	return out, nil
}

func ints(r gjson.Result) ([]int, error) {
	items, err := array(r)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(items))
	for i, it := range items {
		if it.Type != gjson.Number || it.Float() != float64(it.Int()) {
			return nil, fmt.Errorf("第 %d 项不是整数: %s", i, it.Raw)
		}
		out = append(out, int(it.Int()))
	}
	return out, nil
}

func strs(r gjson.Result) ([]string, error) {
	items, err := array(r)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		if it.Type != gjson.String {
			return nil, fmt.Errorf("第 %d 项不是字符串: %s", i, it.Raw)
		}
		out = append(out, it.String())
	}
	return out, nil
}

func groups(r gjson.Result) ([][]string, error) {
	items, err := array(r)
	if err != nil {
		return nil, err
	}
	out := make([][]string, 0, len(items))
	for i, it := range items {
		g, err := strs(it)
		if err != nil {
			return nil, fmt.Errorf("第 %d 组: %w", i, err)
		}
		out = append(out, g)
	}
	return out, nil
}

func addresses(r gjson.Result) ([]Address, error) {
	items, err := array(r)
	if err != nil {
		return nil, err
	}
	out := make([]Address, 0, len(items))
	for i, it := range items {
		street, zip := it.Get("street"), it.Get("zipcode")
		if !it.IsObject() || street.Type != gjson.String || zip.Type != gjson.Number {
			return nil, fmt.Errorf("第 %d 项需要 {street, zipcode}: %s", i, it.Raw)
		}
		out = append(out, Address{Street: street.String(), Zipcode: int(zip.Int())})
	}
	return out, nil
}
