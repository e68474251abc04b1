package report

import (
	"fmt"
	"io"
	"strings"

	"hof_tool/pkg/playground"
	"hof_tool/pkg/toolutil"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Format 输出格式
type Format string

const (
	FormatText  Format = "txt"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// 为了让 VarP 接收自定义类型，实现 flag.Value 接口(String Set Type)即可：
func (f *Format) String() string { return string(*f) }

func (f *Format) Set(val string) error {
	for _, v := range f.Values() {
		if v == val {
			*f = Format(val)
			return nil
		}
	}
	return fmt.Errorf("无效的 format 值: %s (可选 %s)", val, strings.Join(f.Values(), "/"))
}

func (f *Format) Type() string {
	return "format" // 这个字符串用于帮助文档与类型提示
}

// 列出所有的合法值
func (Format) Values() []string {
	return []string{string(FormatText), string(FormatTable), string(FormatJSON)}
}

// Formatter 把演示结果写到 w
type Formatter interface {
	Format(w io.Writer, results []playground.Result) error
}

type TextFormatter struct{}

type TableFormatter struct{}

type JSONFormatter struct {
	// Compact 为真时输出一行
	Compact bool
}

var formatters = map[Format]Formatter{
	FormatText:  TextFormatter{},
	FormatTable: TableFormatter{},
	FormatJSON:  JSONFormatter{},
}

// For 按格式取 Formatter
func For(f Format) (Formatter, error) {
	fm, ok := formatters[f]
	if !ok {
		return nil, fmt.Errorf("不支持的输出格式: %s", f)
	}
	return fm, nil
}

// Write 按格式输出
func Write(w io.Writer, f Format, results []playground.Result) error {
	fm, err := For(f)
	if err != nil {
		return err
	}
	return fm.Format(w, results)
}

// "Title: value"，每个结果一行，同一分组前面有标题
func (TextFormatter) Format(w io.Writer, results []playground.Result) error {
	section := ""
	for _, r := range results {
		if r.Section != section {
			if section != "" {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			section = r.Section
			if _, err := fmt.Fprintf(w, "// %s\n", strings.ToUpper(section)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", r.Title, Describe(r.Value)); err != nil {
			return err
		}
	}
	return nil
}

// 按显示宽度对齐，中文标题也不会错位
func (TableFormatter) Format(w io.Writer, results []playground.Result) error {
	headers := []string{"SECTION", "TITLE", "VALUE"}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.Section, r.Title, Humanize(r.Value)})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = toolutil.Reduce(toolutil.StreamOf(rows), runewidth.StringWidth(h), func(acc int, row []string) int {
			return max(acc, runewidth.StringWidth(row[i]))
		})
	}

	writeRow := func(cells []string) error {
		parts := make([]string, len(cells))
		for i, c := range cells {
			if i == len(cells)-1 {
				parts[i] = c
				continue
			}
			parts[i] = runewidth.FillRight(c, widths[i])
		}
		_, err := fmt.Fprintln(w, strings.Join(parts, "  "))
		return err
	}

	if err := writeRow(headers); err != nil {
		return err
	}
	seps := make([]string, len(headers))
	for i := range headers {
		seps[i] = strings.Repeat("-", widths[i])
	}
	if err := writeRow(seps); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(row); err != nil {
			return err
		}
	}
	return nil
}

// JSON 文档，见 Build
func (f JSONFormatter) Format(w io.Writer, results []playground.Result) error {
	doc, err := Build(results)
	if err != nil {
		return err
	}
	if f.Compact {
		doc = pretty.Ugly(doc)
	} else {
		doc = pretty.PrettyOptions(doc, &pretty.Options{Width: 80, Indent: "    "})
	}
	_, err = w.Write(doc)
	return err
}

// Build 用 sjson 逐项拼出 JSON 文档：{"results": [{section, title, value}, ...]}
// value 交给 encoding/json，结构体按 json tag 输出，mo.Option 缺失时为 null
func Build(results []playground.Result) ([]byte, error) {
	doc := []byte(`{"results":[]}`)
	for _, r := range results {
		item := []byte(`{}`)
		var err error
		if item, err = sjson.SetBytes(item, "section", r.Section); err != nil {
			return nil, err
		}
		if item, err = sjson.SetBytes(item, "title", r.Title); err != nil {
			return nil, err
		}
		if item, err = sjson.SetBytes(item, "value", r.Value); err != nil {
			return nil, err
		}
		// -1 表示追加到数组末尾
		if doc, err = sjson.SetRawBytes(doc, "results.-1", item); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// Describe 紧凑 JSON 形式，可选值缺失显示为 null
func Describe(v any) string {
	return toolutil.ToJSON(v)
}

// Humanize 标量数字加千分位，其余同 Describe
func Humanize(v any) string {
	switch n := v.(type) {
	case int:
		return humanize.Comma(int64(n))
	case int64:
		return humanize.Comma(n)
	case float64:
		return humanize.Commaf(n)
	default:
		return Describe(v)
	}
}
