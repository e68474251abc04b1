package diffutil

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatSideBySide 按显示宽度对齐左右两栏
// fmt 的 %-*s 按字符数补齐，宽字符要额外扣掉多出来的显示宽度
func FormatSideBySide(diff []DiffLine) string {
	// 模糊宽度字符按照宽度1计算
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false

	width := len("* Before")
	for _, d := range diff {
		width = max(width, cond.StringWidth(d.Left))
	}

	out := []string{
		fmt.Sprintf("%-*s  %s  %s", width, "* Before", " ", "* After"),
	}
	out = append(out, strings.Repeat("-", len(out[0])))
	for _, d := range diff {
		out = append(out, fmt.Sprintf("%s  %s  %s", cond.FillRight(d.Left, width), d.Mark, d.Right))
	}
	return strings.Join(out, "\n")
}
