package diffutil

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffLine 左右并排的一行
type DiffLine struct {
	Left  string
	Right string
	Mark  string // "|" 相同, "+" 新增, "-" 删除, "~" 替换
}

// CompareSequences 按元素逐行比较变换前后的序列
// 元素里不能带换行符，带了会被拆成多行
func CompareSequences(before, after []string) []DiffLine {
	// 每个元素都以换行结尾，避免最后一行因为缺少换行被当成不同的行
	return CompareMultiline(joinLines(before), joinLines(after))
}

// CompareMultiline 以行为单位做 diff，相邻的删除+新增合并为替换
func CompareMultiline(before, after string) []DiffLine {
	dmp := diffmatchpatch.New()
	text1, text2, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(text1, text2, false), lineArray)

	var result []DiffLine
	for i := 0; i < len(diffs); i++ {
		d := diffs[i]
		if d.Type == diffmatchpatch.DiffDelete && i+1 < len(diffs) && diffs[i+1].Type == diffmatchpatch.DiffInsert {
			result = append(result, pairUp(splitLines(d.Text), splitLines(diffs[i+1].Text))...)
			i++
			continue
		}
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				result = append(result, DiffLine{Left: line, Right: line, Mark: "|"})
			case diffmatchpatch.DiffDelete:
				result = append(result, DiffLine{Left: line, Mark: "-"})
			case diffmatchpatch.DiffInsert:
				result = append(result, DiffLine{Right: line, Mark: "+"})
			}
		}
	}
	return result
}

// 删除和新增一一配对，多出来的部分单独成行
func pairUp(del, ins []string) []DiffLine {
	out := make([]DiffLine, 0, max(len(del), len(ins)))
	for i := 0; i < max(len(del), len(ins)); i++ {
		switch {
		case i < len(del) && i < len(ins):
			out = append(out, DiffLine{Left: del[i], Right: ins[i], Mark: "~"})
		case i < len(del):
			out = append(out, DiffLine{Left: del[i], Mark: "-"})
		default:
			out = append(out, DiffLine{Right: ins[i], Mark: "+"})
		}
	}
	return out
}

// DiffLinesToChars 产生的每段文本都以换行结尾(最后一行除外)，空行也要保留
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func joinLines(items []string) string {
	var b strings.Builder
	for _, it := range items {
		b.WriteString(it)
		b.WriteByte('\n')
	}
	return b.String()
}
