// 简单的字符串操作库
package str

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize 每个单词首字母大写，其余小写："nice boulevard" -> "Nice Boulevard"
func Capitalize(s string) string {
	// cases.Caser 带状态，不能并发共用，每次新建
	return cases.Title(language.Und).String(s)
}

// HasPrefixFold 忽略大小写判断前缀
func HasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// RuneLen 按字符数计算长度，不是字节数
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// 字符串为空的时候设置字符串的默认值
func DefaultStr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
