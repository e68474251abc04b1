package testutils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// WriteTempFile 在测试临时目录下写文件，返回完整路径
// 测试结束后目录自动删除
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("写临时文件 %s 失败: %v", path, err)
	}
	return path
}

// 读取 JSON 文件的泛型函数
func ReadJSONFile[T any](t *testing.T, filePath string) T {
	t.Helper()
	var result T
	raw, err := os.ReadFile(filePath)
	if err != nil {
		t.Fatalf("读取 %s 失败: %v", filePath, err)
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("解析 %s 失败: %v", filePath, err)
	}
	return result
}

// DecodeJSON 把命令输出解析成 T
func DecodeJSON[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var result T
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("输出不是合法的 JSON: %v\n%s", err, raw)
	}
	return result
}

// 比较 JSON 数据的泛型函数，不一致时打印差异
func AssertJSONEqual[T any](t *testing.T, expected, actual T) {
	t.Helper()
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Fatalf("JSON 数据不匹配 (-want +got):\n%s", diff)
	}
}
