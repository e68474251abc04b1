package toolutil

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// 读取文件并返回按行拆分的字符串列表，适用于所有操作系统
func ReadFileToLines(filePath string) (lines []string, err error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("无法打开文件 %s: %w", filePath, err)
	}

	// 命名返回值，关闭失败也能带出去
	defer func() {
		if cerr := file.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("关闭文件 %s 失败: %w", filePath, cerr))
		}
	}()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		// 自动处理不同操作系统的换行符
		lines = append(lines, scanner.Text())
	}
	if readErr := scanner.Err(); readErr != nil {
		return lines, fmt.Errorf("读取文件 %s 出错: %w", filePath, readErr)
	}
	return lines, nil
}

// 把任意对象转换成JSON格式(紧凑)
func ToJSON(obj any) string {
	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal object: %s"}`, err)
	}
	return string(data)
}
