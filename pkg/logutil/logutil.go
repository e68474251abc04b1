package logutil

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"sync"
)

// LogLevel 日志级别，实现了 pflag.Value，可以直接绑定到 cobra 的 flag
type LogLevel int

// 定义日志级别
const (
	DEBUG LogLevel = iota // 0
	INFO                  // 1
	WARN                  // 2
	ERROR                 // 3
)

// 定义日志级别映射字符串
var LOG_LEVELS = map[string]LogLevel{
	"DEBUG": DEBUG,
	"INFO":  INFO,
	"WARN":  WARN,
	"ERROR": ERROR,
}

func (l *LogLevel) String() string {
	for name, v := range LOG_LEVELS {
		if v == *l {
			return name
		}
	}
	return fmt.Sprintf("LogLevel(%d)", int(*l))
}

func (l *LogLevel) Set(val string) error {
	v, ok := LOG_LEVELS[strings.ToUpper(strings.TrimSpace(val))]
	if !ok {
		return fmt.Errorf("无效的日志级别: %s", val)
	}
	*l = v
	return nil
}

// 帮助文档里显示的类型名
func (l *LogLevel) Type() string {
	return "loglevel"
}

var (
	mu           sync.Mutex
	logger       *log.Logger
	logFile      *os.File
	currentLevel = INFO // 默认日志级别
)

// InitLogger 初始化日志，output 为 "stdout" 或者文件路径(追加写)
// 重复调用会关闭之前打开的文件
func InitLogger(output string, level LogLevel) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	if output == "" || output == "stdout" {
		logFile = nil
		logger = log.New(os.Stdout, "", log.LstdFlags)
	} else {
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			logger = log.New(os.Stderr, "", log.LstdFlags)
			return fmt.Errorf("无法创建日志文件 %s: %w", output, err)
		}
		logFile = f
		logger = log.New(f, "", log.LstdFlags)
	}
	currentLevel = level
	return nil
}

// SetOutput 直接指定输出目标，测试里常用
func SetOutput(w io.Writer, level LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	logger = log.New(w, "", 0)
	currentLevel = level
}

// 设置日志级别
func SetLogLevel(level LogLevel) {
	mu.Lock()
	currentLevel = level
	mu.Unlock()
}

// logMessage 仅输出不低于当前级别的日志
func logMessage(level LogLevel, tag string, msg string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = log.New(os.Stdout, "", log.LstdFlags)
	}
	if level < currentLevel {
		return
	}

	_, file, line, _ := runtime.Caller(2) // 获取真正调用的文件+行号
	formattedArgs := make([]any, len(args))
	for i, arg := range args {
		formattedArgs[i] = formatArg(arg)
	}
	logger.Printf("[%s:%d] %s %s", filepath.Base(file), line, tag, fmt.Sprintf(msg, formattedArgs...))
}

// 结构体按字段展开，集合转 JSON，其余原样
func formatArg(arg any) any {
	v := reflect.ValueOf(arg)
	if v.Kind() == reflect.Ptr && !v.IsNil() {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Struct:
		return strings.TrimRight(formatStruct(v, ""), "\n")
	case reflect.Slice, reflect.Map:
		data, err := json.Marshal(arg)
		if err != nil {
			return fmt.Sprintf("无法格式化: %v", err)
		}
		return string(data)
	default:
		return arg
	}
}

// Info 记录 INFO 日志
func Info(msg string, args ...any) {
	logMessage(INFO, "[INFO]", msg, args...)
}

// Warn 记录 WARN 日志
func Warn(msg string, args ...any) {
	logMessage(WARN, "[WARN]", msg, args...)
}

// Error 记录 ERROR 日志
func Error(msg string, args ...any) {
	logMessage(ERROR, "[ERR]", msg, args...)
}

// Debug 记录 DEBUG 日志
func Debug(msg string, args ...any) {
	logMessage(DEBUG, "[DBG]", msg, args...)
}

// 关闭日志文件（如果有的话）
func CloseLogger() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	logger = nil
	return err
}

// 递归格式化结构体信息，只展开导出字段
func formatStruct(v reflect.Value, indent string) string {
	t := v.Type()
	var builder strings.Builder
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		value := v.Field(i)
		if value.Kind() == reflect.Struct {
			// 嵌套结构体先打印标头，再递归处理
			fmt.Fprintf(&builder, "%s%s:\n", indent, field.Name)
			builder.WriteString(formatStruct(value, indent+"    "))
			continue
		}
		fmt.Fprintf(&builder, "%s%s: %#v\n", indent, field.Name, value.Interface())
	}
	return builder.String()
}
