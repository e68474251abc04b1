package initutil

import (
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"sync"

	"hof_tool/pkg/errorutil"
	"hof_tool/pkg/logutil"
	"hof_tool/pkg/toolutil/str"
)

// DefaultConfigFile 当前目录下的默认配置文件，不存在时忽略
const DefaultConfigFile = "hofplay.conf"

// Config 命令行工具的配置，优先级: flag > 配置文件 > 默认值
type Config struct {
	// 配置文件路径，为空表示没有读取
	Path string
	// JSON 数据文件，为空表示使用内置数据
	DataFile string
	// 输出格式 txt/table/json
	Format string
	// 日志级别 DEBUG/INFO/WARN/ERROR
	LogLevel string
}

// NewConfig 默认值
func NewConfig() Config {
	return Config{Format: "txt", LogLevel: "WARN"}
}

var (
	globalConfig = NewConfig()
	mu           sync.RWMutex
)

// LoadConfig 读取 key=value; 格式的配置文件
// path 为空时尝试 DefaultConfigFile，默认文件不存在不算错误
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	path = str.DefaultStr(path, DefaultConfigFile)

	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			logutil.Debug("配置文件 %s 不存在，使用默认配置", path)
			return NewConfig(), nil
		}
		return NewConfig(), errorutil.NewExitErrorWithMessage(
			errorutil.CodeConfigError, "无法读取配置文件 "+path, err)
	}

	cfg := ParseConfig(string(raw))
	cfg.Path = path
	if cfg.Format != "" && !validFormat(cfg.Format) {
		return NewConfig(), errorutil.NewExitErrorWithMessage(
			errorutil.CodeConfigError, "配置文件中 format 无效: "+cfg.Format, nil)
	}
	var lvl logutil.LogLevel
	if err := lvl.Set(cfg.LogLevel); err != nil {
		return NewConfig(), errorutil.NewExitErrorWithMessage(errorutil.CodeConfigError, "配置文件中 loglevel 无效", err)
	}
	return cfg, nil
}

// ParseConfig 解析配置内容，缺失的键保持默认值
func ParseConfig(content string) Config {
	cfg := NewConfig()
	cfg.DataFile = extractValue(content, "data", cfg.DataFile)
	cfg.Format = extractValue(content, "format", cfg.Format)
	cfg.LogLevel = strings.ToUpper(extractValue(content, "loglevel", cfg.LogLevel))
	return cfg
}

// extractValue 取 key=value; 中的 value，# 开头的行被忽略
func extractValue(content, key, def string) string {
	re := regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(key) + `[ \t]*=[ \t]*([^;\r\n]*)`)
	m := re.FindStringSubmatch(content)
	if len(m) < 2 {
		return def
	}
	return str.DefaultStr(strings.TrimSpace(m[1]), def)
}

func validFormat(f string) bool {
	switch f {
	case "txt", "table", "json":
		return true
	}
	return false
}

// SetConfig 保存最终生效的配置
func SetConfig(cfg Config) {
	mu.Lock()
	globalConfig = cfg
	mu.Unlock()
	logutil.Info("生效配置:\n%v", cfg)
}

// GetConfig 获取全局配置
func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return globalConfig
}
