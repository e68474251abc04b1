package errorutil

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	CodeSuccess = 0 // 成功执行

	// 60–69: 用户输入或调用错误
	CodeInvalidUsage = 64 // 命令行用法错误（参数不合法等）
	CodeMissingInput = 65 // 缺失必须输入（如数据文件）
	CodeInvalidData  = 66 // 用户输入格式错误（数据非法）

	// 70–79: 程序自身错误
	CodeIOError     = 72 // 文件读写失败
	CodeInternalErr = 74 // 内部 bug、panic、未捕捉异常

	// 80–89: 配置相关
	CodeConfigError = 80 // 配置文件有误
)

// omitempty 的作用是空字段不出现
type ExitErrorWithCode struct {
	Code    int    `json:"code"`              // 错误码，同时是进程退出码
	Message string `json:"message,omitempty"` // 可读消息
	Err     error  `json:"-"`
}

func (e *ExitErrorWithCode) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case e.Message != "":
		return e.Message
	}
	return fmt.Sprintf("Exit with code: %d", e.Code)
}

func (e *ExitErrorWithCode) Unwrap() error {
	return e.Err
}

func NewExitError(code int, err error) error {
	return &ExitErrorWithCode{Code: code, Err: err}
}

// 带错误消息的错误
func NewExitErrorWithMessage(code int, message string, err error) error {
	return &ExitErrorWithCode{Code: code, Message: message, Err: err}
}

// os.Exit(errorutil.ExitCodeFromError(err))
func ExitCodeFromError(err error) int {
	if err == nil {
		return CodeSuccess
	}
	var exitErr *ExitErrorWithCode
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return CodeInternalErr
}

// msg := errorutil.UserMessage(err)
func UserMessage(err error) string {
	var exitErr *ExitErrorWithCode
	if errors.As(err, &exitErr) && exitErr.Message != "" {
		return exitErr.Message
	}
	return ""
}

// 提取原始错误
func RootError(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}

func (e *ExitErrorWithCode) JSON() string {
	type jsonErr struct {
		Code    int    `json:"code"`
		Message string `json:"message,omitempty"`
		Err     string `json:"error,omitempty"`
	}

	data := jsonErr{Code: e.Code, Message: e.Message}
	if e.Err != nil {
		data.Err = e.Err.Error()
	}
	jsonBytes, _ := json.Marshal(data)
	return string(jsonBytes)
}

// FormatErrorAndCode 返回 JSON 形式的错误描述和退出码
func FormatErrorAndCode(err error) (string, int) {
	var exitErr *ExitErrorWithCode
	if errors.As(err, &exitErr) {
		return exitErr.JSON(), exitErr.Code
	}
	return (&ExitErrorWithCode{
		Code:    CodeInternalErr,
		Message: "未知错误",
		Err:     err,
	}).JSON(), CodeInternalErr
}
