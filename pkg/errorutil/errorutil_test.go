package errorutil

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestExitCodeFromError(t *testing.T) {
	assert.Equal(t, CodeSuccess, ExitCodeFromError(nil))
	assert.Equal(t, CodeInternalErr, ExitCodeFromError(errors.New("boom")))

	err := NewExitError(CodeInvalidData, errors.New("bad"))
	assert.Equal(t, CodeInvalidData, ExitCodeFromError(err))
	// 包了一层也能取到
	assert.Equal(t, CodeInvalidData, ExitCodeFromError(fmt.Errorf("load: %w", err)))
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitErrorWithCode
		want string
	}{
		{"Both", &ExitErrorWithCode{Code: 65, Message: "无法读取", Err: fs.ErrNotExist}, "无法读取: file does not exist"},
		{"ErrOnly", &ExitErrorWithCode{Code: 65, Err: fs.ErrNotExist}, "file does not exist"},
		{"MessageOnly", &ExitErrorWithCode{Code: 66, Message: "格式错误"}, "格式错误"},
		{"Neither", &ExitErrorWithCode{Code: 80}, "Exit with code: 80"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestUnwrapAndRoot(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewExitErrorWithMessage(CodeMissingInput, "无法读取数据文件", fs.ErrNotExist))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, fs.ErrNotExist, RootError(err))
	assert.Equal(t, "无法读取数据文件", UserMessage(err))
	assert.Equal(t, "", UserMessage(errors.New("plain")))
}

func TestFormatErrorAndCode(t *testing.T) {
	msg, code := FormatErrorAndCode(NewExitErrorWithMessage(CodeConfigError, "配置文件有误", errors.New("format")))
	assert.Equal(t, CodeConfigError, code)
	assert.Equal(t, int64(CodeConfigError), gjson.Get(msg, "code").Int())
	assert.Equal(t, "配置文件有误", gjson.Get(msg, "message").String())
	assert.Equal(t, "format", gjson.Get(msg, "error").String())

	msg, code = FormatErrorAndCode(errors.New("boom"))
	assert.Equal(t, CodeInternalErr, code)
	assert.Equal(t, "boom", gjson.Get(msg, "error").String())

	// 空字段不出现
	msg, _ = FormatErrorAndCode(NewExitError(CodeInvalidUsage, nil))
	assert.JSONEq(t, `{"code":64}`, msg)
}
