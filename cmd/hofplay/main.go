package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"hof_tool/pkg/errorutil"
	"hof_tool/pkg/logutil"
)

const TOOL_VERSION = "1.0.0+20261017"

func main() {
	code := run(os.Args[1:], os.Stdout, os.Stderr)
	// 不要用defer，因为defer是在函数返回前执行的，而不是os.Exit()执行前执行
	logutil.CloseLogger()
	os.Exit(code)
}

// run 执行命令并返回退出码，失败时把 JSON 形式的错误写到 stderr
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		// 没有错误码的都来自 cobra 的参数解析
		var exitErr *errorutil.ExitErrorWithCode
		if !errors.As(err, &exitErr) {
			err = errorutil.NewExitError(errorutil.CodeInvalidUsage, err)
		}
		logutil.Error("命令执行失败: %v", err)
		msg, code := errorutil.FormatErrorAndCode(err)
		fmt.Fprintln(stderr, msg)
		return code
	}
	return errorutil.CodeSuccess
}
