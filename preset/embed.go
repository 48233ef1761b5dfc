package preset

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed builtin.guides
var builtinSource string

var (
	builtinOnce sync.Once
	builtinLib  *Library
	builtinErr  error
)

// Builtin 返回内置预设库（只解析一次）。
func Builtin() (*Library, error) {
	builtinOnce.Do(func() {
		lib, warnings, err := ParseLibrary(strings.NewReader(builtinSource))
		if err != nil {
			builtinErr = fmt.Errorf("解析内置预设失败: %w", err)
			return
		}
		if len(warnings) > 0 {
			builtinErr = fmt.Errorf("内置预设存在问题: %s", strings.Join(warnings, "; "))
			return
		}
		builtinLib = lib
	})
	return builtinLib, builtinErr
}
