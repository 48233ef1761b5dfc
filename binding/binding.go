// Package binding expands ${name} placeholders in output paths.
package binding

import (
	"fmt"
	"regexp"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Vars 是占位符取值，值可以嵌套 Vars 以支持 ${viewport.width} 这样的路径。
type Vars map[string]any

// Expand 将 text 中的 ${path.to.value} 替换为 vars 中的值。
// 路径不存在时保留原占位符。
func Expand(text string, vars Vars) string {
	if len(vars) == 0 {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		path := strings.TrimSpace(match[2 : len(match)-1])
		if path == "" {
			return match
		}
		if val, ok := resolve(vars, path); ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

func resolve(vars Vars, path string) (any, bool) {
	var current any = vars
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(Vars)
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Slug 把任意名称变成适合放进文件名的形式："Video - Safe Areas" → "video-safe-areas"。
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
