package guide

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color 采用 0-255 的 RGBA 数值（非预乘）。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
	A int `json:"a"`
}

// RGBA 构造一个颜色。
func RGBA(r, g, b, a int) Color { return Color{R: r, G: g, B: b, A: a} }

// Clamp 将各通道限制在 0-255。
func (c Color) Clamp() Color {
	return Color{R: clamp255(c.R), G: clamp255(c.G), B: clamp255(c.B), A: clamp255(c.A)}
}

// WithAlpha 返回替换 alpha 通道后的颜色。
func (c Color) WithAlpha(a int) Color {
	c.A = clamp255(a)
	return c
}

// AlphaFor 将 0-1 的不透明度换算为 alpha 通道值：round(255 × opacity)。
func AlphaFor(opacity float64) int {
	return clamp255(int(math.Round(255 * opacity)))
}

// Hex 以 #RRGGBBAA 形式输出颜色。
func (c Color) Hex() string {
	c = c.Clamp()
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ParseColor 解析 #RGB、#RGBA、#RRGGBB、#RRGGBBAA 或 CSS 颜色名（如 "white"、"gold"）。
func ParseColor(s string) (Color, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return Color{}, fmt.Errorf("颜色为空")
	}
	if !strings.HasPrefix(v, "#") {
		named, ok := colornames.Map[strings.ToLower(v)]
		if !ok {
			return Color{}, fmt.Errorf("未知颜色名 %q", s)
		}
		return Color{R: int(named.R), G: int(named.G), B: int(named.B), A: int(named.A)}, nil
	}

	hex := v[1:]
	var digits []string
	switch len(hex) {
	case 3, 4:
		for _, ch := range hex {
			digits = append(digits, strings.Repeat(string(ch), 2))
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			digits = append(digits, hex[i:i+2])
		}
	default:
		return Color{}, fmt.Errorf("颜色 %q 长度无效", s)
	}

	ch := [4]int{0, 0, 0, 255}
	for i, d := range digits {
		n, err := strconv.ParseUint(d, 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("颜色 %q 不是有效的十六进制: %w", s, err)
		}
		ch[i] = int(n)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

func clamp255(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
