package guide

// 该文件定义视口、样式与绘制参数，供几何计算、状态管理与渲染共用。

// Viewport 是一次重绘的目标区域（像素）。每次渲染都重新传入，内核不缓存。
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Empty 在任一维度不为正时返回 true，此时不产生任何绘制命令。
func (v Viewport) Empty() bool { return v.Width <= 0 || v.Height <= 0 }

// Point 是取整后的像素坐标。
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt 将浮点坐标就近取整为像素坐标。取整只在输出时进行，中间计算保持浮点。
func Pt(x, y float64) Point { return Point{X: round(x), Y: round(y)} }

// Style 由 GuideState 持有。Opacity 与 Color.A 是同一信息的两种表示：
// SetOpacity 会重算 Color.A，SetColor 则不会修改 Opacity。
type Style struct {
	Color       Color   `json:"color"`
	LineWidth   int     `json:"lineWidth"`
	FillOpacity int     `json:"fillOpacity"` // 0-100
	Opacity     float64 `json:"opacity"`     // 0-1
}

// DefaultStyle 返回初始样式：半透明白色、线宽 2、整体不透明度 0.8。
func DefaultStyle() Style {
	return Style{
		Color:       Color{R: 255, G: 255, B: 255, A: 180},
		LineWidth:   2,
		FillOpacity: 30,
		Opacity:     0.8,
	}
}

// Params 是渲染一帧所需的全部状态，由状态持有者一次性拷贝给调度器。
type Params struct {
	Guides       GuideSet `json:"guides"`
	Style        Style    `json:"style"`
	SpiralOffset int      `json:"spiralOffset"`
}

// Source 提供渲染参数；state.State 实现该接口。
type Source interface {
	Params() Params
}

// Params 让 Params 自身也能作为 Source 使用，方便无状态调用与测试。
func (p Params) Params() Params { return p }
