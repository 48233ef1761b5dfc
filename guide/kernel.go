package guide

import "math"

// Phi is the golden ratio.
const Phi = 1.618033988749895

const (
	markerRadius       = 5 // 交点标记半径
	markerWidthFactor  = 3
	centerRadius       = 6
	centerWidthFactor  = 4
	actionSafeFraction = 0.05
	titleSafeFraction  = 0.10
)

// 安全区使用固定的强调色，与用户设置的颜色无关，保证叠加时仍可区分。
var (
	ActionSafeColor = Color{R: 255, G: 200, B: 0, A: 150}
	TitleSafeColor  = Color{R: 255, G: 100, B: 0, A: 150}
)

// ComputeGuide returns the primitives of one guide for the viewport. It has no
// side effects. A degenerate viewport or an unknown kind yields nil.
func ComputeGuide(kind Kind, vp Viewport, style Style, spiralOffset int) []Command {
	if vp.Empty() {
		return nil
	}
	w, h := float64(vp.Width), float64(vp.Height)
	switch kind {
	case RuleOfThirds:
		return ruleOfThirds(w, h, style)
	case GoldenRatio:
		return goldenRatio(w, h, style)
	case CenterLines:
		return centerLines(w, h, style)
	case Diagonals:
		return diagonals(w, h, style)
	case GoldenSpiral:
		return SpiralLayout(vp, spiralOffset).Commands(style)
	case Grid4x4:
		return grid(w, h, 4, 4, style)
	case Grid5x5:
		return grid(w, h, 5, 5, style)
	case SafeAreas:
		return safeAreas(w, h, style)
	default:
		return nil
	}
}

func ruleOfThirds(w, h float64, style Style) []Command {
	return crossHatch(w, h, w/3, 2*w/3, h/3, 2*h/3, style)
}

func goldenRatio(w, h float64, style Style) []Command {
	x1 := w / Phi
	y1 := h / Phi
	return crossHatch(w, h, x1, w-x1, y1, h-y1, style)
}

// crossHatch 绘制两条竖线、两条横线以及四个交点标记。
func crossHatch(w, h, x1, x2, y1, y2 float64, style Style) []Command {
	pen := basePen(style)
	marker := scaledPen(style, markerWidthFactor)
	cmds := make([]Command, 0, 8)
	cmds = append(cmds,
		vline(x1, h, pen),
		vline(x2, h, pen),
		hline(y1, w, pen),
		hline(y2, w, pen),
	)
	for _, p := range [][2]float64{{x1, y1}, {x2, y1}, {x1, y2}, {x2, y2}} {
		cmds = append(cmds, Circle{Center: Pt(p[0], p[1]), Radius: markerRadius, Pen: marker})
	}
	return cmds
}

func centerLines(w, h float64, style Style) []Command {
	pen := basePen(style)
	return []Command{
		vline(w/2, h, pen),
		hline(h/2, w, pen),
		Circle{Center: Pt(w/2, h/2), Radius: centerRadius, Pen: scaledPen(style, centerWidthFactor)},
	}
}

func diagonals(w, h float64, style Style) []Command {
	pen := basePen(style)
	return []Command{
		Line{P1: Pt(0, 0), P2: Pt(w, h), Pen: pen},
		Line{P1: Pt(w, 0), P2: Pt(0, h), Pen: pen},
	}
}

// grid 绘制 rows 行 cols 列的均分网格（不含边框）。
func grid(w, h float64, rows, cols int, style Style) []Command {
	if rows < 1 || cols < 1 {
		return nil
	}
	pen := basePen(style)
	cmds := make([]Command, 0, rows+cols-2)
	for i := 1; i < cols; i++ {
		cmds = append(cmds, vline(float64(i)*w/float64(cols), h, pen))
	}
	for i := 1; i < rows; i++ {
		cmds = append(cmds, hline(float64(i)*h/float64(rows), w, pen))
	}
	return cmds
}

// safeAreas 绘制动作安全区（5%，实线）与字幕安全区（10%，虚线）。
func safeAreas(w, h float64, style Style) []Command {
	return []Command{
		insetRect(w, h, actionSafeFraction, Pen{Color: ActionSafeColor, Width: style.LineWidth}),
		insetRect(w, h, titleSafeFraction, Pen{Color: TitleSafeColor, Width: style.LineWidth, Dashed: true}),
	}
}

// insetRect 的宽高由取整后的边距推出，保证矩形左右、上下对称。
func insetRect(w, h, fraction float64, pen Pen) Rect {
	mx, my := round(w*fraction), round(h*fraction)
	return Rect{
		Origin: Point{X: mx, Y: my},
		Width:  round(w) - 2*mx,
		Height: round(h) - 2*my,
		Pen:    pen,
	}
}

func vline(x, h float64, pen Pen) Line {
	return Line{P1: Pt(x, 0), P2: Pt(x, h), Pen: pen}
}

func hline(y, w float64, pen Pen) Line {
	return Line{P1: Pt(0, y), P2: Pt(w, y), Pen: pen}
}

func basePen(style Style) Pen {
	return Pen{Color: style.Color, Width: style.LineWidth}
}

func scaledPen(style Style, factor int) Pen {
	return Pen{Color: style.Color, Width: style.LineWidth * factor}
}

func round(v float64) int { return int(math.Round(v)) }
