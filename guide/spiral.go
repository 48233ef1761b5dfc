package guide

import "math"

// Fibonacci terms used to build the golden spiral; the largest term spans the
// short side of the viewport.
var fibonacci = [...]int{1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89}

// smallestSquare is the index of the last emitted square (side 2). The two
// trailing 1-unit squares are degenerate at screen scale and are not drawn.
const smallestSquare = 2

// MaxSpiralOffset bounds the horizontal spiral shift, in Fibonacci units.
const MaxSpiralOffset = 14

type direction int

const (
	down direction = iota
	left
	up
	right
)

// Square is one Fibonacci square of the spiral, in viewport pixels.
type Square struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Side float64 `json:"side"`
}

// QuarterArc is one 90° piece of the spiral curve, in viewport pixels and
// degrees (0° right, 90° up).
type QuarterArc struct {
	CX         float64 `json:"cx"`
	CY         float64 `json:"cy"`
	Radius     float64 `json:"radius"`
	StartAngle float64 `json:"startAngle"`
	SweepAngle float64 `json:"sweepAngle"`
}

// Spiral is the unrounded golden-spiral construction for one viewport.
type Spiral struct {
	Unit    float64      `json:"unit"`
	Squares []Square     `json:"squares"`
	Arcs    []QuarterArc `json:"arcs"`
}

// SpiralLayout builds the golden spiral for vp. The largest square sits flush
// against the right edge, vertically centered, and the spiral winds inward to
// its left. Each square after the first is placed by the move direction
// {down, left, up, right}[emitted mod 4]: left and up moves step by the next
// square's side, down and right moves by the current side, and the
// perpendicular coordinate is aligned so every square stays inside the
// remaining golden rectangle. Every x is shifted right by offset units.
func SpiralLayout(vp Viewport, offset int) Spiral {
	if vp.Empty() {
		return Spiral{}
	}
	w, h := float64(vp.Width), float64(vp.Height)
	size := math.Min(w, h)
	last := len(fibonacci) - 1
	unit := size / float64(fibonacci[last])
	shift := float64(offset) * unit

	sp := Spiral{
		Unit:    unit,
		Squares: make([]Square, 0, last-smallestSquare+1),
		Arcs:    make([]QuarterArc, 0, last-smallestSquare),
	}

	x, y := w-size, (h-size)/2
	for i := last; i >= smallestSquare; i-- {
		side := float64(fibonacci[i]) * unit
		sp.Squares = append(sp.Squares, Square{X: x + shift, Y: y, Side: side})
		if i == smallestSquare {
			break
		}

		next := float64(fibonacci[i-1]) * unit
		dir := direction(len(sp.Squares) % 4)
		arc := QuarterArc{Radius: side, SweepAngle: -90}
		// 圆心取当前正方形中与下一个正方形相对的角，这样弧的两端正好落在相邻正方形的共享角上，
		// 八段弧才能首尾相接；若以共享角为圆心，各段弧互不相连。
		switch dir {
		case left:
			arc.CX, arc.CY, arc.StartAngle = x, y, 0
			x -= next
			y += side - next
		case up:
			arc.CX, arc.CY, arc.StartAngle = x+side, y, 270
			y -= next
		case right:
			arc.CX, arc.CY, arc.StartAngle = x+side, y+side, 180
			x += side
		case down:
			arc.CX, arc.CY, arc.StartAngle = x, y+side, 90
			y += side
			x += side - next
		}
		arc.CX += shift
		sp.Arcs = append(sp.Arcs, arc)
	}
	return sp
}

// Commands converts the spiral to drawing commands: the squares first with
// half the style width, then the arcs with the full width.
func (s Spiral) Commands(style Style) []Command {
	if len(s.Squares) == 0 {
		return nil
	}
	squarePen := Pen{Color: style.Color, Width: style.LineWidth / 2}
	arcPen := Pen{Color: style.Color, Width: style.LineWidth}

	cmds := make([]Command, 0, len(s.Squares)+len(s.Arcs))
	for _, sq := range s.Squares {
		side := round(sq.Side)
		cmds = append(cmds, Rect{Origin: Pt(sq.X, sq.Y), Width: side, Height: side, Pen: squarePen})
	}
	for _, a := range s.Arcs {
		cmds = append(cmds, Arc{
			Center:     Pt(a.CX, a.CY),
			Radius:     round(a.Radius),
			StartAngle: a.StartAngle,
			SweepAngle: a.SweepAngle,
			Pen:        arcPen,
		})
	}
	return cmds
}

// Start returns the point where the arc begins, in viewport pixels.
func (a QuarterArc) Start() (float64, float64) {
	return a.pointAt(a.StartAngle)
}

// End returns the point where the arc ends, in viewport pixels.
func (a QuarterArc) End() (float64, float64) {
	return a.pointAt(a.StartAngle + a.SweepAngle)
}

// pointAt maps an angle to screen coordinates, where y grows downward.
func (a QuarterArc) pointAt(deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return a.CX + a.Radius*math.Cos(rad), a.CY - a.Radius*math.Sin(rad)
}
