package guide

// Op names the concrete shape behind a Command.
type Op int

const (
	OpLine Op = iota
	OpCircle
	OpRect
	OpArc
)

func (o Op) String() string {
	switch o {
	case OpLine:
		return "line"
	case OpCircle:
		return "circle"
	case OpRect:
		return "rect"
	case OpArc:
		return "arc"
	default:
		return "unknown"
	}
}

// Command is a canvas-independent drawing instruction. The set of
// implementations is closed: Line, Circle, Rect and Arc.
type Command interface {
	Op() Op
	Stroke() Pen
}

// Pen is the resolved stroke for one command. Hosts draw Width 0 as a hairline
// and skip negative widths.
type Pen struct {
	Color  Color `json:"color"`
	Width  int   `json:"width"`
	Dashed bool  `json:"dashed,omitempty"`
}

// Line is a segment from P1 to P2.
type Line struct {
	P1  Point `json:"p1"`
	P2  Point `json:"p2"`
	Pen Pen   `json:"pen"`
}

// Circle is an unfilled circle outline.
type Circle struct {
	Center Point `json:"center"`
	Radius int   `json:"radius"`
	Pen    Pen   `json:"pen"`
}

// Rect is an axis-aligned rectangle outline with its top-left corner at Origin.
// Its Pen may differ from the user style (safe areas use fixed accent colors).
type Rect struct {
	Origin Point `json:"origin"`
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Pen    Pen   `json:"pen"`
}

// Arc is a circular arc. Angles are in degrees with 0° pointing right and 90°
// pointing up; a negative sweep runs clockwise on screen.
type Arc struct {
	Center     Point   `json:"center"`
	Radius     int     `json:"radius"`
	StartAngle float64 `json:"startAngle"`
	SweepAngle float64 `json:"sweepAngle"`
	Pen        Pen     `json:"pen"`
}

func (Line) Op() Op   { return OpLine }
func (Circle) Op() Op { return OpCircle }
func (Rect) Op() Op   { return OpRect }
func (Arc) Op() Op    { return OpArc }

func (c Line) Stroke() Pen   { return c.Pen }
func (c Circle) Stroke() Pen { return c.Pen }
func (c Rect) Stroke() Pen   { return c.Pen }
func (c Arc) Stroke() Pen    { return c.Pen }

// Count tallies commands by Op.
func Count(cmds []Command) map[Op]int {
	out := map[Op]int{}
	for _, c := range cmds {
		out[c.Op()]++
	}
	return out
}
