package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"
	"go.uber.org/zap"

	"github.com/ByLCY/guideline/guide"
	"github.com/ByLCY/guideline/renderer"
)

// Format 是输出格式。
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
)

// 虚线矩形的线段与间隔（像素）。
const (
	dashOn  = 6.0
	dashOff = 4.0
)

// hairlineWidth 是线宽为 0 时使用的 1 像素细线。
const hairlineWidth = 1.0

// FormatFromPath 根据文件扩展名推断输出格式，无法识别时返回 false。
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "png":
		return FormatPNG, true
	case "svg":
		return FormatSVG, true
	case "pdf":
		return FormatPDF, true
	default:
		return "", false
	}
}

// ParseFormat 解析格式名（png、svg、pdf，忽略大小写）。
func ParseFormat(name string) (Format, bool) {
	return FormatFromPath("." + strings.TrimSpace(name))
}

// Renderer replays guide commands via github.com/tdewolff/canvas.
type Renderer struct {
	format Format
	dpi    float64
	log    *zap.Logger
}

var _ renderer.Renderer = (*Renderer)(nil)

// Options configures the canvas renderer.
type Options struct {
	Format Format      // defaults to png
	DPI    float64     // pixel density used for pdf page size; defaults to guide.DefaultDPI
	Logger *zap.Logger // defaults to a no-op logger
}

// NewRenderer creates a PNG renderer.
func NewRenderer() *Renderer { return NewRendererWithOptions(Options{}) }

// NewRendererWithOptions creates a renderer for the configured format.
func NewRendererWithOptions(opts Options) *Renderer {
	r := &Renderer{format: opts.Format, dpi: opts.DPI, log: opts.Logger}
	if r.format == "" {
		r.format = FormatPNG
	}
	if r.dpi <= 0 {
		r.dpi = guide.DefaultDPI
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}
	return r
}

// Format returns the output format.
func (r *Renderer) Format() Format { return r.format }

// Render draws cmds on a transparent canvas of the viewport size and encodes it.
func (r *Renderer) Render(cmds []guide.Command, vp guide.Viewport) ([]byte, error) {
	if vp.Empty() {
		return nil, fmt.Errorf("视口尺寸无效: %dx%d", vp.Width, vp.Height)
	}

	// png/svg 中 1 单位 = 1 像素；pdf 以毫米为单位，需要按 dpi 换算
	scale := 1.0
	if r.format == FormatPDF {
		scale = guide.Scale(r.dpi, guide.UnitMM)
	}
	w, h := float64(vp.Width)*scale, float64(vp.Height)*scale

	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 与视口一致：左上角为原点，y 向下
	skipped := r.replay(ctx, cmds, scale)
	if skipped > 0 {
		r.log.Debug("skipped commands with negative stroke width", zap.Int("count", skipped))
	}

	var buf bytes.Buffer
	switch r.format {
	case FormatPNG:
		img := rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace)
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("编码 PNG 失败: %w", err)
		}
	case FormatSVG:
		writer := svg.New(&buf, w, h, nil)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("写入 SVG 失败: %w", err)
		}
	case FormatPDF:
		writer := pdf.New(&buf, w, h, nil)
		writer.SetInfo("Composition guides", "", "", "", "guideline")
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("写入 PDF 失败: %w", err)
		}
	default:
		return nil, fmt.Errorf("不支持的输出格式 %q", r.format)
	}
	r.log.Debug("rendered frame",
		zap.String("format", string(r.format)),
		zap.Int("commands", len(cmds)),
		zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

// replay 按顺序绘制命令，返回因线宽为负而跳过的数量。线宽为 0 时画 1 像素细线。
func (r *Renderer) replay(ctx *canvas.Context, cmds []guide.Command, k float64) int {
	skipped := 0
	ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	for _, cmd := range cmds {
		pen := cmd.Stroke()
		if pen.Width < 0 {
			skipped++
			continue
		}
		width := float64(pen.Width)
		if pen.Width == 0 {
			width = hairlineWidth
		}
		ctx.SetStrokeColor(colorFromGuide(pen.Color))
		ctx.SetStrokeWidth(width * k)
		ctx.SetDashes(0)

		switch c := cmd.(type) {
		case guide.Line:
			drawLine(ctx, c, k)
		case guide.Rect:
			if c.Pen.Dashed {
				ctx.SetDashes(0, dashOn*k, dashOff*k)
			}
			drawRect(ctx, c, k)
		case guide.Circle:
			drawCircle(ctx, c, k)
		case guide.Arc:
			drawArc(ctx, c, k)
		default:
			r.log.Warn("unknown command", zap.Stringer("op", cmd.Op()))
		}
	}
	ctx.SetDashes(0)
	return skipped
}

// drawLine 绘制直线
func drawLine(ctx *canvas.Context, ln guide.Line, k float64) {
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo(float64(ln.P2.X-ln.P1.X)*k, float64(ln.P2.Y-ln.P1.Y)*k)
	ctx.DrawPath(float64(ln.P1.X)*k, float64(ln.P1.Y)*k, p)
}

// drawRect 绘制矩形边框
func drawRect(ctx *canvas.Context, rc guide.Rect, k float64) {
	if rc.Width <= 0 || rc.Height <= 0 {
		return
	}
	ctx.DrawPath(float64(rc.Origin.X)*k, float64(rc.Origin.Y)*k,
		canvas.Rectangle(float64(rc.Width)*k, float64(rc.Height)*k))
}

// drawCircle 绘制圆形边框，canvas.Circle 以原点为圆心。
func drawCircle(ctx *canvas.Context, c guide.Circle, k float64) {
	if c.Radius <= 0 {
		return
	}
	ctx.DrawPath(float64(c.Center.X)*k, float64(c.Center.Y)*k, canvas.Circle(float64(c.Radius)*k))
}

// drawArc 绘制圆弧。角度以屏幕向上为 90°，路径坐标 y 向下，故正弦项取负。
func drawArc(ctx *canvas.Context, a guide.Arc, k float64) {
	if a.Radius <= 0 || a.SweepAngle == 0 {
		return
	}
	r := float64(a.Radius) * k
	cx, cy := float64(a.Center.X)*k, float64(a.Center.Y)*k
	start := a.StartAngle * math.Pi / 180
	end := (a.StartAngle + a.SweepAngle) * math.Pi / 180

	p := &canvas.Path{}
	p.MoveTo(cx+r*math.Cos(start), cy-r*math.Sin(start))
	large := math.Abs(a.SweepAngle) > 180
	sweep := a.SweepAngle < 0
	p.ArcTo(r, r, 0, large, sweep, cx+r*math.Cos(end), cy-r*math.Sin(end))
	ctx.DrawPath(0, 0, p)
}

func colorFromGuide(c guide.Color) color.Color {
	c = c.Clamp()
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, float64(c.A)/255.0)
}
