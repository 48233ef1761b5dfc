package canvasrenderer

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/ByLCY/guideline/guide"
)

func renderParams(kinds ...guide.Kind) guide.Params {
	p := guide.Params{Style: guide.DefaultStyle()}
	for _, k := range kinds {
		p.Guides[k] = true
	}
	return p
}

func TestRenderPNGMatchesViewport(t *testing.T) {
	vp := guide.Viewport{Width: 200, Height: 100}
	cmds := guide.Render(renderParams(guide.CenterLines), vp)

	data, err := NewRenderer().Render(cmds, vp)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != vp.Width || b.Dy() != vp.Height {
		t.Fatalf("png size %dx%d, want %dx%d", b.Dx(), b.Dy(), vp.Width, vp.Height)
	}

	// 背景透明
	if _, _, _, a := img.At(10, 10).RGBA(); a != 0 {
		t.Fatalf("background should be transparent, alpha=%d", a)
	}
	// 竖直中线附近应有像素
	hit := false
	for x := 98; x <= 102; x++ {
		if _, _, _, a := img.At(x, 20).RGBA(); a > 0 {
			hit = true
		}
	}
	if !hit {
		t.Fatalf("vertical center line not drawn")
	}
}

func TestRenderSVGAndPDF(t *testing.T) {
	vp := guide.Viewport{Width: 640, Height: 360}
	cmds := guide.Render(renderParams(guide.Kinds()...), vp)

	svgData, err := NewRendererWithOptions(Options{Format: FormatSVG}).Render(cmds, vp)
	if err != nil {
		t.Fatalf("svg: %v", err)
	}
	if !strings.Contains(string(svgData), "<svg") {
		t.Fatalf("svg output missing root element")
	}

	pdfData, err := NewRendererWithOptions(Options{Format: FormatPDF}).Render(cmds, vp)
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if !bytes.HasPrefix(pdfData, []byte("%PDF")) {
		t.Fatalf("pdf output missing header")
	}
}

func renderPNG(t *testing.T, cmds []guide.Command, vp guide.Viewport) image.Image {
	t.Helper()
	data, err := NewRenderer().Render(cmds, vp)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return img
}

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

func TestRenderStrokeWidths(t *testing.T) {
	vp := guide.Viewport{Width: 50, Height: 50}
	red := guide.RGBA(255, 0, 0, 255)
	cmds := []guide.Command{
		guide.Line{P1: guide.Point{X: 0, Y: 10}, P2: guide.Point{X: 50, Y: 10}, Pen: guide.Pen{Color: red, Width: -1}},
		guide.Line{P1: guide.Point{X: 0, Y: 30}, P2: guide.Point{X: 50, Y: 30}, Pen: guide.Pen{Color: red}},
		guide.Arc{Center: guide.Point{X: 25, Y: 25}, Radius: 0, SweepAngle: -90, Pen: guide.Pen{Color: red, Width: 2}},
	}
	img := renderPNG(t, cmds, vp)
	for x := 0; x < 50; x++ {
		if a := alphaAt(img, x, 10); a != 0 {
			t.Fatalf("negative-width line must not be drawn (pixel %d alpha %d)", x, a)
		}
	}
	// 线宽 0 画 1 像素细线
	if alphaAt(img, 25, 29) == 0 && alphaAt(img, 25, 30) == 0 {
		t.Fatalf("zero-width line should be drawn as a hairline")
	}
}

func TestRenderSpiralSquaresAtMinimumWidth(t *testing.T) {
	vp := guide.Viewport{Width: 178, Height: 89}
	p := renderParams(guide.GoldenSpiral)
	p.Style.LineWidth = 1
	var squares []guide.Command
	for _, c := range guide.Render(p, vp) {
		if r, ok := c.(guide.Rect); ok {
			if r.Pen.Width != 0 {
				t.Fatalf("square pen width = %d, want 0", r.Pen.Width)
			}
			squares = append(squares, c)
		}
	}
	// 最大正方形 (89,0,89) 的左边在 x=89
	img := renderPNG(t, squares, vp)
	if alphaAt(img, 88, 40) == 0 && alphaAt(img, 89, 40) == 0 {
		t.Fatalf("spiral squares should stay visible at line width 1")
	}
}

func TestRenderArcQuadrant(t *testing.T) {
	vp := guide.Viewport{Width: 100, Height: 100}
	arc := guide.Arc{
		Center:     guide.Point{X: 50, Y: 50},
		Radius:     40,
		StartAngle: 0,
		SweepAngle: -90,
		Pen:        guide.Pen{Color: guide.RGBA(255, 255, 255, 255), Width: 4},
	}
	img := renderPNG(t, []guide.Command{arc}, vp)
	// 从右 (90,50) 顺时针到下 (50,90)，经过右下象限
	if alphaAt(img, 78, 78) == 0 {
		t.Fatalf("arc should pass through the lower-right quadrant")
	}
	if a := alphaAt(img, 62, 62); a != 0 {
		t.Fatalf("arc interior must stay empty, alpha=%d", a)
	}
	for _, pt := range [][2]int{{78, 22}, {22, 22}, {22, 78}} {
		if a := alphaAt(img, pt[0], pt[1]); a != 0 {
			t.Fatalf("arc leaked into another quadrant at %v, alpha=%d", pt, a)
		}
	}
}

func TestRenderDashedSafeArea(t *testing.T) {
	vp := guide.Viewport{Width: 200, Height: 200}
	img := renderPNG(t, guide.Render(renderParams(guide.SafeAreas), vp), vp)

	// 内框 (20,20,160,160) 为虚线：上边既有笔画也有间隙
	painted, gaps := 0, 0
	for x := 40; x <= 160; x++ {
		if alphaAt(img, x, 20) == 0 {
			gaps++
		} else {
			painted++
		}
	}
	if gaps == 0 || painted == 0 {
		t.Fatalf("dashed title-safe edge: painted=%d gaps=%d", painted, gaps)
	}

	// 外框 (10,10,180,180) 为实线
	for x := 30; x <= 170; x++ {
		if alphaAt(img, x, 10) == 0 {
			t.Fatalf("solid action-safe edge has a gap at x=%d", x)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := NewRenderer().Render(nil, guide.Viewport{Width: 0, Height: 10}); err == nil {
		t.Fatalf("empty viewport should fail")
	}
	r := NewRendererWithOptions(Options{Format: "bmp"})
	if _, err := r.Render(nil, guide.Viewport{Width: 10, Height: 10}); err == nil {
		t.Fatalf("unknown format should fail")
	}
}

func TestFormatFromPath(t *testing.T) {
	for _, name := range []string{"png", "SVG", " pdf "} {
		if _, ok := ParseFormat(name); !ok {
			t.Fatalf("ParseFormat(%q) failed", name)
		}
	}
	if _, ok := ParseFormat("gif"); ok {
		t.Fatalf("gif is not a format")
	}
	cases := map[string]Format{
		"out/overlay.png": FormatPNG,
		"a.SVG":           FormatSVG,
		"/tmp/x.pdf":      FormatPDF,
	}
	for path, want := range cases {
		got, ok := FormatFromPath(path)
		if !ok || got != want {
			t.Fatalf("%s: got %q %v, want %q", path, got, ok, want)
		}
	}
	if _, ok := FormatFromPath("overlay.gif"); ok {
		t.Fatalf("gif should not be recognised")
	}
}
