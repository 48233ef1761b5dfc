package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ByLCY/guideline/binding"
	"github.com/ByLCY/guideline/guide"
	"github.com/ByLCY/guideline/internal/logger"
	"github.com/ByLCY/guideline/overlay"
	"github.com/ByLCY/guideline/preset"
	canvasrenderer "github.com/ByLCY/guideline/renderer/canvas"
	"github.com/ByLCY/guideline/state"
)

// config 汇总命令行参数。set 记录用户显式给出的参数，未给出的设置保持状态中的值。
type config struct {
	width, height int
	guides        string
	presetName    string
	loadPath      string
	savePath      string
	color         string
	lineWidth     int
	opacity       float64
	spiralOffset  int
	out           string
	format        string
	debug         string
	listPresets   bool

	set map[string]bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.width, "w", 1920, "视口宽度（像素）")
	flag.IntVar(&cfg.height, "h", 1080, "视口高度（像素）")
	flag.StringVar(&cfg.guides, "guides", "", "启用的参考线，逗号分隔，例如 rule_of_thirds,golden_spiral")
	flag.StringVar(&cfg.presetName, "preset", "", "应用内置预设，例如 \"Photography - Golden\"")
	flag.StringVar(&cfg.loadPath, "load", "", "启动时读取的预设 JSON 文件")
	flag.StringVar(&cfg.savePath, "save", "", "结束时保存当前设置的预设 JSON 文件")
	flag.StringVar(&cfg.color, "color", "", "线条颜色，#RRGGBBAA 或 CSS 颜色名")
	flag.IntVar(&cfg.lineWidth, "line-width", 2, "线宽 1–10")
	flag.Float64Var(&cfg.opacity, "opacity", 0.8, "不透明度 0–1")
	flag.IntVar(&cfg.spiralOffset, "spiral-offset", 0, "黄金螺旋水平偏移 0–14")
	flag.StringVar(&cfg.out, "out", "output/overlay.png", "输出路径（.png/.svg/.pdf），支持 ${preset} ${width} ${height} ${format}")
	flag.StringVar(&cfg.format, "format", "", "输出格式 png/svg/pdf；为空时按 -out 扩展名推断，扩展名为 ${format} 时默认 png")
	flag.StringVar(&cfg.debug, "debug", "", "绘图命令调试 JSON 输出路径")
	flag.BoolVar(&cfg.listPresets, "list-presets", false, "列出内置预设后退出")
	verbose := flag.Bool("v", false, "输出调试日志")
	flag.Parse()

	cfg.set = map[string]bool{}
	flag.Visit(func(f *flag.Flag) { cfg.set[f.Name] = true })

	var (
		l   *zap.Logger
		err error
	)
	if *verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	zap.ReplaceGlobals(l)
	defer l.Sync() //nolint:errcheck

	ctx := logger.NewContext(context.Background(), l)
	if cfg.listPresets {
		if err := listPresets(os.Stdout); err != nil {
			l.Fatal("list presets", zap.Error(err))
		}
		return
	}

	out, err := run(ctx, cfg)
	if err != nil {
		l.Fatal("生成参考线失败", zap.Error(err))
	}
	fmt.Printf("已生成参考线：%s\n", out)
}

func listPresets(w *os.File) error {
	lib, err := preset.Builtin()
	if err != nil {
		return err
	}
	for _, name := range lib.Names() {
		fmt.Fprintln(w, name)
	}
	return nil
}

// run 串联状态设置、渲染与输出，返回实际写入的输出路径。
func run(ctx context.Context, cfg config) (string, error) {
	l := logger.L(ctx)
	vp := guide.Viewport{Width: cfg.width, Height: cfg.height}
	if vp.Empty() {
		return "", fmt.Errorf("视口尺寸无效: %dx%d", vp.Width, vp.Height)
	}

	st := state.New(state.Options{Logger: l})

	// 预设文件读取失败只记录警告，沿用默认设置
	if cfg.loadPath != "" {
		if err := preset.LoadInto(cfg.loadPath, st); err != nil {
			l.Warn("load preset file", zap.String("path", cfg.loadPath), zap.Error(err))
		} else {
			l.Info("loaded preset file", zap.String("path", cfg.loadPath))
		}
	}

	if cfg.presetName != "" {
		lib, err := preset.Builtin()
		if err != nil {
			return "", err
		}
		if err := lib.Apply(st, cfg.presetName); err != nil {
			return "", fmt.Errorf("%w（可用预设: %s）", err, strings.Join(lib.Names(), ", "))
		}
	}

	if err := applyFlags(st, cfg, l); err != nil {
		return "", err
	}

	format, err := outputFormat(cfg)
	if err != nil {
		return "", err
	}
	outPath := binding.Expand(cfg.out, binding.Vars{
		"preset": binding.Slug(cfg.presetName),
		"width":  vp.Width,
		"height": vp.Height,
		"format": string(format),
	})
	if ext, ok := canvasrenderer.FormatFromPath(outPath); !ok || ext != format {
		return "", fmt.Errorf("输出路径 %s 的扩展名与格式 %s 不符", outPath, format)
	}

	r := canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{Format: format, Logger: l})
	win := overlay.New(ctx, st, r, vp)
	if err := win.Err(); err != nil {
		return "", fmt.Errorf("渲染失败: %w", err)
	}

	if err := writeFile(outPath, win.Frame()); err != nil {
		return "", err
	}
	l.Info("wrote overlay",
		zap.String("path", outPath),
		zap.Int("commands", len(win.Commands())))

	if cfg.debug != "" {
		if err := writeDebug(vp, win.Commands(), cfg.debug); err != nil {
			return "", err
		}
	}

	if cfg.savePath != "" {
		if err := preset.Save(cfg.savePath, st.Snapshot()); err != nil {
			var perr *preset.Error
			if errors.As(err, &perr) {
				l.Warn("save preset file", zap.String("path", perr.Path), zap.Error(perr.Err))
			} else {
				l.Warn("save preset file", zap.Error(err))
			}
		}
	}
	return outPath, nil
}

// outputFormat 依次取 -format、-out 的字面扩展名；扩展名尚待展开（含 ${）时默认 png。
func outputFormat(cfg config) (canvasrenderer.Format, error) {
	if cfg.format != "" {
		f, ok := canvasrenderer.ParseFormat(cfg.format)
		if !ok {
			return "", fmt.Errorf("不支持的输出格式 %q（支持 png/svg/pdf）", cfg.format)
		}
		return f, nil
	}
	if f, ok := canvasrenderer.FormatFromPath(cfg.out); ok {
		return f, nil
	}
	if strings.Contains(filepath.Ext(cfg.out), "${") {
		return canvasrenderer.FormatPNG, nil
	}
	return "", fmt.Errorf("无法从输出路径 %s 推断格式（支持 .png/.svg/.pdf）", cfg.out)
}

// applyFlags 只应用用户显式给出的参数。
func applyFlags(st *state.State, cfg config, l *zap.Logger) error {
	if cfg.set["guides"] {
		var kinds []guide.Kind
		for _, name := range strings.Split(cfg.guides, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			k, err := guide.ParseKind(name)
			if err != nil {
				l.Warn("ignore unknown guide", zap.String("name", name))
				continue
			}
			kinds = append(kinds, k)
		}
		st.ReplaceGuides(kinds...)
	}
	if cfg.set["color"] {
		c, err := guide.ParseColor(cfg.color)
		if err != nil {
			return fmt.Errorf("解析颜色失败: %w", err)
		}
		st.SetColor(c)
	}
	if cfg.set["opacity"] {
		st.SetOpacity(cfg.opacity)
	}
	if cfg.set["line-width"] {
		st.SetLineWidth(cfg.lineWidth)
	}
	if cfg.set["spiral-offset"] {
		st.SetSpiralOffset(cfg.spiralOffset)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("写入输出文件失败: %w", err)
	}
	return nil
}

func writeDebug(vp guide.Viewport, cmds []guide.Command, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := guide.WriteDebugJSON(vp, cmds, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
