package preset

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ByLCY/guideline/dsl"
	"github.com/ByLCY/guideline/guide"
	"github.com/ByLCY/guideline/state"
)

// Named 是一个具名预设：名称加上一份部分快照。
type Named struct {
	Name     string
	Snapshot state.Snapshot
}

// Library 按声明顺序保存具名预设。
type Library struct {
	presets []Named
}

// ParseLibrary 从预设 DSL 构建预设库。未知的键与参考线名不会中断解析，
// 而是作为 warnings 返回；取值格式错误则返回 error。
func ParseLibrary(r io.Reader) (*Library, []string, error) {
	file, err := dsl.Parse(r)
	if err != nil {
		return nil, nil, err
	}
	return FromDSL(file)
}

// FromDSL 将已解析的 DSL 转换为预设库。同名预设以后出现者为准。
func FromDSL(file *dsl.File) (*Library, []string, error) {
	lib := &Library{}
	if file == nil {
		return lib, nil, nil
	}
	var warnings []string
	for _, p := range file.Presets {
		snap, w, err := snapshotFromPreset(p)
		if err != nil {
			return nil, warnings, fmt.Errorf("预设 %q (%s): %w", string(p.Name), p.Pos, err)
		}
		for _, msg := range w {
			warnings = append(warnings, fmt.Sprintf("预设 %q: %s", string(p.Name), msg))
		}
		lib.put(Named{Name: string(p.Name), Snapshot: snap})
	}
	return lib, warnings, nil
}

func (l *Library) put(n Named) {
	for i := range l.presets {
		if l.presets[i].Name == n.Name {
			l.presets[i] = n
			return
		}
	}
	l.presets = append(l.presets, n)
}

// Names 返回预设名称（声明顺序）。
func (l *Library) Names() []string {
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l.presets))
	for _, p := range l.presets {
		out = append(out, p.Name)
	}
	return out
}

// Lookup 按名称查找预设，忽略大小写与首尾空白。
func (l *Library) Lookup(name string) (Named, bool) {
	if l == nil {
		return Named{}, false
	}
	want := strings.TrimSpace(name)
	for _, p := range l.presets {
		if strings.EqualFold(p.Name, want) {
			return p, true
		}
	}
	return Named{}, false
}

// Apply 将具名预设作为一次状态转换应用到 s（只触发一次重绘通知）。
func (l *Library) Apply(s *state.State, name string) error {
	p, ok := l.Lookup(name)
	if !ok {
		return fmt.Errorf("未知预设 %q", name)
	}
	s.Restore(p.Snapshot)
	return nil
}

func snapshotFromPreset(p *dsl.Preset) (state.Snapshot, []string, error) {
	var (
		snap     state.Snapshot
		warnings []string
	)
	for _, e := range p.Entries {
		key := strings.ReplaceAll(strings.ToLower(e.Key), "_", "-")
		switch key {
		case "guides":
			guides, unknown, err := parseGuides(e.Value)
			if err != nil {
				return snap, warnings, err
			}
			for _, name := range unknown {
				warnings = append(warnings, fmt.Sprintf("未知参考线 %q 已忽略", name))
			}
			snap.Guides = guides
		case "color":
			c, err := guide.ParseColor(e.Value.Raw())
			if err != nil {
				return snap, warnings, err
			}
			snap.Color = &c
		case "line-width":
			n, err := parseInt(e.Value)
			if err != nil {
				return snap, warnings, fmt.Errorf("line-width: %w", err)
			}
			snap.LineWidth = &n
		case "opacity":
			f, err := parseFraction(e.Value)
			if err != nil {
				return snap, warnings, fmt.Errorf("opacity: %w", err)
			}
			snap.Opacity = &f
		case "spiral-offset":
			n, err := parseInt(e.Value)
			if err != nil {
				return snap, warnings, fmt.Errorf("spiral-offset: %w", err)
			}
			snap.SpiralOffset = &n
		case "fill-opacity":
			n, err := parseInt(e.Value)
			if err != nil {
				return snap, warnings, fmt.Errorf("fill-opacity: %w", err)
			}
			snap.FillOpacity = &n
		default:
			warnings = append(warnings, fmt.Sprintf("未知设置 %q 已忽略", e.Key))
		}
	}
	return snap, warnings, nil
}

// parseGuides 总是返回包含全部八种参考线的映射：预设会替换整个参考线集合。
func parseGuides(v *dsl.Value) (map[string]bool, []string, error) {
	var set guide.GuideSet
	var names []string
	switch {
	case v == nil:
		return nil, nil, fmt.Errorf("guides 缺少取值")
	case v.List != nil:
		names = v.List.Items
	case v.Ident != nil:
		switch strings.ToLower(*v.Ident) {
		case "all":
			for _, k := range guide.Kinds() {
				set[k] = true
			}
			return set.Map(), nil, nil
		case "none":
			return set.Map(), nil, nil
		default:
			names = []string{*v.Ident}
		}
	default:
		return nil, nil, fmt.Errorf("guides 需要列表、all 或 none，得到 %s", v.Kind())
	}

	var unknown []string
	for _, name := range names {
		k, err := guide.ParseKind(name)
		if err != nil {
			unknown = append(unknown, name)
			continue
		}
		set[k] = true
	}
	return set.Map(), unknown, nil
}

func parseInt(v *dsl.Value) (int, error) {
	if v == nil || v.Number == nil {
		return 0, fmt.Errorf("需要数字，得到 %s", v.Kind())
	}
	raw := strings.TrimSuffix(*v.Number, "%")
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	return int(math.Round(f)), nil
}

// parseFraction 接受 0.8 或 80% 两种写法。
func parseFraction(v *dsl.Value) (float64, error) {
	if v == nil || v.Number == nil {
		return 0, fmt.Errorf("需要数字，得到 %s", v.Kind())
	}
	raw := *v.Number
	percent := strings.HasSuffix(raw, "%")
	f, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
	if err != nil {
		return 0, err
	}
	if percent {
		f /= 100
	}
	return f, nil
}
