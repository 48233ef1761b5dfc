package guide

// Render 按固定顺序（rule_of_thirds … safe_areas）收集所有已启用参考线的绘制命令。
// 顺序即绘制层级：后出现的命令覆盖先出现的命令，安全区始终位于最上层。
// 视口面积为零时返回 nil。
func Render(src Source, vp Viewport) []Command {
	if src == nil || vp.Empty() {
		return nil
	}
	p := src.Params()
	var cmds []Command
	for _, k := range Kinds() {
		if !p.Guides.Enabled(k) {
			continue
		}
		cmds = append(cmds, ComputeGuide(k, vp, p.Style, p.SpiralOffset)...)
	}
	return cmds
}
