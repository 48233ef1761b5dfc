package renderer

import "github.com/ByLCY/guideline/guide"

// Renderer 将绘图命令回放到宿主画布并输出最终文件，例如 PNG、SVG 或 PDF。
// Render 返回生成的二进制数据以及可能的错误。
type Renderer interface {
	Render(cmds []guide.Command, vp guide.Viewport) ([]byte, error)
}
