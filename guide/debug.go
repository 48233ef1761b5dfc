package guide

import (
	"encoding/json"
	"os"
)

// debugCommand 给每条命令附上类型标签，便于在 JSON 中区分。
type debugCommand struct {
	Op   string  `json:"op"`
	Data Command `json:"data"`
}

// debugFrame 描述一帧：视口与按绘制顺序排列的命令。
type debugFrame struct {
	Viewport Viewport       `json:"viewport"`
	Commands []debugCommand `json:"commands"`
}

// MarshalDebugJSON 将命令列表序列化为带类型标签的 JSON。
func MarshalDebugJSON(vp Viewport, cmds []Command) ([]byte, error) {
	frame := debugFrame{Viewport: vp, Commands: make([]debugCommand, 0, len(cmds))}
	for _, c := range cmds {
		frame.Commands = append(frame.Commands, debugCommand{Op: c.Op().String(), Data: c})
	}
	return json.MarshalIndent(frame, "", "  ")
}

// WriteDebugJSON 将命令列表输出为 JSON，便于调试或可视化。
func WriteDebugJSON(vp Viewport, cmds []Command, path string) error {
	data, err := MarshalDebugJSON(vp, cmds)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
