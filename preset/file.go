package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ByLCY/guideline/state"
)

// Error 描述预设文件读写失败。
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("preset %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Load 读取 JSON 预设文件。未知字段会被忽略，缺失字段保持为 nil。
func Load(path string) (state.Snapshot, error) {
	var snap state.Snapshot
	data, err := os.ReadFile(path)
	if err != nil {
		return snap, &Error{Op: "load", Path: path, Err: err}
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return state.Snapshot{}, &Error{Op: "load", Path: path, Err: err}
	}
	return snap, nil
}

// LoadInto 读取预设文件并应用到 s。失败时 s 不变。
func LoadInto(path string, s *state.State) error {
	snap, err := Load(path)
	if err != nil {
		return err
	}
	s.Restore(snap)
	return nil
}

// Save 将快照写入 path：先写同目录临时文件，再原子替换。
func Save(path string, snap state.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return &Error{Op: "save", Path: path, Err: err}
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &Error{Op: "save", Path: path, Err: err}
	}
	tmp, err := os.CreateTemp(dir, ".preset-*.json")
	if err != nil {
		return &Error{Op: "save", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &Error{Op: "save", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &Error{Op: "save", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &Error{Op: "save", Path: path, Err: err}
	}
	return nil
}
