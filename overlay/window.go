// Package overlay is a headless stand-in for the transparent host window: it
// repaints whenever the guide state changes or the window is resized.
package overlay

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ByLCY/guideline/guide"
	"github.com/ByLCY/guideline/internal/logger"
	"github.com/ByLCY/guideline/renderer"
	"github.com/ByLCY/guideline/state"
)

// Window binds a State, a Renderer and a Viewport.
type Window struct {
	st *state.State
	r  renderer.Renderer

	mu       sync.Mutex
	vp       guide.Viewport
	cmds     []guide.Command
	frame    []byte
	repaints int
	lastErr  error

	log *zap.Logger
}

// New creates a window of size vp, paints the first frame and subscribes to
// state changes.
func New(ctx context.Context, st *state.State, r renderer.Renderer, vp guide.Viewport) *Window {
	w := &Window{
		st:  st,
		r:   r,
		vp:  vp,
		log: logger.L(ctx).With(zap.String("component", "overlay")),
	}
	w.Repaint()
	st.OnChange(w.Repaint)
	return w
}

// Resize changes the viewport and repaints.
func (w *Window) Resize(vp guide.Viewport) {
	w.mu.Lock()
	w.vp = vp
	w.mu.Unlock()
	w.Repaint()
}

// Repaint recomputes the command list from the current state and replays it.
// A render failure keeps the window alive; the error is logged and the
// previous frame is dropped.
func (w *Window) Repaint() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.repaints++
	w.cmds = guide.Render(w.st, w.vp)
	w.frame = nil
	w.lastErr = nil
	if w.vp.Empty() {
		w.log.Debug("skip paint for empty viewport",
			zap.Int("width", w.vp.Width), zap.Int("height", w.vp.Height))
		return
	}
	if w.r == nil {
		return
	}
	frame, err := w.r.Render(w.cmds, w.vp)
	if err != nil {
		w.lastErr = err
		w.log.Error("render frame", zap.Error(err))
		return
	}
	w.frame = frame
}

// Viewport returns the current size.
func (w *Window) Viewport() guide.Viewport {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.vp
}

// Commands returns the command list of the latest repaint.
func (w *Window) Commands() []guide.Command {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]guide.Command(nil), w.cmds...)
}

// Frame returns the encoded output of the latest repaint, or nil.
func (w *Window) Frame() []byte {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frame
}

// Err returns the render error of the latest repaint, if any.
func (w *Window) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// Repaints returns how many times the window has repainted.
func (w *Window) Repaints() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.repaints
}
