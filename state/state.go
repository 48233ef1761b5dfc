// Package state holds the mutable overlay settings shared by the settings
// collaborator (writer) and the repaint path (reader).
//
// Every setter clamps its input to the documented range, so out-of-range
// values never reach the geometry kernel, and triggers exactly one change
// notification. Restore applies a whole snapshot as one transition with one
// notification.
package state

import (
	"sync"

	"go.uber.org/zap"

	"github.com/ByLCY/guideline/guide"
)

// Documented bounds of the settings.
const (
	MinLineWidth   = 1
	MaxLineWidth   = 10
	MaxFillOpacity = 100
)

// Options configures a State.
type Options struct {
	Logger *zap.Logger
}

// State is the process-wide guide configuration. The zero value is not
// usable; call New.
type State struct {
	mu           sync.Mutex
	guides       guide.GuideSet
	style        guide.Style
	spiralOffset int

	listenersMu sync.Mutex
	listeners   []func()

	log *zap.Logger
}

var _ guide.Source = (*State)(nil)

// New returns a State with the initial settings: rule of thirds on, a
// semi-transparent white pen of width 2 and an overall opacity of 0.8.
func New(opts Options) *State {
	l := opts.Logger
	if l == nil {
		l = zap.NewNop()
	}
	s := &State{style: guide.DefaultStyle(), log: l}
	s.guides[guide.RuleOfThirds] = true
	return s
}

// OnChange registers fn to be called after every state transition. It is
// the repaint request hook of the host window.
func (s *State) OnChange(fn func()) {
	if fn == nil {
		return
	}
	s.listenersMu.Lock()
	s.listeners = append(s.listeners, fn)
	s.listenersMu.Unlock()
}

// notify runs outside s.mu so listeners may read the state.
func (s *State) notify() {
	s.listenersMu.Lock()
	fns := append([]func(){}, s.listeners...)
	s.listenersMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Params returns a consistent copy of everything a render needs.
func (s *State) Params() guide.Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return guide.Params{Guides: s.guides, Style: s.style, SpiralOffset: s.spiralOffset}
}

// Guides returns a copy of the enabled-guide set.
func (s *State) Guides() guide.GuideSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guides
}

// Style returns a copy of the current style.
func (s *State) Style() guide.Style {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.style
}

// SpiralOffset returns the current spiral shift in Fibonacci units.
func (s *State) SpiralOffset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spiralOffset
}

// Toggle flips one guide. Unknown kinds are ignored without notification.
func (s *State) Toggle(k guide.Kind) {
	if !k.Valid() {
		s.log.Debug("toggle ignored", zap.Int("kind", int(k)))
		return
	}
	s.mu.Lock()
	s.guides[k] = !s.guides[k]
	on := s.guides[k]
	s.mu.Unlock()
	s.log.Debug("guide toggled", zap.Stringer("kind", k), zap.Bool("enabled", on))
	s.notify()
}

// ToggleName flips the guide with the given preset name. Unknown names are
// ignored; the returned error only reports them.
func (s *State) ToggleName(name string) error {
	k, err := guide.ParseKind(name)
	if err != nil {
		s.log.Debug("toggle ignored", zap.String("name", name))
		return err
	}
	s.Toggle(k)
	return nil
}

// SetEnabled switches one guide on or off.
func (s *State) SetEnabled(k guide.Kind, on bool) {
	if !k.Valid() {
		return
	}
	s.mu.Lock()
	s.guides[k] = on
	s.mu.Unlock()
	s.notify()
}

// SetColor replaces the pen color wholesale. The stored opacity is left as
// is, so Color.A and Opacity may disagree until the next SetOpacity.
func (s *State) SetColor(c guide.Color) {
	s.mu.Lock()
	s.style.Color = c.Clamp()
	s.mu.Unlock()
	s.notify()
}

// SetLineWidth clamps n to [MinLineWidth, MaxLineWidth].
func (s *State) SetLineWidth(n int) {
	w := clampInt(n, MinLineWidth, MaxLineWidth)
	if w != n {
		s.log.Debug("line width clamped", zap.Int("requested", n), zap.Int("applied", w))
	}
	s.mu.Lock()
	s.style.LineWidth = w
	s.mu.Unlock()
	s.notify()
}

// SetOpacity stores the overall opacity, clamped to [0,1], and recomputes the
// color alpha as round(255 × opacity) in the same transition.
func (s *State) SetOpacity(f float64) {
	o := clampFloat(f, 0, 1)
	if o != f {
		s.log.Debug("opacity clamped", zap.Float64("requested", f), zap.Float64("applied", o))
	}
	s.mu.Lock()
	s.setOpacityLocked(o)
	s.mu.Unlock()
	s.notify()
}

func (s *State) setOpacityLocked(o float64) {
	s.style.Opacity = o
	s.style.Color = s.style.Color.WithAlpha(guide.AlphaFor(o))
}

// SetFillOpacity clamps n to [0,100].
func (s *State) SetFillOpacity(n int) {
	s.mu.Lock()
	s.style.FillOpacity = clampInt(n, 0, MaxFillOpacity)
	s.mu.Unlock()
	s.notify()
}

// SetSpiralOffset clamps n to [0, guide.MaxSpiralOffset].
func (s *State) SetSpiralOffset(n int) {
	o := clampInt(n, 0, guide.MaxSpiralOffset)
	if o != n {
		s.log.Debug("spiral offset clamped", zap.Int("requested", n), zap.Int("applied", o))
	}
	s.mu.Lock()
	s.spiralOffset = o
	s.mu.Unlock()
	s.notify()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	// NaN 按下限处理。
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
