package state

import (
	"go.uber.org/zap"

	"github.com/ByLCY/guideline/guide"
)

// Snapshot is the flat record used for preset persistence. Nil fields are
// absent: Restore leaves the matching setting untouched.
type Snapshot struct {
	Guides       map[string]bool `json:"guides,omitempty"`
	Color        *guide.Color    `json:"color,omitempty"`
	LineWidth    *int            `json:"line_width,omitempty"`
	Opacity      *float64        `json:"opacity,omitempty"`
	SpiralOffset *int            `json:"spiral_offset,omitempty"`
	FillOpacity  *int            `json:"fill_opacity,omitempty"`
}

// Snapshot captures the full state; every field is set.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	color := s.style.Color
	width := s.style.LineWidth
	opacity := s.style.Opacity
	offset := s.spiralOffset
	fill := s.style.FillOpacity
	return Snapshot{
		Guides:       s.guides.Map(),
		Color:        &color,
		LineWidth:    &width,
		Opacity:      &opacity,
		SpiralOffset: &offset,
		FillOpacity:  &fill,
	}
}

// Restore applies snap as a single transition and notifies listeners once.
// Guide names that are not known kinds are ignored. Values are clamped as by
// the setters.
//
// When the snapshot carries both a color and an opacity, both are taken
// verbatim, so Snapshot→Restore→Snapshot is the identity. An opacity without a
// color behaves like SetOpacity and recomputes the alpha channel.
func (s *State) Restore(snap Snapshot) {
	s.mu.Lock()
	var unknown []string
	if snap.Guides != nil {
		s.guides, unknown = guide.GuideSetFromMap(s.guides, snap.Guides)
	}
	if snap.Color != nil {
		s.style.Color = snap.Color.Clamp()
	}
	if snap.Opacity != nil {
		o := clampFloat(*snap.Opacity, 0, 1)
		if snap.Color != nil {
			s.style.Opacity = o
		} else {
			s.setOpacityLocked(o)
		}
	}
	if snap.LineWidth != nil {
		s.style.LineWidth = clampInt(*snap.LineWidth, MinLineWidth, MaxLineWidth)
	}
	if snap.SpiralOffset != nil {
		s.spiralOffset = clampInt(*snap.SpiralOffset, 0, guide.MaxSpiralOffset)
	}
	if snap.FillOpacity != nil {
		s.style.FillOpacity = clampInt(*snap.FillOpacity, 0, MaxFillOpacity)
	}
	s.mu.Unlock()

	if len(unknown) > 0 {
		s.log.Debug("restore ignored unknown guides", zap.Strings("names", unknown))
	}
	s.notify()
}

// ReplaceGuides enables exactly the given kinds and disables the rest, as one
// transition.
func (s *State) ReplaceGuides(kinds ...guide.Kind) {
	var set guide.GuideSet
	for _, k := range kinds {
		if k.Valid() {
			set[k] = true
		}
	}
	s.Restore(Snapshot{Guides: set.Map()})
}
