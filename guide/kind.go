package guide

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidKind is returned when a guide name does not match any known kind.
var ErrInvalidKind = errors.New("unknown guide kind")

// Kind identifies one of the overlay guides. The numeric order is the paint order:
// later kinds are drawn on top of earlier ones.
type Kind int

const (
	RuleOfThirds Kind = iota
	GoldenRatio
	CenterLines
	Diagonals
	GoldenSpiral
	Grid4x4
	Grid5x5
	SafeAreas

	kindCount
)

// KindCount is the number of known guide kinds.
const KindCount = int(kindCount)

var kindNames = [kindCount]string{
	RuleOfThirds: "rule_of_thirds",
	GoldenRatio:  "golden_ratio",
	CenterLines:  "center_lines",
	Diagonals:    "diagonals",
	GoldenSpiral: "golden_spiral",
	Grid4x4:      "grid_4x4",
	Grid5x5:      "grid_5x5",
	SafeAreas:    "safe_areas",
}

// String returns the preset-file name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool { return k >= 0 && k < kindCount }

// ParseKind maps a preset-file name such as "grid_4x4" to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKind, name)
}

// Kinds returns every kind in paint order.
func Kinds() []Kind {
	out := make([]Kind, KindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// GuideSet holds exactly one enabled flag per kind.
type GuideSet [kindCount]bool

// Enabled reports whether k is switched on. Unknown kinds are never enabled.
func (s GuideSet) Enabled(k Kind) bool {
	return k.Valid() && s[k]
}

// Any reports whether at least one guide is enabled.
func (s GuideSet) Any() bool {
	for _, on := range s {
		if on {
			return true
		}
	}
	return false
}

// Map converts the set to the name->flag form used by preset files.
func (s GuideSet) Map() map[string]bool {
	m := make(map[string]bool, KindCount)
	for k, on := range s {
		m[kindNames[k]] = on
	}
	return m
}

// GuideSetFromMap applies the flags in m on top of base. Unknown names are
// skipped and returned so callers can report them.
func GuideSetFromMap(base GuideSet, m map[string]bool) (GuideSet, []string) {
	var unknown []string
	for name, on := range m {
		k, err := ParseKind(name)
		if err != nil {
			unknown = append(unknown, name)
			continue
		}
		base[k] = on
	}
	sort.Strings(unknown)
	return base, unknown
}
