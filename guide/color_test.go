package guide

import (
	"errors"
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#fff", RGBA(255, 255, 255, 255)},
		{"#0F62FE", RGBA(15, 98, 254, 255)},
		{"#FFFFFFB4", RGBA(255, 255, 255, 180)},
		{"#1234", RGBA(0x11, 0x22, 0x33, 0x44)},
		{"white", RGBA(255, 255, 255, 255)},
		{"Gold", RGBA(255, 215, 0, 255)},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Fatalf("ParseColor(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseColor(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
	for _, bad := range []string{"", "#12", "#GGGGGG", "not-a-color"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("ParseColor(%q) should fail", bad)
		}
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	c := RGBA(1, 2, 250, 128)
	back, err := ParseColor(c.Hex())
	if err != nil || back != c {
		t.Fatalf("hex round trip: %s -> %+v (%v)", c.Hex(), back, err)
	}
}

func TestAlphaFor(t *testing.T) {
	cases := map[float64]int{0: 0, 0.5: 128, 0.8: 204, 1: 255, -1: 0, 2: 255}
	for in, want := range cases {
		if got := AlphaFor(in); got != want {
			t.Fatalf("AlphaFor(%g) = %d, want %d", in, got, want)
		}
	}
	if got := int(math.Round(255 * 0.5)); got != 128 {
		t.Fatalf("sanity: %d", got)
	}
}

func TestClamp(t *testing.T) {
	got := RGBA(-4, 300, 12, 256).Clamp()
	if got != RGBA(0, 255, 12, 255) {
		t.Fatalf("Clamp = %+v", got)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("spiral_of_doom"); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("want ErrInvalidKind, got %v", err)
	}
	if len(Kinds()) != 8 {
		t.Fatalf("want 8 kinds, got %d", len(Kinds()))
	}
}

func TestGuideSetFromMap(t *testing.T) {
	var base GuideSet
	base[RuleOfThirds] = true
	set, unknown := GuideSetFromMap(base, map[string]bool{
		"rule_of_thirds": false,
		"safe_areas":     true,
		"bogus":          true,
	})
	if set.Enabled(RuleOfThirds) || !set.Enabled(SafeAreas) {
		t.Fatalf("unexpected set %+v", set)
	}
	if len(unknown) != 1 || unknown[0] != "bogus" {
		t.Fatalf("unknown = %v", unknown)
	}
	if m := set.Map(); len(m) != KindCount || !m["safe_areas"] {
		t.Fatalf("Map() = %v", m)
	}
}
