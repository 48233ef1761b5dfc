package dsl_test

import (
	"strings"
	"testing"

	"github.com/ByLCY/guideline/dsl"
)

const sampleDSL = `
// photography presets
preset "Photography - Golden" {
  guides: [golden_ratio, golden_spiral]
  color: #FFFFFFB4
  line-width: 2
  opacity: 80%
  spiral-offset: 3
}

/* video */
preset "Video - Safe Areas" { guides: [
    safe_areas
    , center_lines
  ]; color: gold }

preset "Custom" {
  guides: []
}

preset "Everything" { guides: all }
`

func TestParsePresets(t *testing.T) {
	file, err := dsl.ParseString(sampleDSL)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(file.Presets) != 4 {
		t.Fatalf("expected 4 presets, got %d", len(file.Presets))
	}

	golden := file.Presets[0]
	if golden.Name != "Photography - Golden" {
		t.Fatalf("unexpected name %q", golden.Name)
	}
	guides := golden.Lookup("guides")
	if guides == nil || guides.List == nil {
		t.Fatalf("guides list missing: %+v", guides)
	}
	if got := strings.Join(guides.List.Items, ","); got != "golden_ratio,golden_spiral" {
		t.Fatalf("guides = %s", got)
	}
	if c := golden.Lookup("color"); c == nil || c.Kind() != "color" || c.Raw() != "#FFFFFFB4" {
		t.Fatalf("color = %+v", c)
	}
	if v := golden.Lookup("line_width"); v == nil || v.Raw() != "2" {
		t.Fatalf("line-width lookup by underscore alias failed: %+v", v)
	}
	if v := golden.Lookup("opacity"); v == nil || v.Kind() != "number" || v.Raw() != "80%" {
		t.Fatalf("opacity = %+v", v)
	}
	if got := strings.Join(golden.Keys(), " "); got != "guides color line-width opacity spiral-offset" {
		t.Fatalf("keys = %s", got)
	}

	video := file.Presets[1]
	if got := video.Lookup("guides").Raw(); got != "safe_areas,center_lines" {
		t.Fatalf("multi-line list = %s", got)
	}
	if c := video.Lookup("color"); c.Kind() != "ident" || c.Raw() != "gold" {
		t.Fatalf("named color = %+v", c)
	}

	custom := file.Presets[2].Lookup("guides")
	if custom == nil || custom.List == nil || len(custom.List.Items) != 0 {
		t.Fatalf("empty list should parse as empty List, got %+v", custom)
	}

	if v := file.Presets[3].Lookup("guides"); v.Kind() != "ident" || v.Raw() != "all" {
		t.Fatalf("guides: all = %+v", v)
	}
}

func TestParseEmptyFile(t *testing.T) {
	file, err := dsl.ParseString("\n// nothing here\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(file.Presets) != 0 {
		t.Fatalf("expected no presets, got %d", len(file.Presets))
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		`preset Unquoted { guides: all }`,
		`preset "x" { guides all }`,
		`preset "x" { guides: [a b] }`,
		`preset "x" { guides: all`,
	}
	for _, src := range bad {
		if _, err := dsl.ParseString(src); err == nil {
			t.Fatalf("expected parse error for %q", src)
		}
	}
}

func TestLookupMissing(t *testing.T) {
	var p *dsl.Preset
	if p.Lookup("color") != nil || p.Keys() != nil {
		t.Fatalf("nil preset lookups should be empty")
	}
	var v *dsl.Value
	if v.Raw() != "" || v.Kind() != "unknown" {
		t.Fatalf("nil value helpers should be empty")
	}
}
