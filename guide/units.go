package guide

// This file converts viewport pixels to the physical units used by page-based
// outputs such as PDF.

// Unit represents the target unit of a physical output.
type Unit int

const (
	UnitPX Unit = iota // viewport pixels
	UnitMM             // millimeters
	UnitPT             // points
)

// Conversion constants. Pixels are CSS pixels at DefaultDPI.
const (
	DefaultDPI = 96.0
	MmPerInch  = 25.4
	PtPerInch  = 72.0
)

// UnitToString returns a short string for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitPX:
		return "px"
	case UnitMM:
		return "mm"
	case UnitPT:
		return "pt"
	default:
		return ""
	}
}

// PxTo converts a pixel length at the given dpi to the target unit. A
// non-positive dpi falls back to DefaultDPI.
func PxTo(px, dpi float64, target Unit) float64 {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	switch target {
	case UnitMM:
		return px / dpi * MmPerInch
	case UnitPT:
		return px / dpi * PtPerInch
	default:
		return px
	}
}

// Scale returns the factor that maps one pixel to the target unit.
func Scale(dpi float64, target Unit) float64 { return PxTo(1, dpi, target) }
