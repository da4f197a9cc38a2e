package flake

import "math"

// Parameter bounds. Values outside these ranges are clamped, never rejected.
// SizeInches has no upper or lower bound: any finite positive size is used
// as given.
const (
	MinComplexity = 1
	MaxComplexity = 10

	MinThickness = 2.0
	MaxThickness = 20.0

	// MillimetersPerInch converts Params.SizeInches into the physical diameter.
	MillimetersPerInch = 25.4
)

// Defaults substituted for NaN, infinite or non-positive inputs.
const (
	DefaultComplexity = 6
	DefaultThickness  = 10.0
	// DefaultSizeInches yields a 110 mm flake.
	DefaultSizeInches = 110.0 / MillimetersPerInch
)

// Params is the complete input tuple of the pipeline.
type Params struct {
	Seed       string
	Complexity int
	Thickness  float64
	SizeInches float64
}

// Clamp returns a copy of p with every field forced into its documented
// range. Clamp is idempotent: p.Clamp().Clamp() == p.Clamp().
func (p Params) Clamp() Params {
	p.Complexity = clampInt(p.Complexity, MinComplexity, MaxComplexity)

	if math.IsNaN(p.Thickness) {
		p.Thickness = DefaultThickness
	}
	p.Thickness = clampFloat(p.Thickness, MinThickness, MaxThickness)

	if math.IsNaN(p.SizeInches) || math.IsInf(p.SizeInches, 0) || p.SizeInches <= 0 {
		p.SizeInches = DefaultSizeInches
	}
	return p
}

// DiameterMM returns the physical target diameter in millimeters.
func (p Params) DiameterMM() float64 {
	return p.Clamp().SizeInches * MillimetersPerInch
}

// thicknessNorm maps a clamped thickness onto [0,1].
func thicknessNorm(thickness float64) float64 {
	t := clampFloat(thickness, MinThickness, MaxThickness)
	return (t - MinThickness) / (MaxThickness - MinThickness)
}
