package flake

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adaParams() Params {
	return Params{Seed: "Ada|Lovelace|6|10", Complexity: 6, Thickness: 10, SizeInches: DefaultSizeInches}
}

func TestGenerateScenario(t *testing.T) {
	res := Generate(adaParams())

	require.NotEmpty(t, res.Segments)
	assert.Len(t, res.Segments, 6*len(res.Wedge))
	assert.GreaterOrEqual(t, len(res.Outline), MinOutlinePoints)
	assert.False(t, res.Fallback)
	assert.Positive(t, PolygonArea(res.Outline))

	m := res.Mesh
	require.False(t, m.IsEmpty())
	assert.True(t, m.IsWatertight())
	assert.InEpsilon(t, 110, m.Diameter(), 1e-3)
	assert.InEpsilon(t, 110*DefaultDepthRatio, m.Bounds.Size().Z, 1e-3)
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(adaParams())
	b := Generate(adaParams())
	assert.Equal(t, a, b)
}

func TestGenerateWorkerCountInvariant(t *testing.T) {
	serial := Generate(adaParams(), WithWorkers(1))
	parallel := Generate(adaParams(), WithWorkers(4))
	assert.Equal(t, serial, parallel)
}

func TestGenerateClampsParams(t *testing.T) {
	tests := []struct {
		name      string
		raw, same Params
	}{
		{"complexity low", Params{Seed: "x", Complexity: 0, Thickness: 10}, Params{Seed: "x", Complexity: 1, Thickness: 10}},
		{"complexity high", Params{Seed: "x", Complexity: 999, Thickness: 10}, Params{Seed: "x", Complexity: 10, Thickness: 10}},
		{"thickness low", Params{Seed: "x", Complexity: 4, Thickness: 0}, Params{Seed: "x", Complexity: 4, Thickness: 2}},
		{"thickness high", Params{Seed: "x", Complexity: 4, Thickness: 100}, Params{Seed: "x", Complexity: 4, Thickness: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Generate(tt.raw, WithWorkers(1))
			b := Generate(tt.same, WithWorkers(1))
			assert.Equal(t, b.Params, a.Params)
			assert.Equal(t, b.Mesh, a.Mesh)
		})
	}
}

func TestGenerateSweep(t *testing.T) {
	if testing.Short() {
		t.Skip("sweep skipped in short mode")
	}
	for c := MinComplexity; c <= MaxComplexity; c++ {
		for _, th := range []float64{MinThickness, 11, MaxThickness} {
			t.Run(fmt.Sprintf("c%d-t%g", c, th), func(t *testing.T) {
				res := Generate(Params{Seed: "sweep", Complexity: c, Thickness: th, SizeInches: 4})
				assert.GreaterOrEqual(t, len(res.Outline), MinOutlinePoints)
				assert.True(t, res.Mesh.IsWatertight())
				assert.InEpsilon(t, 4*MillimetersPerInch, res.Mesh.Diameter(), 1e-3)
			})
		}
	}
}

func TestGenerateSizeScalesMesh(t *testing.T) {
	p := adaParams()
	p.SizeInches = 2
	small := Generate(p)
	assert.InEpsilon(t, 2*MillimetersPerInch, small.Mesh.Diameter(), 1e-3)

	p.SizeInches = 0.25
	tiny := Generate(p)
	assert.Equal(t, 0.25, tiny.Params.SizeInches)
	assert.InEpsilon(t, 6.35, tiny.Mesh.Diameter(), 1e-3)

	p.SizeInches = 60
	big := Generate(p)
	assert.Equal(t, 60.0, big.Params.SizeInches)
	assert.InEpsilon(t, 1524.0, big.Mesh.Diameter(), 1e-3)
}

func TestGenerateDepthRatio(t *testing.T) {
	res := Generate(adaParams(), WithDepthRatio(0.1))
	assert.InEpsilon(t, 11, res.Mesh.Bounds.Size().Z, 1e-3)
}

func TestGenerateMirrorTuning(t *testing.T) {
	tn := DefaultTuning()
	tn.Mirror = true
	res := Generate(adaParams(), WithTuning(tn))
	for _, s := range res.Wedge {
		assert.GreaterOrEqual(t, s.Start.Y, 0.0)
	}
	assert.True(t, res.Mesh.IsWatertight())
	assert.InEpsilon(t, 110, res.Mesh.Diameter(), 1e-3)
}
