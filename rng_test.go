package flake

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFromString(t *testing.T) {
	tests := []struct {
		text string
		want uint32
	}{
		{"", 2166136261},
		{"a", 0xe40c292c},
		{"Ada|Lovelace|6|10", 2552184801},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, SeedFromString(tt.text))
		})
	}
}

func TestSeedFromStringOrderSensitive(t *testing.T) {
	assert.NotEqual(t, SeedFromString("ab"), SeedFromString("ba"))
	assert.NotEqual(t, SeedFromString("snow"), SeedFromString("snow "))
}

func TestSeedFromStringCollisions(t *testing.T) {
	const n = 20000
	seen := make(map[uint32]string, n)
	collisions := 0
	for i := range n {
		s := fmt.Sprintf("flake-%d", i)
		h := SeedFromString(s)
		if _, ok := seen[h]; ok {
			collisions++
		}
		seen[h] = s
	}
	// Expected for a 32-bit hash: n^2/2^33, about 0.05.
	assert.LessOrEqual(t, collisions, 2)
}

func TestGeneratorKnownSequence(t *testing.T) {
	g := NewGenerator(1)
	want := []float64{0.6270739405881613, 0.002735721180215478, 0.5274470399599522}
	for i, w := range want {
		assert.InDelta(t, w, g.Next(), 1e-15, "draw %d", i)
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(SeedFromString("same"))
	b := NewGenerator(SeedFromString("same"))
	for i := range 1000 {
		require.Equal(t, a.Next(), b.Next(), "draw %d", i)
	}
}

func TestGeneratorRange(t *testing.T) {
	g := NewGenerator(42)
	for range 10000 {
		v := g.Next()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestGeneratorHelpers(t *testing.T) {
	g := NewGenerator(7)
	for range 1000 {
		r := g.Range(2, 5)
		require.True(t, r >= 2 && r < 5, "Range = %f", r)
		j := g.Jitter(0.5)
		require.True(t, j >= -0.5 && j < 0.5, "Jitter = %f", j)
		n := g.Intn(3)
		require.True(t, n >= 0 && n < 3, "Intn = %d", n)
	}
	assert.Equal(t, 0, g.Intn(0))
	assert.False(t, g.Chance(0))
	assert.True(t, g.Chance(1))
}
