package flake

// FNV-1a parameters for SeedFromString.
const (
	fnvOffset32 uint32 = 2166136261
	fnvPrime32  uint32 = 16777619
)

// mulberryIncrement is the additive step applied to the generator state.
const mulberryIncrement uint32 = 0x6D2B79F5

// SeedFromString hashes text into a 32-bit seed using FNV-1a over the
// Unicode code points of the string. Identical text always yields the
// identical seed.
func SeedFromString(text string) uint32 {
	h := fnvOffset32
	for _, r := range text {
		h ^= uint32(r)
		h *= fnvPrime32
	}
	return h
}

// Generator is a deterministic pseudo-random stream of floats in [0,1).
//
// Generator is stateful and not safe for concurrent use. Every pipeline run
// creates its own instance.
type Generator struct {
	state uint32
}

// NewGenerator returns a generator whose sequence is fully determined by seed.
func NewGenerator(seed uint32) *Generator {
	return &Generator{state: seed}
}

// Next advances the state and returns the next value in [0,1).
func (g *Generator) Next() float64 {
	g.state += mulberryIncrement
	t := g.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	t ^= t >> 14
	return float64(t) / 4294967296.0
}

// Range returns a value uniformly distributed in [lo, hi).
func (g *Generator) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*g.Next()
}

// Jitter returns a value uniformly distributed in [-amount, amount).
func (g *Generator) Jitter(amount float64) float64 {
	return (g.Next()*2 - 1) * amount
}

// Chance reports whether a Bernoulli trial with probability p succeeds.
func (g *Generator) Chance(p float64) bool {
	return g.Next() < p
}

// Intn returns an integer in [0, n). Returns 0 when n <= 0.
func (g *Generator) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(g.Next() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}
