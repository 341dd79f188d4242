package vmath

import "math"

// --- Geometry ---

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WithinBox reports whether both axis deltas are strictly inside r
// Cheap rejection before the square root
func WithinBox(dx, dy, r float64) bool {
	return math.Abs(dx) < r && math.Abs(dy) < r
}

// Distance returns the Euclidean length of (dx, dy)
func Distance(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}

// WithinRadius reports whether (dx, dy) is strictly inside a circle of radius r
func WithinRadius(dx, dy, r float64) bool {
	return Distance(dx, dy) < r
}

// Hit is the two-stage overlap test: bounding box first, then true distance
func Hit(dx, dy, r float64) bool {
	return WithinBox(dx, dy, r) && WithinRadius(dx, dy, r)
}

// Wobble returns the lateral drift for a body at height y
func Wobble(y, frequency, amplitude float64) float64 {
	return math.Sin(y*frequency) * amplitude
}

// --- Randomness ---

// Rand is the random source consumed by simulation systems
// Float64 returns a value in [0, 1)
type Rand interface {
	Float64() float64
}

// FastRand is a xorshift64 generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform value in [lo, hi)
func Range(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Chance returns true with probability p
func Chance(rng Rand, p float64) bool {
	return rng.Float64() < p
}
