package vmath

import "math"

// --- Scalar helpers ---

// Signum returns ±1 following the sign bit, so Signum(0) == 1 and Signum(-0) == -1
// NaN passes through
func Signum(v float64) float64 {
	if v != v {
		return v
	}
	return math.Copysign(1, v)
}

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

// Lerp blends a toward b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// --- Distance ---

// Alpha-max-beta-min coefficients, relative error at most 7.4%
const (
	fastDistAlpha = 1007.0 / 1024.0
	fastDistBeta  = 441.0 / 1024.0
)

// FastDistance approximates sqrt(dx*dx + dy*dy) without a square root
func FastDistance(dx, dy float64) float64 {
	dx, dy = math.Abs(dx), math.Abs(dy)
	hi, lo := dx, dy
	if lo > hi {
		hi, lo = lo, hi
	}
	return fastDistAlpha*hi + fastDistBeta*lo
}

// DistanceSquared returns the squared euclidean distance between two points
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	return dx*dx + dy*dy
}

// --- Randomness ---

// FastRand is a xorshift64 generator
// The state is exported so the generator can live inside copied and digested simulation state
type FastRand struct {
	State uint64
}

// NewFastRand seeds a generator, zero is remapped since xorshift sticks at zero
func NewFastRand(seed uint64) FastRand {
	if seed == 0 {
		seed = 1
	}
	return FastRand{State: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.State
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.State = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}
