package vmath

// FastRand is a xorshift64 generator (13, 17, 5)
// Not cryptographic; chosen for speed and full reproducibility
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator; a zero seed is remapped to 1
// because xorshift has an all-zero fixed point
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// Next returns the next raw 64-bit value
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns the next value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Intn returns a value in [0, n); n <= 0 yields 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Chance returns true with probability p
func (r *FastRand) Chance(p float64) bool {
	return r.Float64() < p
}

// HashSeed maps a seed string to a PRNG seed using a polynomial
// rolling hash over the string's bytes (base 31, 32-bit wrap).
// Identical strings always map to identical seeds
func HashSeed(s string) uint64 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h*31 + uint32(s[i])
	}
	return uint64(h)
}
