package mt19937

import (
	"math/bits"
	"math/rand"
)

// Uint64 combines two consecutive outputs, the first one in the high half.
func (g *Generator) Uint64() uint64 {
	hi := uint64(g.Uint32())
	return hi<<32 | uint64(g.Uint32())
}

func (g *Generator) Int63() int64 {
	return int64(g.Uint64() >> 1)
}

// Float64 returns a float64 in [0, 1) with 53-bit resolution, built the same
// way as genrand_res53 in the reference code.
func (g *Generator) Float64() float64 {
	a := g.Uint32() >> 5
	b := g.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Uint32n returns a uniformly distributed value in [0, n). It panics if n is 0.
func (g *Generator) Uint32n(n uint32) uint32 {
	if n == 0 {
		panic("mt19937: invalid argument to Uint32n")
	}
	hi, lo := bits.Mul32(g.Uint32(), n)
	if lo < n {
		threshold := -n % n
		for lo < threshold {
			hi, lo = bits.Mul32(g.Uint32(), n)
		}
	}
	return hi
}

type source struct {
	g      Generator
	seeded bool
}

func NewRand() *rand.Rand        { return rand.New(NewSource64()) }
func NewSource() rand.Source     { return &source{} }
func NewSource64() rand.Source64 { return &source{} }

// Seed uses the low 32 bits of seed.
func (s *source) Seed(seed int64) {
	s.g.Seed(uint32(seed))
	s.seeded = true
}

func (s *source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

func (s *source) Uint64() uint64 {
	if !s.seeded {
		s.Seed(DefaultSeed)
	}
	return s.g.Uint64()
}
