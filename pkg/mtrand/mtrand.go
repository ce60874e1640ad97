// Package mtrand is a process-wide MT19937 in the style of libc srand/rand.
// Unlike mt19937.Generator it is safe for concurrent use.
package mtrand

import (
	"math"
	"sync"

	"github.com/Jx2f/mtwist/pkg/crypto/mt19937"
)

// RandMax is the largest value returned by Rand.
const RandMax = math.MaxInt32

var (
	mu     sync.Mutex
	g      mt19937.Generator
	seeded bool
)

func Seed(seed uint32) {
	mu.Lock()
	g.Seed(seed)
	seeded = true
	mu.Unlock()
}

// Uint32 returns the next full 32-bit output of the global generator.
func Uint32() uint32 {
	mu.Lock()
	defer mu.Unlock()
	if !seeded {
		g.Seed(mt19937.DefaultSeed)
		seeded = true
	}
	return g.Uint32()
}

// Rand returns a value in [0, RandMax] by dropping the top bit of Uint32.
func Rand() int32 {
	return int32(Uint32() & RandMax)
}
