// Package mt19937 implements the 32-bit Mersenne Twister MT19937 with a
// period of 2^19937-1.
//
// The generator is not safe for concurrent use and is not cryptographically
// secure: 624 consecutive outputs are enough to reconstruct its state (see
// Recover).
package mt19937

// DefaultSeed is the seed used by the reference implementation when a
// generator is drawn from before being seeded.
const DefaultSeed = 5489

// Generator is an MT19937 instance. The zero value is not seeded; use New.
type Generator struct {
	state
}

func New(seed uint32) *Generator {
	g := new(Generator)
	g.Seed(seed)
	return g
}

// Seed reinitializes the whole state from seed. The twist is deferred to the
// next call to Uint32.
func (g *Generator) Seed(seed uint32) {
	g.seed(seed)
}

// Uint32 returns the next tempered 32-bit output.
func (g *Generator) Uint32() uint32 {
	if g.cursor >= N {
		g.twist()
	}
	y := g.words[g.cursor]
	g.cursor++
	return temper(y)
}
