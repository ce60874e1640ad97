// Package reference is a deliberately plain MT19937: modulo indexing and a
// branching parity test, in the shape of init_genrand/genrand_int32 from
// mt19937ar.c. It exists to check the optimized generator against.
package reference

const (
	n = 624
	m = 397
)

type MT struct {
	mt  [n]uint32
	mti int
}

func New(seed uint32) *MT {
	r := new(MT)
	r.Seed(seed)
	return r
}

func (r *MT) Seed(seed uint32) {
	r.mt[0] = seed
	for i := 1; i < n; i++ {
		r.mt[i] = 1812433253*(r.mt[i-1]^(r.mt[i-1]>>30)) + uint32(i)
	}
	r.mti = n
}

func (r *MT) generate() {
	for i := 0; i < n; i++ {
		y := (r.mt[i] & 0x80000000) | (r.mt[(i+1)%n] & 0x7fffffff)
		r.mt[i] = r.mt[(i+m)%n] ^ (y >> 1)
		if y&1 != 0 {
			r.mt[i] ^= 0x9908b0df
		}
	}
	r.mti = 0
}

func (r *MT) Uint32() uint32 {
	if r.mti >= n {
		r.generate()
	}
	y := r.mt[r.mti]
	r.mti++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}
