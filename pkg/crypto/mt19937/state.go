package mt19937

const (
	N = 624
	M = 397

	MATRIX_A   = 0x9908B0DF
	UPPER_MASK = 0x80000000
	LOWER_MASK = 0x7FFFFFFF

	initMultiplier = 0x6C078965

	temperingB = 0x9D2C5680
	temperingC = 0xEFC60000
)

// state is the 624-word array plus the read cursor.
// cursor == N means the array must be twisted before the next read.
type state struct {
	words  [N]uint32
	cursor int
}

func (s *state) seed(seed uint32) {
	s.words[0] = seed
	for i := 1; i < N; i++ {
		prev := s.words[i-1]
		s.words[i] = initMultiplier*(prev^(prev>>30)) + uint32(i)
	}
	s.cursor = N
}

// twist regenerates the whole array in place. Split into three ranges so no
// modulo is needed; for i >= N-M the word at i+M-N has already been rewritten
// in this pass, which is what the recurrence requires.
func (s *state) twist() {
	w := &s.words
	var i int
	var y uint32
	for i = 0; i < N-M; i++ {
		y = (w[i] & UPPER_MASK) | (w[i+1] & LOWER_MASK)
		w[i] = w[i+M] ^ (y >> 1) ^ mag(y)
	}
	for ; i < N-1; i++ {
		y = (w[i] & UPPER_MASK) | (w[i+1] & LOWER_MASK)
		w[i] = w[i+M-N] ^ (y >> 1) ^ mag(y)
	}
	y = (w[N-1] & UPPER_MASK) | (w[0] & LOWER_MASK)
	w[N-1] = w[M-1] ^ (y >> 1) ^ mag(y)
	s.cursor = 0
}

// mag returns MATRIX_A when y is odd and 0 otherwise, without branching.
func mag(y uint32) uint32 {
	return -(y & 1) & MATRIX_A
}

func temper(y uint32) uint32 {
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18
	return y
}
