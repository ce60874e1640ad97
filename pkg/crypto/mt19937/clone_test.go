package mt19937

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUntemper(t *testing.T) {
	g := New(8)
	for i := 0; i < 5000; i++ {
		y := g.Uint32()
		require.Equal(t, y, temper(Untemper(y)))
	}
	for _, w := range []uint32{0, 1, 0x80000000, 0xFFFFFFFF, 0xDEADBEEF} {
		assert.Equal(t, w, Untemper(temper(w)), "w=%#x", w)
	}
}

func TestRecover(t *testing.T) {
	for _, skip := range []int{0, 1, 100, N - 1, N, 1000} {
		src := New(31337)
		for i := 0; i < skip; i++ {
			src.Uint32()
		}
		outputs := make([]uint32, N)
		for i := range outputs {
			outputs[i] = src.Uint32()
		}

		clone, err := Recover(outputs)
		require.NoError(t, err)
		for i := 0; i < 2*N; i++ {
			require.Equal(t, src.Uint32(), clone.Uint32(), "skip %d output %d", skip, i)
		}
	}
}

func TestRecoverOutputCount(t *testing.T) {
	_, err := Recover(make([]uint32, N-1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutputCount))
	assert.Contains(t, err.Error(), "got 623")
}
