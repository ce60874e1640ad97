package mtrand

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jx2f/mtwist/pkg/crypto/mt19937"
)

func TestSeedAndRand(t *testing.T) {
	Seed(1)
	assert.Equal(t, uint32(1791095845), Uint32())
	assert.Equal(t, int32(4282876139&RandMax), Rand())
}

func TestRandRange(t *testing.T) {
	Seed(5769)
	for i := 0; i < 10000; i++ {
		r := Rand()
		require.GreaterOrEqual(t, r, int32(0))
		require.LessOrEqual(t, r, int32(RandMax))
	}
}

func TestConcurrentDrawsKeepSequence(t *testing.T) {
	Seed(42)
	const workers, draws = 8, 1000

	got := make(map[uint32]int)
	var gotMu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < draws; i++ {
				v := Uint32()
				gotMu.Lock()
				got[v]++
				gotMu.Unlock()
			}
		}()
	}
	wg.Wait()

	want := make(map[uint32]int)
	g := mt19937.New(42)
	for i := 0; i < workers*draws; i++ {
		want[g.Uint32()]++
	}
	assert.Equal(t, want, got)
}
