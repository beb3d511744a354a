package ropetest

import (
	"math/rand"
	"os"
	"testing"

	"github.com/azdavis/nawa/naive"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gtrace.CoreTracer = gologadapter.New()
	os.Exit(m.Run())
}

func TestScenariosOnNaive(t *testing.T) {
	Breakfast(t, naive.From[byte])
	err := OutOfBounds(t, naive.From[byte])
	require.ErrorIs(t, err, naive.ErrIndexOutOfBounds)
}

func TestDifferentialSelfCheck(t *testing.T) {
	gen := func(r *rand.Rand) rune { return rune('α' + r.Intn(24)) }
	Differential(t, Config{Seed: 11, Steps: 200}, naive.New[rune](), naive.New[rune](), gen)
}

func TestPosition(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	behind := 0
	for i := 0; i < 1000; i++ {
		p := position(rnd, 5)
		require.LessOrEqual(t, p, uint64(8))
		if p > 5 {
			behind++
		}
	}
	require.Greater(t, behind, 0)
	require.Less(t, behind, 500)
}
