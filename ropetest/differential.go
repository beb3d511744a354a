package ropetest

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// Config parametrizes a differential run.
type Config struct {
	Seed   int64 // seed of the pseudo-random operation generator
	Steps  int   // number of edit operations
	MaxRun int   // maximum number of elements inserted at once; defaults to 8
}

// Differential applies a pseudo-random sequence of inserts and deletes to a
// and b in lockstep. a and b must hold equal content initially. After every
// step both implementations have to agree on success or failure of the
// operation and on Len, IsEmpty and Items. gen creates elements to insert.
//
// A fraction of the generated operations is invalid on purpose, to check that
// both implementations reject the same inputs. The seed is logged so that
// failing runs can be reproduced.
func Differential[T any, A Sequence[T, A], B Sequence[T, B]](t testing.TB, cfg Config,
	a A, b B, gen func(*rand.Rand) T) {
	//
	t.Helper()
	if cfg.MaxRun <= 0 {
		cfg.MaxRun = 8
	}
	t.Logf("differential run with seed %d", cfg.Seed)
	tracer().Infof("differential run with seed %d, %d steps", cfg.Seed, cfg.Steps)
	rnd := rand.New(rand.NewSource(cfg.Seed))
	agree(t, a, b, cfg.Seed, 0)
	for step := 1; step <= cfg.Steps; step++ {
		var na A
		var nb B
		var erra, errb error
		n := a.Len()
		switch rnd.Intn(2) {
		case 0:
			i := position(rnd, n)
			items := make([]T, rnd.Intn(cfg.MaxRun+1))
			for k := range items {
				items[k] = gen(rnd)
			}
			tracer().Debugf("step %d: insert %d items at %d (len=%d)", step, len(items), i, n)
			na, erra = a.Insert(i, items)
			nb, errb = b.Insert(i, items)
		case 1:
			start, end := position(rnd, n), position(rnd, n)
			if start > end && rnd.Intn(8) != 0 {
				start, end = end, start
			}
			tracer().Debugf("step %d: delete [%d,%d) (len=%d)", step, start, end, n)
			na, erra = a.Delete(start, end)
			nb, errb = b.Delete(start, end)
		}
		if erra != nil || errb != nil {
			require.Truef(t, erra != nil && errb != nil,
				"seed %d, step %d: implementations disagree on failure: %v / %v", cfg.Seed, step, erra, errb)
			continue
		}
		a, b = na, nb
		agree(t, a, b, cfg.Seed, step)
	}
}

// position returns a position within [0,n] most of the time, but sometimes
// one slightly behind the end.
func position(rnd *rand.Rand, n uint64) uint64 {
	if rnd.Intn(10) == 0 {
		return n + 1 + uint64(rnd.Intn(3))
	}
	return uint64(rnd.Int63n(int64(n) + 1))
}

func agree[T any, A Sequence[T, A], B Sequence[T, B]](t testing.TB, a A, b B, seed int64, step int) {
	t.Helper()
	require.Equalf(t, b.Len(), a.Len(), "seed %d, step %d: Len", seed, step)
	require.Equalf(t, b.IsEmpty(), a.IsEmpty(), "seed %d, step %d: IsEmpty", seed, step)
	require.Equalf(t, b.Items(), a.Items(), "seed %d, step %d: Items", seed, step)
}
