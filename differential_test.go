package nawa

import (
	"bytes"
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"testing"
	"time"

	"github.com/azdavis/nawa/naive"
	"github.com/azdavis/nawa/ropetest"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/commands"
	"github.com/leanovate/gopter/gen"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// How to run:
//   - Deterministic differential test against the naive rope:
//     go test . -run TestDifferential -count=1
//   - Fuzz test:
//     go test . -run '^$' -fuzz FuzzDifferential -fuzztime=10s

func randomByte(r *rand.Rand) byte {
	return byte('a' + r.Intn(26))
}

func TestDifferential(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	seeds := []int64{1, 2, 3, 7, 42, 99, 31337, 123456789}
	for _, seed := range seeds {
		t.Run("seed_"+strconv.FormatInt(seed, 10), func(t *testing.T) {
			content := []byte("initial content")
			ropetest.Differential(t, ropetest.Config{Seed: seed, Steps: 300},
				From(slices.Clone(content)), naive.From(slices.Clone(content)), randomByte)
		})
	}
}

func TestDifferentialFromEmpty(t *testing.T) {
	for _, seed := range []int64{5, time.Now().UnixNano()} {
		t.Run("seed_"+strconv.FormatInt(seed, 10), func(t *testing.T) {
			ropetest.Differential(t, ropetest.Config{Seed: seed, Steps: 500, MaxRun: 3},
				New[int](), naive.New[int](), func(r *rand.Rand) int { return r.Int() })
		})
	}
}

func FuzzDifferential(f *testing.F) {
	f.Add(int64(1), uint8(32))
	f.Add(int64(7), uint8(64))
	f.Add(int64(42), uint8(96))
	f.Fuzz(func(t *testing.T, seed int64, steps uint8) {
		ropetest.Differential(t, ropetest.Config{Seed: seed, Steps: int(steps%120) + 1},
			New[byte](), naive.New[byte](), randomByte)
	})
}

// --- Stateful property test ------------------------------------------------

// ropePair is the system under test: a rope and the naive rope, which are
// edited in lockstep.
type ropePair struct {
	rope   Rope[byte]
	oracle naive.Rope[byte]
}

// outcome is the observation after a command.
type outcome struct {
	ropeErr, oracleErr     error
	rope, oracle           []byte
	ropeLen, oracleLen     uint64
	ropeEmpty, oracleEmpty bool
}

func observe(p *ropePair, ropeErr, oracleErr error) outcome {
	return outcome{
		ropeErr:     ropeErr,
		oracleErr:   oracleErr,
		rope:        p.rope.Items(),
		oracle:      p.oracle.Items(),
		ropeLen:     p.rope.Len(),
		oracleLen:   p.oracle.Len(),
		ropeEmpty:   p.rope.IsEmpty(),
		oracleEmpty: p.oracle.IsEmpty(),
	}
}

func (o outcome) check() *gopter.PropResult {
	if (o.ropeErr == nil) != (o.oracleErr == nil) {
		return &gopter.PropResult{Status: gopter.PropFalse}
	}
	if o.ropeLen != o.oracleLen || o.ropeEmpty != o.oracleEmpty || !bytes.Equal(o.rope, o.oracle) {
		return &gopter.PropResult{Status: gopter.PropFalse}
	}
	return &gopter.PropResult{Status: gopter.PropTrue}
}

type insertCommand struct {
	at    uint64
	items []byte
}

func (c insertCommand) Run(sut commands.SystemUnderTest) commands.Result {
	p := sut.(*ropePair)
	r, ropeErr := p.rope.Insert(c.at, c.items)
	o, oracleErr := p.oracle.Insert(c.at, c.items)
	if ropeErr == nil && oracleErr == nil {
		p.rope, p.oracle = r, o
	}
	return observe(p, ropeErr, oracleErr)
}

func (c insertCommand) NextState(state commands.State) commands.State { return state }
func (c insertCommand) PreCondition(state commands.State) bool        { return true }
func (c insertCommand) PostCondition(state commands.State, result commands.Result) *gopter.PropResult {
	return result.(outcome).check()
}
func (c insertCommand) String() string { return fmt.Sprintf("Insert(%d, %q)", c.at, c.items) }

type deleteCommand struct {
	start, end uint64
}

func (c deleteCommand) Run(sut commands.SystemUnderTest) commands.Result {
	p := sut.(*ropePair)
	r, ropeErr := p.rope.Delete(c.start, c.end)
	o, oracleErr := p.oracle.Delete(c.start, c.end)
	if ropeErr == nil && oracleErr == nil {
		p.rope, p.oracle = r, o
	}
	return observe(p, ropeErr, oracleErr)
}

func (c deleteCommand) NextState(state commands.State) commands.State { return state }
func (c deleteCommand) PreCondition(state commands.State) bool        { return true }
func (c deleteCommand) PostCondition(state commands.State, result commands.Result) *gopter.PropResult {
	return result.(outcome).check()
}
func (c deleteCommand) String() string { return fmt.Sprintf("Delete(%d, %d)", c.start, c.end) }

var (
	genInsert = gopter.CombineGens(gen.UInt64Range(0, 40), gen.SliceOf(gen.UInt8())).Map(func(v []interface{}) commands.Command {
		return insertCommand{at: v[0].(uint64), items: v[1].([]byte)}
	})
	genDelete = gopter.CombineGens(gen.UInt64Range(0, 40), gen.UInt64Range(0, 40)).Map(func(v []interface{}) commands.Command {
		return deleteCommand{start: v[0].(uint64), end: v[1].(uint64)}
	})
	ropeCommands = &commands.ProtoCommands{
		NewSystemUnderTestFunc: func(initialState commands.State) commands.SystemUnderTest {
			content := initialState.([]byte)
			return &ropePair{
				rope:   From(slices.Clone(content)),
				oracle: naive.From(slices.Clone(content)),
			}
		},
		InitialStateGen: gen.SliceOf(gen.UInt8()),
		GenCommandFunc: func(state commands.State) gopter.Gen {
			return gen.OneGenOf(genInsert, genDelete)
		},
	}
)

func TestRopeCommands(t *testing.T) {
	for _, seed := range []int64{1234, time.Now().UnixNano()} {
		t.Run("seed_"+strconv.FormatInt(seed, 10), func(t *testing.T) {
			t.Logf("gopter seed %d", seed)
			parameters := gopter.DefaultTestParametersWithSeed(seed)
			properties := gopter.NewProperties(parameters)
			properties.Property("rope agrees with naive rope", commands.Prop(ropeCommands))
			properties.TestingRun(t)
		})
	}
}
