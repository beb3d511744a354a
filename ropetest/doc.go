/*
Package ropetest provides utilities for testing rope implementations.

All rope implementations of this module share an operation contract,
expressed by interface Sequence. Test code written against Sequence runs
against every implementation. Differential checks two implementations
against each other, step by step, on a seeded random sequence of edits.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package ropetest

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Sequence is the operation contract of a rope holding elements of type T.
// S is the implementing type itself; edit operations return a new S and
// leave the receiver unchanged.
type Sequence[T any, S any] interface {
	Len() uint64
	IsEmpty() bool
	Insert(i uint64, items []T) (S, error)
	Delete(start, end uint64) (S, error)
	Items() []T
}
