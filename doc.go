/*
Package nawa offers a persistent rope, a sequence type for efficient editing
of long sequences at arbitrary positions.

Ropes

Ropes organize runs of elements internally in a binary tree. Inserting or
deleting a sub-sequence splits the tree at the edit positions and joins the
pieces again, leaving all untouched runs in place. This avoids the cost of a
flat slice, where every splice has to move all elements behind the edit
position. This package aims towards applications which repeatedly mutate
large sequences, e.g. text editors or log buffers.

From Wikipedia:
In computer programming, a rope, or cord, is a data structure composed of
smaller strings that is used to efficiently store and manipulate a very long string.
For example, a text editing program may use a rope to represent the text being edited,
so that operations such as insertion, deletion, and random access can be
done efficiently. […] In summary, ropes are preferable when the data is large
and modified often.

Ropes of this package are never rebalanced. Trees may become skewed under
unfavourable edit patterns, therefore all traversals use an explicit stack
instead of recursion.

Ropes are values. Operations never modify a rope, but return a new one which
shares unchanged parts of the tree with the old one. Both remain usable.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package nawa

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// RopeError is an error type for the nawa module
type RopeError string

func (e RopeError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a rope position is
// greater than the length of the rope.
const ErrIndexOutOfBounds = RopeError("index out of bounds")

// ErrInvalidRange is flagged whenever the start of a range lies behind its end.
const ErrInvalidRange = RopeError("invalid range")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = RopeError("illegal arguments")

// ErrRopeCompleted signals that a rope builder has already completed a rope and
// it's illegal to further add fragments.
const ErrRopeCompleted = RopeError("forbidden to add fragments; rope has been completed")

func indexOutOfBounds(length, index uint64) error {
	return fmt.Errorf("%w: the len is %d but the index is %d", ErrIndexOutOfBounds, length, index)
}

func invalidRange(start, end uint64) error {
	return fmt.Errorf("%w: start %d is greater than end %d", ErrInvalidRange, start, end)
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
