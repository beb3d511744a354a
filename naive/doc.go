/*
Package naive implements a rope with the same API as package nawa on top of
a flat slice.

Every splice copies the complete sequence, so this implementation is only
suited as a reference for testing.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package naive

import "fmt"

// RopeError is an error type for naive ropes.
type RopeError string

func (e RopeError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a position is greater than the
// length of the rope.
const ErrIndexOutOfBounds = RopeError("naive: index out of bounds")

// ErrInvalidRange is flagged whenever the start of a range lies behind its end.
const ErrInvalidRange = RopeError("naive: invalid range")

func indexOutOfBounds(length, index uint64) error {
	return fmt.Errorf("%w: split index (is %d) should be <= len (is %d)", ErrIndexOutOfBounds, index, length)
}
