/*
Package textfile provides API helpers to load files as ropes of bytes.

Files are read fragment by fragment in a background goroutine, and every
fragment becomes a leaf of the resulting rope. The `Load` API is synchronous
nevertheless.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to the global core-tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
