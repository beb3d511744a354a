/*
Package text provides ropes of user-perceived characters.

A text rope holds one element per grapheme cluster, as defined by Unicode
UAX #29. Editing positions therefore never fall into the middle of a
character, even if it consists of several code points (e.g., emoji with
modifiers, or letters with combining marks).

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package text

import (
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

var setupOnce sync.Once

// setup initializes the grapheme class tables of package uax/grapheme.
func setup() {
	setupOnce.Do(func() {
		tracer().Debugf("setting up grapheme classes")
		grapheme.SetupGraphemeClasses()
	})
}
