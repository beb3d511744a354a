package text

import (
	"strings"

	"github.com/azdavis/nawa"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Rope is a rope of grapheme clusters.
type Rope = nawa.Rope[string]

// graphemes breaks s into its grapheme clusters.
func graphemes(s string) []string {
	if s == "" {
		return nil
	}
	setup()
	gstr := grapheme.StringFromString(s)
	clusters := make([]string, gstr.Len())
	for i := range clusters {
		clusters[i] = gstr.Nth(i)
	}
	return clusters
}

// FromString creates a text rope from a Go string.
func FromString(s string) Rope {
	return nawa.From(graphemes(s))
}

// String returns the text of a rope as a Go string.
func String(r Rope) string {
	var sb strings.Builder
	for frag := range r.Fragments() {
		for _, g := range frag {
			sb.WriteString(g)
		}
	}
	return sb.String()
}

// Insert inserts s before the i-th grapheme of r.
func Insert(r Rope, i uint64, s string) (Rope, error) {
	return r.Insert(i, graphemes(s))
}

// Delete removes the graphemes [start,end) from r.
func Delete(r Rope, start, end uint64) (Rope, error) {
	return r.Delete(start, end)
}

// Width returns the display width of a text rope in fixed-width ‘en’s,
// assuming a Latin context (see UAX #11).
func Width(r Rope) int {
	s := String(r)
	if s == "" {
		return 0
	}
	setup()
	return uax11.StringWidth(grapheme.StringFromString(s), uax11.LatinContext)
}
