package nawa

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	innerColor = color.New(color.FgBlue)
	leafColor  = color.New(color.FgGreen)
)

// Dump writes an indented listing of a rope's tree to w (for debugging
// purposes). Inner nodes and leafs are colored if w is a terminal.
func Dump[T any](r Rope[T], w io.Writer) error {
	colored := false
	if f, ok := w.(*os.File); ok {
		colored = term.IsTerminal(int(f.Fd()))
	}
	if r.root == nil {
		_, err := io.WriteString(w, "<empty>\n")
		return err
	}
	return traverse(r.root, func(node *ropeNode[T], pos uint64, depth int) error {
		var line string
		var c *color.Color
		if node.IsLeaf() {
			line = fmt.Sprintf("%sL = %d @%d “%s”\n", indent(depth), node.Len(), pos, leafstart(node.AsLeaf()))
			c = leafColor
		} else {
			line = fmt.Sprintf("%sN = %v\n", indent(depth), node)
			c = innerColor
		}
		if colored {
			_, err := c.Fprint(w, line)
			return err
		}
		_, err := io.WriteString(w, line)
		return err
	})
}

func indent(d int) string {
	return strings.Repeat("  ", d)
}
