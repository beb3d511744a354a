package nawa

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*ropeNode[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*ropeNode[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *ropeNode[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *ropeNode[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Rope2Dot outputs the internal structure of a Rope in Graphviz DOT format
// (for debugging purposes).
func Rope2Dot[T any](r Rope[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	err := traverse(r.root, func(node *ropeNode[T], pos uint64, depth int) error {
		ID := ids.alloc(node)
		styles := nodeDotStyles(node.IsLeaf())
		if node.IsLeaf() {
			label := fmt.Sprintf("%d @%d\\n“%s”", node.Len(), pos, dotEscaper.Replace(leafstart(node.AsLeaf())))
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
			return nil
		}
		inner := node.AsInner()
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(inner.left))
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(inner.right))
		nodelist += fmt.Sprintf("\"%d\" [label=%d %s];\n", ID, node.Len(), styles)
		return nil
	})
	if err != nil {
		tracer().Errorf("rope DOT: %s", err.Error())
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

// dotEscaper quotes characters which are special inside DOT strings.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}

// leafstart returns a short textual preview of a leaf's run.
func leafstart[T any](leaf *leafNode[T]) string {
	var s string
	if b, ok := any(leaf.items).([]byte); ok {
		s = string(b)
	} else {
		s = fmt.Sprint(leaf.items)
	}
	if r := []rune(s); len(r) > 8 {
		return string(r[:7]) + "…"
	}
	return s
}
