package segtree

import (
	"fmt"
	"io"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Absent children of inner nodes are drawn as empty
// circles.
func Tree2Dot[T any](t *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	var nodelist, edgelist string
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.isLeaf() {
			label := fmt.Sprintf("%d\\n%v", n.lo, n.value)
			nodelist += fmt.Sprintf("\t\"%d\" [label=\"%s\" %s];\n", i, label, nodeDotStyles(true))
			continue
		}
		label := fmt.Sprintf("[%d..%d]\\n%v", n.lo, n.hi, n.value)
		nodelist += fmt.Sprintf("\t\"%d\" [label=\"%s\" %s];\n", i, label, nodeDotStyles(false))
		for k, c := range [2]int{n.left, n.right} {
			if c == noNode {
				nilid := fmt.Sprintf("nil%d_%d", i, k)
				nodelist += fmt.Sprintf("\t\"%s\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\t\"%d\" -> \"%s\";\n", i, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", i, c)
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

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
