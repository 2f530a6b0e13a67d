package postfix

import (
	"bufio"
	"fmt"
	"io"
)

// PrintTree writes node as an indented tree, one node per line:
//
//	├─+
//	│  ├─1
//	│  └─2
func PrintTree(w io.Writer, node Node) error {
	bw := bufio.NewWriter(w)
	printTree(bw, node, "", false)
	return bw.Flush()
}

func printTree(w *bufio.Writer, node Node, indent string, isRight bool) {
	connector := "├─"
	if isRight {
		connector = "└─"
	}
	switch n := node.(type) {
	case *BinaryOp:
		fmt.Fprintf(w, "%s%s%v\n", indent, connector, n.Op)
		childIndent := indent + "│  "
		if isRight {
			childIndent = indent + "   "
		}
		printTree(w, n.Left, childIndent, false)
		printTree(w, n.Right, childIndent, true)
	case *Identifier, *Number:
		fmt.Fprintf(w, "%s%s%v\n", indent, connector, n)
	default:
		panic(fmt.Sprintf("postfix: unknown node %T", node))
	}
}
