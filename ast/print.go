package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable representation of a node to w
func Print(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	if n == nil {
		fmt.Fprintf(w, "nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch {

	case n.IsVector():
		fmt.Fprintf(w, "(%v)\n", n.Token())
		list := n.List()
		for i := range list {
			printLevel(w, list[i], level+1)
		}

	case n.IsValue():
		fmt.Fprintf(w, "%s (%v)\n", n.Encode(), n.Token())

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into its text representation. The root list is
// encoded as a sequence of forms, without surrounding parenthesis.
func Encode(n *Node) []byte {
	return encodeNodeLevel(n, 0)
}

func encodeNodeLevel(n *Node, level int) []byte {
	if n == nil {
		return []byte("nil")
	}
	switch {
	case n.IsVector():
		nodes := []string{}
		for i := range n.List() {
			nodes = append(nodes, string(encodeNodeLevel(n.List()[i], level+1)))
		}
		if level == 0 {
			return []byte(strings.Join(nodes, " "))
		}
		return []byte(fmt.Sprintf("(%s)", strings.Join(nodes, " ")))

	case n.IsValue():
		return []byte(n.Encode())

	default:
		panic("unknown node type")
	}
}
