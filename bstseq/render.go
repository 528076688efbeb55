package bstseq

import (
	"fmt"
	"io"
)

// Render writes a human-readable, indented dump of tree to w — node id,
// value, height, size, balance factor, annotation, and parent id — for use
// in tests and debugging. Mirrors the reference AVL tree's render routine.
func Render[V any](tree *Node[V], w io.Writer) {
	renderAt(tree, w, "")
}

func renderAt[V any](n *Node[V], w io.Writer, offset string) {
	if n == nil {
		fmt.Fprintln(w, offset, "empty")
		return
	}
	fmt.Fprintln(w, offset, "node id", n.id)
	fmt.Fprintln(w, offset, "node value", n.value)
	fmt.Fprintln(w, offset, "height", n.height, "size", n.size, "balance", BalanceFactor(n))
	fmt.Fprintln(w, offset, "annotation", n.annotation, "subtreeAnnotation", n.subtreeAnnotation)
	if n.parent != nil {
		fmt.Fprintln(w, offset, "parent id", n.parent.id)
	}
	if n.left != nil {
		fmt.Fprintln(w, offset, "left subtree")
		renderAt(n.left, w, offset+"  ")
	}
	if n.right != nil {
		fmt.Fprintln(w, offset, "right subtree")
		renderAt(n.right, w, offset+"  ")
	}
}
