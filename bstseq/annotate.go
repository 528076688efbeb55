package bstseq

// SetAnnotation sets node's own annotation flag and refreshes the
// subtreeAnnotation aggregate on the path from node to the structural
// root, stopping as soon as a recomputed aggregate equals the previous
// value (the change cannot propagate further up).
//
// Complexity: O(log n).
func SetAnnotation[V any](node *Node[V], b bool) {
	if node == nil {
		return
	}
	node.annotation = b
	for w := node; w != nil; w = w.parent {
		updated := w.annotation || SubtreeAnnotated(w.left) || SubtreeAnnotated(w.right)
		changed := updated != w.subtreeAnnotation
		w.subtreeAnnotation = updated
		if !changed {
			break
		}
	}
}

// AnnotatedNodes enumerates every annotated element reachable from tree's
// structural root, pruning whole subtrees whose subtreeAnnotation is
// false. Output-sensitive: O((k+1) log n) for k results.
func AnnotatedNodes[V any](tree *Node[V]) []*Node[V] {
	root := TreeRoot(tree)
	var out []*Node[V]
	var walk func(*Node[V])
	walk = func(n *Node[V]) {
		if n == nil || !n.subtreeAnnotation {
			return
		}
		walk(n.left)
		if n.annotation {
			out = append(out, n)
		}
		walk(n.right)
	}
	walk(root)
	return out
}
