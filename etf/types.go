package etf

import "github.com/aditya-r-m/dynconn/bstseq"

// halfEdge is one directed token of an Euler tour: (A, B) records the walk
// stepping from A to B. A self-loop (v, v) stands in for vertex v itself;
// every vertex has exactly one.
type halfEdge[V comparable] struct {
	A, B V
}

// Forest is a collection of vertex-disjoint rooted trees, each stored as a
// BST-Seq sequence of halfEdge tokens. The zero value is not usable; use
// New.
type Forest[V comparable] struct {
	nodes map[halfEdge[V]]*bstseq.Node[halfEdge[V]]
}

// New returns an empty forest. Vertices are inserted lazily on first use by
// any operation that names them.
func New[V comparable]() *Forest[V] {
	return &Forest[V]{nodes: make(map[halfEdge[V]]*bstseq.Node[halfEdge[V]])}
}

// insertVertex ensures v has a self-loop token, materializing v as a
// singleton one-vertex tree on first reference.
func (f *Forest[V]) insertVertex(v V) {
	loop := halfEdge[V]{v, v}
	if _, ok := f.nodes[loop]; !ok {
		f.nodes[loop] = bstseq.NewNode(loop)
	}
}

// avlRoot returns the structural (AVL) root of the tour containing token
// (u, v), or nil if that token does not exist.
func (f *Forest[V]) avlRoot(u, v V) *bstseq.Node[halfEdge[V]] {
	n, ok := f.nodes[halfEdge[V]{u, v}]
	if !ok {
		return nil
	}
	return bstseq.TreeRoot(n)
}

// componentRoot returns the sequence-first token of the tour containing
// (u, v) — i.e. the tour's current designated root vertex's self-loop, or
// whatever token currently sits first if the tour hasn't been rerooted
// through MakeRoot. Returns nil if (u, v) does not exist.
func (f *Forest[V]) componentRoot(u, v V) *bstseq.Node[halfEdge[V]] {
	root := f.avlRoot(u, v)
	if root == nil {
		return nil
	}
	return bstseq.LeftMost(root)
}
