package etf

import "github.com/aditya-r-m/dynconn/bstseq"

// SetAnnotation marks vertex v's self-loop token with b, so it is reported
// by AnnotatedVertices for any vertex in the same tree. Used by the level
// structure to flag a vertex as incident to at least one edge (tree or
// non-tree) at that forest's level.
func (f *Forest[V]) SetAnnotation(v V, b bool) {
	f.insertVertex(v)
	bstseq.SetAnnotation(f.nodes[halfEdge[V]{v, v}], b)
}

// AnnotatedVertices returns every vertex in v's tree whose self-loop token
// is annotated, in tour order.
func (f *Forest[V]) AnnotatedVertices(v V) []V {
	f.insertVertex(v)
	var out []V
	for _, n := range bstseq.AnnotatedNodes(f.avlRoot(v, v)) {
		tok := bstseq.Value(n)
		if tok.A == tok.B {
			out = append(out, tok.A)
		}
	}
	return out
}
