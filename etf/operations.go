package etf

import (
	"github.com/aditya-r-m/dynconn/bstseq"
	"github.com/aditya-r-m/dynconn/internal/assertx"
)

// Linked reports whether {u, v} is currently a tree edge of f (i.e. both
// directed tokens (u, v) and (v, u) exist). A vertex is never "linked" to
// itself.
func (f *Forest[V]) Linked(u, v V) bool {
	if u == v {
		return false
	}
	_, ok := f.nodes[halfEdge[V]{u, v}]
	return ok
}

// Connected reports whether u and v lie in the same tree. Inserts both as
// singleton trees first if either is unseen.
func (f *Forest[V]) Connected(u, v V) bool {
	f.insertVertex(u)
	f.insertVertex(v)
	ru, rv := f.avlRoot(u, u), f.avlRoot(v, v)
	return ru != nil && ru == rv
}

// GetRoot returns the vertex currently at the front of v's tour — its
// tree's designated root under the last MakeRoot call, or v's own tree's
// arbitrary starting vertex if MakeRoot was never called on this tree.
func (f *Forest[V]) GetRoot(v V) V {
	f.insertVertex(v)
	return bstseq.Value(f.componentRoot(v, v)).A
}

// MakeRoot rotates v's tour so v's self-loop token becomes its first
// element, leaving every other tree in f untouched. No-op if v is already
// its tree's front.
func (f *Forest[V]) MakeRoot(v V) {
	f.insertVertex(v)
	loop := f.nodes[halfEdge[V]{v, v}]
	if bstseq.Value(f.componentRoot(v, v)) == bstseq.Value(loop) {
		return
	}
	oldFront, _ := bstseq.PopFront(f.avlRoot(v, v))
	left, mid, right := bstseq.Split(loop)
	bstseq.PushFront(mid, bstseq.Merge(right, oldFront, left))
}

// Link joins the trees containing u and v with a new tree edge {u, v}.
// No-op if the edge already exists. Panics if u and v are already
// connected by some other path — callers (the level structure) must verify
// that precondition before calling Link.
func (f *Forest[V]) Link(u, v V) {
	f.insertVertex(u)
	f.insertVertex(v)
	if f.Linked(u, v) {
		return
	}
	assertx.Require(!f.Connected(u, v), "etf: Link(%v, %v): vertices already connected", u, v)
	f.MakeRoot(u)
	f.MakeRoot(v)
	uv := bstseq.NewNode(halfEdge[V]{u, v})
	vu := bstseq.NewNode(halfEdge[V]{v, u})
	f.nodes[halfEdge[V]{u, v}] = uv
	f.nodes[halfEdge[V]{v, u}] = vu
	merged := bstseq.Merge(f.avlRoot(u, u), uv, f.avlRoot(v, v))
	bstseq.PushBack(merged, vu)
}

// Cut removes tree edge {u, v}, splitting its tree into the two trees on
// either side of the removed edge. No-op if {u, v} is not a tree edge.
// Panics if u == v.
func (f *Forest[V]) Cut(u, v V) {
	assertx.Require(u != v, "etf: Cut(%v, %v): cannot cut a self-loop", u, v)
	f.insertVertex(u)
	f.insertVertex(v)
	if !f.Linked(u, v) {
		return
	}
	f.MakeRoot(u)
	left, downLink, _ := bstseq.Split(f.nodes[halfEdge[V]{u, v}])
	_, upLink, right := bstseq.Split(f.nodes[halfEdge[V]{v, u}])
	left, mid := bstseq.PopBack(left)
	bstseq.Merge(left, mid, right)
	delete(f.nodes, bstseq.Value(downLink))
	delete(f.nodes, bstseq.Value(upLink))
}

// Size returns the number of vertices in v's tree. A tree with n vertices
// has a tour of 3n-2 tokens (n self-loops, n-1 tree-edge round trips of two
// tokens each), so the vertex count falls straight out of the tour length.
func (f *Forest[V]) Size(v V) int {
	f.insertVertex(v)
	return (bstseq.Size(f.avlRoot(v, v)) + 2) / 3
}
