package etf

import (
	"fmt"
	"io"

	"github.com/aditya-r-m/dynconn/bstseq"
)

// Tours returns every distinct tree's tour as an ordered slice of (from, to)
// pairs. Each tree appears exactly once regardless of how many of its
// tokens are present in f's internal bookkeeping.
func (f *Forest[V]) Tours() [][][2]V {
	seen := make(map[*bstseq.Node[halfEdge[V]]]bool)
	var tours [][][2]V
	for _, n := range f.nodes {
		root := bstseq.TreeRoot(n)
		if seen[root] {
			continue
		}
		seen[root] = true

		tour := make([][2]V, 0, bstseq.Size(root))
		for _, tok := range bstseq.Inorder(root) {
			tour = append(tour, [2]V{tok.A, tok.B})
		}
		tours = append(tours, tour)
	}
	return tours
}

// Dump writes a human-readable rendering of every tree's tour to w, one per
// line. Intended for tests and interactive debugging, mirroring the
// reference Euler-tour forest's render routine.
func (f *Forest[V]) Dump(w io.Writer) {
	for i, tour := range f.Tours() {
		fmt.Fprintf(w, "tree %d: %v\n", i, tour)
	}
}
