package etf

import (
	"fmt"

	"github.com/aditya-r-m/dynconn/bstseq"
)

// Validate checks every invariant a well-formed forest must satisfy: each
// map entry's key matches its node's value, every tour's underlying
// BST-Seq tree is internally consistent, and every tour closes on itself
// (each token's destination is the next token's source, cyclically).
func (f *Forest[V]) Validate() error {
	for key, n := range f.nodes {
		if bstseq.Value(n) != key {
			return fmt.Errorf("etf: node stored under key %v has value %v", key, bstseq.Value(n))
		}
	}

	seen := make(map[*bstseq.Node[halfEdge[V]]]bool)
	for _, n := range f.nodes {
		root := bstseq.TreeRoot(n)
		if seen[root] {
			continue
		}
		seen[root] = true

		if err := bstseq.ValidateStructure(root); err != nil {
			return fmt.Errorf("etf: %w", err)
		}

		tour := bstseq.Inorder(root)
		for i := range tour {
			next := tour[(i+1)%len(tour)]
			if tour[i].B != next.A {
				return fmt.Errorf("etf: tour does not close: token %v followed by %v", tour[i], next)
			}
		}
	}
	return nil
}
