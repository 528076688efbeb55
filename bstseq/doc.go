// Package bstseq implements a height-balanced (AVL) binary tree over a
// sequence of elements, where each element is itself the handle used by
// callers (there is no separate "index" type).
//
// It is the foundation layer of this module's dynamic-connectivity stack:
// the Euler-Tour Forest (package etf) represents each tree of a forest as
// one bstseq sequence of directed half-edge tokens, and the Level Structure
// (package dynconn) builds on etf in turn. bstseq itself knows nothing
// about graphs — it is a general-purpose order-maintenance structure.
//
// # Operations
//
//   - Merge(left, pivot, right) concatenates two sequences around a single
//     pivot element in O(log n), rebalancing by the standard AVL rotation
//     table (LL/RR/LR/RL) chosen from the balance factors of the taller
//     side and its new child.
//   - Split(pivot) removes pivot from its sequence and returns the
//     sequences of elements before and after it, in O(log n), by walking
//     up pivot's parent chain and re-merging siblings at each step.
//   - PushFront/PushBack/PopFront/PopBack are thin wrappers around Merge
//     and Split for the two sequence ends.
//   - Index walks down using subtree size in O(log n); out-of-range
//     requests return nil rather than an error (see Failure semantics below).
//   - SetAnnotation sets a per-element boolean and refreshes the
//     subtree-OR aggregate on the path to the root, stopping as soon as a
//     recomputed aggregate is unchanged.
//   - AnnotatedNodes enumerates every annotated element of a tree in
//     O((k+1) log n) for k results, pruning whole subtrees whose aggregate
//     is false.
//
// # Failure semantics
//
// All operations are total on well-formed inputs. Index out of range
// returns nil, not an error — bstseq does not itself validate uniqueness
// of values (callers such as etf enforce that via a separate edge map).
//
// # Complexity
//
//	Merge, Split, PushFront, PushBack, PopFront, PopBack, Index: O(log n).
//	SetAnnotation:                                               O(log n).
//	AnnotatedNodes:                                               O((k+1) log n).
//	Inorder, Render, ValidateStructure:                           O(n).
package bstseq
