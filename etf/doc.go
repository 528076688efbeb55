// Package etf implements an Euler-Tour Forest: a representation of a
// forest of rooted, unordered trees that supports Link, Cut, and same-tree
// queries in O(log n) amortized time.
//
// Each tree is stored as a single cyclic sequence of directed half-edges —
// its Euler tour — held in one bstseq sequence. Every vertex v contributes
// one self-loop token (v, v); an edge {u, v} between
// two components contributes two tokens, (u, v) and (v, u), marking the
// walk's descent and return. Vertices and trees are never represented
// directly: a component's identity is its sequence's BST-Seq root, and a
// vertex's tree is whichever component currently contains its self-loop
// token.
//
// Rerooting (MakeRoot) rotates a tour so the given vertex's self-loop token
// becomes the sequence's first element, by popping the front token,
// splitting at v's self-loop, and merging the pieces back in rotated order.
// Link reroots both endpoints and splices their tours together around a
// fresh pair of half-edge tokens; Cut locates the two tokens bounding the
// removed edge's span, splits that span off as a tree of its own, and
// rejoins what remains.
//
// Forest carries no notion of which edges are "real" tree edges versus
// replacement candidates — that bookkeeping belongs to the level structure
// built on top of it. Forest only ever answers: are u and v in the same
// tree, and who is the tree's current root.
package etf
