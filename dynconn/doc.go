// Package dynconn implements fully-dynamic undirected graph connectivity:
// online edge insertion, edge deletion, and same-component queries, all in
// amortized poly-logarithmic time, using the Holm–Lichtenberg–Thorup level
// structure built on package etf.
//
// # Level hierarchy
//
// Every live edge is assigned a level in [0, maxLevel]. etf[l] maintains the
// spanning forest of the subgraph induced by every edge whose level is at
// least l — so etf[0] spans the whole current graph (Connected delegates to
// it alone), and etf[l]'s tree-edge set shrinks monotonically as l rises,
// since fewer edges qualify. spanning[l] and auxiliary[l] partition edges by
// their exact level: spanning[l] holds the tree edges of etf[l] that belong
// to level l precisely, auxiliary[l] holds level-l non-tree edges.
//
// Edges only ever move up in level, never down, bounded by floor(log2 n).
// This bound is what makes the amortized cost poly-logarithmic: a spanning
// edge promoted out of a cut search doubles the known lower bound on the
// size of the smaller side it came from, so it can be promoted at most
// floor(log2 n) times over its lifetime.
//
// # Replacement search
//
// Cutting a spanning edge {u,v} at level l0 may disconnect its two
// endpoints. {u,v} is first cut from every etf[0..l0] — it was a tree edge
// in each of them, since etf[l]'s edge set includes every level-l0-and-above
// edge for every l <= l0. Because every etf[l] is a forest, this split is
// identical in nature at each level: u's side and v's side can never be
// reconnected by another tree edge, only by a non-tree one, which is what
// the search below looks for.
//
// The search then walks levels l0 downto 0: at each level, take the
// smaller (by vertex count) of the two resulting components as S, promote
// every spanning edge strictly inside S to level l+1 (safe because etf[l+1]
// is a subset of etf[l] and S is small enough to stay within the level
// bound), then scan S's auxiliary edges for one whose far endpoint lands in
// the other component — the first such edge found is the replacement,
// promoted to spanning at the current level l and linked into every
// etf[0..l] (safe, since {u,v} is already gone from all of them and no
// other tree path could have bridged the two sides). If no level yields a
// replacement, the cut permanently disconnects the two sides.
package dynconn
