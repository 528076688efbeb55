package dynconn

import "github.com/aditya-r-m/dynconn/internal/assertx"

// Link adds edge {u, v}. A no-op if the edge already exists. If u and v
// were previously disconnected, the edge becomes a spanning edge at level 0
// and etf[0] is updated; otherwise it becomes an auxiliary edge at level 0.
// Panics if u == v.
func (ls *LevelStructure[V]) Link(u, v V) {
	assertx.Require(u != v, "dynconn: Link(%v, %v): self-loop", u, v)

	key := keyOf(u, v)
	if _, ok := ls.edgeLevel[key]; ok {
		return
	}

	if ls.forests[0].Connected(u, v) {
		addAdjacency(ls.auxiliary[0], u, v)
		addAdjacency(ls.auxiliary[0], v, u)
	} else {
		ls.forests[0].Link(u, v)
		addAdjacency(ls.spanning[0], u, v)
		addAdjacency(ls.spanning[0], v, u)
	}
	ls.edgeLevel[key] = 0
	ls.updateLinkMetadata(0, u, v)
}

// Cut removes edge {u, v}. A no-op if the edge is not present. If it was an
// auxiliary edge, removal is immediate. If it was a spanning edge, removal
// triggers the replacement-edge search across levels l0 downto 0.
func (ls *LevelStructure[V]) Cut(u, v V) {
	key := keyOf(u, v)
	l0, ok := ls.edgeLevel[key]
	if !ok {
		return
	}
	delete(ls.edgeLevel, key)

	if _, isAux := ls.auxiliary[l0][u][v]; isAux {
		removeAdjacency(ls.auxiliary[l0], u, v)
		removeAdjacency(ls.auxiliary[l0], v, u)
		ls.updateCutMetadata(l0, u, v)
		return
	}

	removeAdjacency(ls.spanning[l0], u, v)
	removeAdjacency(ls.spanning[l0], v, u)
	ls.updateCutMetadata(l0, u, v)
	for l := 0; l <= l0; l++ {
		ls.forests[l].Cut(u, v)
	}
	ls.searchReplacement(l0, u, v)
}

// Connected reports whether u and v lie in the same component of the
// current graph. Delegates to etf[0], which spans every live edge.
func (ls *LevelStructure[V]) Connected(u, v V) bool {
	return ls.forests[0].Connected(u, v)
}
