package dynconn

// searchReplacement implements the Holm–Lichtenberg–Thorup replacement
// search after a spanning edge {x, y} has already been cut from every
// etf[0..l0] (the caller's job — by the time this runs, {x, y} is gone from
// every level it ever touched). It walks levels l0 downto 0, at each one
// promoting the smaller resulting component's spanning edges one level up
// and scanning that component's auxiliary edges for one that reconnects to
// the other side. The search stops at the first replacement found, or once
// level 0 is exhausted with none.
func (ls *LevelStructure[V]) searchReplacement(l0 int, x, y V) {
	for l := l0; l >= 0; l-- {
		ls.ensureLevel(l + 1)

		small, other := x, y
		if ls.forests[l].Size(y) < ls.forests[l].Size(x) {
			small, other = y, x
		}

		ls.promoteSpanningInside(l, small)
		if ls.searchAuxiliaryReplacement(l, small, other) {
			return
		}
	}
}

// promoteSpanningInside moves every spanning edge with both endpoints in
// root's level-l component up to level l+1. Safe unconditionally: since
// {x, y} was already cut from etf[l], every such edge's endpoints remain
// connected at l+1 only if they were already promoted there, which would
// contradict it still being a level-l spanning edge.
func (ls *LevelStructure[V]) promoteSpanningInside(l int, root V) {
	seen := make(map[edgeKey[V]]bool)
	for _, a := range ls.forests[l].AnnotatedVertices(root) {
		for _, b := range snapshotNeighbors(ls.spanning[l], a) {
			k := keyOf(a, b)
			if seen[k] {
				continue
			}
			seen[k] = true

			removeAdjacency(ls.spanning[l], a, b)
			removeAdjacency(ls.spanning[l], b, a)
			ls.updateCutMetadata(l, a, b)

			addAdjacency(ls.spanning[l+1], a, b)
			addAdjacency(ls.spanning[l+1], b, a)
			ls.edgeLevel[k] = l + 1
			ls.updateLinkMetadata(l+1, a, b)
			ls.forests[l+1].Link(a, b)
		}
	}
}

// searchAuxiliaryReplacement scans root's level-l component's auxiliary
// edges. An edge whose far endpoint is connected to other at level l
// reconnects the two sides and is promoted to spanning at level l, linked
// into every etf[0..l]; reports true and stops as soon as one is found.
// Every other auxiliary edge examined along the way (both endpoints inside
// root's component) is promoted to level l+1, since it failed to reconnect
// and cannot usefully remain at l.
func (ls *LevelStructure[V]) searchAuxiliaryReplacement(l int, root, other V) bool {
	for _, a := range ls.forests[l].AnnotatedVertices(root) {
		for _, b := range snapshotNeighbors(ls.auxiliary[l], a) {
			k := keyOf(a, b)
			if ls.edgeLevel[k] != l {
				continue // already promoted from the other endpoint
			}

			if ls.forests[l].Connected(b, other) {
				removeAdjacency(ls.auxiliary[l], a, b)
				removeAdjacency(ls.auxiliary[l], b, a)
				ls.updateCutMetadata(l, a, b)

				addAdjacency(ls.spanning[l], a, b)
				addAdjacency(ls.spanning[l], b, a)
				ls.edgeLevel[k] = l
				ls.updateLinkMetadata(l, a, b)
				for lvl := 0; lvl <= l; lvl++ {
					ls.forests[lvl].Link(a, b)
				}
				return true
			}

			removeAdjacency(ls.auxiliary[l], a, b)
			removeAdjacency(ls.auxiliary[l], b, a)
			ls.updateCutMetadata(l, a, b)

			ls.ensureLevel(l + 1)
			addAdjacency(ls.auxiliary[l+1], a, b)
			addAdjacency(ls.auxiliary[l+1], b, a)
			ls.edgeLevel[k] = l + 1
			ls.updateLinkMetadata(l+1, a, b)
		}
	}
	return false
}
