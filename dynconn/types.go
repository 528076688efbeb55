package dynconn

import (
	"golang.org/x/exp/constraints"

	"github.com/aditya-r-m/dynconn/etf"
)

// edgeKey canonicalizes an undirected edge {u, v} into an ordered pair so it
// can serve as a map key regardless of which endpoint the caller names
// first.
type edgeKey[V constraints.Ordered] struct {
	lo, hi V
}

func keyOf[V constraints.Ordered](u, v V) edgeKey[V] {
	if u <= v {
		return edgeKey[V]{u, v}
	}
	return edgeKey[V]{v, u}
}

// LevelStructure is the public fully-dynamic connectivity structure: a
// stack of Euler-tour forests indexed by level, plus per-level spanning and
// auxiliary edge sets and a map from edge to its current level. The zero
// value is not usable; use New.
type LevelStructure[V constraints.Ordered] struct {
	forests   []*etf.Forest[V]
	spanning  []map[V]map[V]struct{}
	auxiliary []map[V]map[V]struct{}
	edgeLevel map[edgeKey[V]]int
}

// New returns an empty level structure with only level 0. Higher levels
// materialize lazily: level l+1 is created when a spanning-edge cut
// searches level l for a replacement.
func New[V constraints.Ordered]() *LevelStructure[V] {
	return &LevelStructure[V]{
		forests:   []*etf.Forest[V]{etf.New[V]()},
		spanning:  []map[V]map[V]struct{}{{}},
		auxiliary: []map[V]map[V]struct{}{{}},
		edgeLevel: make(map[edgeKey[V]]int),
	}
}

// MaxLevel returns the highest level index currently materialized.
func (ls *LevelStructure[V]) MaxLevel() int {
	return len(ls.forests) - 1
}

// ensureLevel materializes every level up to and including l, if not
// already present.
func (ls *LevelStructure[V]) ensureLevel(l int) {
	for len(ls.forests) <= l {
		ls.forests = append(ls.forests, etf.New[V]())
		ls.spanning = append(ls.spanning, map[V]map[V]struct{}{})
		ls.auxiliary = append(ls.auxiliary, map[V]map[V]struct{}{})
	}
}

// addAdjacency records v as adjacent to u in the given per-level edge set,
// auto-vivifying the inner set.
func addAdjacency[V comparable](set map[V]map[V]struct{}, u, v V) {
	if set[u] == nil {
		set[u] = make(map[V]struct{})
	}
	set[u][v] = struct{}{}
}

// removeAdjacency deletes v from u's entry in the given per-level edge set,
// dropping the inner set entirely once empty.
func removeAdjacency[V comparable](set map[V]map[V]struct{}, u, v V) {
	if set[u] == nil {
		return
	}
	delete(set[u], v)
	if len(set[u]) == 0 {
		delete(set, u)
	}
}

// degreeAt reports how many spanning-or-auxiliary edges v has at level l.
func (ls *LevelStructure[V]) degreeAt(l int, v V) int {
	return len(ls.spanning[l][v]) + len(ls.auxiliary[l][v])
}
