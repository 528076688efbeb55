package dynconn

import "fmt"

// Validate checks every level's Euler-tour forest for internal consistency,
// that every live edge is recorded in exactly one of spanning[l] or
// auxiliary[l] at its recorded level (symmetrically, in both endpoints'
// adjacency sets), and that every vertex with an incident edge at level l
// is annotated there.
func (ls *LevelStructure[V]) Validate() error {
	for l, f := range ls.forests {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("dynconn: level %d: %w", l, err)
		}
	}

	for key, l := range ls.edgeLevel {
		if l < 0 || l >= len(ls.forests) {
			return fmt.Errorf("dynconn: edge {%v,%v} recorded at unmaterialized level %d", key.lo, key.hi, l)
		}
		_, spanFwd := ls.spanning[l][key.lo][key.hi]
		_, spanRev := ls.spanning[l][key.hi][key.lo]
		_, auxFwd := ls.auxiliary[l][key.lo][key.hi]
		_, auxRev := ls.auxiliary[l][key.hi][key.lo]
		if spanFwd != spanRev || auxFwd != auxRev {
			return fmt.Errorf("dynconn: edge {%v,%v} at level %d: asymmetric adjacency", key.lo, key.hi, l)
		}
		if spanFwd == auxFwd {
			return fmt.Errorf("dynconn: edge {%v,%v} at level %d: must be in exactly one of spanning/auxiliary, found spanning=%v auxiliary=%v", key.lo, key.hi, l, spanFwd, auxFwd)
		}
	}

	for l := range ls.forests {
		for _, set := range []map[V]map[V]struct{}{ls.spanning[l], ls.auxiliary[l]} {
			for v := range set {
				if !vertexAnnotated(ls.forests[l], v) {
					return fmt.Errorf("dynconn: vertex %v has an incident edge at level %d but is not annotated", v, l)
				}
			}
		}
	}

	return nil
}

func vertexAnnotated[V comparable](f interface{ AnnotatedVertices(V) []V }, v V) bool {
	for _, a := range f.AnnotatedVertices(v) {
		if a == v {
			return true
		}
	}
	return false
}
