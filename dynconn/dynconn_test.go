package dynconn_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aditya-r-m/dynconn/dynconn"
)

// TestLinkIsIdempotentAndCutIsANoOpOnAbsentEdge covers the documented
// no-precondition idempotence of both operations at this layer.
func TestLinkIsIdempotentAndCutIsANoOpOnAbsentEdge(t *testing.T) {
	ls := dynconn.New[int]()
	ls.Link(1, 2)
	ls.Link(1, 2) // duplicate, must be a no-op
	require.NoError(t, ls.Validate())
	assert.True(t, ls.Connected(1, 2))

	ls.Cut(3, 4) // never existed
	require.NoError(t, ls.Validate())
}

// TestLinkSelfLoopPanics covers the explicit precondition rejection.
func TestLinkSelfLoopPanics(t *testing.T) {
	ls := dynconn.New[int]()
	assert.Panics(t, func() { ls.Link(7, 7) })
}

// TestReplacementEdgeKeepsComponentConnected is scenario S3: cutting a
// spanning edge that has an alternative path through auxiliary edges must
// leave the component connected.
func TestReplacementEdgeKeepsComponentConnected(t *testing.T) {
	ls := dynconn.New[string]()
	ls.Link("a", "b")
	ls.Link("b", "c")
	ls.Link("a", "c")
	require.NoError(t, ls.Validate())

	ls.Cut("a", "b")
	require.NoError(t, ls.Validate())
	assert.True(t, ls.Connected("a", "b"))
	assert.True(t, ls.Connected("a", "c"))
	assert.True(t, ls.Connected("b", "c"))
}

// TestCutFullyDisconnects is scenario S4: a bridge edge, once cut, leaves
// its endpoints disconnected.
func TestCutFullyDisconnects(t *testing.T) {
	ls := dynconn.New[int]()
	ls.Link(1, 2)
	ls.Cut(1, 2)
	require.NoError(t, ls.Validate())
	assert.False(t, ls.Connected(1, 2))
}

// TestPhasedStressAgainstBruteForceOracle is scenario S5: all pairs on a
// small vertex universe are candidate edges; a phased sequence of bulk
// link/cut batches is checked against a brute-force BFS oracle after every
// batch.
func TestPhasedStressAgainstBruteForceOracle(t *testing.T) {
	const n = 32
	var candidates [][2]int
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			candidates = append(candidates, [2]int{u, v})
		}
	}

	rng := rand.New(rand.NewSource(99))
	rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

	ls := dynconn.New[int]()
	oracle := newOracle(n)

	phases := []struct {
		fraction float64
		link     bool
	}{
		{0.5, true},
		{0.25, false},
		{0.25, true},
		{0.5, false},
	}

	live := map[[2]int]bool{}
	for _, phase := range phases {
		count := int(phase.fraction * float64(len(candidates)))
		rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })
		acted := 0
		for _, e := range candidates {
			if acted >= count {
				break
			}
			if phase.link && !live[e] {
				ls.Link(e[0], e[1])
				oracle.link(e[0], e[1])
				live[e] = true
				acted++
			} else if !phase.link && live[e] {
				ls.Cut(e[0], e[1])
				oracle.cut(e[0], e[1])
				live[e] = false
				acted++
			}
		}
		require.NoError(t, ls.Validate())
		for a := 0; a < n; a++ {
			for b := a; b < n; b++ {
				require.Equal(t, oracle.connected(a, b), ls.Connected(a, b), "connected(%d,%d)", a, b)
			}
		}
	}
}

// TestMaxLevelGrowsOnlyAsNeeded checks that an empty or tiny structure
// never materializes levels it doesn't use.
func TestMaxLevelGrowsOnlyAsNeeded(t *testing.T) {
	ls := dynconn.New[int]()
	assert.Equal(t, 0, ls.MaxLevel())
	ls.Link(1, 2)
	assert.Equal(t, 0, ls.MaxLevel())
}

type oracle struct {
	adj [][]int
}

func newOracle(n int) *oracle {
	return &oracle{adj: make([][]int, n)}
}

func (o *oracle) link(u, v int) {
	o.adj[u] = append(o.adj[u], v)
	o.adj[v] = append(o.adj[v], u)
}

func (o *oracle) cut(u, v int) {
	o.adj[u] = removeFirst(o.adj[u], v)
	o.adj[v] = removeFirst(o.adj[v], u)
}

func (o *oracle) connected(u, v int) bool {
	if u == v {
		return true
	}
	visited := make([]bool, len(o.adj))
	queue := []int{u}
	visited[u] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range o.adj[cur] {
			if next == v {
				return true
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

func removeFirst(xs []int, v int) []int {
	for i, x := range xs {
		if x == v {
			return append(xs[:i], xs[i+1:]...)
		}
	}
	return xs
}
