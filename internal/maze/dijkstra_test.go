package maze

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// connected lists the nodes the stock maze actually wires up.
var connected = []Node{Exit, Nest, Food, Wheel, Medicine}

func TestShortestPath_SourceEqualsTarget(t *testing.T) {
	g := loadStock(t)
	for n := Node(0); n < NodeCount; n++ {
		dist, at, err := g.ShortestPath(n, n)
		require.NoError(t, err)
		require.Zero(t, dist)
		require.Equal(t, n, at)
	}
}

func TestShortestPath_MatchesBruteForce(t *testing.T) {
	g := loadStock(t)
	for _, from := range connected {
		for _, to := range connected {
			want, ok := bruteForce(g.Edges(), from, to)
			require.True(t, ok, "fixture should connect %s -> %s", from, to)

			got, at, err := g.ShortestPath(from, to)
			require.NoError(t, err, "%s -> %s", from, to)
			require.Equal(t, to, at)
			require.Equal(t, want, got, "%s -> %s", from, to)
		}
	}
}

func TestShortestPath_LeavesCanonicalGraphIntact(t *testing.T) {
	g := loadStock(t)
	before := append([]Edge(nil), g.Edges()...)

	_, _, err := g.ShortestPath(Exit, Medicine)
	require.NoError(t, err)
	require.Equal(t, before, g.Edges())
}

func TestShortestPath_UnreachableAnnex(t *testing.T) {
	g := loadStock(t)
	_, _, err := g.ShortestPath(Exit, AnnexA)
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestShortestPath_ZeroWeightNeighbor(t *testing.T) {
	// A legitimately zero-distance node must not be confused with a
	// visited one.
	g := &Graph{edges: []Edge{
		{From: Exit, To: Nest, Weight: 0},
		{From: Nest, To: Food, Weight: 1},
	}}

	dist, at, err := g.ShortestPath(Exit, Food)
	require.NoError(t, err)
	require.Equal(t, Food, at)
	require.Equal(t, 1, dist)
}

func TestShortestPath_PrefersCheaperDetour(t *testing.T) {
	// Direct corridor costs 5; the two-hop detour costs 2.
	g := &Graph{edges: []Edge{
		{From: Exit, To: Food, Weight: 5},
		{From: Exit, To: Nest, Weight: 1},
		{From: Nest, To: Food, Weight: 1},
	}}

	dist, _, err := g.ShortestPath(Exit, Food)
	require.NoError(t, err)
	require.Equal(t, 2, dist)
}

// bruteForce enumerates every simple path and returns the cheapest cost.
func bruteForce(edges []Edge, from, to Node) (int, bool) {
	best := -1
	var walk func(at Node, cost int, seen [NodeCount]bool)
	walk = func(at Node, cost int, seen [NodeCount]bool) {
		if at == to {
			if best < 0 || cost < best {
				best = cost
			}
			return
		}
		seen[at] = true
		for _, e := range edges {
			if e.From == at && !seen[e.To] {
				walk(e.To, cost+e.Weight, seen)
			}
		}
	}
	walk(from, 0, [NodeCount]bool{})
	return best, best >= 0
}
