// Shortest-path engine — Dijkstra's algorithm over a disposable copy of
// the edge list. Visited nodes are tracked in an explicit set alongside
// the distance array, so a legitimately zero-distance node is never
// mistaken for a finalized one.
package maze

import "fmt"

// ShortestPath searches from `from` to `to` and returns the accumulated
// distance together with the node arrived at. The infinity sentinel is
// derived from the total edge weight, so it exceeds any achievable path
// cost no matter what the graph file contains. A target that cannot be
// reached surfaces ErrUnreachable rather than looping.
func (g *Graph) ShortestPath(from, to Node) (int, Node, error) {
	if from == to {
		return 0, to, nil
	}

	inf := g.totalWeight() + 1
	var dist [NodeCount]int
	for i := range dist {
		dist[i] = inf
	}
	dist[from] = 0

	work := g.Copy()
	var visited [NodeCount]bool
	current := from

	// Each pass finalizes one node, so the loop is bounded by NodeCount.
	for current != to {
		// Relax every edge leaving the current node.
		for _, e := range work.edges {
			if e.From != current || visited[e.To] {
				continue
			}
			if d := dist[current] + e.Weight; d < dist[e.To] {
				dist[e.To] = d
			}
		}

		// Finalize: once visited, a node can no longer be entered.
		visited[current] = true
		work.dropInbound(current)

		next, ok := nearestUnvisited(dist, visited, inf)
		if !ok {
			return 0, from, fmt.Errorf("%w: %s from %s", ErrUnreachable, to, from)
		}
		current = next
	}

	return dist[to], to, nil
}

// dropInbound removes every edge terminating at n from the working copy.
func (g *Graph) dropInbound(n Node) {
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.To != n {
			kept = append(kept, e)
		}
	}
	g.edges = kept
}

// nearestUnvisited picks the unvisited node with the smallest finite
// distance, ties broken in node-index order.
func nearestUnvisited(dist [NodeCount]int, visited [NodeCount]bool, inf int) (Node, bool) {
	best := inf
	var pick Node
	found := false
	for i := 0; i < NodeCount; i++ {
		if visited[i] {
			continue
		}
		if dist[i] < best {
			best = dist[i]
			pick = Node(i)
			found = true
		}
	}
	return pick, found
}

func (g *Graph) totalWeight() int {
	sum := 0
	for _, e := range g.edges {
		sum += e.Weight
	}
	return sum
}
