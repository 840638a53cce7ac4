// Graph store — the static edge list loaded once at startup and copied
// per shortest-path query, since the search consumes its working copy.
package maze

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// EdgeCount is the fixed size of the maze edge list.
const EdgeCount = 18

// Edge is a directed weighted passage between two locations.
type Edge struct {
	From   Node
	To     Node
	Weight int
}

// Graph holds the maze edge list. The canonical graph is read-only after
// load; searches operate on a Copy.
type Graph struct {
	edges []Edge
}

var (
	ErrUnknownNode = errors.New("maze: unknown node letter")
	ErrShortGraph  = errors.New("maze: graph source ended early")
	ErrBadWeight   = errors.New("maze: edge weight must be non-negative")
	ErrUnreachable = errors.New("maze: target not reachable")
)

// Load reads exactly EdgeCount whitespace-separated "<from> <to> <weight>"
// triples from r. Short or malformed input fails the load; a partially
// populated graph is never returned.
func Load(r io.Reader) (*Graph, error) {
	edges := make([]Edge, 0, EdgeCount)
	for i := 0; i < EdgeCount; i++ {
		var from, to string
		var weight int
		if _, err := fmt.Fscan(r, &from, &to, &weight); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: got %d of %d edges", ErrShortGraph, i, EdgeCount)
			}
			return nil, fmt.Errorf("maze: edge %d: %w", i, err)
		}

		edge, err := parseEdge(from, to, weight)
		if err != nil {
			return nil, fmt.Errorf("maze: edge %d: %w", i, err)
		}
		edges = append(edges, edge)
	}
	return &Graph{edges: edges}, nil
}

// LoadFile loads the graph from a graphWeights text file.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maze: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// parseEdge validates one (from, to, weight) triple. Node fields must be
// single letters from the node alphabet.
func parseEdge(from, to string, weight int) (Edge, error) {
	if len(from) != 1 || len(to) != 1 {
		return Edge{}, fmt.Errorf("%w: %q -> %q", ErrUnknownNode, from, to)
	}
	f, err := ParseNode(from[0])
	if err != nil {
		return Edge{}, err
	}
	t, err := ParseNode(to[0])
	if err != nil {
		return Edge{}, err
	}
	if weight < 0 {
		return Edge{}, fmt.Errorf("%w: %d", ErrBadWeight, weight)
	}
	return Edge{From: f, To: t, Weight: weight}, nil
}

// Copy produces an independent duplicate the search engine may consume
// without touching the canonical list.
func (g *Graph) Copy() *Graph {
	dup := make([]Edge, len(g.edges))
	copy(dup, g.edges)
	return &Graph{edges: dup}
}

// Edges returns the edge list. Callers must not mutate it; take a Copy
// for that.
func (g *Graph) Edges() []Edge {
	return g.edges
}
