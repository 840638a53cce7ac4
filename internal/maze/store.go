// SQLite-backed graph store — an alternative source for the one-time
// static graph load. Holds the same 18-edge list as the text format;
// nothing is written back during a simulation.
package maze

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const storeSchema = `
CREATE TABLE IF NOT EXISTS edges (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	from_node TEXT NOT NULL,
	to_node   TEXT NOT NULL,
	weight    INTEGER NOT NULL
);
`

// Store wraps a SQLite connection holding a maze edge list.
type Store struct {
	conn *sqlx.DB
}

// OpenStore opens or creates a maze store at the given path.
func OpenStore(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if _, err := conn.Exec(storeSchema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return &Store{conn: conn}, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// SaveGraph replaces the stored edge list with g's (full replace).
func (s *Store) SaveGraph(g *Graph) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM edges"); err != nil {
		return err
	}
	for _, e := range g.edges {
		_, err := tx.Exec(
			"INSERT INTO edges (from_node, to_node, weight) VALUES (?, ?, ?)",
			string(e.From.Letter()), string(e.To.Letter()), e.Weight,
		)
		if err != nil {
			return fmt.Errorf("insert edge %s -> %s: %w", e.From, e.To, err)
		}
	}
	return tx.Commit()
}

// LoadGraph performs the one-time static graph load from the store. The
// same shape rules as the text loader apply: exactly EdgeCount rows,
// known node letters, non-negative weights.
func (s *Store) LoadGraph() (*Graph, error) {
	type row struct {
		FromNode string `db:"from_node"`
		ToNode   string `db:"to_node"`
		Weight   int    `db:"weight"`
	}
	var rows []row
	if err := s.conn.Select(&rows, "SELECT from_node, to_node, weight FROM edges ORDER BY id"); err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	if len(rows) != EdgeCount {
		return nil, fmt.Errorf("%w: got %d of %d edges", ErrShortGraph, len(rows), EdgeCount)
	}

	edges := make([]Edge, 0, EdgeCount)
	for i, r := range rows {
		edge, err := parseEdge(r.FromNode, r.ToNode, r.Weight)
		if err != nil {
			return nil, fmt.Errorf("maze: stored edge %d: %w", i, err)
		}
		edges = append(edges, edge)
	}
	return &Graph{edges: edges}, nil
}
