// Command mazegen writes a graphWeights file for the stock maze
// topology, with edge weights drawn from a simplex noise field so
// regenerated mazes vary by seed but stay reproducible.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/maze-rat/internal/maze"
)

// passages is the fixed topology of the stock maze: nine corridors, each
// contributing a directed edge both ways. The annex nodes stay
// disconnected.
var passages = [maze.EdgeCount / 2][2]maze.Node{
	{maze.Exit, maze.Nest},
	{maze.Nest, maze.Food},
	{maze.Food, maze.Wheel},
	{maze.Wheel, maze.Medicine},
	{maze.Medicine, maze.Exit},
	{maze.Nest, maze.Wheel},
	{maze.Food, maze.Medicine},
	{maze.Exit, maze.Food},
	{maze.Nest, maze.Medicine},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	out := flag.String("out", "data/graphWeights", "output path for the weights file")
	dbPath := flag.String("db", "", "also write the graph to a SQLite store")
	seed := flag.Int64("seed", 1, "noise seed")
	flag.Parse()

	noise := opensimplex.NewNormalized(*seed)

	var sb strings.Builder
	for i, p := range passages {
		w := weightAt(noise, i)
		fmt.Fprintf(&sb, "%c %c %d\n", p[0].Letter(), p[1].Letter(), w)
		fmt.Fprintf(&sb, "%c %c %d\n", p[1].Letter(), p[0].Letter(), w)
	}

	// Round-trip through the loader before writing anything.
	graph, err := maze.Load(strings.NewReader(sb.String()))
	if err != nil {
		slog.Error("generated graph failed validation", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, []byte(sb.String()), 0644); err != nil {
		slog.Error("write failed", "path", *out, "error", err)
		os.Exit(1)
	}
	slog.Info("graph written", "path", *out, "edges", maze.EdgeCount, "seed", *seed)

	if *dbPath != "" {
		store, err := maze.OpenStore(*dbPath)
		if err != nil {
			slog.Error("open store failed", "path", *dbPath, "error", err)
			os.Exit(1)
		}
		defer store.Close()
		if err := store.SaveGraph(graph); err != nil {
			slog.Error("store write failed", "path", *dbPath, "error", err)
			os.Exit(1)
		}
		slog.Info("graph stored", "path", *dbPath)
	}
}

// weightAt maps the noise field at corridor i to a weight in [1, 3].
// Short corridors keep per-trek drive decay gentle enough that a run
// always converges.
func weightAt(noise opensimplex.Noise, i int) int {
	v := noise.Eval2(float64(i)*0.7, 0.3) // normalized to [0, 1]
	w := 1 + int(v*3)
	if w > 3 {
		w = 3
	}
	return w
}
