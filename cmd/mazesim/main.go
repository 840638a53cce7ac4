// Command mazesim runs the drive-driven maze navigation simulation.
// A rat is placed at the entrance of a fixed weighted maze, routes to
// whichever location satisfies its most urgent drive, and heads for the
// exit once every drive is comfortably topped up.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/talgya/maze-rat/internal/drives"
	"github.com/talgya/maze-rat/internal/entropy"
	"github.com/talgya/maze-rat/internal/maze"
	"github.com/talgya/maze-rat/internal/sim"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	graphPath := flag.String("graph", envOrDefault("MAZESIM_GRAPH", "data/graphWeights"), "path to the graph weights file")
	dbPath := flag.String("db", "", "load the graph from a SQLite store instead of the text file")
	seed := flag.Int64("seed", 0, "drive initialization seed (0 = random)")
	name := flag.String("name", "", "rat name (skips the prompt)")
	auto := flag.Bool("auto", false, "run without pausing between treks")
	flag.Parse()

	runID := uuid.New()

	graph, err := loadGraph(*graphPath, *dbPath)
	if err != nil {
		fmt.Println("Failed to load the maze graph. The simulation cannot continue.")
		fmt.Println("Check the location of graphWeights and try again.")
		slog.Error("graph load failed", "run_id", runID, "error", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = entropy.CryptoSeed()
	}
	slog.Info("maze ready", "run_id", runID, "edges", maze.EdgeCount, "seed", *seed)

	in := bufio.NewReader(os.Stdin)

	fmt.Println("~~ Flowers for Algorithm ~~")
	fmt.Println()
	fmt.Println("The scientist places the rat in the vestibule of a maze.")
	fmt.Println("The rat is a thinly veiled metaphor for the tenuous nature of human existence.")

	ratName := *name
	if ratName == "" {
		ratName = promptName(in)
	}

	narrator := &consoleNarrator{name: ratName, in: in, pause: !*auto}
	state := drives.NewState(entropy.Seeded(*seed))

	run := sim.New(graph, state, narrator)
	result, err := run.Run()
	if err != nil {
		slog.Error("simulation aborted", "run_id", runID, "treks", result.Treks, "error", err)
		os.Exit(1)
	}

	fmt.Printf("The scientist removes %s from the maze and jots in her notebook:\n", ratName)
	fmt.Println("\t'Science accomplished.'")
	fmt.Println("THE END")
	slog.Info("simulation finished", "run_id", runID, "treks", result.Treks)
}

// loadGraph performs the one-time static graph load, from a SQLite store
// when dbPath is set and the text file otherwise.
func loadGraph(graphPath, dbPath string) (*maze.Graph, error) {
	if dbPath == "" {
		return maze.LoadFile(graphPath)
	}

	store, err := maze.OpenStore(dbPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.LoadGraph()
}

func promptName(in *bufio.Reader) string {
	fmt.Print("What is the rat's name? ")
	line, err := in.ReadString('\n')
	name := strings.TrimSpace(line)
	if err != nil || name == "" {
		return "Algernon"
	}
	return name
}

// consoleNarrator prints the per-trek flavor text and pauses for the
// reader between treks.
type consoleNarrator struct {
	name  string
	in    *bufio.Reader
	pause bool
}

func (c *consoleNarrator) TrekStarted(r sim.Report) {
	fmt.Printf("%s is currently feeling:\n", c.name)
	fmt.Printf("\t%d%% entertained\n", r.Levels.Fun)
	fmt.Printf("\t%d%% healthy\n", r.Levels.Health)
	fmt.Printf("\t%d%% nourished\n", r.Levels.Hunger)
	fmt.Printf("\t%d%% rested\n", r.Levels.Sleep)
	c.waitForEnter()

	fmt.Println(needLine(c.name, r.Need))
	fmt.Printf("\tOn this, the %s trek, %s travels %d distance units to the %s.\n",
		humanize.Ordinal(r.Trek), c.name, r.Distance, r.Destination)
}

func (c *consoleNarrator) Arrived(at maze.Node) {
	switch at {
	case maze.Food:
		fmt.Printf("%s has reached the food bowl.\n", c.name)
		fmt.Printf("%s finds a tasty kibble to chew on. Mmmm, lab diets.\n", c.name)
	case maze.Medicine:
		fmt.Printf("%s has reached the medicine dispenser.\n", c.name)
		fmt.Printf("YUCK! That medicine is disgusting, but %s feels much better now.\n", c.name)
	case maze.Nest:
		fmt.Printf("%s has reached the rat's nest. Off to dreamland!\n", c.name)
		fmt.Printf("%s is bright-eyed and ready to go after that refreshing nap!\n", c.name)
	case maze.Wheel:
		fmt.Printf("%s has reached the exercise wheel.\n", c.name)
		fmt.Println("The wheel goes squeak, squeak, squeak, squeak, squeak, squeak.")
	}
}

func needLine(name string, need drives.Need) string {
	switch need {
	case drives.NeedExit:
		return name + " is feeling satisfied and is going to the exit for release."
	case drives.NeedFood:
		return name + " is hungry and is going to the food bowl."
	case drives.NeedNap:
		return name + " is sleepy and is going to the nest for a nap."
	case drives.NeedExercise:
		return name + " is bored and is going to the exercise wheel."
	default:
		return name + " is feeling sick and is going to the medicine dispenser."
	}
}

func (c *consoleNarrator) waitForEnter() {
	if !c.pause {
		return
	}
	fmt.Println("Press enter to continue.")
	c.in.ReadString('\n')
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
