// Package sim runs the rat's trek loop: classify the dominant need,
// route to the node that satisfies it, decay drives by the distance
// traveled, refill the drive at the destination, repeat until the rat is
// back at the exit.
package sim

import (
	"errors"
	"fmt"

	"github.com/talgya/maze-rat/internal/drives"
	"github.com/talgya/maze-rat/internal/maze"
)

// Phase is the loop's state machine position.
type Phase uint8

const (
	PhaseTraveling Phase = iota
	PhaseSatisfying
	PhaseTerminated
)

// DefaultMaxTreks bounds the loop against malformed graphs. A run on the
// stock maze finishes well under this.
const DefaultMaxTreks = 64

// ErrTrekLimit reports a run that failed to terminate within the trek cap.
var ErrTrekLimit = errors.New("sim: trek limit exceeded")

// Report is the per-trek data handed to the Observer.
type Report struct {
	Trek        int
	Levels      drives.Levels
	Need        drives.Need
	Destination maze.Node
	Distance    int
}

// Observer receives simulation progress. The console narrator implements
// this; tests use a recording stub.
type Observer interface {
	// TrekStarted fires after need classification and routing, before
	// drive decay is applied.
	TrekStarted(r Report)
	// Arrived fires once the rat reaches its destination and the drive
	// there has been refilled.
	Arrived(at maze.Node)
}

// NopObserver discards all notifications.
type NopObserver struct{}

func (NopObserver) TrekStarted(Report) {}
func (NopObserver) Arrived(maze.Node)  {}

// Simulation owns the drive state and current location for one run.
type Simulation struct {
	graph    *maze.Graph
	state    drives.State
	location maze.Node
	phase    Phase
	obs      Observer

	// MaxTreks overrides DefaultMaxTreks when positive.
	MaxTreks int
}

// New creates a simulation starting at the maze entrance with the given
// initial drive state.
func New(g *maze.Graph, initial drives.State, obs Observer) *Simulation {
	if obs == nil {
		obs = NopObserver{}
	}
	return &Simulation{
		graph:    g,
		state:    initial,
		location: maze.Exit,
		phase:    PhaseTraveling,
		obs:      obs,
	}
}

// Result summarizes a finished run.
type Result struct {
	Treks int
	Final drives.State
}

// Run executes treks until the rat is back at the exit. The termination
// check happens only after a full trek, so a rat that is already
// satisfied at the entrance still makes one circuit.
func (s *Simulation) Run() (Result, error) {
	maxTreks := s.MaxTreks
	if maxTreks <= 0 {
		maxTreks = DefaultMaxTreks
	}

	treks := 0
	for {
		treks++
		if treks > maxTreks {
			s.phase = PhaseTerminated
			return Result{Treks: treks - 1, Final: s.state},
				fmt.Errorf("%w: %d treks, stranded at %s", ErrTrekLimit, maxTreks, s.location)
		}

		levels := s.state.Percentages()
		need := drives.Classify(levels)
		dest := need.Destination()

		s.phase = PhaseTraveling
		distance, arrived, err := s.graph.ShortestPath(s.location, dest)
		if err != nil {
			s.phase = PhaseTerminated
			return Result{Treks: treks, Final: s.state}, err
		}

		s.obs.TrekStarted(Report{
			Trek:        treks,
			Levels:      levels,
			Need:        need,
			Destination: dest,
			Distance:    distance,
		})

		s.state.Decay(distance)
		s.location = arrived

		s.phase = PhaseSatisfying
		s.state.Satisfy(arrived)
		s.obs.Arrived(arrived)

		if s.location == maze.Exit {
			break
		}
	}

	s.phase = PhaseTerminated
	return Result{Treks: treks, Final: s.state}, nil
}

// Location returns the rat's current node.
func (s *Simulation) Location() maze.Node {
	return s.location
}

// Phase returns the loop's state machine position.
func (s *Simulation) Phase() Phase {
	return s.phase
}
