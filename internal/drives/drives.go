// Package drives implements the rat's needs state machine: four bounded
// drive levels, their percentage-of-max view, and classification of the
// most urgent need.
package drives

import (
	"math/rand"

	"github.com/talgya/maze-rat/internal/maze"
)

// Drive capacities. A drive is fully satisfied at its max and critical
// at zero.
const (
	FunMax    = 35
	HealthMax = 60
	HungerMax = 30
	SleepMax  = 40
)

// State holds the rat's current drive levels, each in [0, max].
type State struct {
	Fun    int
	Health int
	Hunger int
	Sleep  int
}

// NewState draws each drive uniformly from [0, max). The generator is
// injected so runs can be reproduced from a seed.
func NewState(rng *rand.Rand) State {
	return State{
		Fun:    rng.Intn(FunMax),
		Health: rng.Intn(HealthMax),
		Hunger: rng.Intn(HungerMax),
		Sleep:  rng.Intn(SleepMax),
	}
}

// Levels is the percentage-of-max view of a State, used for comparison
// and display.
type Levels struct {
	Fun    int
	Health int
	Hunger int
	Sleep  int
}

// Percentages converts drive levels to percentages using integer
// truncation, not rounding.
func (s State) Percentages() Levels {
	return Levels{
		Fun:    100 * s.Fun / FunMax,
		Health: 100 * s.Health / HealthMax,
		Hunger: 100 * s.Hunger / HungerMax,
		Sleep:  100 * s.Sleep / SleepMax,
	}
}

// Need is the discrete classification of the rat's most urgent drive, or
// NeedExit when every drive sits above the satisfaction line.
type Need uint8

const (
	NeedMedicine Need = iota // health
	NeedFood                 // hunger
	NeedNap                  // sleep
	NeedExercise             // fun
	NeedExit                 // satisfied — head for release
)

// A rat whose lowest drive percentage is above this heads for the exit.
const satisfactionLine = 50

// Classify picks the drive with the lowest percentage. Tie precedence is
// health, hunger, sleep, fun: the chain compares with strict less-than,
// so health wins unless a later drive is strictly lower.
func Classify(p Levels) Need {
	need := NeedMedicine
	low := p.Health
	if p.Hunger < low {
		low = p.Hunger
		need = NeedFood
	}
	if p.Sleep < low {
		low = p.Sleep
		need = NeedNap
	}
	if p.Fun < low {
		low = p.Fun
		need = NeedExercise
	}
	if low > satisfactionLine {
		return NeedExit
	}
	return need
}

// Destination returns the maze node that satisfies the need.
func (n Need) Destination() maze.Node {
	switch n {
	case NeedFood:
		return maze.Food
	case NeedNap:
		return maze.Nest
	case NeedExercise:
		return maze.Wheel
	case NeedExit:
		return maze.Exit
	default:
		return maze.Medicine
	}
}

// String returns the short need name.
func (n Need) String() string {
	switch n {
	case NeedMedicine:
		return "medicine"
	case NeedFood:
		return "food"
	case NeedNap:
		return "nap"
	case NeedExercise:
		return "exercise"
	default:
		return "exit"
	}
}

// Decay reduces every drive by the distance traveled, flooring at zero.
func (s *State) Decay(distance int) {
	s.Fun = floorZero(s.Fun - distance)
	s.Health = floorZero(s.Health - distance)
	s.Hunger = floorZero(s.Hunger - distance)
	s.Sleep = floorZero(s.Sleep - distance)
}

// Satisfy refills the drive tied to the arrival node. Nodes without an
// associated drive (the exit and the annexes) leave the state untouched.
func (s *State) Satisfy(at maze.Node) {
	switch at {
	case maze.Food:
		s.Hunger = HungerMax
	case maze.Medicine:
		s.Health = HealthMax
	case maze.Nest:
		s.Sleep = SleepMax
	case maze.Wheel:
		s.Fun = FunMax
	}
}

func floorZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
