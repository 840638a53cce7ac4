package drives

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talgya/maze-rat/internal/maze"
)

func TestNewState_DeterministicAndBounded(t *testing.T) {
	a := NewState(rand.New(rand.NewSource(7)))
	b := NewState(rand.New(rand.NewSource(7)))
	require.Equal(t, a, b)

	require.GreaterOrEqual(t, a.Fun, 0)
	require.Less(t, a.Fun, FunMax)
	require.GreaterOrEqual(t, a.Health, 0)
	require.Less(t, a.Health, HealthMax)
	require.GreaterOrEqual(t, a.Hunger, 0)
	require.Less(t, a.Hunger, HungerMax)
	require.GreaterOrEqual(t, a.Sleep, 0)
	require.Less(t, a.Sleep, SleepMax)
}

func TestPercentages_Truncates(t *testing.T) {
	s := State{Fun: 10, Health: 50, Hunger: 5, Sleep: 20}
	require.Equal(t, Levels{Fun: 28, Health: 83, Hunger: 16, Sleep: 50}, s.Percentages())
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		in   Levels
		want Need
	}{
		{"sleep strictly lowest", Levels{Fun: 90, Health: 40, Hunger: 40, Sleep: 10}, NeedNap},
		{"all above the line", Levels{Fun: 60, Health: 60, Hunger: 60, Sleep: 60}, NeedExit},
		{"exact tie goes to health", Levels{Fun: 40, Health: 40, Hunger: 40, Sleep: 40}, NeedMedicine},
		{"hunger lowest", Levels{Fun: 28, Health: 83, Hunger: 16, Sleep: 50}, NeedFood},
		{"fun lowest", Levels{Fun: 5, Health: 50, Hunger: 45, Sleep: 30}, NeedExercise},
		{"minimum exactly at the line stays a need", Levels{Fun: 50, Health: 90, Hunger: 80, Sleep: 70}, NeedExercise},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.in))
			// Classification has no hidden state; a second call agrees.
			require.Equal(t, tc.want, Classify(tc.in))
		})
	}
}

func TestDecay_FloorsAtZero(t *testing.T) {
	s := State{Fun: 3, Health: 10, Hunger: 0, Sleep: 5}
	s.Decay(5)
	require.Equal(t, State{Fun: 0, Health: 5, Hunger: 0, Sleep: 0}, s)
}

func TestDecay_ZeroDistanceIsNoop(t *testing.T) {
	s := State{Fun: 3, Health: 10, Hunger: 7, Sleep: 5}
	s.Decay(0)
	require.Equal(t, State{Fun: 3, Health: 10, Hunger: 7, Sleep: 5}, s)
}

func TestSatisfy_RestoresMax(t *testing.T) {
	cases := []struct {
		node  maze.Node
		check func(State) int
		want  int
	}{
		{maze.Food, func(s State) int { return s.Hunger }, HungerMax},
		{maze.Medicine, func(s State) int { return s.Health }, HealthMax},
		{maze.Nest, func(s State) int { return s.Sleep }, SleepMax},
		{maze.Wheel, func(s State) int { return s.Fun }, FunMax},
	}

	for _, tc := range cases {
		s := State{Fun: 1, Health: 2, Hunger: 3, Sleep: 4}
		s.Satisfy(tc.node)
		require.Equal(t, tc.want, tc.check(s), "node %s", tc.node)
	}
}

func TestSatisfy_NoopNodes(t *testing.T) {
	for _, node := range []maze.Node{maze.Exit, maze.AnnexA, maze.AnnexB} {
		s := State{Fun: 1, Health: 2, Hunger: 3, Sleep: 4}
		s.Satisfy(node)
		require.Equal(t, State{Fun: 1, Health: 2, Hunger: 3, Sleep: 4}, s, "node %s", node)
	}
}

func TestDestination_CoversEveryNeed(t *testing.T) {
	require.Equal(t, maze.Medicine, NeedMedicine.Destination())
	require.Equal(t, maze.Food, NeedFood.Destination())
	require.Equal(t, maze.Nest, NeedNap.Destination())
	require.Equal(t, maze.Wheel, NeedExercise.Destination())
	require.Equal(t, maze.Exit, NeedExit.Destination())
}
