package constraint

import (
	"math/rand"
	"testing"

	"github.com/they4kman/tsweep/game"
)

func loadGame(t *testing.T, board string) *game.Game {
	t.Helper()

	snapshot := &game.BoardSnapshot{SerializedBoard: board}
	g, err := snapshot.CreateGame()
	if err != nil {
		t.Fatalf("could not load layout: %v", err)
	}
	return g
}

func TestActRevealsProvenSafeCell(t *testing.T) {
	// (0, 1) only borders the mine at (0, 0), which leaves (2, 0) as the
	// safe cell next to (1, 0)
	g := loadGame(t, "O.#.\n...O")

	director := New(rand.New(rand.NewSource(1)))
	director.Init(g)

	pos, state, err := director.Act()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos != (game.Position{X: 2, Y: 0}) {
		t.Errorf("expected to reveal (2, 0), got %v", pos)
	}
	if state != game.Won {
		t.Errorf("expected to win, got %v", state)
	}

	if !director.mines.Contains(game.Position{X: 0, Y: 0}) {
		t.Error("expected (0, 0) to be known as a mine")
	}
}

func TestObservationString(t *testing.T) {
	g := loadGame(t, "O.#.\n...O")

	director := New(nil)
	director.Init(g)

	observations := director.observe()
	if len(observations) != 5 {
		t.Fatalf("expected 5 observations, got %d", len(observations))
	}

	expected := "Obs[  (1, 0), 1 ε (0, 0), (2, 0)]"
	if got := observations[0].String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestRunDirectorFinishes(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g, err := game.Start(9, 9, 10, game.Position{X: 4, Y: 4}, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}

		moves := 0
		state, err := game.RunDirector(g, New(rand.New(rand.NewSource(seed))), func(game.Position, game.BoardState) {
			moves++
		})
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		if state == game.Ongoing {
			t.Fatalf("seed %d: expected the game to end", seed)
		}
		if g.MoveCount() != moves+1 {
			t.Errorf("seed %d: observed %d moves, game counted %d", seed, moves, g.MoveCount()-1)
		}
	}
}
