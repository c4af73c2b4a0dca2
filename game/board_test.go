package game

import (
	"strings"
	"testing"
)

// layoutGame builds a game from rows of snapshot glyphs
func layoutGame(t *testing.T, rows ...string) *Game {
	t.Helper()

	snapshot := &BoardSnapshot{SerializedBoard: strings.Join(rows, "\n")}
	game, err := snapshot.CreateGame()
	if err != nil {
		t.Fatalf("could not load layout: %v", err)
	}
	return game
}

func TestMineCountAround(t *testing.T) {
	game := layoutGame(t,
		"O#O",
		"#.#",
		"OOO",
	)
	board := game.board

	tests := []struct {
		pos      Position
		expected int
	}{
		{Position{1, 1}, 5},
		{Position{1, 0}, 2},
		{Position{0, 1}, 3},
		{Position{0, 0}, 0},
		{Position{1, 2}, 2},
	}

	for _, tt := range tests {
		if got := board.MineCountAround(board.index(tt.pos)); got != tt.expected {
			t.Errorf("MineCountAround(%v) = %d, expected %d", tt.pos, got, tt.expected)
		}
	}
}

func TestRender(t *testing.T) {
	game := layoutGame(t,
		"O.#",
		"..#",
		"##O",
	)

	tests := []struct {
		pos      Position
		expected rune
	}{
		{Position{0, 0}, 'x'},
		{Position{1, 0}, '1'},
		{Position{0, 1}, '1'},
		{Position{1, 1}, '2'},
		{Position{2, 0}, 'x'},
		{Position{2, 2}, 'x'},
		{Position{5, 5}, 'x'},
	}

	for _, tt := range tests {
		if got := game.RenderCell(tt.pos); got != tt.expected {
			t.Errorf("RenderCell(%v) = %q, expected %q", tt.pos, got, tt.expected)
		}
	}
}

func TestBoardString(t *testing.T) {
	game := layoutGame(t,
		".#O#",
		"..##",
	)

	expected := "  1 x x\n  1 x x"
	if got := game.String(); got != expected {
		t.Errorf("expected board\n%q\ngot\n%q", expected, got)
	}
}
