package game

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// BoardSnapshot records a board layout: which cells hold mines and which
// are already revealed.
type BoardSnapshot struct {
	Seed            int64     `yaml:"seed"`
	FirstMove       *Position `yaml:"first_move,omitempty"`
	SerializedBoard string    `yaml:"board"`
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// CreateGame starts a fresh game from the recorded layout. Recorded
// revealed cells start revealed, and the initial flood runs from them.
func (snapshot *BoardSnapshot) CreateGame() (*Game, error) {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\r\n"), "\n")

	height := len(rows)
	width := len(strings.TrimRight(rows[0], "\r"))
	if width == 0 {
		return nil, fmt.Errorf("%w: empty board", ErrInvalidLayout)
	}

	board := newBoard(width, height)
	numMines := 0

	for y, row := range rows {
		row = strings.TrimRight(row, "\r")
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidLayout, y, len(row), width)
		}

		for x, c := range row {
			state, ok := deserializeCell(c)
			if !ok {
				return nil, fmt.Errorf("%w: unknown cell %q at (%d, %d)", ErrInvalidLayout, c, x, y)
			}
			if state == Mine {
				numMines++
			}
			board.cells[board.index(Position{x, y})] = state
		}
	}

	if snapshot.FirstMove != nil && !board.Contains(*snapshot.FirstMove) {
		return nil, &OutOfBoundsError{X: snapshot.FirstMove.X, Y: snapshot.FirstMove.Y}
	}

	game := newGame(board, numMines)
	game.seed = snapshot.Seed
	game.firstMove = snapshot.FirstMove

	Log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"mines":  numMines,
		"seed":   snapshot.Seed,
		"state":  game.state,
	}).Debug("loaded game from snapshot")

	return game, nil
}

// Snapshot records the game's current layout
func (game *Game) Snapshot() *BoardSnapshot {
	return &BoardSnapshot{
		Seed:            game.seed,
		FirstMove:       game.firstMove,
		SerializedBoard: game.board.serialize(),
	}
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
