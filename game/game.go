package game

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// Log receives the engine's debug output. It is silent unless its level is
// raised by the caller.
var Log = func() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}()

type GameConfig struct {
	Width, Height int
	NumMines      int

	// Seed for mine placement; 0 seeds from the clock
	Seed int64

	// First cell revealed. It and its neighbors never hold a mine.
	FirstMove *Position

	// Layout to load the board from instead of generating one
	Layout *BoardSnapshot
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:     defaultWidth,
		Height:    defaultHeight,
		NumMines:  defaultNumMines,
		FirstMove: nil,
		Layout:    nil,
	}
}

// WithFirstMove returns a copy of config starting at pos
func (config GameConfig) WithFirstMove(pos Position) GameConfig {
	config.FirstMove = &pos
	return config
}

// Start creates the game described by config
func (config GameConfig) Start() (*Game, error) {
	if config.Layout != nil {
		return config.Layout.CreateGame()
	}

	if config.FirstMove == nil {
		return nil, fmt.Errorf("no first move: %w", ErrInvalidMove)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := start(config.Width, config.Height, config.NumMines, *config.FirstMove, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	game.seed = seed
	return game, nil
}

type Game struct {
	board    *Board
	numMines int

	state     BoardState
	moveCount int
	// Number of cells still Covered
	numCovered int

	seed      int64
	firstMove *Position
}

// Start creates a game on a width x height board holding numMines mines.
// firstMove and each of its neighbors are revealed and guaranteed mine-free.
// A nil rng uses a generator seeded from the clock.
func Start(width, height, numMines int, firstMove Position, rng *rand.Rand) (*Game, error) {
	if rng == nil {
		seed := time.Now().UnixNano()
		game, err := start(width, height, numMines, firstMove, rand.New(rand.NewSource(seed)))
		if err != nil {
			return nil, err
		}
		game.seed = seed
		return game, nil
	}
	return start(width, height, numMines, firstMove, rng)
}

func start(width, height, numMines int, firstMove Position, rng *rand.Rand) (*Game, error) {
	if width < 1 || height < 1 || numMines < 0 {
		return nil, &InvalidConfigError{Width: width, Height: height, NumMines: numMines}
	}
	if !Contains(firstMove, width, height) {
		return nil, &OutOfBoundsError{X: firstMove.X, Y: firstMove.Y}
	}

	board := newBoard(width, height)

	safeRegion := Neighbors(firstMove, width, height)
	safeIndexes := make([]int, len(safeRegion))
	for i, pos := range safeRegion {
		safeIndexes[i] = board.index(pos)
	}

	available := board.NumCells() - len(safeIndexes)
	if numMines > available {
		return nil, &InvalidConfigError{
			Width:     width,
			Height:    height,
			NumMines:  numMines,
			Available: available,
		}
	}

	for _, idx := range safeIndexes {
		board.cells[idx] = Revealed
	}
	for _, idx := range placeMines(board.NumCells(), safeIndexes, numMines, rng) {
		board.cells[idx] = Mine
	}

	game := newGame(board, numMines)
	game.firstMove = &firstMove

	Log.WithFields(logrus.Fields{
		"width":     width,
		"height":    height,
		"mines":     numMines,
		"firstMove": firstMove,
		"revealed":  board.count(Revealed),
		"state":     game.state,
	}).Debug("started game")

	return game, nil
}

// newGame wraps a freshly laid out board, running the initial flood
func newGame(board *Board, numMines int) *Game {
	var origins []int
	for idx, cell := range board.cells {
		if cell == Revealed {
			origins = append(origins, idx)
		}
	}
	board.cascadeEmpty(origins...)

	game := &Game{
		board:      board,
		numMines:   numMines,
		state:      Ongoing,
		moveCount:  1,
		numCovered: board.count(Covered),
	}
	if game.CheckWon() {
		game.state = Won
	}
	return game
}

// placeMines chooses numMines distinct cell indexes uniformly from the cells
// outside safe. Indexes are drawn from the reduced range, then shifted past
// each safe index at or below them.
func placeMines(numCells int, safe []int, numMines int, rng *rand.Rand) []int {
	skipped := make([]int, len(safe))
	copy(skipped, safe)
	sort.Ints(skipped)

	picks := rng.Perm(numCells - len(skipped))[:numMines]

	mines := make([]int, len(picks))
	for i, idx := range picks {
		for _, safeIdx := range skipped {
			if idx < safeIdx {
				break
			}
			idx++
		}
		mines[i] = idx
	}
	return mines
}

// Reveal uncovers the cell at pos. It reports Ongoing while the game
// continues, or the terminal state the move produced.
func (game *Game) Reveal(pos Position) (BoardState, error) {
	if game.state != Ongoing || !game.board.Contains(pos) {
		return game.state, ErrInvalidMove
	}

	idx := game.board.index(pos)
	switch game.board.cells[idx] {
	case Revealed:
		return game.state, ErrRepeatMove

	case Mine:
		game.moveCount++
		game.state = Lost

	case Covered:
		game.moveCount++
		game.board.cells[idx] = Revealed
		game.numCovered--
		game.numCovered -= game.board.cascadeEmpty(idx)

		if game.CheckWon() {
			game.state = Won
		}
	}

	Log.WithFields(logrus.Fields{
		"position": pos,
		"move":     game.moveCount,
		"covered":  game.numCovered,
		"state":    game.state,
	}).Debug("revealed cell")

	return game.state, nil
}

// CheckWon reports whether every cell without a mine has been revealed
func (game *Game) CheckWon() bool {
	return game.numCovered == 0
}

func (game *Game) State() BoardState {
	return game.state
}

func (game *Game) MoveCount() int {
	return game.moveCount
}

func (game *Game) NumMines() int {
	return game.numMines
}

// Seed returns the seed mine placement was generated from, or 0 if the
// game was created from a caller-supplied generator or a layout.
func (game *Game) Seed() int64 {
	return game.seed
}

func (game *Game) Width() int {
	return game.board.width
}

func (game *Game) Height() int {
	return game.board.height
}

func (game *Game) Dimensions() (int, int) {
	return game.board.width, game.board.height
}

func (game *Game) Contains(pos Position) bool {
	return game.board.Contains(pos)
}

func (game *Game) IsRevealed(pos Position) bool {
	return game.board.Contains(pos) && game.board.CellAt(pos) == Revealed
}

// MinesAround returns the mined-neighbor count shown on a revealed cell.
// ok is false for hidden or out-of-bounds cells.
func (game *Game) MinesAround(pos Position) (count int, ok bool) {
	if !game.IsRevealed(pos) {
		return 0, false
	}
	return game.board.MineCountAround(game.board.index(pos)), true
}

// RenderCell returns the glyph for pos: a digit or blank once revealed,
// 'x' while hidden
func (game *Game) RenderCell(pos Position) rune {
	if !game.board.Contains(pos) {
		return hiddenGlyph
	}
	return game.board.Render(game.board.index(pos))
}

func (game *Game) String() string {
	return game.board.String()
}
