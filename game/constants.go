package game

type CellState int
type BoardState int

const (
	Covered CellState = iota
	Mine
	Revealed
)

var CellStates = []CellState{
	Covered,
	Mine,
	Revealed,
}

// The state a game is left in after a move. Ongoing doubles as the
// "continue" outcome of Reveal.
const (
	Lost BoardState = iota
	Won
	Ongoing
)

const (
	defaultWidth    = 10
	defaultHeight   = 10
	defaultNumMines = 10
)

const (
	hiddenGlyph = 'x'
	blankGlyph  = ' '
)

func (state BoardState) String() string {
	switch state {
	case Lost:
		return "lost"
	case Won:
		return "won"
	case Ongoing:
		return "ongoing"
	default:
		return "unknown"
	}
}
