package game

import "strings"

type Board struct {
	width, height int // in number of cells
	cells         []CellState
}

func newBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
	}
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumCells() int {
	return len(board.cells)
}

func (board *Board) Contains(pos Position) bool {
	return Contains(pos, board.width, board.height)
}

func (board *Board) index(pos Position) int {
	return Index(pos, board.width)
}

func (board *Board) position(idx int) Position {
	return PositionOf(idx, board.width)
}

func (board *Board) CellAt(pos Position) CellState {
	return board.cells[board.index(pos)]
}

// neighborsOf returns the indexes of the cell at idx and its Moore neighbors
func (board *Board) neighborsOf(idx int) []int {
	positions := Neighbors(board.position(idx), board.width, board.height)
	out := make([]int, len(positions))
	for i, pos := range positions {
		out[i] = board.index(pos)
	}
	return out
}

// MineCountAround counts the mined Moore neighbors of the cell at idx
func (board *Board) MineCountAround(idx int) int {
	count := 0
	for _, neighbor := range board.neighborsOf(idx) {
		if neighbor != idx && board.cells[neighbor] == Mine {
			count++
		}
	}
	return count
}

func (board *Board) Render(idx int) rune {
	state := board.cells[idx]
	if state.IsHidden() {
		return state.glyph(0)
	}
	return state.glyph(board.MineCountAround(idx))
}

func (board *Board) count(state CellState) int {
	n := 0
	for _, cell := range board.cells {
		if cell == state {
			n++
		}
	}
	return n
}

// String renders one row per line with a single space between cells
func (board *Board) String() string {
	var out strings.Builder
	for idx := range board.cells {
		if idx > 0 {
			if idx%board.width == 0 {
				out.WriteByte('\n')
			} else {
				out.WriteByte(' ')
			}
		}
		out.WriteRune(board.Render(idx))
	}
	return out.String()
}

// serialize encodes the board as rows of cell glyphs, as stored in snapshots
func (board *Board) serialize() string {
	var out strings.Builder
	for idx, cell := range board.cells {
		if idx > 0 && idx%board.width == 0 {
			out.WriteByte('\n')
		}
		out.WriteRune(cell.serialize())
	}
	return out.String()
}
