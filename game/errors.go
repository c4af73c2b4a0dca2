package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove is returned for moves off the board, malformed move
	// input, and moves made after the game has ended
	ErrInvalidMove = errors.New("invalid move")

	// ErrRepeatMove is returned when revealing a cell that is already revealed
	ErrRepeatMove = errors.New("repeated move")

	ErrInvalidLayout = errors.New("invalid board layout")
)

type OutOfBoundsError struct {
	X, Y int
}

func (err *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position (%d, %d) is out of bounds", err.X, err.Y)
}

// InvalidConfigError describes board parameters no game can be built from
type InvalidConfigError struct {
	Width, Height int
	NumMines      int
	// Number of cells mines may be placed on
	Available int
}

func (err *InvalidConfigError) Error() string {
	switch {
	case err.Width < 1 || err.Height < 1:
		return fmt.Sprintf("cannot create a %dx%d board", err.Width, err.Height)
	case err.NumMines < 0:
		return fmt.Sprintf("cannot place a negative number of mines: %d", err.NumMines)
	default:
		return fmt.Sprintf("not enough space for %d mines on a %dx%d board (%d cells available)",
			err.NumMines, err.Width, err.Height, err.Available)
	}
}
