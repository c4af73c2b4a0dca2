package game

import "fmt"

type Position struct {
	X, Y int
}

func (pos Position) String() string {
	return fmt.Sprintf("(%d, %d)", pos.X, pos.Y)
}

// Contains returns whether pos lies on a width x height grid
func Contains(pos Position, width, height int) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < width && pos.Y < height
}

// Neighbors returns pos itself followed by its in-bounds Moore neighbors
func Neighbors(pos Position, width, height int) []Position {
	out := make([]Position, 0, 9)
	out = append(out, pos)

	isAtTopBorder := pos.Y < 1
	isAtBottomBorder := pos.Y >= height-1

	if pos.X >= 1 {
		out = append(out, Position{pos.X - 1, pos.Y})

		if !isAtTopBorder {
			out = append(out, Position{pos.X - 1, pos.Y - 1})
		}
		if !isAtBottomBorder {
			out = append(out, Position{pos.X - 1, pos.Y + 1})
		}
	}

	if pos.X < width-1 {
		out = append(out, Position{pos.X + 1, pos.Y})

		if !isAtTopBorder {
			out = append(out, Position{pos.X + 1, pos.Y - 1})
		}
		if !isAtBottomBorder {
			out = append(out, Position{pos.X + 1, pos.Y + 1})
		}
	}

	if !isAtTopBorder {
		out = append(out, Position{pos.X, pos.Y - 1})
	}
	if !isAtBottomBorder {
		out = append(out, Position{pos.X, pos.Y + 1})
	}

	return out
}

// Index maps an in-bounds position to its row-major cell index
func Index(pos Position, width int) int {
	return pos.Y*width + pos.X
}

// PositionOf is the inverse of Index
func PositionOf(idx, width int) Position {
	return Position{X: idx % width, Y: idx / width}
}
