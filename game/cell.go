package game

func (state CellState) String() string {
	switch state {
	case Covered:
		return "covered"
	case Mine:
		return "mine"
	case Revealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// IsHidden reports whether a player can see into the cell
func (state CellState) IsHidden() bool {
	return state != Revealed
}

func (state CellState) serialize() rune {
	switch state {
	case Mine:
		return 'O'
	case Revealed:
		return '.'
	default:
		return '#'
	}
}

func deserializeCell(c rune) (CellState, bool) {
	switch c {
	case 'O':
		return Mine, true
	case '.':
		return Revealed, true
	case '#':
		return Covered, true
	default:
		return Covered, false
	}
}

// glyph renders a cell for display, given its number of mined neighbors
func (state CellState) glyph(numMines int) rune {
	if state.IsHidden() {
		return hiddenGlyph
	}
	if numMines == 0 {
		return blankGlyph
	}
	return rune('0' + numMines)
}
