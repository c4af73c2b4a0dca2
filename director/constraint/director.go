package constraint

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/they4kman/tsweep/director/random"
	"github.com/they4kman/tsweep/game"
	"github.com/they4kman/tsweep/util/collections"
)

// Director reveals cells proven safe by the counts on revealed cells, and
// guesses randomly when nothing can be proven.
type Director struct {
	game   *game.Game
	random *random.Director

	// Cells proven to hold a mine
	mines collections.Set[game.Position]
}

// Observation states that exactly numMines of cells hold a mine
type Observation struct {
	origin   game.Position
	numMines int
	cells    collections.Set[game.Position]
}

func (observation Observation) String() string {
	cells := make([]string, 0, len(observation.cells))
	for cell := range observation.cells {
		cells = append(cells, cell.String())
	}
	sort.Strings(cells)

	return fmt.Sprintf("Obs[%8s, %d ε %s]", observation.origin, observation.numMines, strings.Join(cells, ", "))
}

func New(rng *rand.Rand) *Director {
	return &Director{random: random.New(rng)}
}

func (director *Director) Init(g *game.Game) {
	director.game = g
	director.mines = collections.NewSet[game.Position]()
	director.random.Init(g)
}

func (director *Director) Act() (game.Position, game.BoardState, error) {
	observations := director.observe()

	pos, found := director.actDeliberate(observations)
	if !found {
		if pos, found = director.random.Pick(director.mines); !found {
			return pos, director.game.State(), game.ErrInvalidMove
		}
	}

	state, err := director.game.Reveal(pos)
	return pos, state, err
}

// observe collects one observation per revealed, numbered cell bordering
// hidden cells, and marks the cells of fully mined observations as mines
func (director *Director) observe() []Observation {
	var observations []Observation
	width, height := director.game.Dimensions()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			origin := game.Position{X: x, Y: y}
			numMines, revealed := director.game.MinesAround(origin)
			if !revealed || numMines == 0 {
				continue
			}

			observation := Observation{
				origin:   origin,
				numMines: numMines,
				cells:    collections.NewSet[game.Position](),
			}
			for _, neighbor := range game.Neighbors(origin, width, height) {
				if !director.game.IsRevealed(neighbor) {
					observation.cells.Add(neighbor)
				}
			}
			if observation.cells.Len() > 0 {
				observations = append(observations, observation)
			}
		}
	}

	for _, observation := range observations {
		if observation.numMines == observation.cells.Len() {
			for cell := range observation.cells {
				director.mines.Add(cell)
			}
		}
	}

	return observations
}

// actDeliberate finds a hidden cell whose observation's mines are all known
func (director *Director) actDeliberate(observations []Observation) (game.Position, bool) {
	for _, observation := range observations {
		knownMines := observation.cells.Intersection(director.mines)
		if knownMines.Len() != observation.numMines {
			continue
		}

		safe := observation.cells.Difference(director.mines)
		if safe.Len() == 0 {
			continue
		}
		return first(safe), true
	}
	return game.Position{}, false
}

// first returns the topmost, then leftmost, position of a non-empty set
func first(cells collections.Set[game.Position]) game.Position {
	var best game.Position
	found := false
	for cell := range cells {
		if !found || cell.Y < best.Y || (cell.Y == best.Y && cell.X < best.X) {
			best = cell
			found = true
		}
	}
	return best
}
