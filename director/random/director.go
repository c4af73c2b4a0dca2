package random

import (
	"math/rand"

	"github.com/they4kman/tsweep/game"
	"github.com/they4kman/tsweep/util/collections"
)

// Director reveals a uniformly chosen hidden cell on each move
type Director struct {
	rand *rand.Rand
	game *game.Game
}

func New(rng *rand.Rand) *Director {
	return &Director{rand: rng}
}

func (director *Director) Init(g *game.Game) {
	director.game = g
	if director.rand == nil {
		director.rand = rand.New(rand.NewSource(rand.Int63()))
	}
}

// Pick chooses a hidden cell not in exclude. ok is false if none remain.
func (director *Director) Pick(exclude collections.Set[game.Position]) (pos game.Position, ok bool) {
	width, height := director.game.Dimensions()

	var candidates []game.Position
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := game.Position{X: x, Y: y}
			if !director.game.IsRevealed(cell) && !exclude.Contains(cell) {
				candidates = append(candidates, cell)
			}
		}
	}

	if len(candidates) == 0 {
		return game.Position{}, false
	}
	return candidates[director.rand.Intn(len(candidates))], true
}

func (director *Director) Act() (game.Position, game.BoardState, error) {
	pos, ok := director.Pick(nil)
	if !ok {
		return pos, director.game.State(), game.ErrInvalidMove
	}

	state, err := director.game.Reveal(pos)
	return pos, state, err
}
