package game

import "github.com/sirupsen/logrus"

// Director plays a game on a player's behalf, seeing only what a player sees
type Director interface {
	/**
	 * Initialize the director
	 */
	Init(*Game)

	/**
	 * Perform a single move, returning the cell revealed and the resulting state
	 */
	Act() (Position, BoardState, error)
}

// Observer is told about each move a director makes
type Observer func(pos Position, state BoardState)

// RunDirector lets director act until game reaches a terminal state
func RunDirector(game *Game, director Director, observe Observer) (BoardState, error) {
	director.Init(game)

	for game.State() == Ongoing {
		pos, state, err := director.Act()
		if err != nil {
			return game.State(), err
		}

		Log.WithFields(logrus.Fields{
			"position": pos,
			"move":     game.MoveCount(),
			"state":    state,
		}).Debug("director acted")

		if observe != nil {
			observe(pos, state)
		}
	}

	return game.State(), nil
}
