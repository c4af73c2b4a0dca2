package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/they4kman/tsweep/game"
)

var ErrInputClosed = errors.New("input closed")

// ParseMove reads a move written as "x,y"
func ParseMove(line string) (game.Position, error) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) != 2 {
		return game.Position{}, fmt.Errorf("%w: expected x,y but got %q", game.ErrInvalidMove, line)
	}

	var coords [2]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return game.Position{}, fmt.Errorf("%w: %q is not a number", game.ErrInvalidMove, part)
		}
		coords[i] = n
	}

	return game.Position{X: coords[0], Y: coords[1]}, nil
}

// RenderBoard prints one board row per line, cells separated by a space
func RenderBoard(out io.Writer, g *game.Game) error {
	_, err := fmt.Fprintf(out, "%s\n", g)
	return err
}

// Session plays a game over line-oriented input and output
type Session struct {
	Config game.GameConfig
	In     io.Reader
	Out    io.Writer
	Log    logrus.FieldLogger

	scanner *bufio.Scanner
}

func NewSession(config game.GameConfig, in io.Reader, out io.Writer) *Session {
	return &Session{
		Config: config,
		In:     in,
		Out:    out,
		Log:    logrus.StandardLogger(),
	}
}

func (session *Session) readMove(prompt string) (game.Position, error) {
	if session.scanner == nil {
		session.scanner = bufio.NewScanner(session.In)
	}

	fmt.Fprintln(session.Out, prompt)
	if !session.scanner.Scan() {
		if err := session.scanner.Err(); err != nil {
			return game.Position{}, err
		}
		return game.Position{}, ErrInputClosed
	}
	return ParseMove(session.scanner.Text())
}

// reject reports a move the player may retry. It returns false for errors
// that end the session.
func (session *Session) reject(err error) bool {
	var outOfBounds *game.OutOfBoundsError

	switch {
	case errors.Is(err, game.ErrInvalidMove), errors.Is(err, game.ErrRepeatMove), errors.As(err, &outOfBounds):
		session.Log.WithError(err).Debug("rejected move")
		fmt.Fprintln(session.Out, err)
		return true
	default:
		return false
	}
}

func (session *Session) start() (*game.Game, error) {
	if session.Config.Layout != nil || session.Config.FirstMove != nil {
		return session.Config.Start()
	}

	for {
		pos, err := session.readMove("Enter your first move")
		if err == nil {
			var g *game.Game
			if g, err = session.Config.WithFirstMove(pos).Start(); err == nil {
				return g, nil
			}
		}
		if !session.reject(err) {
			return nil, err
		}
	}
}

// Run plays until the game is won or lost, or input runs out
func (session *Session) Run() (*game.Game, error) {
	g, err := session.start()
	if err != nil {
		return nil, err
	}

	for g.State() == game.Ongoing {
		if err := RenderBoard(session.Out, g); err != nil {
			return g, err
		}

		pos, err := session.readMove("Enter your move")
		if err == nil {
			_, err = g.Reveal(pos)
		}
		if err != nil && !session.reject(err) {
			return g, err
		}
	}

	if err := RenderBoard(session.Out, g); err != nil {
		return g, err
	}

	if g.State() == game.Won {
		fmt.Fprintln(session.Out, "you won")
	} else {
		fmt.Fprintln(session.Out, "you died")
	}

	session.Log.WithFields(logrus.Fields{
		"state": g.State(),
		"moves": g.MoveCount(),
	}).Info("game over")

	return g, nil
}
