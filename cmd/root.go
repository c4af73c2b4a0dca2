package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/tsweep/director/constraint"
	"github.com/they4kman/tsweep/director/random"
	"github.com/they4kman/tsweep/game"
	"github.com/they4kman/tsweep/term"
)

var options = newOptions()

var rootCmd = &cobra.Command{
	Use:   "tsweep",
	Short: "Play Minesweeper in the terminal",
	Long: `tsweep is a terminal Minesweeper game. The first move and all of
its neighbors are always free of mines.

Run with no arguments and enter moves as x,y
	tsweep

Use the director flag to make the computer play for you
	tsweep --director constraint
`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configureLogging(options.verbose)
		return options.load(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := options.gameConfig()
		if err != nil {
			return err
		}

		var g *game.Game
		switch {
		case options.director != "":
			g, err = runDirector(cmd, config)
		case options.tui:
			g, err = term.NewTUI(config).Run()
		default:
			g, err = term.NewSession(config, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
		}
		if err != nil {
			return err
		}

		if g != nil {
			logrus.WithFields(logrus.Fields{
				"state": g.State(),
				"moves": g.MoveCount(),
				"seed":  g.Seed(),
			}).Debug("finished")
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func configureLogging(verbose bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
		game.Log.SetOutput(os.Stderr)
		game.Log.SetLevel(logrus.DebugLevel)
	} else {
		game.Log.SetOutput(io.Discard)
	}
}

func newDirector(name string, seed int64) (game.Director, error) {
	rng := rand.New(rand.NewSource(seed))

	switch name {
	case "random":
		return random.New(rng), nil
	case "constraint":
		return constraint.New(rng), nil
	default:
		return nil, fmt.Errorf("unknown director %q (expected random or constraint)", name)
	}
}

func runDirector(cmd *cobra.Command, config game.GameConfig) (*game.Game, error) {
	if config.Layout == nil && config.FirstMove == nil {
		config = config.WithFirstMove(game.Position{X: config.Width / 2, Y: config.Height / 2})
	}

	g, err := config.Start()
	if err != nil {
		return nil, err
	}

	director, err := newDirector(options.director, g.Seed()+1)
	if err != nil {
		return nil, err
	}

	out := cmd.OutOrStdout()
	if err := term.RenderBoard(out, g); err != nil {
		return g, err
	}

	state, err := game.RunDirector(g, director, func(pos game.Position, state game.BoardState) {
		fmt.Fprintf(out, "\n%s -> %s\n", pos, state)
		term.RenderBoard(out, g)
	})
	if err != nil {
		return g, err
	}

	if state == game.Won {
		fmt.Fprintln(out, "you won")
	} else {
		fmt.Fprintln(out, "you died")
	}
	return g, nil
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.PersistentFlags().Bool("help", false, "Help for this command")

	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&options.width, "width", "w", options.width, "Width of game board, in cells")
	flags.IntVarP(&options.height, "height", "h", options.height, "Height of game board, in cells")
	flags.IntVarP(&options.mines, "mines", "m", options.mines, "Number of mines to place in the game board")
	flags.Int64Var(&options.seed, "seed", 0, "Seed for mine placement (0 seeds from the clock)")
	flags.StringVar(&options.start, "start", "", "First move, as x,y (prompted for when omitted)")
	flags.StringVar(&options.layoutPath, "layout", "", "Play the board layout stored in this YAML file")
	flags.StringVar(&options.configPath, "config", "", "YAML file with default width, height, mines, seed and director")
	flags.BoolVarP(&options.verbose, "verbose", "v", false, "Log engine activity to stderr")

	rootCmd.Flags().StringVarP(&options.director, "director", "d", "", `Make the computer play.
random: reveal random hidden cells
constraint: reveal cells proven safe, guessing only when stuck`)
	rootCmd.Flags().BoolVar(&options.tui, "tui", false, "Play in a full-screen table instead of line mode")

	rootCmd.AddCommand(layoutCmd)
}
