package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/they4kman/tsweep/game"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Generate a board and print its layout as YAML",
	Long: `layout generates a board the way a game would, and prints its
mine layout (O mine, # covered, . revealed) with the seed used.
The output can be replayed with --layout.

	tsweep layout --seed 42 --start 5,5 > board.yaml
	tsweep --layout board.yaml
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := options.gameConfig()
		if err != nil {
			return err
		}
		if config.Layout == nil && config.FirstMove == nil {
			config = config.WithFirstMove(game.Position{X: config.Width / 2, Y: config.Height / 2})
		}

		g, err := config.Start()
		if err != nil {
			return err
		}

		out, err := g.Snapshot().Serialize()
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}
