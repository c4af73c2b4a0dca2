package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/they4kman/tsweep/game"
	"github.com/they4kman/tsweep/term"
)

// fileConfig holds defaults read from --config. Flags given on the command
// line take precedence.
type fileConfig struct {
	Width    *int   `yaml:"width"`
	Height   *int   `yaml:"height"`
	Mines    *int   `yaml:"mines"`
	Seed     *int64 `yaml:"seed"`
	Director string `yaml:"director"`
}

type cliOptions struct {
	width, height, mines int
	seed                 int64
	start                string
	director             string
	tui                  bool
	verbose              bool

	configPath string
	layoutPath string
}

func newOptions() *cliOptions {
	defaults := game.NewGameConfig()
	return &cliOptions{
		width:  defaults.Width,
		height: defaults.Height,
		mines:  defaults.NumMines,
	}
}

func loadFileConfig(path string) (*fileConfig, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config fileConfig
	if err := yaml.UnmarshalStrict(in, &config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &config, nil
}

// load applies the --config file to every option not set by a flag
func (opts *cliOptions) load(cmd *cobra.Command) error {
	if opts.configPath == "" {
		return nil
	}

	config, err := loadFileConfig(opts.configPath)
	if err != nil {
		return err
	}

	changed := cmd.Flags().Changed
	if config.Width != nil && !changed("width") {
		opts.width = *config.Width
	}
	if config.Height != nil && !changed("height") {
		opts.height = *config.Height
	}
	if config.Mines != nil && !changed("mines") {
		opts.mines = *config.Mines
	}
	if config.Seed != nil && !changed("seed") {
		opts.seed = *config.Seed
	}
	if config.Director != "" && !changed("director") {
		opts.director = config.Director
	}
	return nil
}

func (opts *cliOptions) gameConfig() (game.GameConfig, error) {
	config := game.NewGameConfig()
	config.Width = opts.width
	config.Height = opts.height
	config.NumMines = opts.mines
	config.Seed = opts.seed

	if opts.start != "" {
		pos, err := term.ParseMove(opts.start)
		if err != nil {
			return config, fmt.Errorf("--start: %w", err)
		}
		config = config.WithFirstMove(pos)
	}

	if opts.layoutPath != "" {
		in, err := os.ReadFile(opts.layoutPath)
		if err != nil {
			return config, err
		}
		snapshot, err := game.LoadSnapshot(string(in))
		if err != nil {
			return config, fmt.Errorf("parse layout %s: %w", opts.layoutPath, err)
		}
		config.Layout = snapshot
	}

	return config, nil
}
