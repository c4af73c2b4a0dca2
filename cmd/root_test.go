package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/they4kman/tsweep/game"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tsweep.yaml")
	if err := os.WriteFile(path, []byte("width: 20\nheight: 12\nmines: 30\ndirector: constraint\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := newOptions()
	opts.configPath = path

	cmd := &cobra.Command{}
	cmd.Flags().IntVarP(&opts.width, "width", "w", opts.width, "")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "")
	if err := cmd.Flags().Set("height", "8"); err != nil {
		t.Fatal(err)
	}

	if err := opts.load(cmd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if opts.width != 20 {
		t.Errorf("expected width 20 from the file, got %d", opts.width)
	}
	if opts.height != 8 {
		t.Errorf("expected the height flag to win, got %d", opts.height)
	}
	if opts.mines != 30 {
		t.Errorf("expected 30 mines from the file, got %d", opts.mines)
	}
	if opts.director != "constraint" {
		t.Errorf("expected the constraint director, got %q", opts.director)
	}
}

func TestLoadConfigFileRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tsweep.yaml")
	if err := os.WriteFile(path, []byte("widht: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := newOptions()
	opts.configPath = path
	if err := opts.load(&cobra.Command{}); err == nil {
		t.Error("expected an error for a misspelled key")
	}
}

func TestGameConfigFromOptions(t *testing.T) {
	opts := newOptions()
	opts.start = "2, 3"
	opts.seed = 5

	config, err := opts.gameConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.FirstMove == nil || *config.FirstMove != (game.Position{X: 2, Y: 3}) {
		t.Errorf("expected first move (2, 3), got %v", config.FirstMove)
	}
	if config.Seed != 5 || config.Width != 10 || config.NumMines != 10 {
		t.Errorf("unexpected config %+v", config)
	}

	opts.start = "2"
	if _, err := opts.gameConfig(); err == nil {
		t.Error("expected a malformed --start to be rejected")
	}
}

func TestNewDirector(t *testing.T) {
	for _, name := range []string{"random", "constraint"} {
		if _, err := newDirector(name, 1); err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
		}
	}
	if _, err := newDirector("psychic", 1); err == nil {
		t.Error("expected an unknown director to be rejected")
	}
}

func TestLayoutThenDirector(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	defer rootCmd.SetOut(nil)

	rootCmd.SetArgs([]string{"layout", "-w", "6", "-h", "5", "-m", "4", "--seed", "11", "--start", "0,0"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("layout failed: %v", err)
	}

	snapshot, err := game.LoadSnapshot(out.String())
	if err != nil {
		t.Fatalf("could not parse layout output %q: %v", out.String(), err)
	}
	if snapshot.Seed != 11 {
		t.Errorf("expected seed 11, got %d", snapshot.Seed)
	}
	g, err := snapshot.CreateGame()
	if err != nil {
		t.Fatalf("could not replay layout: %v", err)
	}
	if width, height := g.Dimensions(); width != 6 || height != 5 || g.NumMines() != 4 {
		t.Errorf("expected a 6x5 board with 4 mines, got %dx%d with %d", width, height, g.NumMines())
	}

	path := filepath.Join(t.TempDir(), "board.yaml")
	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	rootCmd.SetArgs([]string{"--layout", path, "--director", "constraint"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("director run failed: %v", err)
	}

	output := out.String()
	if !strings.HasSuffix(output, "you won\n") && !strings.HasSuffix(output, "you died\n") {
		t.Errorf("expected the director to finish the game:\n%s", output)
	}
}
