package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/tsweep/game"
)

// TUI plays a game in a full-screen table. Enter reveals the selected cell;
// the first reveal starts the game unless the config fixes the first move.
type TUI struct {
	config game.GameConfig
	log    logrus.FieldLogger

	app    *tview.Application
	table  *tview.Table
	status *tview.TextView

	game *game.Game
}

func NewTUI(config game.GameConfig) *TUI {
	tui := &TUI{
		config: config,
		log:    logrus.StandardLogger(),
		app:    tview.NewApplication(),
		table:  tview.NewTable().SetSelectable(true, true),
		status: tview.NewTextView(),
	}

	tui.table.SetSelectedFunc(tui.selected)
	tui.table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			tui.app.Stop()
			return nil
		}
		return event
	})

	return tui
}

func (tui *TUI) dimensions() (int, int) {
	if tui.game != nil {
		return tui.game.Dimensions()
	}
	return tui.config.Width, tui.config.Height
}

func (tui *TUI) draw() {
	width, height := tui.dimensions()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			glyph := 'x'
			if tui.game != nil {
				glyph = tui.game.RenderCell(game.Position{X: x, Y: y})
			}
			tui.table.SetCell(y, x, tview.NewTableCell(string(glyph)).SetAlign(tview.AlignCenter))
		}
	}

	switch {
	case tui.game == nil:
		tui.status.SetText("Select your first move")
	case tui.game.State() == game.Won:
		tui.status.SetText("you won (q to quit)")
	case tui.game.State() == game.Lost:
		tui.status.SetText("you died (q to quit)")
	default:
		tui.status.SetText(fmt.Sprintf("move %d", tui.game.MoveCount()))
	}
}

func (tui *TUI) selected(row, column int) {
	pos := game.Position{X: column, Y: row}

	var err error
	if tui.game == nil {
		tui.game, err = tui.config.WithFirstMove(pos).Start()
	} else {
		_, err = tui.game.Reveal(pos)
	}

	if err != nil {
		tui.log.WithError(err).WithField("position", pos).Debug("rejected move")
	}
	tui.draw()
	if err != nil {
		tui.status.SetText(err.Error())
	}
}

// Run blocks until the player quits, returning the game played, if any
func (tui *TUI) Run() (*game.Game, error) {
	if tui.config.Layout != nil || tui.config.FirstMove != nil {
		g, err := tui.config.Start()
		if err != nil {
			return nil, err
		}
		tui.game = g
	}
	tui.draw()

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(tui.table, 0, 1, true).
		AddItem(tui.status, 1, 0, false)

	if err := tui.app.SetRoot(layout, true).Run(); err != nil {
		return tui.game, err
	}
	return tui.game, nil
}
