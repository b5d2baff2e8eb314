// Package window runs the snake game in a graphical window using Ebitengine.
package window

import (
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/snake"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

const statusDuration = 3 * time.Second

// Options configures the window.
type Options struct {
	CellSize int            // Pixels per grid cell
	Title    string         // Window title
	Player   string         // Name stored with finished sessions
	Store    *storage.Store // Session history; nil disables it
}

// App implements ebiten.Game around a snake.Game. Ebitengine calls Update at
// a fixed 60 TPS; a core.Pacer turns that into Speed simulation ticks per second.
type App struct {
	game        *snake.Game
	opts        Options
	pacer       core.Pacer
	input       core.InputFrame
	last        time.Time
	now         func() time.Time
	face        *text.GoXFace
	status      string
	statusUntil time.Time
}

// New creates the window app for game.
func New(game *snake.Game, opts Options) *App {
	if opts.CellSize <= 0 {
		opts.CellSize = 20
	}
	if opts.Title == "" {
		opts.Title = "Snake Game"
	}
	return &App{
		game:  game,
		opts:  opts,
		input: core.NewInputFrame(),
		now:   time.Now,
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update reads input and advances the simulation.
func (a *App) Update() error {
	a.input.Clear()
	pollKeys(&a.input, inpututilPressed)
	if ebiten.IsWindowBeingClosed() {
		a.input.Set(core.ActionQuit)
	}

	for _, act := range a.input.Actions() {
		res := a.game.Handle(act)
		a.record(res.Ended)
		if res.Quit {
			return ebiten.Termination
		}
	}

	if a.game.State() == snake.StateGameOver && copyPressed() {
		a.copyResult()
	}

	now := a.now()
	if a.game.State() == snake.StatePlaying && !a.last.IsZero() {
		steps := a.pacer.Advance(now.Sub(a.last), a.game.Speed())
		for range steps {
			res := a.game.Step()
			if res.Ended != nil {
				a.record(res.Ended)
				break
			}
		}
	} else {
		a.pacer.Reset()
	}
	a.last = now
	return nil
}

// Layout fixes the logical screen to the board size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	r := a.game.Rules()
	return r.Width * a.opts.CellSize, r.Height * a.opts.CellSize
}

// record stores a finished session in the history.
func (a *App) record(sum *snake.Summary) {
	if sum == nil || a.opts.Store == nil || sum.Score == 0 {
		return
	}
	rec := storage.RecordFromSummary(*sum, a.opts.Player, "window")
	if _, err := a.opts.Store.SaveSession(rec); err != nil {
		log.Warn("session not recorded", "err", err)
	}
}

// copyResult puts a one-line summary of the last session on the clipboard.
func (a *App) copyResult() {
	sum := a.game.LastSummary()
	if sum == nil {
		return
	}
	if clipboard.Unsupported {
		a.setStatus("clipboard not available")
		return
	}
	if err := clipboard.WriteAll(resultText(sum, a.game.HighScore())); err != nil {
		log.Debug("clipboard unavailable", "err", err)
		a.setStatus("clipboard not available")
		return
	}
	a.setStatus("result copied")
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusUntil = a.now().Add(statusDuration)
}

// Run opens the window and blocks until the player quits.
func Run(game *snake.Game, opts Options) error {
	app := New(game, opts)
	w, h := app.Layout(0, 0)

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(app.opts.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(ebiten.DefaultTPS)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
