package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/snake"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

// Options configures a Model.
type Options struct {
	Player        string         // Name stored with finished sessions
	Frontend      string         // "tui" or "ssh"
	Store         *storage.Store // Session history; nil disables it
	ScreenshotDir string         // Where ctrl+s writes screenshots; empty disables files
	Clipboard     bool           // Also copy screenshots to the system clipboard
}

// Model is the Bubble Tea model for one snake game.
type Model struct {
	game     *snake.Game
	base     snake.Rules // Configured board before fitting to the terminal
	screen   *core.Screen
	opts     Options
	keys     *KeyMapper
	input    core.InputFrame
	board    *ScoreboardModel // Open scoreboard, if any
	gen      int              // Current tick chain
	width    int
	height   int
	tooSmall bool
	nextFits bool // The board for the next session fits the terminal
	status   string
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *snake.Game, opts Options) Model {
	w, h := snake.FieldSize(game.Rules())
	return Model{
		game:     game,
		base:     game.Rules(),
		screen:   core.NewScreen(w, h),
		opts:     opts,
		keys:     NewKeyMapper(),
		input:    core.NewInputFrame(),
		width:    w,
		height:   h,
		nextFits: true,
	}
}

// Init does nothing: ticks only run while a session is playing.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.board != nil {
			return m.updateBoard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "tab":
		if m.game.State() == snake.StateMenu && m.opts.Store != nil {
			board := NewScoreboardModel(m.opts.Store, m.opts.Player, m.width, m.height)
			board.embedded = true
			m.board = &board
		}
		return m, nil
	}

	m.input.Clear()
	quit := m.keys.MapKeyToFrame(msg, &m.input)
	actions := m.input.Actions()
	if m.tooSmall && !quit {
		actions = m.allowedWhileTooSmall(actions)
	}
	return m.apply(actions)
}

// allowedWhileTooSmall keeps the actions that cannot resume the board that
// does not fit: cancel always, and restart once the next board fits.
func (m Model) allowedWhileTooSmall(actions []core.Action) []core.Action {
	var allowed []core.Action
	for _, a := range actions {
		switch a {
		case core.ActionBack:
			allowed = append(allowed, a)
		case core.ActionConfirm, core.ActionRestart:
			if m.nextFits && m.game.State() == snake.StateGameOver {
				allowed = append(allowed, a)
			}
		}
	}
	return allowed
}

// apply feeds actions to the game and starts a tick chain when play begins.
func (m Model) apply(actions []core.Action) (tea.Model, tea.Cmd) {
	wasPlaying := m.game.State() == snake.StatePlaying

	for _, a := range actions {
		res := m.game.Handle(a)
		m.record(res.Ended)
		if res.Quit {
			m.quitting = true
			return m, tea.Quit
		}
	}
	m.tooSmall = m.boardTooSmall()

	if !wasPlaying && m.game.State() == snake.StatePlaying {
		m.gen++
		return m, tickCmd(m.gen, m.game.Speed())
	}
	return m, nil
}

// handleResize fits the board to the new terminal size. A running session
// keeps its board and is paused while it does not fit.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	w, h, ok := snake.FitGrid(m.base, msg.Width, msg.Height)
	if ok {
		if err := m.game.Resize(w, h); err != nil {
			log.Warn("cannot resize board", "width", w, "height", h, "err", err)
		}
	}

	m.nextFits = ok
	m.tooSmall = m.boardTooSmall()
	if m.tooSmall && m.game.State() == snake.StatePlaying {
		m.game.Handle(core.ActionPause)
	}

	if m.board != nil {
		next, _ := m.board.Update(msg)
		board := next.(ScoreboardModel)
		m.board = &board
	}
	return m, nil
}

// boardTooSmall reports whether the current screen cannot be shown. The menu
// only needs the next board to fit; other screens show the running board.
func (m Model) boardTooSmall() bool {
	if !m.nextFits {
		return true
	}
	if m.game.State() == snake.StateMenu {
		return false
	}
	fw, fh := snake.FieldSize(m.game.Rules())
	return fw > m.width || fh > m.height
}

// handleTick advances the simulation and schedules the next tick at the
// current speed.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.game.State() != snake.StatePlaying {
		return m, nil
	}

	res := m.game.Step()
	if res.Ended != nil {
		m.record(res.Ended)
		return m, nil
	}
	return m, tickCmd(m.gen, m.game.Speed())
}

// updateBoard routes input to the open scoreboard.
func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	board := next.(ScoreboardModel)

	switch {
	case board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case board.IsGoingBack():
		m.board = nil
		return m, nil
	}
	m.board = &board
	return m, cmd
}

// record stores a finished session in the history.
func (m Model) record(sum *snake.Summary) {
	if sum == nil || m.opts.Store == nil || sum.Score == 0 {
		return
	}
	rec := storage.RecordFromSummary(*sum, m.opts.Player, m.opts.Frontend)
	if _, err := m.opts.Store.SaveSession(rec); err != nil {
		log.Warn("session not recorded", "err", err)
	}
}

// saveScreenshot saves the current screen to a file and, if enabled, the clipboard.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)
	text := m.screen.String()

	if m.opts.ScreenshotDir != "" {
		if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
			log.Warn("cannot create screenshot directory", "err", err)
		}
		filename := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
		path := filepath.Join(m.opts.ScreenshotDir, filename)
		if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
			log.Warn("screenshot not saved", "err", err)
			m.status = "screenshot failed"
		} else {
			m.status = "saved " + path
		}
	}

	if m.opts.Clipboard && !clipboard.Unsupported {
		if err := clipboard.WriteAll(text); err != nil {
			log.Debug("clipboard unavailable", "err", err)
		} else if m.status != "" {
			m.status += " (copied)"
		} else {
			m.status = "copied to clipboard"
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	if m.tooSmall {
		renderTooSmall(m.screen)
	} else {
		m.game.Render(m.screen)
	}
	if m.status != "" && m.screen.Height() > 0 {
		m.screen.DrawTextColored(0, m.screen.Height()-1, m.status, core.ColorGray)
	}
	return RenderScreen(m.screen)
}

// renderTooSmall replaces the game with a resize hint.
func renderTooSmall(s *core.Screen) {
	s.Clear()
	minW, minH := snake.FieldSize(snake.Rules{Width: snake.MinGridWidth, Height: snake.MinGridHeight})
	y := s.Height()/2 - 1
	s.DrawTextCenteredColored(y, "Terminal too small", core.ColorBrightYellow)
	s.DrawTextCentered(y+1, fmt.Sprintf("need %dx%d", minW, minH))
}

// Game returns the game driven by this model.
func (m Model) Game() *snake.Game {
	return m.game
}

// TooSmall reports whether the terminal is too small to show the board.
func (m Model) TooSmall() bool {
	return m.tooSmall
}

// Run starts the Bubble Tea program with the given game.
func Run(game *snake.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
