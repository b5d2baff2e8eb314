package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/highscore"
	"github.com/vovakirdan/snake-arcade/internal/snake"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the environment and run a smoke test",
	Long: `Check that everything the game needs is in place:

  - Go runtime and platform
  - configuration source and values
  - high score file (read, plus a write test in a temp directory)
  - session history database
  - terminal (needed by 'snake play' only)
  - a headless game: eating, hitting the wall and a full session

Exits with status 1 if any check fails.

Examples:
  snake check
  snake check --config ./my-snake.yaml`,
	Run: runCheck,
}

type checkStatus int

const (
	checkOK checkStatus = iota
	checkWarn
	checkFail
)

type checkResult struct {
	Name   string
	Status checkStatus
	Detail string
}

var (
	checkTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	checkOKStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	checkWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	checkFailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	checkDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func runCheck(_ *cobra.Command, _ []string) {
	fmt.Println(checkTitleStyle.Render("SNAKE - environment check"))
	fmt.Println()

	results := []checkResult{
		checkRuntime(),
		checkConfig(appConfig),
		checkHighScore(appConfig),
		checkHighScoreWrite(os.TempDir()),
		checkDatabase(appConfig),
		checkTerminal(),
		checkSmoke(),
	}

	failed := 0
	for _, r := range results {
		fmt.Println(formatCheck(r))
		if r.Status == checkFail {
			failed++
		}
	}

	fmt.Println()
	if failed > 0 {
		fmt.Println(checkFailStyle.Render(fmt.Sprintf("%d check(s) failed", failed)))
		os.Exit(1)
	}
	fmt.Println(checkOKStyle.Render("Ready to play!"))
	fmt.Println(checkDimStyle.Render("  snake          graphical window"))
	fmt.Println(checkDimStyle.Render("  snake play     terminal"))
}

func formatCheck(r checkResult) string {
	var mark string
	switch r.Status {
	case checkOK:
		mark = checkOKStyle.Render("✓")
	case checkWarn:
		mark = checkWarnStyle.Render("!")
	default:
		mark = checkFailStyle.Render("✗")
	}
	return fmt.Sprintf("%s %-14s %s", mark, r.Name, checkDimStyle.Render(r.Detail))
}

func checkRuntime() checkResult {
	return checkResult{
		Name:   "go runtime",
		Status: checkOK,
		Detail: fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH),
	}
}

func checkConfig(cfg config.Config) checkResult {
	if err := cfg.Validate(); err != nil {
		return checkResult{Name: "config", Status: checkFail, Detail: err.Error()}
	}
	return checkResult{
		Name:   "config",
		Status: checkOK,
		Detail: fmt.Sprintf("%s: %dx%d grid, speed %d-%d",
			config.Locate(flagConfig), cfg.Grid.Width, cfg.Grid.Height, cfg.Speed.Initial, cfg.Speed.Max),
	}
}

func checkHighScore(cfg config.Config) checkResult {
	f, err := highscore.NewFile(cfg.Storage.HighScoreFile)
	if err != nil {
		return checkResult{Name: "high score", Status: checkFail, Detail: err.Error()}
	}
	return checkResult{
		Name:   "high score",
		Status: checkOK,
		Detail: fmt.Sprintf("%d (%s)", f.Load(), f.Path()),
	}
}

// checkHighScoreWrite round-trips a score through a fresh file under dir.
func checkHighScoreWrite(dir string) checkResult {
	tmp, err := os.MkdirTemp(dir, "snake-check-")
	if err != nil {
		return checkResult{Name: "score file io", Status: checkFail, Detail: err.Error()}
	}
	defer os.RemoveAll(tmp)

	f, err := highscore.NewFile(filepath.Join(tmp, "high_score.txt"))
	if err != nil {
		return checkResult{Name: "score file io", Status: checkFail, Detail: err.Error()}
	}
	if got := f.Load(); got != 0 {
		return checkResult{Name: "score file io", Status: checkFail, Detail: fmt.Sprintf("missing file loaded %d, want 0", got)}
	}
	if err := f.Save(42); err != nil {
		return checkResult{Name: "score file io", Status: checkFail, Detail: err.Error()}
	}
	if got := f.Load(); got != 42 {
		return checkResult{Name: "score file io", Status: checkFail, Detail: fmt.Sprintf("loaded %d after saving 42", got)}
	}
	return checkResult{Name: "score file io", Status: checkOK, Detail: "read/write ok"}
}

func checkDatabase(cfg config.Config) checkResult {
	if !cfg.Storage.History {
		return checkResult{Name: "history", Status: checkWarn, Detail: "disabled"}
	}
	store, err := storage.Open(cfg.Storage.Database)
	if err != nil {
		return checkResult{Name: "history", Status: checkFail, Detail: err.Error()}
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		return checkResult{Name: "history", Status: checkFail, Detail: err.Error()}
	}
	return checkResult{
		Name:   "history",
		Status: checkOK,
		Detail: fmt.Sprintf("%d sessions (%s)", stats.Sessions, cfg.Storage.Database),
	}
}

func checkTerminal() checkResult {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return checkResult{Name: "terminal", Status: checkWarn, Detail: "stdout is not a terminal; 'snake play' needs one"}
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return checkResult{Name: "terminal", Status: checkWarn, Detail: err.Error()}
	}
	minW, minH := snake.FieldSize(snake.Rules{Width: snake.MinGridWidth, Height: snake.MinGridHeight})
	if w < minW || h < minH {
		return checkResult{Name: "terminal", Status: checkWarn, Detail: fmt.Sprintf("%dx%d, need at least %dx%d", w, h, minW, minH)}
	}
	return checkResult{Name: "terminal", Status: checkOK, Detail: fmt.Sprintf("%dx%d", w, h)}
}

func checkSmoke() checkResult {
	if err := smokeTest(); err != nil {
		return checkResult{Name: "game", Status: checkFail, Detail: err.Error()}
	}
	return checkResult{Name: "game", Status: checkOK, Detail: "eat, wall and session smoke tests passed"}
}

// smokeTest plays a few moves headlessly and checks the core rules.
func smokeTest() error {
	rules := snake.DefaultRules()
	rng := rand.New(rand.NewSource(1))

	// Heading right from (1,1) into food at (2,1).
	s := snake.Session{
		Snake:   []snake.Cell{{X: 1, Y: 1}},
		Heading: snake.DirRight,
		Pending: snake.DirRight,
		Food:    snake.Cell{X: 2, Y: 1},
		HasFood: true,
		Speed:   rules.InitialSpeed,
	}
	s, out := snake.Advance(s, rules, rng)
	if out != snake.OutcomeAte {
		return fmt.Errorf("eat: outcome %s, want ate", out)
	}
	if s.Score != rules.PointsPerFood || len(s.Snake) != 2 || s.Head() != (snake.Cell{X: 2, Y: 1}) {
		return fmt.Errorf("eat: score %d length %d head %v", s.Score, len(s.Snake), s.Head())
	}
	if s.HasFood && s.Occupies(s.Food) {
		return errors.New("eat: new food placed on the snake")
	}

	// Heading left from (0,1) leaves the board.
	s = snake.Session{
		Snake:   []snake.Cell{{X: 0, Y: 1}},
		Heading: snake.DirLeft,
		Pending: snake.DirLeft,
		Speed:   rules.InitialSpeed,
	}
	if _, out := snake.Advance(s, rules, rng); out != snake.OutcomeHitWall {
		return fmt.Errorf("wall: outcome %s, want hit_wall", out)
	}

	// A full session through the state machine, ending on the right wall.
	scores := snake.NewMemoryScores(0)
	game, err := snake.New(rules, scores, 1)
	if err != nil {
		return err
	}
	if res := game.Handle(core.ActionConfirm); res.State != snake.StatePlaying {
		return fmt.Errorf("start: state %s, want playing", res.State)
	}
	if res := game.Handle(core.ActionPause); res.State != snake.StatePaused {
		return fmt.Errorf("pause: state %s, want paused", res.State)
	}
	if res := game.Step(); res.Outcome != snake.OutcomeNone {
		return errors.New("paused game advanced")
	}
	game.Handle(core.ActionPause)

	for i := 0; i < rules.Width*rules.Height; i++ {
		res := game.Step()
		if res.Ended == nil {
			continue
		}
		if res.State != snake.StateGameOver {
			return fmt.Errorf("session ended in state %s", res.State)
		}
		if res.Ended.Reason != snake.EndWall {
			return fmt.Errorf("session ended by %s, want wall", res.Ended.Reason)
		}
		if res.Ended.NewRecord != (res.Ended.Score > 0) || scores.Load() != res.Ended.Score {
			return fmt.Errorf("high score %d after session scoring %d", scores.Load(), res.Ended.Score)
		}
		return nil
	}
	return errors.New("snake never reached the wall")
}
