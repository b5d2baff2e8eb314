package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// State is the top-level screen the game is on.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndReason tells why a session ended.
type EndReason int

const (
	EndWall EndReason = iota
	EndSelf
	EndCancel
)

func (r EndReason) String() string {
	switch r {
	case EndWall:
		return "wall"
	case EndSelf:
		return "self"
	case EndCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Summary describes a finished session.
type Summary struct {
	Score     int
	FoodEaten int
	Length    int
	Ticks     uint64
	Reason    EndReason
	NewRecord bool
	Duration  time.Duration
}

// Result is returned by Handle and Step.
type Result struct {
	State   State
	Outcome Outcome  // Set by Step while playing
	Ended   *Summary // Non-nil when this call finished a session
	Quit    bool     // The player asked to leave the program
}

// Game is the menu/play/pause/game-over state machine around a Session.
// All transitions are driven by Handle; Step only advances the simulation
// and can end a session on a collision.
type Game struct {
	rules     Rules // Rules of the running session
	next      Rules // Rules for the next session, see Resize
	rng       *rand.Rand
	scores    HighScores
	now       func() time.Time
	state     State
	session   Session
	active    bool // A session is running (Playing or Paused)
	started   time.Time
	highScore int
	last      *Summary
	sessions  int
}

// New creates a game on the menu screen. The high score is loaded once here.
// A nil scores keeps the high score in memory.
func New(rules Rules, scores HighScores, seed int64) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if scores == nil {
		scores = NewMemoryScores(0)
	}

	g := &Game{
		rules:  rules,
		next:   rules,
		rng:    rand.New(rand.NewSource(seed)),
		scores: scores,
		now:    time.Now,
		state:  StateMenu,
	}
	g.highScore = max(0, scores.Load())
	// The menu shows an idle board behind the title.
	g.session = NewSession(rules, g.rng)
	return g, nil
}

// Handle applies one input action.
func (g *Game) Handle(a core.Action) Result {
	if a == core.ActionQuit {
		res := Result{Quit: true}
		if g.active {
			res.Ended = g.finish(EndCancel)
			g.state = StateMenu
		}
		res.State = g.state
		return res
	}

	var ended *Summary
	switch g.state {
	case StateMenu:
		switch a {
		case core.ActionConfirm:
			g.startSession()
		case core.ActionBack:
			return Result{State: g.state, Quit: true}
		}

	case StatePlaying:
		if dir, ok := DirectionFromAction(a); ok {
			g.session = Turn(g.session, dir)
			break
		}
		switch a {
		case core.ActionConfirm, core.ActionPause:
			g.state = StatePaused
		case core.ActionBack:
			ended = g.finish(EndCancel)
			g.state = StateMenu
		}

	case StatePaused:
		switch a {
		case core.ActionConfirm, core.ActionPause:
			g.state = StatePlaying
		case core.ActionBack:
			ended = g.finish(EndCancel)
			g.state = StateMenu
		}

	case StateGameOver:
		switch a {
		case core.ActionConfirm, core.ActionRestart:
			g.startSession()
		case core.ActionBack:
			g.state = StateMenu
		}
	}

	return Result{State: g.state, Ended: ended}
}

// Step advances the simulation by one tick. It does nothing outside Playing.
func (g *Game) Step() Result {
	if g.state != StatePlaying {
		return Result{State: g.state}
	}

	next, outcome := Advance(g.session, g.rules, g.rng)
	g.session = next

	res := Result{State: g.state, Outcome: outcome}
	switch outcome {
	case OutcomeHitWall:
		res.Ended = g.finish(EndWall)
	case OutcomeHitSelf:
		res.Ended = g.finish(EndSelf)
	default:
		return res
	}
	g.state = StateGameOver
	res.State = g.state
	return res
}

// startSession reinitialises snake, food, score and speed and starts playing.
func (g *Game) startSession() {
	g.rules = g.next
	g.session = NewSession(g.rules, g.rng)
	g.state = StatePlaying
	g.active = true
	g.started = g.now()
	g.last = nil
	g.sessions++
	log.Debug("session started", "session", g.sessions, "grid", fmt.Sprintf("%dx%d", g.rules.Width, g.rules.Height))
}

// finish closes the running session and records a new high score.
// The high score file is written at most once per session; write errors are
// dropped on purpose so a read-only disk never interrupts play.
func (g *Game) finish(reason EndReason) *Summary {
	if !g.active {
		return nil
	}
	g.active = false

	sum := &Summary{
		Score:     g.session.Score,
		FoodEaten: g.session.FoodEaten,
		Length:    len(g.session.Snake),
		Ticks:     g.session.Ticks,
		Reason:    reason,
		Duration:  g.now().Sub(g.started),
	}
	if sum.Score > g.highScore {
		sum.NewRecord = g.saveRecord(sum.Score)
	}
	g.last = sum
	log.Debug("session ended", "session", g.sessions, "reason", reason, "score", sum.Score, "record", sum.NewRecord)
	return sum
}

// saveRecord stores a score that beats the best this game knows of and
// reports whether it is a new record. A shared store may already hold a
// better score from another game; the known best then catches up with it.
func (g *Game) saveRecord(score int) bool {
	shared, ok := g.scores.(SharedScores)
	if !ok {
		g.highScore = score
		if err := g.scores.Save(score); err != nil {
			log.Debug("high score not saved", "score", score, "err", err)
		}
		return true
	}

	best, raised, err := shared.Raise(score)
	if err != nil {
		log.Debug("high score not saved", "score", score, "err", err)
	}
	g.highScore = max(g.highScore, best)
	return raised
}

// Resize changes the grid used from the next session on. The running
// session keeps its board.
func (g *Game) Resize(width, height int) error {
	next := g.next
	next.Width, next.Height = width, height
	if err := next.Validate(); err != nil {
		return err
	}
	g.next = next
	if g.state == StateMenu {
		g.rules = next
		g.session = NewSession(next, g.rng)
	}
	return nil
}

// State returns the current screen.
func (g *Game) State() State {
	return g.state
}

// Speed returns the current tick rate in ticks per second.
func (g *Game) Speed() int {
	return g.session.Speed
}

// Score returns the score of the current or last session.
func (g *Game) Score() int {
	return g.session.Score
}

// HighScore returns the best score known to this process.
func (g *Game) HighScore() int {
	return g.highScore
}

// Rules returns the rules of the current session.
func (g *Game) Rules() Rules {
	return g.rules
}

// Session returns a copy of the current session.
func (g *Game) Session() Session {
	s := g.session
	s.Snake = append([]Cell(nil), g.session.Snake...)
	return s
}

// LastSummary returns the summary of the most recently finished session
// while its game-over screen is shown, or nil.
func (g *Game) LastSummary() *Summary {
	if g.state != StateGameOver {
		return nil
	}
	return g.last
}
