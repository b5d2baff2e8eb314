package snake

import "math/rand"

// Cell is one grid position.
type Cell struct {
	X, Y int
}

// Step returns the neighbouring cell in direction d.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Vector()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Outcome describes what a single tick did to the session.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeMoved
	OutcomeAte
	OutcomeHitWall
	OutcomeHitSelf
)

// Fatal reports whether the outcome ends the session.
func (o Outcome) Fatal() bool {
	return o == OutcomeHitWall || o == OutcomeHitSelf
}

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeHitWall:
		return "hit_wall"
	case OutcomeHitSelf:
		return "hit_self"
	default:
		return "none"
	}
}

// Session is the state of one play-through. It is a plain value: the update
// functions below take a Session and return the next one without touching
// the input, so callers can keep or compare earlier states.
type Session struct {
	Snake     []Cell    // Head at index 0
	Heading   Direction // Direction of the last completed move
	Pending   Direction // Direction used by the next move
	Food      Cell
	HasFood   bool
	Score     int
	Speed     int
	FoodEaten int
	Ticks     uint64
}

// NewSession spawns a one-cell snake heading right and places the first food.
func NewSession(r Rules, rng *rand.Rand) Session {
	s := Session{
		Snake:   []Cell{r.Start()},
		Heading: DirRight,
		Pending: DirRight,
		Speed:   r.InitialSpeed,
	}
	s.Food, s.HasFood = PlaceFood(s.Snake, r, rng)
	return s
}

// Head returns the snake's head cell.
func (s Session) Head() Cell {
	return s.Snake[0]
}

// Occupies reports whether any snake segment is on c.
func (s Session) Occupies(c Cell) bool {
	for _, seg := range s.Snake {
		if seg == c {
			return true
		}
	}
	return false
}

// Turn queues a direction change for the next move. The direct reverse of
// the last completed move is ignored, so two quick presses between ticks
// cannot fold the snake back onto its neck.
func Turn(s Session, d Direction) Session {
	if d == s.Heading.Opposite() {
		return s
	}
	s.Pending = d
	return s
}

// Advance moves the snake one cell. A move that leaves the grid or enters
// any cell of the current body (tail included) is fatal and leaves the
// snake where it was. Eating keeps the tail, awards points and places new food.
func Advance(s Session, r Rules, rng *rand.Rand) (Session, Outcome) {
	s.Ticks++

	head := s.Head().Step(s.Pending)
	if !r.Bounds().Contains(head.X, head.Y) {
		return s, OutcomeHitWall
	}
	if s.Occupies(head) {
		return s, OutcomeHitSelf
	}

	s.Heading = s.Pending
	ate := s.HasFood && head == s.Food

	keep := len(s.Snake)
	if !ate {
		keep--
	}
	next := make([]Cell, 0, keep+1)
	next = append(next, head)
	next = append(next, s.Snake[:keep]...)
	s.Snake = next

	if !ate {
		return s, OutcomeMoved
	}

	s = award(s, r)
	s.Food, s.HasFood = PlaceFood(s.Snake, r, rng)
	return s, OutcomeAte
}

// award adds one food's worth of points and raises the speed once for every
// SpeedStep multiple the score crossed, up to MaxSpeed.
func award(s Session, r Rules) Session {
	before := s.Score
	s.Score += r.PointsPerFood
	s.FoodEaten++

	if r.SpeedStep > 0 {
		crossed := s.Score/r.SpeedStep - before/r.SpeedStep
		s.Speed = min(s.Speed+crossed, r.MaxSpeed)
	}
	return s
}
