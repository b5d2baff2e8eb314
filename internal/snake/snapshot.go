package snake

// Snapshot captures the observable game state for determinism tests and
// the `check` smoke test.
type Snapshot struct {
	State     State
	Ticks     uint64
	Score     int
	HighScore int
	Speed     int
	FoodEaten int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       Direction
	FoodX     int
	FoodY     int
	HasFood   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	head := s.Head()
	return Snapshot{
		State:     g.state,
		Ticks:     s.Ticks,
		Score:     s.Score,
		HighScore: g.highScore,
		Speed:     s.Speed,
		FoodEaten: s.FoodEaten,
		SnakeLen:  len(s.Snake),
		HeadX:     head.X,
		HeadY:     head.Y,
		Dir:       s.Heading,
		FoodX:     s.Food.X,
		FoodY:     s.Food.Y,
		HasFood:   s.HasFood,
	}
}
