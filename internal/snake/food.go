package snake

import "math/rand"

// PlaceFood picks a uniformly random cell not covered by the snake.
// It samples from the explicit free-cell set, so it always terminates; when
// the snake fills the board it returns false and no food is placed.
func PlaceFood(snake []Cell, r Rules, rng *rand.Rand) (Cell, bool) {
	occupied := make(map[Cell]struct{}, len(snake))
	for _, seg := range snake {
		occupied[seg] = struct{}{}
	}

	free := make([]Cell, 0, max(0, r.Bounds().Area()-len(occupied)))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			c := Cell{X: x, Y: y}
			if _, taken := occupied[c]; !taken {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return Cell{X: -1, Y: -1}, false
	}
	return free[rng.Intn(len(free))], true
}
