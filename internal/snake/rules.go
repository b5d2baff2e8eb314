package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// ErrInvalidRules is returned when a rule set cannot produce a playable game.
var ErrInvalidRules = errors.New("snake: invalid rules")

// Rules holds the tunable parameters of a session.
type Rules struct {
	Width         int // Grid width in cells
	Height        int // Grid height in cells
	PointsPerFood int // Score awarded per food item
	InitialSpeed  int // Ticks per second at session start
	MaxSpeed      int // Upper bound for Speed
	SpeedStep     int // Speed rises by one each time the score crosses a multiple of this; 0 disables
}

// DefaultRules returns the classic 40x30 board: 10 points per food, speed
// 10 ticks/s rising by one every 50 points up to 20.
func DefaultRules() Rules {
	return Rules{
		Width:         40,
		Height:        30,
		PointsPerFood: 10,
		InitialSpeed:  10,
		MaxSpeed:      20,
		SpeedStep:     50,
	}
}

// Validate reports whether the rules describe a playable game.
func (r Rules) Validate() error {
	switch {
	case r.Width < 2 || r.Height < 2:
		return fmt.Errorf("%w: grid must be at least 2x2, got %dx%d", ErrInvalidRules, r.Width, r.Height)
	case r.PointsPerFood < 1:
		return fmt.Errorf("%w: points per food must be positive, got %d", ErrInvalidRules, r.PointsPerFood)
	case r.InitialSpeed < 1:
		return fmt.Errorf("%w: initial speed must be positive, got %d", ErrInvalidRules, r.InitialSpeed)
	case r.MaxSpeed < r.InitialSpeed:
		return fmt.Errorf("%w: max speed %d is below initial speed %d", ErrInvalidRules, r.MaxSpeed, r.InitialSpeed)
	case r.SpeedStep < 0:
		return fmt.Errorf("%w: speed step must not be negative, got %d", ErrInvalidRules, r.SpeedStep)
	}
	return nil
}

// Bounds returns the playable area.
func (r Rules) Bounds() core.Rect {
	return core.NewRect(0, 0, r.Width, r.Height)
}

// Start returns the cell a new snake is spawned on.
func (r Rules) Start() Cell {
	x, y := r.Bounds().Center()
	return Cell{X: x, Y: y}
}
