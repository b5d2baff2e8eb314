package core

import "time"

// maxCatchUp bounds how many steps a single Advance may return, so a stalled
// frontend (window dragged, laptop suspended) does not replay seconds of play.
const maxCatchUp = 4

// Pacer converts elapsed wall time into simulation steps at a variable rate.
// Frontends with a fixed frame rate use it to run the snake at Speed ticks/s.
type Pacer struct {
	acc time.Duration
}

// Advance adds elapsed time and returns how many steps are due at rate steps
// per second. A non-positive rate never produces steps.
func (p *Pacer) Advance(elapsed time.Duration, rate int) int {
	if rate <= 0 {
		p.acc = 0
		return 0
	}
	interval := time.Second / time.Duration(rate)
	p.acc += elapsed

	steps := 0
	for p.acc >= interval && steps < maxCatchUp {
		p.acc -= interval
		steps++
	}
	if steps == maxCatchUp {
		p.acc = 0
	}
	return steps
}

// Reset drops any accumulated time.
func (p *Pacer) Reset() {
	p.acc = 0
}
