package core

import (
	"testing"
	"time"
)

func TestPacerAdvance(t *testing.T) {
	var p Pacer

	// 10 steps/s = one step every 100ms; 60 frames of ~16.7ms is one second.
	frame := time.Second / 60
	total := 0
	for range 60 {
		total += p.Advance(frame, 10)
	}
	if total < 9 || total > 10 {
		t.Errorf("expected ~10 steps in one second at rate 10, got %d", total)
	}
}

func TestPacerRateChange(t *testing.T) {
	var p Pacer

	if got := p.Advance(50*time.Millisecond, 20); got != 1 {
		t.Errorf("Advance(50ms, 20) = %d, expected 1", got)
	}
	if got := p.Advance(50*time.Millisecond, 10); got != 0 {
		t.Errorf("Advance(50ms, 10) = %d, expected 0 (half an interval)", got)
	}
	if got := p.Advance(50*time.Millisecond, 10); got != 1 {
		t.Errorf("Advance(50ms, 10) = %d, expected 1", got)
	}
}

func TestPacerCatchUpIsBounded(t *testing.T) {
	var p Pacer

	if got := p.Advance(10*time.Second, 20); got != maxCatchUp {
		t.Errorf("Advance(10s, 20) = %d, expected %d", got, maxCatchUp)
	}
	// The backlog is dropped, not carried into the next frame.
	if got := p.Advance(0, 20); got != 0 {
		t.Errorf("Advance(0, 20) after catch-up = %d, expected 0", got)
	}
}

func TestPacerZeroRate(t *testing.T) {
	var p Pacer
	if got := p.Advance(time.Second, 0); got != 0 {
		t.Errorf("Advance with rate 0 = %d, expected 0", got)
	}
}
