package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

func TestFitGrid(t *testing.T) {
	base := DefaultRules()

	tests := []struct {
		name         string
		screenW      int
		screenH      int
		wantW, wantH int
		wantOK       bool
	}{
		{"large terminal keeps board", 120, 50, 40, 30, true},
		{"exact fit", 42, 33, 40, 30, true},
		{"narrow terminal", 30, 50, 28, 30, true},
		{"short terminal", 120, 20, 40, 17, true},
		{"too small", 11, 8, 9, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h, ok := FitGrid(base, tc.screenW, tc.screenH)
			if w != tc.wantW || h != tc.wantH || ok != tc.wantOK {
				t.Errorf("FitGrid = (%d, %d, %v), expected (%d, %d, %v)", w, h, ok, tc.wantW, tc.wantH, tc.wantOK)
			}
		})
	}
}

func TestRenderMenu(t *testing.T) {
	g, err := New(DefaultRules(), NewMemoryScores(70), 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	screen := core.NewScreen(FieldSize(g.Rules()))
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"S N A K E", "Space - start game", "Best score: 70", strings.Repeat("─", 15)} {
		if !strings.Contains(out, want) {
			t.Errorf("menu missing %q", want)
		}
	}
}

func TestRenderPlaying(t *testing.T) {
	g, err := New(testRules(), nil, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Handle(core.ActionConfirm)
	g.session.Snake = []Cell{{X: 3, Y: 2}, {X: 2, Y: 2}}
	g.session.Food = Cell{X: 7, Y: 5}
	g.session.HasFood = true
	g.session.Score = 10

	screen := core.NewScreen(FieldSize(g.Rules()))
	g.Render(screen)

	// A 10-wide board leaves 12 columns: only the shortest HUD fits.
	if row := screen.Row(0); !strings.HasPrefix(row, "S10 V10 B0") {
		t.Errorf("HUD = %q, expected %q", row, "S10 V10 B0")
	}
	// Field border starts below the HUD; cells are offset by one for it.
	if got := screen.Get(0, HUDHeight); got != '┌' {
		t.Errorf("border corner = %q", got)
	}
	if c := screen.GetCell(1+3, HUDHeight+1+2); c.Rune != 'O' || c.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v", c)
	}
	if got := screen.Get(1+2, HUDHeight+1+2); got != 'o' {
		t.Errorf("body cell = %q", got)
	}
	if c := screen.GetCell(1+7, HUDHeight+1+5); c.Rune != '*' || c.Color != core.ColorBrightRed {
		t.Errorf("food cell = %+v", c)
	}
}

func TestRenderHUDLayouts(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  string
	}{
		{"wide", 40, " Score: 10  Speed: 12  Best: 70"},
		{"compact", 20, "S:10 V:12 B:70"},
		{"narrow", 12, "S10 V12 B70"},
		{"clipped", 6, "S10 V1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New(testRules(), NewMemoryScores(70), 1)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			g.Handle(core.ActionConfirm)
			g.session.Score = 10
			g.session.Speed = 12

			_, h := FieldSize(g.Rules())
			screen := core.NewScreen(tc.width, h)
			g.Render(screen)

			if row := strings.TrimRight(screen.Row(0), " "); row != tc.want {
				t.Errorf("HUD = %q, expected %q", row, tc.want)
			}
		})
	}
}

func TestRenderOverlays(t *testing.T) {
	g, err := New(DefaultRules(), NewMemoryScores(0), 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	screen := core.NewScreen(FieldSize(g.Rules()))

	g.Handle(core.ActionConfirm)
	g.Handle(core.ActionPause)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}
	// "Space - continue" plus padding makes a 22-wide box.
	if !strings.Contains(screen.String(), "┌"+strings.Repeat("─", 20)+"┐") {
		t.Errorf("paused overlay has no border:\n%s", screen.String())
	}

	g.Handle(core.ActionPause)
	g.session.Score = 30
	g.session.HasFood = false
	for g.State() == StatePlaying {
		g.Step()
	}
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"GAME OVER", "Your score: 30", "NEW RECORD!"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
}

func TestRenderOverlayClampsToScreen(t *testing.T) {
	screen := core.NewScreen(10, 4)
	renderOverlay(screen, []overlayLine{{"GAME OVER", core.ColorWhite}})

	if got := screen.Row(0); !strings.HasPrefix(got, "┌") {
		t.Errorf("row 0 = %q, want the box pinned to the left edge", got)
	}
	if got := screen.Row(1); !strings.Contains(got, "GAME OVER") {
		t.Errorf("row 1 = %q, want the text inside the box", got)
	}
	if got := screen.Row(2); !strings.HasPrefix(got, "└") {
		t.Errorf("row 2 = %q, want the bottom border", got)
	}
}
