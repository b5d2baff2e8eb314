package snake

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// Terminal layout.
const (
	HUDHeight     = 1  // Status line above the field
	MinGridWidth  = 10 // Smallest board a terminal frontend will shrink to
	MinGridHeight = 6
)

// FieldSize returns the screen area needed to draw a board of r, including
// the HUD line and the border.
func FieldSize(r Rules) (w, h int) {
	return r.Width + 2, r.Height + 2 + HUDHeight
}

// FitGrid shrinks the board of base so it fits a screen of the given size.
// ok is false when even the minimum board does not fit.
func FitGrid(base Rules, screenW, screenH int) (w, h int, ok bool) {
	w = min(base.Width, screenW-2)
	h = min(base.Height, screenH-2-HUDHeight)
	return w, h, w >= MinGridWidth && h >= MinGridHeight
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.state == StateMenu {
		g.renderMenu(dst)
		return
	}

	g.renderHUD(dst)
	ox, oy := g.fieldOrigin(dst)
	dst.DrawBoxColored(core.NewRect(ox, oy, g.rules.Width+2, g.rules.Height+2), core.ColorGray)

	if g.session.HasFood {
		dst.SetColored(ox+1+g.session.Food.X, oy+1+g.session.Food.Y, '*', core.ColorBrightRed)
	}
	// Body first so the head wins if cells ever overlap on a fatal tick.
	for i := len(g.session.Snake) - 1; i >= 0; i-- {
		seg := g.session.Snake[i]
		if i == 0 {
			dst.SetColored(ox+1+seg.X, oy+1+seg.Y, 'O', core.ColorBrightGreen)
		} else {
			dst.SetColored(ox+1+seg.X, oy+1+seg.Y, 'o', core.ColorGreen)
		}
	}

	switch g.state {
	case StatePaused:
		renderOverlay(dst, []overlayLine{
			{"PAUSED", core.ColorBrightWhite},
			{"", core.ColorDefault},
			{"Space - continue", core.ColorWhite},
			{"Esc - main menu", core.ColorWhite},
		})
	case StateGameOver:
		lines := []overlayLine{
			{"GAME OVER", core.ColorBrightRed},
			{"", core.ColorDefault},
			{fmt.Sprintf("Your score: %d", g.session.Score), core.ColorWhite},
		}
		if g.last != nil && g.last.NewRecord {
			lines = append(lines, overlayLine{"NEW RECORD!", core.ColorBrightYellow})
		}
		lines = append(lines,
			overlayLine{"", core.ColorDefault},
			overlayLine{"Space - play again", core.ColorWhite},
			overlayLine{"Esc - main menu", core.ColorWhite},
		)
		renderOverlay(dst, lines)
	}
}

// fieldOrigin returns the top-left corner of the field border, centered
// horizontally below the HUD.
func (g *Game) fieldOrigin(dst *core.Screen) (x, y int) {
	w, _ := FieldSize(g.rules)
	return max(0, (dst.Width()-w)/2), HUDHeight
}

// renderHUD draws the status line, using the widest layout that fits.
func (g *Game) renderHUD(dst *core.Screen) {
	x := 0
	for _, part := range hudLayout(g.session.Score, g.session.Speed, g.highScore, dst.Width()) {
		dst.DrawTextColored(x, 0, part.text, part.color)
		x += utf8.RuneCountInString(part.text)
	}
}

// hudLayout returns the score, speed and best parts of the status line.
// Narrow screens get abbreviated labels; the last layout is used even if it
// does not fit.
func hudLayout(score, speed, best, width int) []overlayLine {
	layouts := [][3]string{
		{" Score: %d", "  Speed: %d", "  Best: %d"},
		{"S:%d", " V:%d", " B:%d"},
		{"S%d", " V%d", " B%d"},
	}
	var parts []overlayLine
	for _, l := range layouts {
		parts = []overlayLine{
			{fmt.Sprintf(l[0], score), core.ColorBrightWhite},
			{fmt.Sprintf(l[1], speed), core.ColorWhite},
			{fmt.Sprintf(l[2], best), core.ColorYellow},
		}
		n := 0
		for _, p := range parts {
			n += utf8.RuneCountInString(p.text)
		}
		if n <= width {
			break
		}
	}
	return parts
}

// renderMenu draws the title screen.
func (g *Game) renderMenu(dst *core.Screen) {
	lines := []overlayLine{
		{"S N A K E", core.ColorBrightGreen},
		{"Snake Game", core.ColorWhite},
		{"", core.ColorDefault},
		{"Space - start game", core.ColorWhite},
		{"Arrows/WASD - steer", core.ColorWhite},
		{"Space (in game) - pause", core.ColorWhite},
		{"Esc - menu / quit", core.ColorWhite},
		{"", core.ColorDefault},
		{fmt.Sprintf("Best score: %d", g.highScore), core.ColorBrightYellow},
	}
	top := (dst.Height() - len(lines)) / 2
	for i, l := range lines {
		dst.DrawTextCenteredColored(top+i, l.text, l.color)
	}
	// Rule on the blank line under the title.
	ruleW := min(dst.Width(), 15)
	dst.DrawHLine((dst.Width()-ruleW)/2, top+2, ruleW, '─')
}

type overlayLine struct {
	text  string
	color core.Color
}

// renderOverlay draws a centered bordered box holding the given lines.
func renderOverlay(dst *core.Screen, lines []overlayLine) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(l.text))
	}
	boxW := maxLen + 6
	boxH := len(lines) + 2
	box := core.NewRect(
		core.Clamp((dst.Width()-boxW)/2, 0, dst.Width()),
		core.Clamp((dst.Height()-boxH)/2, 0, dst.Height()),
		boxW, boxH,
	)
	inner := box.Inset(1)

	dst.DrawBoxColored(box, core.ColorWhite)
	dst.DrawRect(inner, ' ')
	for i, l := range lines {
		dst.DrawTextCenteredColored(inner.Y+i, l.text, l.color)
	}
}
