package window

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/snake-arcade/internal/snake"
)

var (
	colorBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorGrid       = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	colorBody       = color.RGBA{R: 0, G: 200, B: 0, A: 255}
	colorHead       = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	colorFood       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorText       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorDim        = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	colorRecord     = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	colorShade      = color.RGBA{R: 0, G: 0, B: 0, A: 170}
)

// Draw renders the current state.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if a.game.State() == snake.StateMenu {
		a.drawMenu(screen)
		a.drawStatus(screen)
		return
	}

	a.drawBoard(screen)
	a.drawHUD(screen)

	switch a.game.State() {
	case snake.StatePaused:
		a.drawOverlay(screen, []line{
			{"PAUSED", 3, colorText},
			{"", 1, colorText},
			{"SPACE - continue", 1.5, colorDim},
			{"ESC - main menu", 1.5, colorDim},
		})
	case snake.StateGameOver:
		lines := []line{
			{"GAME OVER", 3, colorFood},
			{"", 1, colorText},
			{fmt.Sprintf("Score: %d", a.game.Score()), 2, colorText},
		}
		if sum := a.game.LastSummary(); sum != nil && sum.NewRecord {
			lines = append(lines, line{"NEW RECORD!", 2, colorRecord})
		}
		lines = append(lines,
			line{"", 1, colorText},
			line{"SPACE - play again", 1.5, colorDim},
			line{"ESC - main menu", 1.5, colorDim},
			line{"C - copy result", 1.5, colorDim},
		)
		a.drawOverlay(screen, lines)
	}
	a.drawStatus(screen)
}

// drawBoard draws the grid, the food and the snake.
func (a *App) drawBoard(screen *ebiten.Image) {
	cs := float32(a.opts.CellSize)
	r := a.game.Rules()
	w, h := float32(r.Width)*cs, float32(r.Height)*cs

	for x := 1; x < r.Width; x++ {
		vector.StrokeLine(screen, float32(x)*cs, 0, float32(x)*cs, h, 1, colorGrid, false)
	}
	for y := 1; y < r.Height; y++ {
		vector.StrokeLine(screen, 0, float32(y)*cs, w, float32(y)*cs, 1, colorGrid, false)
	}

	s := a.game.Session()
	if s.HasFood {
		cx := float32(s.Food.X)*cs + cs/2
		cy := float32(s.Food.Y)*cs + cs/2
		radius := cs/2 - 2
		vector.FillCircle(screen, cx, cy, radius, colorFood, true)
		vector.StrokeCircle(screen, cx, cy, radius, 2, colorText, true)
	}

	for i := len(s.Snake) - 1; i >= 0; i-- {
		seg := s.Snake[i]
		x0, y0 := float32(seg.X)*cs, float32(seg.Y)*cs
		c := colorBody
		if i == 0 {
			c = colorHead
		}
		vector.FillRect(screen, x0+1, y0+1, cs-2, cs-2, c, false)
	}
	if len(s.Snake) > 0 {
		head := s.Head()
		for _, eye := range eyePositions(s.Heading, float32(head.X)*cs, float32(head.Y)*cs, cs) {
			vector.FillCircle(screen, eye[0], eye[1], cs/7, colorText, true)
			vector.FillCircle(screen, eye[0], eye[1], cs/14, colorBackground, true)
		}
	}
}

// eyePositions returns the centers of the two eyes of a head cell at
// (x0, y0) of size cs, placed towards the heading.
func eyePositions(d snake.Direction, x0, y0, cs float32) [2][2]float32 {
	near, far := cs*0.3, cs*0.7
	switch d {
	case snake.DirUp:
		return [2][2]float32{{x0 + near, y0 + near}, {x0 + far, y0 + near}}
	case snake.DirDown:
		return [2][2]float32{{x0 + near, y0 + far}, {x0 + far, y0 + far}}
	case snake.DirLeft:
		return [2][2]float32{{x0 + near, y0 + near}, {x0 + near, y0 + far}}
	default:
		return [2][2]float32{{x0 + far, y0 + near}, {x0 + far, y0 + far}}
	}
}

// drawHUD draws the score line.
func (a *App) drawHUD(screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())
	a.drawText(screen, fmt.Sprintf("Score: %d  Speed: %d", a.game.Score(), a.game.Speed()), 8, 6, 1.5, colorText, text.AlignStart)
	a.drawText(screen, fmt.Sprintf("High Score: %d", a.game.HighScore()), w-8, 6, 1.5, colorText, text.AlignEnd)
}

// drawMenu draws the title screen.
func (a *App) drawMenu(screen *ebiten.Image) {
	b := screen.Bounds()
	cx := float64(b.Dx()) / 2
	y := float64(b.Dy()) / 4

	a.drawText(screen, "SNAKE GAME", cx, y, 4, colorHead, text.AlignCenter)
	y += 90
	for _, l := range []string{
		"SPACE - start game",
		"Arrows / WASD - steer",
		"SPACE or P - pause",
		"ESC - quit",
	} {
		a.drawText(screen, l, cx, y, 2, colorText, text.AlignCenter)
		y += 34
	}
	y += 20
	a.drawText(screen, fmt.Sprintf("High Score: %d", a.game.HighScore()), cx, y, 2, colorRecord, text.AlignCenter)
}

type line struct {
	text  string
	scale float64
	clr   color.Color
}

// drawOverlay dims the board and draws centered lines of text.
func (a *App) drawOverlay(screen *ebiten.Image, lines []line) {
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), colorShade, false)

	height := 0.0
	for _, l := range lines {
		height += lineHeight(l.scale)
	}
	cx := float64(b.Dx()) / 2
	y := (float64(b.Dy()) - height) / 2
	for _, l := range lines {
		if l.text != "" {
			a.drawText(screen, l.text, cx, y, l.scale, l.clr, text.AlignCenter)
		}
		y += lineHeight(l.scale)
	}
}

// drawStatus shows a short-lived message at the bottom of the window.
func (a *App) drawStatus(screen *ebiten.Image) {
	if a.status == "" || a.now().After(a.statusUntil) {
		return
	}
	b := screen.Bounds()
	a.drawText(screen, a.status, float64(b.Dx())/2, float64(b.Dy())-28, 1.5, colorRecord, text.AlignCenter)
}

// drawText draws s with its top edge at y, aligned horizontally around x.
func (a *App) drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(dst, s, a.face, op)
}

func lineHeight(scale float64) float64 {
	return 16 * scale
}

// resultText is the clipboard summary of a finished session.
func resultText(sum *snake.Summary, best int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Snake: %d points, %d food, length %d", sum.Score, sum.FoodEaten, sum.Length)
	switch sum.Reason {
	case snake.EndWall:
		b.WriteString(", hit the wall")
	case snake.EndSelf:
		b.WriteString(", bit its tail")
	}
	if sum.NewRecord {
		b.WriteString(". New record!")
	} else {
		fmt.Fprintf(&b, ". Best: %d", best)
	}
	return b.String()
}
