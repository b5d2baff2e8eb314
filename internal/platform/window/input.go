package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// keyBindings maps keys to actions, checked in order each frame.
var keyBindings = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, core.ActionUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, core.ActionDown},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, core.ActionLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, core.ActionRight},
	{[]ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}, core.ActionConfirm},
	{[]ebiten.Key{ebiten.KeyP}, core.ActionPause},
	{[]ebiten.Key{ebiten.KeyEscape}, core.ActionBack},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart},
	{[]ebiten.Key{ebiten.KeyQ}, core.ActionQuit},
}

// pollKeys records the action of every key pressed this frame.
func pollKeys(frame *core.InputFrame, justPressed func(ebiten.Key) bool) {
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if justPressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}
}

func inpututilPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func copyPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyC)
}
