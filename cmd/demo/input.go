package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/duskforge/portalcast/engine"
)

// watchedKeys is the fixed scancode-to-ebiten.Key mapping the engine's
// Player recognizes: {MoveForward: 90|87 (Z/W), MoveBackward: 83 (S),
// LookLeft: 81|65 (Q/A), LookRight: 68 (D), Jump: 32 (Space),
// Interact: 70 (F)}. Unlisted keys are never forwarded.
var watchedKeys = map[ebiten.Key]int{
	ebiten.KeyZ:     engine.KeyMoveForward,
	ebiten.KeyW:     engine.KeyMoveForward2,
	ebiten.KeyS:     engine.KeyMoveBackward,
	ebiten.KeyQ:     engine.KeyLookLeft,
	ebiten.KeyA:     engine.KeyLookLeft2,
	ebiten.KeyD:     engine.KeyLookRight,
	ebiten.KeySpace: engine.KeyJump,
	ebiten.KeyF:     engine.KeyInteract,
}

// interactHeld records whether the interact key was pressed on this tick's
// poll, so the host can tell Game.Update apart from a plain walk frame when
// deciding whether to publish a door-trigger notification.
var interactHeld bool

// pollInput forwards every watched key's press/release edges to the game
// for this tick. Held keys generate no repeat events; the engine tracks
// on/off state itself.
func pollInput(g *gameHost) {
	interactHeld = false
	for key, code := range watchedKeys {
		switch {
		case inpututil.IsKeyJustPressed(key):
			g.game.ProcessEvent(code, true)
			if code == engine.KeyInteract {
				interactHeld = true
			}
		case inpututil.IsKeyJustReleased(key):
			g.game.ProcessEvent(code, false)
		}
	}
}
