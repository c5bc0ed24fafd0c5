// Package device polls ebiten keyboard and gamepad state into input.State.
package device

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/ecs/input"
)

const stickDeadzone = 0.2

// Keyboard reads the keyboard and the first standard gamepad.
type Keyboard struct {
	input.State
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Poll refreshes held buttons. Call once per frame before the world update.
func (k *Keyboard) Poll() {
	if k == nil {
		return
	}

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	jump := ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	restart := ebiten.IsKeyPressed(ebiten.KeyR) || ebiten.IsKeyPressed(ebiten.KeyEnter)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -stickDeadzone {
			left = true
		}
		if leftX > stickDeadzone {
			right = true
		}
		left = left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		right = right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		jump = jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		restart = restart || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}

	k.Set(input.ButtonLeft, left)
	k.Set(input.ButtonRight, right)
	k.Set(input.ButtonJump, jump)
	k.Set(input.ButtonRestart, restart)
}
