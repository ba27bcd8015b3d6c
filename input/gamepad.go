package input

import "github.com/hajimehoshi/ebiten/v2"

// GamepadReader maps the first connected standard-layout gamepad to
// actions. The left stick is digitalized per axis through the configured
// deadzone; the d-pad contributes the same movement actions.
type GamepadReader struct {
	deadzone float64
}

func NewGamepadReader(deadzone float64) *GamepadReader {
	return &GamepadReader{deadzone: deadzone}
}

func (r *GamepadReader) Name() string { return "gamepad" }

func (r *GamepadReader) Read(put func(Action)) {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return
	}
	id := ids[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return
	}

	lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	switch Digitalize(lx, r.deadzone) {
	case -1:
		put(ActionMoveLeft)
	case 1:
		put(ActionMoveRight)
	}
	switch Digitalize(ly, r.deadzone) {
	case -1:
		put(ActionMoveUp)
	case 1:
		put(ActionMoveDown)
	}

	pressed := func(b ebiten.StandardGamepadButton) bool {
		return ebiten.IsStandardGamepadButtonPressed(id, b)
	}

	if pressed(ebiten.StandardGamepadButtonLeftLeft) {
		put(ActionMoveLeft)
	}
	if pressed(ebiten.StandardGamepadButtonLeftRight) {
		put(ActionMoveRight)
	}
	if pressed(ebiten.StandardGamepadButtonLeftTop) {
		put(ActionMoveUp)
	}
	if pressed(ebiten.StandardGamepadButtonLeftBottom) {
		put(ActionMoveDown)
	}

	if pressed(ebiten.StandardGamepadButtonRightBottom) {
		put(ActionJump)
	}
	if pressed(ebiten.StandardGamepadButtonRightLeft) {
		put(ActionPrimaryFire)
	}
	if pressed(ebiten.StandardGamepadButtonRightTop) {
		put(ActionSecondaryFire)
	}
	if pressed(ebiten.StandardGamepadButtonFrontTopRight) {
		put(ActionWeaponNext)
	}
	if pressed(ebiten.StandardGamepadButtonFrontTopLeft) {
		put(ActionWeaponPrev)
	}
	if pressed(ebiten.StandardGamepadButtonCenterRight) {
		put(ActionPause)
	}
}
