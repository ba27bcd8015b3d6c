package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"driftwood/common"
)

// TouchReader implements a virtual joystick plus on-screen buttons for
// touch devices. A touch starting on the left half of the screen anchors a
// joystick at its initial position; drag offsets are digitalized through
// the deadzone. Touches on the right half hit fixed button regions.
type TouchReader struct {
	deadzone float64

	// joystickRadius is the drag distance treated as full deflection.
	joystickRadius float64

	jumpButton   common.Rect
	fireButton   common.Rect
	switchButton common.Rect

	// anchor of the active joystick touch, keyed by touch ID
	anchors map[ebiten.TouchID]common.Vec2
	touches []ebiten.TouchID
}

func NewTouchReader(deadzone float64) *TouchReader {
	const size = 96
	return &TouchReader{
		deadzone:       deadzone,
		joystickRadius: 64,
		jumpButton: common.Rect{
			X: common.BaseWidth - size*2 - 32, Y: common.BaseHeight - size - 32,
			Width: size, Height: size,
		},
		fireButton: common.Rect{
			X: common.BaseWidth - size - 16, Y: common.BaseHeight - size*2 - 48,
			Width: size, Height: size,
		},
		switchButton: common.Rect{
			X: common.BaseWidth - size - 16, Y: 32,
			Width: size, Height: size,
		},
		anchors: make(map[ebiten.TouchID]common.Vec2),
	}
}

func (r *TouchReader) Name() string { return "touch" }

// Attach resets joystick anchors; an in-flight touch re-anchors where it
// currently is, mirroring the keyboard reader's empty re-attach state.
func (r *TouchReader) Attach() {
	clear(r.anchors)
}

func (r *TouchReader) Detach() {
	clear(r.anchors)
}

func (r *TouchReader) Read(put func(Action)) {
	r.touches = ebiten.AppendTouchIDs(r.touches[:0])
	if len(r.touches) == 0 && len(r.anchors) == 0 {
		return
	}

	live := make(map[ebiten.TouchID]bool, len(r.touches))
	for _, id := range r.touches {
		live[id] = true
		x, y := ebiten.TouchPosition(id)
		fx, fy := float64(x), float64(y)

		if fx < common.BaseWidth/2 {
			anchor, ok := r.anchors[id]
			if !ok {
				anchor = common.Vec2{X: fx, Y: fy}
				r.anchors[id] = anchor
			}
			dx := (fx - anchor.X) / r.joystickRadius
			dy := (fy - anchor.Y) / r.joystickRadius
			switch Digitalize(common.Clamp(dx, -1, 1), r.deadzone) {
			case -1:
				put(ActionMoveLeft)
			case 1:
				put(ActionMoveRight)
			}
			switch Digitalize(common.Clamp(dy, -1, 1), r.deadzone) {
			case -1:
				put(ActionMoveUp)
			case 1:
				put(ActionMoveDown)
			}
			continue
		}

		if r.jumpButton.Contains(fx, fy) {
			put(ActionJump)
		}
		if r.fireButton.Contains(fx, fy) {
			put(ActionPrimaryFire)
		}
		if r.switchButton.Contains(fx, fy) {
			put(ActionWeaponNext)
		}
	}

	// drop anchors for released touches
	for id := range r.anchors {
		if !live[id] {
			delete(r.anchors, id)
		}
	}
}
