// Package input resolves raw device state into per-frame game actions.
package input

// Action is a symbolic game intent. Device readers translate their own
// raw state into actions; gameplay code only ever sees actions.
type Action uint8

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionPrimaryFire
	ActionSecondaryFire
	ActionWeaponNext
	ActionWeaponPrev
	ActionPause

	actionCount
)

var actionNames = [actionCount]string{
	ActionMoveLeft:      "move_left",
	ActionMoveRight:     "move_right",
	ActionMoveUp:        "move_up",
	ActionMoveDown:      "move_down",
	ActionJump:          "jump",
	ActionPrimaryFire:   "primary_fire",
	ActionSecondaryFire: "secondary_fire",
	ActionWeaponNext:    "weapon_next",
	ActionWeaponPrev:    "weapon_prev",
	ActionPause:         "pause",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ActionByName resolves a spec/keymap name back to an Action.
func ActionByName(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

// ActionSet is a bitmask over all actions. The zero value is empty.
type ActionSet uint16

func (s ActionSet) Has(a Action) bool {
	return s&(1<<a) != 0
}

func (s *ActionSet) Add(a Action) {
	*s |= 1 << a
}

func (s *ActionSet) Clear() {
	*s = 0
}
