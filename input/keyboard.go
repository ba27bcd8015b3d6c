package input

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyNames maps keymap spec names to ebiten keys. Only keys a platformer
// would plausibly bind are listed; unknown names fail keymap load.
var keyNames = map[string]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,
	"left": ebiten.KeyArrowLeft, "right": ebiten.KeyArrowRight,
	"up": ebiten.KeyArrowUp, "down": ebiten.KeyArrowDown,
	"space": ebiten.KeySpace, "escape": ebiten.KeyEscape,
	"tab": ebiten.KeyTab, "enter": ebiten.KeyEnter,
	"shift": ebiten.KeyShiftLeft, "control": ebiten.KeyControlLeft,
}

// DefaultKeymap is the binding used when no keymap spec is provided.
func DefaultKeymap() map[Action][]ebiten.Key {
	return map[Action][]ebiten.Key{
		ActionMoveLeft:      {ebiten.KeyA, ebiten.KeyArrowLeft},
		ActionMoveRight:     {ebiten.KeyD, ebiten.KeyArrowRight},
		ActionMoveUp:        {ebiten.KeyW, ebiten.KeyArrowUp},
		ActionMoveDown:      {ebiten.KeyS, ebiten.KeyArrowDown},
		ActionJump:          {ebiten.KeySpace},
		ActionPrimaryFire:   {ebiten.KeyJ},
		ActionSecondaryFire: {ebiten.KeyK},
		ActionWeaponNext:    {ebiten.KeyE},
		ActionWeaponPrev:    {ebiten.KeyQ},
		ActionPause:         {ebiten.KeyEscape},
	}
}

// ParseKeymap converts a name-based binding table (action name -> key
// names) into an ebiten keymap, erroring on unknown actions or keys.
func ParseKeymap(bindings map[string][]string) (map[Action][]ebiten.Key, error) {
	keymap := make(map[Action][]ebiten.Key, len(bindings))
	for actionName, keys := range bindings {
		action, ok := ActionByName(actionName)
		if !ok {
			return nil, fmt.Errorf("keymap: unknown action %q", actionName)
		}
		for _, name := range keys {
			key, ok := keyNames[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("keymap: unknown key %q for action %q", name, actionName)
			}
			keymap[action] = append(keymap[action], key)
		}
	}
	return keymap, nil
}

// KeyboardReader turns held keyboard keys into actions. Key state is
// accumulated from press/release edges while attached, so the reader can
// be detached from a surface and re-attached without stale keys carrying
// over; a key held across the re-attach is missed until its next edge.
type KeyboardReader struct {
	keymap   map[Action][]ebiten.Key
	held     map[ebiten.Key]bool
	attached bool
}

func NewKeyboardReader(keymap map[Action][]ebiten.Key) *KeyboardReader {
	if keymap == nil {
		keymap = DefaultKeymap()
	}
	return &KeyboardReader{
		keymap:   keymap,
		held:     make(map[ebiten.Key]bool),
		attached: true,
	}
}

func (r *KeyboardReader) Name() string { return "keyboard" }

// Attach starts listening with empty key state.
func (r *KeyboardReader) Attach() {
	r.attached = true
	clear(r.held)
}

// Detach stops listening and drops accumulated key state.
func (r *KeyboardReader) Detach() {
	r.attached = false
	clear(r.held)
}

func (r *KeyboardReader) Read(put func(Action)) {
	if !r.attached {
		return
	}

	for _, keys := range r.keymap {
		for _, key := range keys {
			if inpututil.IsKeyJustPressed(key) {
				r.held[key] = true
			}
			if inpututil.IsKeyJustReleased(key) {
				delete(r.held, key)
			}
		}
	}

	for action, keys := range r.keymap {
		for _, key := range keys {
			if r.held[key] {
				put(action)
				break
			}
		}
	}
}
