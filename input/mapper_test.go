package input

import "testing"

// stubReader contributes a fixed action list; tests mutate Actions between
// mapper updates to simulate device state changing across frames.
type stubReader struct {
	name    string
	Actions []Action
}

func (s *stubReader) Name() string { return s.name }

func (s *stubReader) Read(put func(Action)) {
	for _, a := range s.Actions {
		put(a)
	}
}

func TestMapperJustPressedEdge(t *testing.T) {
	dev := &stubReader{name: "stub"}
	m := NewMapper(dev)

	// frame 1: nothing held
	m.Update()
	if m.IsActionActive(ActionJump) || m.IsActionJustPressed(ActionJump) {
		t.Fatalf("jump should be inactive before any input")
	}

	// frame 2: jump pressed -> active and just-pressed
	dev.Actions = []Action{ActionJump}
	m.Update()
	if !m.IsActionActive(ActionJump) {
		t.Fatalf("jump should be active on press frame")
	}
	if !m.IsActionJustPressed(ActionJump) {
		t.Fatalf("jump should be just-pressed on press frame")
	}
	// querying again in the same frame still observes the edge
	if !m.IsActionJustPressed(ActionJump) {
		t.Fatalf("edge should not be consumed by querying")
	}

	// frame 3: jump held -> active but not just-pressed
	m.Update()
	if !m.IsActionActive(ActionJump) {
		t.Fatalf("jump should stay active while held")
	}
	if m.IsActionJustPressed(ActionJump) {
		t.Fatalf("held jump must not report just-pressed")
	}

	// frame 4: released
	dev.Actions = nil
	m.Update()
	if m.IsActionActive(ActionJump) || m.IsActionJustPressed(ActionJump) {
		t.Fatalf("released jump should be fully inactive")
	}

	// frame 5: pressed again -> a fresh edge
	dev.Actions = []Action{ActionJump}
	m.Update()
	if !m.IsActionJustPressed(ActionJump) {
		t.Fatalf("re-press should produce a new edge")
	}
}

func TestMapperUnionAcrossReaders(t *testing.T) {
	keyboard := &stubReader{name: "keyboard", Actions: []Action{ActionMoveLeft, ActionJump}}
	gamepad := &stubReader{name: "gamepad", Actions: []Action{ActionMoveLeft, ActionPrimaryFire}}
	m := NewMapper(keyboard, gamepad)

	m.Update()

	for _, a := range []Action{ActionMoveLeft, ActionJump, ActionPrimaryFire} {
		if !m.IsActionActive(a) {
			t.Fatalf("action %s should be active after union merge", a)
		}
	}
	if m.IsActionActive(ActionMoveRight) {
		t.Fatalf("move_right was never contributed")
	}
}

func TestMapperSkipsNilReaders(t *testing.T) {
	dev := &stubReader{name: "stub", Actions: []Action{ActionPause}}
	m := NewMapper(nil, dev, nil)

	m.Update()
	if !m.IsActionActive(ActionPause) {
		t.Fatalf("surviving reader should still feed the mapper")
	}
}

func TestMapperAxis(t *testing.T) {
	cases := []struct {
		name    string
		actions []Action
		wantX   int
		wantY   int
	}{
		{"idle", nil, 0, 0},
		{"left", []Action{ActionMoveLeft}, -1, 0},
		{"right", []Action{ActionMoveRight}, 1, 0},
		{"up", []Action{ActionMoveUp}, 0, -1},
		{"down", []Action{ActionMoveDown}, 0, 1},
		{"diagonal", []Action{ActionMoveRight, ActionMoveDown}, 1, 1},
		{"opposing_cancel", []Action{ActionMoveLeft, ActionMoveRight}, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dev := &stubReader{name: "stub", Actions: c.actions}
			m := NewMapper(dev)
			m.Update()
			x, y := m.Axis()
			if x != c.wantX || y != c.wantY {
				t.Fatalf("Axis() = (%d, %d), want (%d, %d)", x, y, c.wantX, c.wantY)
			}
		})
	}
}

func TestParseKeymap(t *testing.T) {
	cases := []struct {
		name     string
		bindings map[string][]string
		wantErr  bool
	}{
		{"valid", map[string][]string{"jump": {"space"}, "move_left": {"a", "left"}}, false},
		{"unknown_action", map[string][]string{"fly": {"space"}}, true},
		{"unknown_key", map[string][]string{"jump": {"hyper"}}, true},
		{"mixed_case_key", map[string][]string{"jump": {"Space"}}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseKeymap(c.bindings)
			if (err != nil) != c.wantErr {
				t.Fatalf("ParseKeymap error = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}

func TestActionNameRoundTrip(t *testing.T) {
	for a := Action(0); a < actionCount; a++ {
		got, ok := ActionByName(a.String())
		if !ok || got != a {
			t.Fatalf("ActionByName(%q) = %v, %v; want %v", a.String(), got, ok, a)
		}
	}
	if _, ok := ActionByName("unknown"); ok {
		t.Fatalf("unknown action name should not resolve")
	}
}
