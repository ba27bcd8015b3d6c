package main

import (
	"testing"

	"driftwood/portal"
)

func TestNewGameWiresEverything(t *testing.T) {
	g, err := NewGame("tidepool.json", false, false, portal.Noop{})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	defer g.Shutdown()

	if g.player == nil {
		t.Fatalf("game should build a player")
	}
	if g.player.Weapons().Current() == nil {
		t.Fatalf("a weapon should be selected on start")
	}
	if len(g.enemies) == 0 {
		t.Fatalf("level enemies should spawn")
	}

	// update order per frame: input, then status, then weapons, then
	// movement and physics; several frames must run cleanly headless
	for i := 0; i < 5; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update frame %d: %v", i, err)
		}
	}
}

func TestNewGameRejectsMissingLevel(t *testing.T) {
	if _, err := NewGame("nope.json", false, false, portal.Noop{}); err == nil {
		t.Fatalf("missing level should fail game construction")
	}
}
