package levels

import "testing"

func TestLoadTidepool(t *testing.T) {
	lvl, err := Load("tidepool.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lvl.Width() != 48 || lvl.Height() != 20 {
		t.Fatalf("dimensions = %dx%d, want 48x20", lvl.Width(), lvl.Height())
	}
	if !lvl.Solid(0, 19) {
		t.Fatalf("bottom row should be solid")
	}
	if !lvl.Hazard(24, 18) {
		t.Fatalf("expected a hazard at (24, 18)")
	}
	if lvl.Solid(lvl.SpawnX, lvl.SpawnY) {
		t.Fatalf("spawn tile must be empty")
	}
	if len(lvl.Enemies) == 0 {
		t.Fatalf("level should place enemies")
	}
}

func TestTileQueriesOutOfBounds(t *testing.T) {
	lvl := &Level{Rows: []string{"#."}}
	cases := []struct {
		name string
		x, y int
	}{
		{"negative_x", -1, 0},
		{"negative_y", 0, -1},
		{"past_width", 2, 0},
		{"past_height", 0, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if lvl.Solid(c.x, c.y) || lvl.Hazard(c.x, c.y) {
				t.Fatalf("out-of-bounds tile (%d,%d) must be empty", c.x, c.y)
			}
		})
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		lvl  Level
	}{
		{"no_rows", Level{Name: "x"}},
		{"ragged_rows", Level{Name: "x", Rows: []string{"##", "#"}}},
		{"unknown_tile", Level{Name: "x", Rows: []string{"#?"}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.lvl.validate(); err == nil {
				t.Fatalf("validate should reject %s", c.name)
			}
		})
	}
}
