// Package levels loads the embedded tile maps.
package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
)

//go:embed *.json
var LevelsFS embed.FS

const (
	TileEmpty  = '.'
	TileSolid  = '#'
	TileHazard = '^'
)

// Level is a tile map authored as rows of characters plus spawn metadata.
type Level struct {
	Name string `json:"name"`
	// Rows is the grid top-down, one character per tile.
	Rows []string `json:"rows"`

	// player spawn in tile coordinates
	SpawnX int `json:"spawn_x"`
	SpawnY int `json:"spawn_y"`

	Enemies []Spawn `json:"enemies,omitempty"`

	Parallax []ParallaxLayer `json:"parallax,omitempty"`
}

// Spawn places an enemy at tile coordinates.
type Spawn struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ParallaxLayer is a flat-colored background band scrolling at a fraction
// of the camera speed.
type ParallaxLayer struct {
	Color string `json:"color"`
	// Factor is the scroll speed relative to the camera; 0 is fixed sky,
	// 1 moves with the foreground.
	Factor float64 `json:"factor"`
	// Height is the band height in pixels from the bottom of the view.
	Height float64 `json:"height"`
}

func (l *Level) Width() int {
	if len(l.Rows) == 0 {
		return 0
	}
	return len(l.Rows[0])
}

func (l *Level) Height() int { return len(l.Rows) }

func (l *Level) tileAt(x, y int) byte {
	if y < 0 || y >= len(l.Rows) {
		return TileEmpty
	}
	row := l.Rows[y]
	if x < 0 || x >= len(row) {
		return TileEmpty
	}
	return row[x]
}

// Solid reports whether the tile at (x, y) blocks movement.
func (l *Level) Solid(x, y int) bool { return l.tileAt(x, y) == TileSolid }

// Hazard reports whether the tile at (x, y) hurts on touch.
func (l *Level) Hazard(x, y int) bool { return l.tileAt(x, y) == TileHazard }

func (l *Level) validate() error {
	if len(l.Rows) == 0 {
		return fmt.Errorf("level %q has no rows", l.Name)
	}
	width := len(l.Rows[0])
	if width == 0 {
		return fmt.Errorf("level %q has empty rows", l.Name)
	}
	for i, row := range l.Rows {
		if len(row) != width {
			return fmt.Errorf("level %q row %d is %d wide, want %d", l.Name, i, len(row), width)
		}
		for j := 0; j < len(row); j++ {
			switch row[j] {
			case TileEmpty, TileSolid, TileHazard:
			default:
				return fmt.Errorf("level %q row %d: unknown tile %q", l.Name, i, row[j])
			}
		}
	}
	return nil
}

// Load reads and validates an embedded level by file name.
func Load(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}
