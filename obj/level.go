package obj

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"driftwood/common"
	"driftwood/levels"
)

// LevelRenderer draws the tile map and its parallax background. All art is
// generated flat-color placeholder imagery.
type LevelRenderer struct {
	level *levels.Level

	solidImg    *ebiten.Image
	hazardImg   *ebiten.Image
	parallaxImg []*ebiten.Image
}

func NewLevelRenderer(level *levels.Level) *LevelRenderer {
	r := &LevelRenderer{level: level}

	r.solidImg = ebiten.NewImage(common.TileSize, common.TileSize)
	r.solidImg.Fill(color.NRGBA{R: 0x2e, G: 0x52, B: 0x3a, A: 0xff})
	r.hazardImg = ebiten.NewImage(common.TileSize, common.TileSize)
	r.hazardImg.Fill(color.NRGBA{R: 0xc8, G: 0x3a, B: 0x3a, A: 0xff})

	for _, layer := range level.Parallax {
		c, err := parseHexColor(layer.Color)
		if err != nil {
			c = color.NRGBA{R: 0x10, G: 0x2a, B: 0x40, A: 0xff}
		}
		h := int(layer.Height)
		if h <= 0 {
			h = common.BaseHeight
		}
		img := ebiten.NewImage(common.BaseWidth, h)
		img.Fill(c)
		r.parallaxImg = append(r.parallaxImg, img)
	}
	return r
}

// DrawBackground paints the parallax bands behind everything else.
func (r *LevelRenderer) DrawBackground(screen *ebiten.Image, cam *Camera) {
	vx, _ := cam.ViewTopLeft()
	for i, img := range r.parallaxImg {
		layer := r.level.Parallax[i]
		h := img.Bounds().Dy()

		// scroll at a fraction of the camera speed, wrapping horizontally
		offset := -vx * layer.Factor
		w := float64(img.Bounds().Dx())
		for x := mod(offset, w) - w; x < common.BaseWidth; x += w {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, float64(common.BaseHeight-h))
			screen.DrawImage(img, op)
		}
	}
}

// DrawTiles renders the visible slice of the tile grid.
func (r *LevelRenderer) DrawTiles(screen *ebiten.Image, cam *Camera) {
	vx, vy := cam.ViewTopLeft()

	minX := int(vx) / common.TileSize
	minY := int(vy) / common.TileSize
	maxX := minX + common.BaseWidth/common.TileSize + 1
	maxY := minY + common.BaseHeight/common.TileSize + 1

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			var img *ebiten.Image
			switch {
			case r.level.Solid(x, y):
				img = r.solidImg
			case r.level.Hazard(x, y):
				img = r.hazardImg
			default:
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x*common.TileSize)-vx, float64(y*common.TileSize)-vy)
			screen.DrawImage(img, op)
		}
	}
}

func mod(a, b float64) float64 {
	m := a - float64(int(a/b))*b
	if m < 0 {
		m += b
	}
	return m
}

func parseHexColor(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
