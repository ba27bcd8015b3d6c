package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"

	"driftwood/common"
	"driftwood/input"
	"driftwood/levels"
	"driftwood/logging"
	"driftwood/obj"
	"driftwood/portal"
	"driftwood/prefabs"
	"driftwood/weapon"
)

type Game struct {
	frames int
	debug  bool

	mapper  *input.Mapper
	player  *obj.Player
	enemies []*obj.Enemy

	lvl      *levels.Level
	world    *obj.CollisionWorld
	cam      *obj.Camera
	renderer *obj.LevelRenderer

	playerSpec *prefabs.PlayerSpec
	enemySpec  *prefabs.EnemySpec

	pauseUI *ebitenui.UI
	paused  bool
	quit    bool

	adBusy     bool
	lastDeaths int

	adapter portal.Adapter
	watcher *prefabs.Watcher

	dropImg     *ebiten.Image
	clipboardOK bool
}

func NewGame(levelName string, debug, dev bool, adapter portal.Adapter) (*Game, error) {
	if adapter == nil {
		adapter = portal.Noop{}
	}
	adapter.LoadingStart()

	lvl, err := levels.Load(levelName)
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}

	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	weaponsSpec, err := prefabs.LoadWeaponsSpec()
	if err != nil {
		return nil, err
	}
	enemySpec, err := prefabs.LoadEnemySpec()
	if err != nil {
		return nil, err
	}

	keymap := input.DefaultKeymap()
	deadzone := 0.2
	if inputSpec, err := prefabs.LoadInputSpec(); err != nil {
		logging.L.Warnw("input spec unavailable, using defaults", "error", err)
	} else {
		parsed, err := input.ParseKeymap(inputSpec.Keymap)
		if err != nil {
			logging.L.Warnw("bad keymap, using defaults", "error", err)
		} else {
			keymap = parsed
		}
		deadzone = inputSpec.Deadzone
	}

	mapper := input.NewMapper(
		input.NewKeyboardReader(keymap),
		input.NewGamepadReader(deadzone),
		input.NewTouchReader(deadzone),
	)
	mapper.Attach()

	world := obj.NewCollisionWorld(lvl)

	weapons, err := buildWeapons(weaponsSpec)
	if err != nil {
		return nil, err
	}

	spawn := tileCenter(lvl.SpawnX, lvl.SpawnY)
	player := obj.NewPlayer(playerSpec, mapper, weapons, world, spawn)

	g := &Game{
		debug:      debug,
		mapper:     mapper,
		player:     player,
		lvl:        lvl,
		world:      world,
		renderer:   obj.NewLevelRenderer(lvl),
		playerSpec: playerSpec,
		enemySpec:  enemySpec,
		adapter:    adapter,
	}

	for _, sp := range lvl.Enemies {
		brain, err := loadBrain(enemySpec.BrainScript)
		if err != nil {
			return nil, err
		}
		g.enemies = append(g.enemies, obj.NewEnemy(enemySpec, brain, world, tileCenter(sp.X, sp.Y)))
	}

	worldW := float64(lvl.Width() * common.TileSize)
	worldH := float64(lvl.Height() * common.TileSize)
	g.cam = obj.NewCamera(worldW, worldH, 0.15)
	g.cam.Snap(player.Pos())

	g.pauseUI = newPauseUI(g)

	if dev {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			logging.L.Warnw("spec watcher unavailable", "error", err)
		} else {
			g.watcher = w
		}
	}
	if debug {
		if err := clipboard.Init(); err != nil {
			logging.L.Warnw("clipboard unavailable", "error", err)
		} else {
			g.clipboardOK = true
		}
	}

	adapter.LoadingFinished()
	adapter.GameplayStart()
	return g, nil
}

func buildWeapons(spec *prefabs.WeaponsSpec) (*weapon.Manager, error) {
	pool := weapon.NewPool(spec.PoolCapacity)
	var ws []weapon.Weapon
	for _, wspec := range spec.Weapons {
		w, err := weapon.New(wspec.Config(), pool)
		if err != nil {
			return nil, err
		}
		ws = append(ws, w)
	}
	return weapon.NewManager(pool, ws...), nil
}

func loadBrain(script string) (*obj.Brain, error) {
	src, err := prefabs.LoadScript(script)
	if err != nil {
		return nil, err
	}
	return obj.NewBrain(src)
}

func tileCenter(tx, ty int) common.Vec2 {
	return common.Vec2{
		X: float64(tx*common.TileSize) + common.TileSize/2,
		Y: float64(ty*common.TileSize) + common.TileSize/2,
	}
}

func (g *Game) setPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	if paused {
		// drop held triggers so a continuous weapon doesn't keep spraying
		// under the menu
		g.player.Weapons().SetHeld(common.Vec2{}, false)
		g.adapter.GameplayStop()
	} else {
		g.adapter.GameplayStart()
	}
}

func (g *Game) Update() error {
	g.frames++

	if g.quit {
		return ebiten.Termination
	}
	if g.adBusy {
		return nil
	}

	g.drainWatcher()

	g.mapper.Update()
	if g.mapper.IsActionJustPressed(input.ActionPause) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.player.Effects().Update()
	g.player.Weapons().Update()
	g.player.Update()
	playerPos := g.player.Pos()
	for _, e := range g.enemies {
		e.Update(playerPos)
	}

	if d := g.player.Deaths(); d != g.lastDeaths {
		g.lastDeaths = d
		g.showInterstitial()
	}

	g.resolveCombat()

	g.world.Step(1.0 / common.TPS)

	g.cam.Follow(g.player.Pos())
	g.cam.Update()

	if g.debug && g.clipboardOK && inpututil.IsKeyJustPressed(ebiten.KeyF8) {
		pos := g.player.Pos()
		clipboard.Write(clipboard.FmtText, []byte(fmt.Sprintf("%.0f, %.0f", pos.X, pos.Y)))
		logging.L.Infow("copied player position", "x", pos.X, "y", pos.Y)
	}

	return nil
}

// showInterstitial halts gameplay until the portal reports the ad done.
// The no-op adapter completes synchronously, so desktop builds never stall.
func (g *Game) showInterstitial() {
	g.adBusy = true
	g.adapter.GameplayStop()
	g.adapter.ShowInterstitial(func() {
		g.adBusy = false
		g.adapter.GameplayStart()
	})
}

// resolveCombat applies projectile and region hits, then prunes the dead.
func (g *Game) resolveCombat() {
	g.player.Weapons().Pool().ForEachActive(func(p *weapon.Projectile) {
		if g.world.SolidAtRect(p.Bounds()) {
			p.Retire()
			return
		}
		for _, e := range g.enemies {
			if e.Dead() || !p.Bounds().Intersects(e.Hurtbox()) {
				continue
			}
			e.ApplyHit(p.Damage, p.Saturation)
			p.Retire()
			return
		}
	})

	for _, r := range g.player.Weapons().Regions() {
		for _, e := range g.enemies {
			if e.Dead() || !r.Rect.Intersects(e.Hurtbox()) {
				continue
			}
			if r.MarkHit(e.ID()) {
				e.ApplyHit(r.Damage, r.Saturation)
			}
		}
	}

	alive := g.enemies[:0]
	for _, e := range g.enemies {
		if !e.Dead() {
			alive = append(alive, e)
		}
	}
	g.enemies = alive
}

// drainWatcher reloads tuning specs edited on disk, dev builds only.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case path := <-g.watcher.Events:
			logging.L.Infow("spec changed", "path", path)
			reload = true
		case err := <-g.watcher.Errors:
			logging.L.Warnw("spec watcher error", "error", err)
		default:
			if reload {
				g.reloadSpecs()
			}
			return
		}
	}
}

func (g *Game) reloadSpecs() {
	if ps, err := prefabs.LoadPlayerSpec(); err != nil {
		logging.L.Warnw("player spec reload failed", "error", err)
	} else {
		*g.playerSpec = *ps
	}

	if ws, err := prefabs.LoadWeaponsSpec(); err != nil {
		logging.L.Warnw("weapons spec reload failed", "error", err)
	} else if weapons, err := buildWeapons(ws); err != nil {
		logging.L.Warnw("weapons rebuild failed", "error", err)
	} else {
		g.player.ReplaceWeapons(weapons)
	}

	if es, err := prefabs.LoadEnemySpec(); err != nil {
		logging.L.Warnw("enemy spec reload failed", "error", err)
	} else {
		*g.enemySpec = *es
		for _, e := range g.enemies {
			brain, err := loadBrain(es.BrainScript)
			if err != nil {
				logging.L.Warnw("brain reload failed", "error", err)
				break
			}
			e.SetBrain(brain)
		}
	}
	logging.L.Infow("specs reloaded")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.DrawBackground(screen, g.cam)
	g.renderer.DrawTiles(screen, g.cam)

	for _, e := range g.enemies {
		e.Draw(screen, g.cam)
	}
	g.player.Draw(screen, g.cam)

	g.drawProjectiles(screen)
	g.drawGrappleLine(screen)
	if g.debug {
		g.drawRegions(screen)
	}

	g.drawHUD(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawProjectiles(screen *ebiten.Image) {
	if g.dropImg == nil {
		g.dropImg = ebiten.NewImage(6, 6)
		g.dropImg.Fill(colornames.Lightskyblue)
	}
	g.player.Weapons().Pool().ForEachActive(func(p *weapon.Projectile) {
		sx, sy := g.cam.WorldToScreen(p.Pos)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(sx-3, sy-3)
		screen.DrawImage(g.dropImg, op)
	})
}

func (g *Game) drawGrappleLine(screen *ebiten.Image) {
	grapple, ok := g.player.Weapons().Current().(*weapon.Grapple)
	if !ok {
		return
	}
	start, end, ok := grapple.Line()
	if !ok {
		return
	}
	x0, y0 := g.cam.WorldToScreen(start)
	x1, y1 := g.cam.WorldToScreen(end)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, colornames.Darkseagreen, false)
}

func (g *Game) drawRegions(screen *ebiten.Image) {
	for _, r := range g.player.Weapons().Regions() {
		sx, sy := g.cam.WorldToScreen(common.Vec2{X: r.Rect.X, Y: r.Rect.Y})
		vector.StrokeRect(screen, float32(sx), float32(sy), float32(r.Rect.Width), float32(r.Rect.Height), 1, colornames.Yellow, false)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	name := "none"
	cooldown := 0
	if w := g.player.Weapons().Current(); w != nil {
		name = w.Config().Name
		if c, ok := w.(interface{ Cooldown() int }); ok {
			cooldown = c.Cooldown()
		}
	}
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("HP %.0f    %s (cd %d)    crabs %d", g.player.Health(), name, cooldown, len(g.enemies)),
		8, 8)
	if g.debug {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("frames %d  fps %.1f  droplets %d", g.frames, ebiten.ActualFPS(), g.player.Weapons().Pool().ActiveCount()),
			8, common.BaseHeight-24)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// Shutdown tears down device listeners and the watcher.
func (g *Game) Shutdown() {
	g.player.Teardown()
	g.mapper.Detach()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.adapter.GameplayStop()
}
