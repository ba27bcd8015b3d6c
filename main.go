package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"driftwood/logging"
	"driftwood/portal"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlays and helpers")
	dev := flag.Bool("dev", false, "watch prefabs/ for spec edits and hot reload")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "tidepool.json", "level file in levels/")
	logPath := flag.String("log", "", "log file path (empty logs to stderr only)")
	flag.Parse()

	logging.Init(*logPath, *debug)
	defer logging.Sync()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("driftwood")
	ebiten.SetTPS(60)

	game, err := NewGame(*levelName, *debug, *dev, portal.Noop{})
	if err != nil {
		logging.L.Fatalw("failed to start", "error", err)
	}
	defer game.Shutdown()

	if err := ebiten.RunGame(game); err != nil {
		logging.L.Fatalw("game loop exited", "error", err)
	}
}
