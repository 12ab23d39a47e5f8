package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"heartcatch/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML tuning file")
	dumpConfig := flag.Bool("dump-config", false, "print the effective configuration and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *dumpConfig {
		if err := config.Write(os.Stdout, cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	// 1. Window Setup
	w := int(cfg.Surface.Width * cfg.Window.Scale)
	h := int(cfg.Surface.Height * cfg.Window.Scale)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	// 2. Initialize Game
	game := NewGame(cfg.Settings(), cfg.Rand())

	// 3. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
