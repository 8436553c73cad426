// ChessPlay - A two-player chess board built with Ebitengine
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessboard/internal/config"
	"github.com/hailam/chessboard/internal/storage"
	"github.com/hailam/chessboard/internal/ui"
)

var configPath = flag.String("config", "", "path to the YAML settings file (default: ./"+config.DefaultPath+" or the data directory)")

func main() {
	flag.Parse()

	path := *configPath
	if path == "" {
		path = storage.FindConfigFile(config.DefaultPath)
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("[CONFIG] Warning: %v (using defaults)", err)
		cfg = config.Default()
	}

	store, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Dir)
	if err != nil {
		log.Printf("[STORAGE] Warning: Failed to initialize storage: %v", err)
	}

	game := ui.NewGame(cfg, store)
	defer game.Close()

	w, h := ui.WindowSize(cfg)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
