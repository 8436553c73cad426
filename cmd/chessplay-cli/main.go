package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/hailam/chessboard/internal/config"
	"github.com/hailam/chessboard/internal/console"
	"github.com/hailam/chessboard/internal/game"
	"github.com/hailam/chessboard/internal/storage"
)

var (
	configPath = flag.String("config", "", "path to the YAML settings file (default: ./"+config.DefaultPath+" or the data directory)")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	path := *configPath
	if path == "" {
		path = storage.FindConfigFile(config.DefaultPath)
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("[CONFIG] Warning: %v (using defaults)", err)
		cfg = config.Default()
	}

	ctrl := game.NewController()

	store, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Dir)
	if err != nil {
		log.Printf("[STORAGE] Warning: Failed to initialize storage: %v", err)
	}
	if store != nil {
		defer store.Close()
		if cfg.Storage.Resume {
			resume(store, ctrl)
		}
	}

	if err := console.New(ctrl, os.Stdout).Run(os.Stdin); err != nil {
		log.Printf("read commands: %v", err)
	}

	if store != nil {
		if err := store.SaveGame(storage.NewSavedGame(ctrl.Board(), ctrl.LastMove())); err != nil {
			log.Printf("[STORAGE] Warning: Failed to save game: %v", err)
		}
	}
}

// resume loads the saved game into ctrl, if there is one.
func resume(store *storage.Storage, ctrl *game.Controller) {
	saved, err := store.LoadGame()
	if errors.Is(err, storage.ErrNoSavedGame) {
		return
	}
	if err != nil {
		log.Printf("[STORAGE] Warning: Failed to load saved game: %v", err)
		return
	}
	b, last, err := saved.Restore()
	if err != nil {
		log.Printf("[STORAGE] Warning: Discarding saved game: %v", err)
		return
	}
	ctrl.Restore(b, last)
}
