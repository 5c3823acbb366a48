package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/smasonuk/deskview"
	"github.com/smasonuk/deskview/ebitenview"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("loading .env: %v", err)
	}

	configPath := flag.String("config", os.Getenv("DESKVIEW_CONFIG"), "TOML or YAML config file")
	watch := flag.Bool("watch", false, "remount the scene when the config file changes")
	hover := flag.Bool("hover", os.Getenv("DESKVIEW_HOVER") != "", "focus the screen on hover instead of click")
	width := flag.Int("width", 0, "window width, overrides the config")
	height := flag.Int("height", 0, "window height, overrides the config")
	flag.Parse()

	load := func() (deskview.Config, error) {
		cfg := deskview.DefaultConfig()
		if *configPath != "" {
			var err error
			if cfg, err = deskview.LoadConfig(*configPath); err != nil {
				return cfg, err
			}
		}
		if *hover {
			cfg.Interaction = deskview.PolicyHover.String()
		}
		if *width > 0 {
			cfg.Width = *width
		}
		if *height > 0 {
			cfg.Height = *height
		}
		return cfg, cfg.Validate()
	}

	cfg, err := load()
	if err != nil {
		log.Fatal(err)
	}

	host, err := ebitenview.NewHost(cfg, log.Default(), deskview.Callbacks{
		OnResourcesReady: func() { log.Println("scene ready") },
		OnFailure:        func(err error) { log.Printf("scene failed: %v", err) },
		OnLightingChanged: func(on bool) {
			log.Printf("lights on: %v", on)
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	if *watch && *configPath != "" {
		stop, err := watchConfig(*configPath, func() {
			cfg, err := load()
			if err != nil {
				log.Printf("ignoring config change: %v", err)
				return
			}
			host.Reload(cfg)
		})
		if err != nil {
			log.Fatal(err)
		}
		defer stop()
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("deskview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := host.Start(); err != nil {
		log.Fatal(err)
	}
	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	host.Session().Stop()
}

// watchConfig calls changed whenever path is written or replaced. The
// directory is watched so editors that save by rename are picked up.
func watchConfig(path string, changed func()) (func(), error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					changed()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("watching %s: %v", path, err)
			}
		}
	}()
	return func() { w.Close() }, nil
}
