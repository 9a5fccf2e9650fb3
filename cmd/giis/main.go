package main

import (
	"flag"
	"log"

	"github.com/getkid/GIIS/internal/app"
	"github.com/getkid/GIIS/internal/config"
	ebitenrender "github.com/getkid/GIIS/internal/render/ebiten"
	"github.com/getkid/GIIS/internal/ui/toolbar"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	drawingApp, err := app.New(renderer, inputMgr, cfg)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	bar, err := toolbar.New(toolbar.Callbacks{
		OnAlgorithm: drawingApp.SelectAlgorithm,
		OnDebug:     drawingApp.SetDebug,
		OnClear:     drawingApp.Clear,
	})
	if err != nil {
		log.Fatalf("Failed to build toolbar: %v", err)
	}
	drawingApp.SetOverlay(bar)
	drawingApp.SetRetitle(engine.SetWindowTitle)

	// Watch the config file so color and pacing changes apply live.
	watcher, err := config.NewWatcher(*configPath)
	if err != nil {
		log.Printf("Warning: config watching disabled: %v", err)
	} else {
		defer watcher.Close()
		drawingApp.SetReload(watcher.Events, *configPath)
		go func() {
			for err := range watcher.Errors {
				log.Printf("Config watcher error: %v", err)
			}
		}()
	}

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	log.Println("Starting drawing app...")
	if err := engine.RunGame(drawingApp); err != nil {
		log.Fatal(err)
	}
}
