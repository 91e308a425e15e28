package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/fonts"
	"github.com/automoto/thirdperson/scenes"
	"github.com/automoto/thirdperson/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	arena  *scenes.ArenaScene
}

func NewGame(watcher *config.Watcher) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	arena := scenes.NewArenaScene(watcher)
	return &Game{
		bounds: image.Rectangle{},
		scene:  arena,
		arena:  arena,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	g.arena.SetViewport(config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	watch := flag.Bool("watch", false, "reload the settings file when it changes")
	hud := flag.Bool("hud", true, "show the debug HUD")
	flag.Parse()

	config.Debug.ShowHUD = *hud

	var watcher *config.Watcher
	if *configPath != "" {
		f, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
		config.Apply(f)

		if *watch {
			watcher, err = config.NewWatcher(*configPath)
			if err != nil {
				log.Printf("Warning: Could not watch settings: %v", err)
			} else {
				defer watcher.Close()
			}
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved preferences
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadPreferences(); err == nil && saved != nil {
		systems.ApplySavedPreferences(nil, saved)
	}

	if err := ebiten.RunGame(NewGame(watcher)); err != nil {
		log.Fatal(err)
	}
}
