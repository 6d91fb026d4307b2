package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/bonebrawl/assets"
	"github.com/automoto/bonebrawl/config"
	"github.com/automoto/bonebrawl/fonts"
	"github.com/automoto/bonebrawl/scenes"
	"github.com/automoto/bonebrawl/shared/leveldata"
	"github.com/automoto/bonebrawl/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  *scenes.ArenaScene
}

func NewGame(opts scenes.ArenaOptions) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	return &Game{scene: scenes.NewArenaScene(opts)}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuning := flag.String("tuning", "", "YAML file overlaying the default tuning")
	arena := flag.String("arena", "training", "embedded arena name or path to a .tmx file")
	debug := flag.Bool("debug", false, "start with the debug overlay")
	watch := flag.Bool("watch", false, "reload prefabs and tuning when they change")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err == nil && saved != nil {
		systems.ApplySavedSettings(nil, saved)
	}
	if *debug {
		config.Debug.Overlay = true
		config.Debug.ShowJoints = true
	}
	config.Debug.Watch = config.Debug.Watch || *watch

	level, err := loadArena(*arena)
	if err != nil {
		log.Printf("Warning: %v, using the default floor", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if saved != nil && saved.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	game := NewGame(scenes.ArenaOptions{
		Level:      level,
		TuningPath: *tuning,
		Watch:      config.Debug.Watch,
	})
	runErr := ebiten.RunGame(game)

	game.scene.Close()
	if w := game.scene.World(); w != nil {
		if err := systems.SaveSettings(systems.CaptureSettings(w, ebiten.IsFullscreen())); err != nil {
			log.Printf("Warning: Could not save settings: %v", err)
		}
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

// loadArena resolves an embedded arena name or a .tmx path.
func loadArena(name string) (*leveldata.ArenaData, error) {
	if name == "" {
		return nil, nil
	}
	arenas, _, err := assets.LoadArenas()
	if err == nil {
		if a, ok := arenas[name]; ok {
			return a, nil
		}
	}
	return assets.LoadArenaFile(name)
}
