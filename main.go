package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/netfx/config"
	"github.com/automoto/netfx/fonts"
	"github.com/automoto/netfx/scenes"
	"github.com/automoto/netfx/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type resizer interface {
	Resize(width, height int)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(store systems.ItemStore) *Game {
	if err := fonts.LoadDefaults(config.Toggle.FontSize, config.Page.TitleFontSize, config.Page.TextFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewSiteScene(store)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window size so the surface always covers the viewport
func (g *Game) Layout(width, height int) (int, int) {
	if g.bounds.Dx() != width || g.bounds.Dy() != height {
		g.bounds = image.Rect(0, 0, width, height)
		if r, ok := g.scene.(resizer); ok {
			r.Resize(width, height)
		}
	}
	return width, height
}

func main() {
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "Draw the debug overlay")
	flag.Int64Var(&config.Debug.Seed, "seed", 0, "Particle seeding RNG seed (0 = time based)")
	flag.IntVar(&config.C.Width, "width", config.C.Width, "Initial window width")
	flag.IntVar(&config.C.Height, "height", config.C.Height, "Initial window height")
	reset := flag.Bool("reset", false, "Forget the saved network-effect preference")
	flag.Parse()

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence; without it the toggle only lasts for this session
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Preferences will not be saved: %v", err)
	}
	store := systems.DefaultStore()
	if *reset {
		if err := systems.ClearFlag(store, config.Preferences.NetworkEffectKey); err != nil {
			log.Printf("Warning: Could not reset preference: %v", err)
		}
	}

	game := NewGame(store)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	if s, ok := game.scene.(interface{ Close() }); ok {
		s.Close()
	}
}
