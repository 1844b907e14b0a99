package main

import (
	"flag"
	"image"
	"log"

	"github.com/bryce26550/bullethell/config"
	"github.com/bryce26550/bullethell/fonts"
	"github.com/bryce26550/bullethell/scenes"
	"github.com/bryce26550/bullethell/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewShooterScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
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
	return config.C.Width, config.C.Height
}

func loadFonts() error {
	sizes := []struct {
		name fonts.FontName
		size float64
	}{
		{fonts.HUD, 18},
		{fonts.Title, 48},
		{fonts.Menu, 24},
		{fonts.Small, 12},
	}
	for _, s := range sizes {
		if err := fonts.LoadFontWithSize(s.name, goregular.TTF, s.size); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	configPath := flag.String("config", "", "optional TOML file overriding gameplay tuning")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "skip the title menu and start playing")
	flag.BoolVar(&config.Debug.Hitboxes, "hitboxes", false, "outline collision boxes")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Printf("Warning: Could not load config %s: %v", *configPath, err)
		}
	}

	if err := loadFonts(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Bullet Hell")
	ebiten.SetTPS(config.Timing.TPS)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	_, _ = systems.LoadHighScore()

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
