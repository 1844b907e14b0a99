package systems

import (
	"fmt"
	"image/color"

	"github.com/bryce26550/bullethell/components"
	cfg "github.com/bryce26550/bullethell/config"
	"github.com/bryce26550/bullethell/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SetupHUD creates the HUD singleton and subscribes it to score and lives changes.
func SetupHUD(e *ecs.ECS) {
	hud := getOrCreateHUD(e)
	game := GetGame(e)
	hud.Score = components.CounterData{Label: "Score", Value: game.Score}
	hud.Lives = components.CounterData{Label: "Lives", Value: game.Lives}
	hud.Best = BestScore()

	OnScoreChanged(e, func(score int) {
		setCounter(&getOrCreateHUD(e).Score, score)
	})
	OnLivesChanged(e, func(lives int) {
		setCounter(&getOrCreateHUD(e).Lives, lives)
	})
}

// SetHUDBest updates the best score shown on the HUD.
func SetHUDBest(e *ecs.ECS, best int) {
	getOrCreateHUD(e).Best = best
}

func setCounter(c *components.CounterData, value int) {
	if c.Value == value {
		return
	}
	c.Value = value
	c.Pulse = gween.New(1, 0, cfg.HUD.PulseDuration, ease.OutQuad)
	c.Glow = 1
}

// UpdateHUD advances the counter pulses by the frame's elapsed time.
func UpdateHUD(e *ecs.ECS) {
	hud := getOrCreateHUD(e)
	dt := float32(GetFrame(e).DeltaMs / 1000)
	stepPulse(&hud.Score, dt)
	stepPulse(&hud.Lives, dt)
}

func stepPulse(c *components.CounterData, dt float32) {
	if c.Pulse == nil {
		return
	}
	glow, done := c.Pulse.Update(dt)
	c.Glow = glow
	if done {
		c.Pulse = nil
		c.Glow = 0
	}
}

// DrawHUD renders the score, lives and best score in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	hud := getOrCreateHUD(e)
	face := fonts.HUD.Get()

	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin + cfg.HUD.LineHeight)
	line := int(cfg.HUD.LineHeight)

	text.Draw(screen, counterText(&hud.Score), face, x, y,
		blend(cfg.HUD.TextColor, cfg.HUD.PulseColor, hud.Score.Glow))
	text.Draw(screen, counterText(&hud.Lives), face, x, y+line,
		blend(cfg.HUD.LivesColor, cfg.HUD.PulseColor, hud.Lives.Glow))
	text.Draw(screen, fmt.Sprintf("Best: %d", hud.Best), fonts.Small.Get(), x, y+2*line, cfg.HUD.TextColor)
}

func counterText(c *components.CounterData) string {
	return fmt.Sprintf("%s: %d", c.Label, c.Value)
}

// blend mixes from toward to by t in [0, 1].
func blend(from, to color.RGBA, t float32) color.RGBA {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t)
	}
	return color.RGBA{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: mix(from.A, to.A),
	}
}

func getOrCreateHUD(e *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.HUD))
	}
	return components.HUD.Get(entry)
}
