package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/bryce26550/bullethell/config"
	"github.com/bryce26550/bullethell/systems"
	"github.com/bryce26550/bullethell/timing"
	"github.com/bryce26550/bullethell/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ShooterScene runs the bullet hell playfield
type ShooterScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	clock        *timing.Clock
	source       timing.Source
	gameOverUI   *ui.GameOverUI
	once         sync.Once
}

// NewShooterScene creates the playfield scene driven by the monotonic clock
func NewShooterScene(sc SceneChanger) *ShooterScene {
	return NewShooterSceneWithSource(sc, timing.NewMonotonic())
}

// NewShooterSceneWithSource creates the playfield scene with a custom timestamp source
func NewShooterSceneWithSource(sc SceneChanger, source timing.Source) *ShooterScene {
	return &ShooterScene{
		sceneChanger: sc,
		clock:        timing.NewClock(cfg.Timing.MaxDelta),
		source:       source,
	}
}

func (ss *ShooterScene) Update() {
	ss.once.Do(ss.configure)

	snap, method := systems.PollInput(systems.LastInputMethod(ss.ecs))
	systems.SetInputMethod(ss.ecs, method)

	dt := ss.clock.Advance(ss.source.Now())
	systems.Tick(ss.ecs, dt, snap)

	if systems.IsGameOver(ss.ecs) {
		ss.gameOverUI.Update()
	}
}

func (ss *ShooterScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)

	if systems.IsGameOver(ss.ecs) {
		ss.gameOverUI.Draw(screen)
	}
}

func (ss *ShooterScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	systems.StartGame(ecs, nil)

	// Simulation steps, each gated on the running state
	systems.RegisterSimulation(ecs)

	// Presentation systems run in every state
	ecs.AddSystem(systems.UpdateHUD)

	// Observers
	systems.SetupHUD(ecs)
	systems.TrackBestScore(ecs)

	ss.gameOverUI = ui.NewGameOverUI(func() {
		systems.Restart(ecs)
	})
	systems.OnGameOver(ecs, func(finalScore int) {
		gameOver := systems.GetOrCreateGameOver(ecs)
		ss.gameOverUI.SetScores(finalScore, gameOver.BestScore, gameOver.NewBest)
	})

	// Renderers
	ecs.AddRenderer(cfg.Default, systems.NewDrawPlayfield())
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ss.ecs = ecs
}
