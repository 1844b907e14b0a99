package systems

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHUDFollowsScoreAndLives(t *testing.T) {
	e := newTestECS()
	SetupHUD(e)

	hud := getOrCreateHUD(e)
	assert.Equal(t, 0, hud.Score.Value)
	assert.Equal(t, 3, hud.Lives.Value)

	AddScore(e, 10)
	LoseLife(e)

	assert.Equal(t, 10, hud.Score.Value)
	assert.Equal(t, 2, hud.Lives.Value)
	assert.Equal(t, float32(1), hud.Score.Glow)
	assert.NotNil(t, hud.Score.Pulse)
}

func TestHUDPulseFades(t *testing.T) {
	e := newTestECS()
	SetupHUD(e)
	AddScore(e, 10)
	hud := getOrCreateHUD(e)

	GetFrame(e).DeltaMs = 100
	UpdateHUD(e)
	assert.Greater(t, hud.Score.Glow, float32(0))
	assert.Less(t, hud.Score.Glow, float32(1))

	GetFrame(e).DeltaMs = 1000
	UpdateHUD(e)
	assert.Equal(t, float32(0), hud.Score.Glow)
	assert.Nil(t, hud.Score.Pulse)
}

func TestHUDIgnoresUnchangedValues(t *testing.T) {
	e := newTestECS()
	SetupHUD(e)
	hud := getOrCreateHUD(e)

	notifyScore(e, 0)

	assert.Nil(t, hud.Score.Pulse)
	assert.Equal(t, float32(0), hud.Score.Glow)
}

func TestBlend(t *testing.T) {
	from := color.RGBA{R: 0, G: 100, B: 200, A: 255}
	to := color.RGBA{R: 200, G: 100, B: 0, A: 255}

	assert.Equal(t, from, blend(from, to, 0))
	assert.Equal(t, to, blend(from, to, 1))
	assert.Equal(t, color.RGBA{R: 100, G: 100, B: 100, A: 255}, blend(from, to, 0.5))
	assert.Equal(t, from, blend(from, to, -1))
}
