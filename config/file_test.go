package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreGlobals puts the package-level configuration back after a test overlays it.
func restoreGlobals(t *testing.T) {
	saved := snapshot()
	t.Cleanup(saved.apply)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, 800, C.Width)
	assert.Equal(t, 600, C.Height)
	assert.Equal(t, 0.3, Player.Speed)
	assert.Equal(t, 200.0, Player.ShootCooldown)
	assert.Equal(t, 3, Player.StartingLives)
	assert.Equal(t, -0.5, Bullet.PlayerSpeed)
	assert.Equal(t, 0.3, Bullet.HostileSpeed)
	assert.Equal(t, 0.1, Enemy.Speed)
	assert.Equal(t, 1000.0, Enemy.SpawnInterval)
	assert.Equal(t, 8, Particle.BurstCount)
	assert.Equal(t, 1000.0, Particle.MaxLife)
	assert.Equal(t, 10, Score.PerKill)
}

func TestLoadStringOverridesOnlyPresentKeys(t *testing.T) {
	restoreGlobals(t)
	bodyColor := Player.BodyColor

	err := LoadString(`
[player]
speed = 0.5
starting_lives = 5

[enemy]
spawn_interval = 750.0
`)
	require.NoError(t, err)

	assert.Equal(t, 0.5, Player.Speed)
	assert.Equal(t, 5, Player.StartingLives)
	assert.Equal(t, 750.0, Enemy.SpawnInterval)

	// Untouched keys keep their defaults
	assert.Equal(t, 200.0, Player.ShootCooldown)
	assert.Equal(t, 0.1, Enemy.Speed)
	assert.Equal(t, 800, C.Width)
	assert.Equal(t, bodyColor, Player.BodyColor)
}

func TestLoadStringRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"zero width", "[window]\nwidth = 0"},
		{"no lives", "[player]\nstarting_lives = 0"},
		{"negative burst", "[particle]\nburst_count = -1"},
		{"zero particle life", "[particle]\nmax_life = 0.0"},
		{"negative score", "[score]\nper_kill = -10"},
		{"zero tps", "[timing]\ntps = 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreGlobals(t)
			before := snapshot()

			err := LoadString(tt.toml)
			require.Error(t, err)
			assert.Equal(t, before, snapshot(), "globals must not change on error")
		})
	}
}

func TestLoadStringSyntaxError(t *testing.T) {
	restoreGlobals(t)
	err := LoadString("[player\nspeed = ")
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	restoreGlobals(t)

	path := filepath.Join(t.TempDir(), "bullethell.toml")
	data := []byte("[score]\nper_kill = 25\n\n[render]\nfade_alpha = 64\n\n[mystery]\nvalue = 1\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	require.NoError(t, LoadFile(path))
	assert.Equal(t, 25, Score.PerKill)
	assert.Equal(t, uint8(64), Render.FadeAlpha)
}

func TestLoadFileMissing(t *testing.T) {
	restoreGlobals(t)
	err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestGameStateString(t *testing.T) {
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "game over", StateGameOver.String())
}
