package config

import (
	"fmt"
	"log"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the tunable sections of the global configuration.
// Sections absent from the file keep their current values.
type fileConfig struct {
	Window   Config         `toml:"window"`
	Player   PlayerConfig   `toml:"player"`
	Bullet   BulletConfig   `toml:"bullet"`
	Enemy    EnemyConfig    `toml:"enemy"`
	Particle ParticleConfig `toml:"particle"`
	Score    ScoreConfig    `toml:"score"`
	Render   RenderConfig   `toml:"render"`
	Timing   TimingConfig   `toml:"timing"`
}

func snapshot() fileConfig {
	return fileConfig{
		Window:   *C,
		Player:   Player,
		Bullet:   Bullet,
		Enemy:    Enemy,
		Particle: Particle,
		Score:    Score,
		Render:   Render,
		Timing:   Timing,
	}
}

func (f fileConfig) apply() {
	*C = f.Window
	Player = f.Player
	Bullet = f.Bullet
	Enemy = f.Enemy
	Particle = f.Particle
	Score = f.Score
	Render = f.Render
	Timing = f.Timing
}

// LoadFile overlays the values found in a TOML file onto the global configuration.
func LoadFile(path string) error {
	f := snapshot()
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("Warning: unknown config key %q in %s", key.String(), path)
	}
	f.apply()
	return nil
}

// LoadString is LoadFile for in-memory TOML.
func LoadString(data string) error {
	f := snapshot()
	if _, err := toml.Decode(data, &f); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if err := f.validate(); err != nil {
		return err
	}
	f.apply()
	return nil
}

func (f fileConfig) validate() error {
	switch {
	case f.Window.Width <= 0 || f.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", f.Window.Width, f.Window.Height)
	case f.Player.StartingLives <= 0:
		return fmt.Errorf("player.starting_lives must be positive, got %d", f.Player.StartingLives)
	case f.Particle.MaxLife <= 0:
		return fmt.Errorf("particle.max_life must be positive, got %v", f.Particle.MaxLife)
	case f.Particle.BurstCount < 0:
		return fmt.Errorf("particle.burst_count must not be negative, got %d", f.Particle.BurstCount)
	case f.Score.PerKill < 0:
		return fmt.Errorf("score.per_kill must not be negative, got %d", f.Score.PerKill)
	case f.Timing.TPS <= 0:
		return fmt.Errorf("timing.tps must be positive, got %d", f.Timing.TPS)
	}
	return nil
}
