package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// Movement (pixels per millisecond)
	Speed float64 `toml:"speed"`

	// Shooting
	ShootCooldown float64 `toml:"shoot_cooldown"` // ms between shots

	// Lives
	StartingLives int `toml:"starting_lives"`

	// Spawn position relative to the bottom-center of the playfield
	SpawnOffsetY float64 `toml:"spawn_offset_y"`

	BodyColor color.RGBA `toml:"-"`
	ShipColor color.RGBA `toml:"-"`
}

// BulletConfig contains projectile configuration
type BulletConfig struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	PlayerSpeed  float64 `toml:"player_speed"`  // negative = upward
	HostileSpeed float64 `toml:"hostile_speed"` // positive = downward

	// Bullets are kept while TopCull < y < playfield height + BottomMargin
	TopCull      float64 `toml:"top_cull"`
	BottomMargin float64 `toml:"bottom_margin"`

	PlayerColor  color.RGBA `toml:"-"`
	HostileColor color.RGBA `toml:"-"`
}

// EnemyConfig contains enemy spawning and movement configuration
type EnemyConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Speed  float64 `toml:"speed"` // pixels per millisecond, downward

	SpawnInterval float64 `toml:"spawn_interval"` // ms; spawn when the timer exceeds it
	SpawnY        float64 `toml:"spawn_y"`
	SpawnMarginX  float64 `toml:"spawn_margin_x"` // x is drawn from [0, width-margin)

	// Enemies are kept while y < playfield height + CullMargin
	CullMargin float64 `toml:"cull_margin"`

	BodyColor  color.RGBA `toml:"-"`
	InsetColor color.RGBA `toml:"-"`
	CoreColor  color.RGBA `toml:"-"`
}

// ParticleConfig contains explosion particle configuration
type ParticleConfig struct {
	BurstCount int     `toml:"burst_count"`
	MaxLife    float64 `toml:"max_life"` // ms
	Spread     float64 `toml:"spread"`   // velocity range per axis, centered on zero
	Size       float64 `toml:"size"`

	Color color.RGBA `toml:"-"`
}

// ScoreConfig contains scoring rules
type ScoreConfig struct {
	PerKill int `toml:"per_kill"`
}

// RenderConfig contains playfield rendering values
type RenderConfig struct {
	// Alpha of the black layer drawn over the previous frame (motion trails)
	FadeAlpha uint8 `toml:"fade_alpha"`
}

// TimingConfig contains frame scheduling values
type TimingConfig struct {
	TPS      int     `toml:"tps"`
	MaxDelta float64 `toml:"max_delta"` // ms; 0 disables clamping
}

// HUDConfig contains HUD layout configuration
type HUDConfig struct {
	Margin        float64
	LineHeight    float64
	PulseDuration float32 // seconds
	TextColor     color.RGBA
	PulseColor    color.RGBA
	LivesColor    color.RGBA
}

// MenuConfig contains title screen configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// GameOverConfig contains game over panel configuration values
type GameOverConfig struct {
	OverlayColor      color.RGBA
	PanelColor        color.RGBA
	TitleColor        color.RGBA
	TextColor         color.RGBA
	Title             string
	ButtonText        string
	ButtonIdle        color.RGBA
	ButtonHover       color.RGBA
	ButtonPressed     color.RGBA
	ButtonTextColor   color.RGBA
	ButtonTextHover   color.RGBA
	ButtonTextPressed color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Bullet BulletConfig
var Enemy EnemyConfig
var Particle ParticleConfig
var Score ScoreConfig
var Render RenderConfig
var Timing TimingConfig
var HUD HUDConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
	Hitboxes bool // Outline every collision box
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 68, B: 68, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
	}

	Player = PlayerConfig{
		Width:         30,
		Height:        30,
		Speed:         0.3,
		ShootCooldown: 200,
		StartingLives: 3,
		SpawnOffsetY:  50,
		BodyColor:     Green,
		ShipColor:     White,
	}

	Bullet = BulletConfig{
		Width:        4,
		Height:       10,
		PlayerSpeed:  -0.5,
		HostileSpeed: 0.3,
		TopCull:      -10,
		BottomMargin: 10,
		PlayerColor:  Yellow,
		HostileColor: Red,
	}

	Enemy = EnemyConfig{
		Width:         30,
		Height:        30,
		Speed:         0.1,
		SpawnInterval: 1000,
		SpawnY:        -40,
		SpawnMarginX:  40,
		CullMargin:    40,
		BodyColor:     LightRed,
		InsetColor:    White,
		CoreColor:     Red,
	}

	Particle = ParticleConfig{
		BurstCount: 8,
		MaxLife:    1000,
		Spread:     0.4,
		Size:       3,
		Color:      Yellow,
	}

	Score = ScoreConfig{
		PerKill: 10,
	}

	Render = RenderConfig{
		FadeAlpha: 26, // ~10%
	}

	Timing = TimingConfig{
		TPS:      60,
		MaxDelta: 250,
	}

	HUD = HUDConfig{
		Margin:        10,
		LineHeight:    22,
		PulseDuration: 0.35,
		TextColor:     White,
		PulseColor:    Yellow,
		LivesColor:    LightRed,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 10, G: 10, B: 20, A: 255},
		TitleColor:        Yellow,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		Title:             "BULLET HELL",
		TitleY:            200,
		MenuStartY:        300,
		MenuItemHeight:    24,
		MenuItemGap:       12,
		MenuOptions:       []string{"START", "EXIT"},
	}

	GameOver = GameOverConfig{
		OverlayColor:      BlackOverlay,
		PanelColor:        color.RGBA{R: 20, G: 20, B: 30, A: 230},
		TitleColor:        LightRed,
		TextColor:         White,
		Title:             "GAME OVER",
		ButtonText:        "Restart",
		ButtonIdle:        color.RGBA{R: 40, G: 100, B: 40, A: 255},
		ButtonHover:       color.RGBA{R: 60, G: 140, B: 60, A: 255},
		ButtonPressed:     color.RGBA{R: 30, G: 80, B: 30, A: 255},
		ButtonTextColor:   White,
		ButtonTextHover:   color.RGBA{R: 255, G: 255, B: 200, A: 255},
		ButtonTextPressed: color.RGBA{R: 200, G: 200, B: 200, A: 255},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
		Hitboxes: false,
	}
}
