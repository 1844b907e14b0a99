package systems

import (
	"testing"

	"github.com/bryce26550/bullethell/components"
	"github.com/bryce26550/bullethell/systems/factory"
	"github.com/bryce26550/bullethell/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestOverlaps(t *testing.T) {
	box := resolv.NewObject(0, 0, 10, 10)

	tests := []struct {
		name       string
		x, y, w, h float64
		want       bool
	}{
		{"identical", 0, 0, 10, 10, true},
		{"contained", 2, 2, 4, 4, true},
		{"partial", 5, 5, 10, 10, true},
		{"touching right edge", 10, 0, 10, 10, false},
		{"touching bottom edge", 0, 10, 10, 10, false},
		{"touching left edge", -10, 0, 10, 10, false},
		{"touching top edge", 0, -10, 10, 10, false},
		{"just inside", 9.999, 9.999, 1, 1, true},
		{"apart", 50, 50, 5, 5, false},
		{"above the playfield", 2, -5, 4, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := resolv.NewObject(tt.x, tt.y, tt.w, tt.h)
			assert.Equal(t, tt.want, Overlaps(box, other))
			assert.Equal(t, tt.want, Overlaps(other, box), "overlap must be symmetric")
		})
	}
}

func TestBulletHitsEnemy(t *testing.T) {
	e := newTestECS()
	var scores []int
	OnScoreChanged(e, func(s int) { scores = append(scores, s) })

	enemy := factory.CreateEnemy(e, 100, 100)
	bullet := factory.CreateBullet(e, 110, 105, true)

	Tick(e, 0, idle())

	assert.False(t, enemy.Valid())
	assert.False(t, bullet.Valid())
	assert.Equal(t, 10, GetGame(e).Score)
	assert.Equal(t, []int{10}, scores)
	assert.Equal(t, 3, GetGame(e).Lives)

	require.Equal(t, 8, countTagged(e.World, tags.Particle))
	tags.Particle.Each(e.World, func(p *donburi.Entry) {
		obj := components.Object.Get(p)
		assert.Equal(t, 100.0, obj.X)
		assert.Equal(t, 100.0, obj.Y)

		data := components.Particle.Get(p)
		assert.Equal(t, 1000.0, data.Life)
		assert.GreaterOrEqual(t, data.VX, -0.2)
		assert.Less(t, data.VX, 0.2)
		assert.GreaterOrEqual(t, data.VY, -0.2)
		assert.Less(t, data.VY, 0.2)
	})
}

func TestHostileBulletsDoNotHitEnemies(t *testing.T) {
	e := newTestECS()
	enemy := factory.CreateEnemy(e, 100, 100)
	bullet := factory.CreateBullet(e, 110, 105, false)

	Tick(e, 0, idle())

	assert.True(t, enemy.Valid())
	assert.True(t, bullet.Valid())
	assert.Equal(t, 0, GetGame(e).Score)
}

func TestBulletDestroysNewestEnemy(t *testing.T) {
	e := newTestECS()
	older := factory.CreateEnemy(e, 100, 100)
	newer := factory.CreateEnemy(e, 105, 100)
	factory.CreateBullet(e, 110, 105, true)

	Tick(e, 0, idle())

	assert.True(t, older.Valid())
	assert.False(t, newer.Valid())
	assert.Equal(t, 10, GetGame(e).Score)
	assert.Equal(t, 8, countTagged(e.World, tags.Particle))
}

func TestNewestBulletHitsFirst(t *testing.T) {
	e := newTestECS()
	factory.CreateEnemy(e, 100, 100)
	older := factory.CreateBullet(e, 110, 105, true)
	newer := factory.CreateBullet(e, 115, 105, true)

	Tick(e, 0, idle())

	assert.True(t, older.Valid(), "enemy was already destroyed by the newer bullet")
	assert.False(t, newer.Valid())
	assert.Equal(t, 10, GetGame(e).Score)
}

func TestEachBulletDestroysOneEnemy(t *testing.T) {
	e := newTestECS()
	factory.CreateEnemy(e, 100, 100)
	factory.CreateEnemy(e, 105, 100)
	factory.CreateBullet(e, 110, 105, true)
	factory.CreateBullet(e, 112, 105, true)

	Tick(e, 0, idle())

	assert.Equal(t, 0, countTagged(e.World, tags.Enemy))
	assert.Equal(t, 0, countTagged(e.World, tags.Bullet))
	assert.Equal(t, 20, GetGame(e).Score)
	assert.Equal(t, 16, countTagged(e.World, tags.Particle))
}

func TestPlayerHitByEnemy(t *testing.T) {
	e := newTestECS()
	var lives []int
	OnLivesChanged(e, func(l int) { lives = append(lives, l) })

	enemy := factory.CreateEnemy(e, 405, 555)

	Tick(e, 0, idle())

	assert.False(t, enemy.Valid())
	assert.Equal(t, 2, GetGame(e).Lives)
	assert.Equal(t, []int{2}, lives)
	assert.Equal(t, 8, countTagged(e.World, tags.Particle))
	assert.True(t, IsRunning(e))
}

func TestGameOverStopsPlayerScan(t *testing.T) {
	e := newTestECS()
	var finals []int
	OnGameOver(e, func(score int) { finals = append(finals, score) })

	AddScore(e, 40)
	GetGame(e).Lives = 1
	older := factory.CreateEnemy(e, 405, 555)
	newer := factory.CreateEnemy(e, 410, 555)

	Tick(e, 0, idle())

	assert.True(t, IsGameOver(e))
	assert.Equal(t, 0, GetGame(e).Lives)
	assert.False(t, newer.Valid())
	assert.True(t, older.Valid())
	assert.Equal(t, 8, countTagged(e.World, tags.Particle))
	assert.Equal(t, []int{40}, finals)
	assert.Equal(t, 40, GetOrCreateGameOver(e).FinalScore)
}

func TestLivesNeverNegative(t *testing.T) {
	e := newTestECS()
	GetGame(e).Lives = 1

	assert.True(t, LoseLife(e))
	assert.True(t, LoseLife(e))
	assert.Equal(t, 0, GetGame(e).Lives)
}

func TestBulletHitResolvesBeforePlayerHit(t *testing.T) {
	e := newTestECS()
	enemy := factory.CreateEnemy(e, 400, 540)
	factory.CreateBullet(e, 410, 545, true)

	Tick(e, 0, idle())

	assert.False(t, enemy.Valid())
	assert.Equal(t, 10, GetGame(e).Score)
	assert.Equal(t, 3, GetGame(e).Lives)
	assert.Equal(t, 8, countTagged(e.World, tags.Particle))
}
