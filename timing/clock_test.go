package timing_test

import (
	"testing"

	"github.com/bryce26550/bullethell/timing"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestClockFirstAdvanceIsZero(t *testing.T) {
	c := timing.NewClock(0)
	assert.Equal(t, 0.0, c.Advance(1234))
	assert.Equal(t, 16.0, c.Advance(1250))
}

func TestClockIgnoresBackwardsTimestamps(t *testing.T) {
	c := timing.NewClock(0)
	c.Advance(100)
	assert.Equal(t, 0.0, c.Advance(90))
	// The clock stays at 100, not 90.
	assert.Equal(t, 10.0, c.Advance(110))
}

func TestClockClampsLongStalls(t *testing.T) {
	c := timing.NewClock(250)
	c.Advance(0)
	assert.Equal(t, 250.0, c.Advance(5000))
	assert.Equal(t, 16.0, c.Advance(5016))
}

func TestClockReset(t *testing.T) {
	c := timing.NewClock(0)
	c.Advance(10)
	c.Advance(20)
	c.Reset()
	assert.Equal(t, 0.0, c.Advance(500))
	assert.Equal(t, 5.0, c.Advance(505))
}

func TestFixedSource(t *testing.T) {
	f := timing.NewFixed(50)
	assert.Equal(t, 20.0, f.Now())
	assert.Equal(t, 40.0, f.Now())

	c := timing.NewClock(0)
	c.Advance(f.Now())
	assert.Equal(t, 20.0, c.Advance(f.Now()))
}

func TestFixedSourceDefaultsTPS(t *testing.T) {
	f := timing.NewFixed(0)
	assert.InDelta(t, 1000.0/60, f.Step, 1e-9)
}

func TestMonotonicNeverDecreases(t *testing.T) {
	m := timing.NewMonotonic()
	prev := m.Now()
	for i := 0; i < 100; i++ {
		now := m.Now()
		assert.GreaterOrEqual(t, now, prev)
		prev = now
	}
}

func TestClockDeltaNeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		maxDelta := rapid.Float64Range(0, 1000).Draw(t, "maxDelta")
		stamps := rapid.SliceOf(rapid.Float64Range(-1e6, 1e6)).Draw(t, "stamps")

		c := timing.NewClock(maxDelta)
		for _, s := range stamps {
			d := c.Advance(s)
			if d < 0 {
				t.Fatalf("negative delta %v for timestamp %v", d, s)
			}
			if maxDelta > 0 && d > maxDelta {
				t.Fatalf("delta %v exceeds max %v", d, maxDelta)
			}
		}
	})
}
