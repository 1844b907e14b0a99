package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSinksRunInRegistrationOrder(t *testing.T) {
	e := newTestECS()

	var calls []string
	OnScoreChanged(e, func(int) { calls = append(calls, "first") })
	OnScoreChanged(e, func(int) { calls = append(calls, "second") })

	AddScore(e, 10)

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestGameOverSinkRunsOnce(t *testing.T) {
	e := newTestECS()
	calls := 0
	OnGameOver(e, func(int) { calls++ })

	GetGame(e).Lives = 2
	LoseLife(e)
	assert.Equal(t, 0, calls)
	LoseLife(e)
	LoseLife(e)
	assert.Equal(t, 1, calls)
}
