package config

// GameStateID is the state of the simulation loop.
type GameStateID int

const (
	StateRunning GameStateID = iota
	StateGameOver
)

func (s GameStateID) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}
