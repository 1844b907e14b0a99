package components

import "github.com/yohamta/donburi"

// ParticleData is a short-lived explosion fragment.
type ParticleData struct {
	VX, VY  float64 // pixels per millisecond
	Life    float64 // ms remaining
	MaxLife float64
}

// Alpha returns the remaining life as a fraction of the initial life.
func (p *ParticleData) Alpha() float64 {
	if p.MaxLife <= 0 || p.Life <= 0 {
		return 0
	}
	if p.Life >= p.MaxLife {
		return 1
	}
	return p.Life / p.MaxLife
}

var Particle = donburi.NewComponentType[ParticleData]()
