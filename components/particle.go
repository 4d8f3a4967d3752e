package components

import "github.com/yohamta/donburi"

// ParticleData is a short-lived cosmetic spark. Particles take no part in
// collision, so they carry their own position instead of a resolv object.
type ParticleData struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // starts at 1.0, decays each tick, dropped at <= 0
}

var Particle = donburi.NewComponentType[ParticleData]()
