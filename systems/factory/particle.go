package factory

import (
	"math/rand"

	"github.com/lunapark/gravflip/archetypes"
	"github.com/lunapark/gravflip/components"
	cfg "github.com/lunapark/gravflip/config"
	"github.com/yohamta/donburi/ecs"
)

// SpawnParticleBurst creates count particles at (x, y) with random
// velocities, full life, ready to decay.
func SpawnParticleBurst(ecs *ecs.ECS, x, y float64, count int) {
	for i := 0; i < count; i++ {
		particle := archetypes.Particle.Spawn(ecs)
		components.Particle.SetValue(particle, components.ParticleData{
			X:    x,
			Y:    y,
			VX:   (rand.Float64()*2 - 1) * cfg.Particle.MaxSpeed,
			VY:   (rand.Float64()*2 - 1) * cfg.Particle.MaxSpeed,
			Life: 1.0,
		})
	}
}
