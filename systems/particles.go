package systems

import (
	"github.com/lunapark/gravflip/components"
	cfg "github.com/lunapark/gravflip/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles integrates particle motion with velocity damping and drops
// particles whose life has run out.
func UpdateParticles(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)

		p.X += p.VX
		p.Y += p.VY
		p.VX *= cfg.Particle.Damping
		p.VY *= cfg.Particle.Damping
		p.Life -= cfg.Particle.LifeDecay

		if p.Life <= 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.Remove()
	}
}
