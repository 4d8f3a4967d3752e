package systems

import (
	"github.com/lunapark/gravflip/components"
	cfg "github.com/lunapark/gravflip/config"
	"github.com/lunapark/gravflip/systems/factory"
	"github.com/lunapark/gravflip/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer consumes the flip action for this tick. A flip inverts the
// gravity direction, kicks the player toward the new floor and starts the
// flip window, during which further flips are ignored.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	input := getOrCreateInput(e)
	if !GetAction(input, cfg.ActionFlip).JustPressed {
		return
	}

	player := components.Player.Get(playerEntry)
	if IsFlipWindowActive(player) {
		return
	}

	player.GravityFlipped = !player.GravityFlipped
	player.FlipStartedAt = timeNow()

	physics := components.Physics.Get(playerEntry)
	physics.SpeedY = cfg.Player.FlipImpulse * player.GravityDir()
	physics.OnSurface = nil

	obj := components.Object.Get(playerEntry)
	factory.SpawnParticleBurst(e, obj.X+obj.W/2, obj.Y+obj.H/2, cfg.Particle.BurstCount)
	TriggerFlipStretch(playerEntry)
	PlaySFX(e, cfg.SoundFlip)
}

// IsFlipWindowActive reports whether the player is inside the flip window
// started by the most recent gravity flip.
func IsFlipWindowActive(p *components.PlayerData) bool {
	if p.FlipStartedAt.IsZero() {
		return false
	}
	return timeNow().Sub(p.FlipStartedAt) < cfg.Player.FlipWindow
}
