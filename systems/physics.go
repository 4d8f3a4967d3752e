package systems

import (
	"math"

	"github.com/lunapark/gravflip/components"
	"github.com/lunapark/gravflip/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity into vertical velocity and resolves the
// resulting movement against the corridor's solid bars.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		gravity := physics.Gravity
		if e.HasComponent(components.Player) {
			gravity *= components.Player.Get(e).GravityDir()
		}
		physics.SpeedY += gravity

		obj := components.Object.Get(e)
		resolveVerticalCollision(physics, obj.Object)
	})
}

// resolveVerticalCollision moves the object by its vertical speed, snapping
// to the floor or ceiling bar on contact and zeroing velocity there. The
// snap is what keeps the player inside [ceiling, floor] at all times.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnSurface = nil
	dy := clampVerticalSpeed(physics.SpeedY, physics.MaxSpeed)

	// Pad the check one pixel past the move so resting contact is
	// detected every tick.
	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	} else {
		checkDistance--
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return
	}

	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		object.Y += dy
		return
	}

	contact := check.ContactWithObject(solids[0]).Y()
	if math.Abs(contact) > math.Abs(dy) {
		// Contact is beyond this tick's move; no snap yet.
		object.Y += dy
		return
	}

	object.Y += contact
	physics.SpeedY = 0
	physics.OnSurface = solids[0]
}

func clampVerticalSpeed(speedY, maxSpeed float64) float64 {
	return math.Max(math.Min(speedY, maxSpeed), -maxSpeed)
}
