package systems

import (
	"math/rand"

	"github.com/lunapark/gravflip/components"
	cfg "github.com/lunapark/gravflip/config"
	"github.com/lunapark/gravflip/systems/factory"
	"github.com/lunapark/gravflip/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObstacles runs the spawner and the movement/scoring/collision sweep.
// Within the sweep, the collision check runs before the off-screen check for
// each obstacle, so an obstacle resolves as exactly one of scored or collided.
func UpdateObstacles(e *ecs.ECS) {
	round := GetRound(e)
	if round == nil {
		return
	}

	spawnIfDue(e, round)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	var scored, collided []*donburi.Entry
	components.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		obj.X -= round.GameSpeed
		obj.Update()

		if aabbOverlap(playerObj.Object, obj.Object) {
			collided = append(collided, entry)
			return
		}
		if obj.X+obj.W < 0 {
			scored = append(scored, entry)
		}
	})

	for _, entry := range scored {
		removeObstacle(entry)
		round.Score += cfg.Obstacle.PointsPerClear
		PlaySFX(e, cfg.SoundScore)
	}

	if len(collided) > 0 {
		for _, entry := range collided {
			removeObstacle(entry)
		}
		EndRound(e, round)
	}
}

// spawnIfDue enforces the minimum wall-clock interval between spawns and
// coin-flips the mount side.
func spawnIfDue(e *ecs.ECS, round *components.RoundData) {
	if timeNow().Sub(round.LastSpawn) < cfg.Obstacle.SpawnInterval {
		return
	}

	top := rand.Intn(2) == 0
	factory.CreateObstacle(e, round.NextObstacleID, top)
	round.NextObstacleID++
	round.LastSpawn = timeNow()
}

// aabbOverlap is the standard rectangle intersection test on all four edges
func aabbOverlap(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

func removeObstacle(entry *donburi.Entry) {
	obj := components.Object.Get(entry)
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	entry.Remove()
}
