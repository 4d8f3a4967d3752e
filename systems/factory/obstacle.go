package factory

import (
	"github.com/lunapark/gravflip/archetypes"
	"github.com/lunapark/gravflip/components"
	cfg "github.com/lunapark/gravflip/config"
	"github.com/lunapark/gravflip/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObstacle spawns an obstacle at the right edge of the playfield,
// mounted to the ceiling or the floor.
func CreateObstacle(ecs *ecs.ECS, id int, top bool) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)

	w := cfg.Obstacle.Width
	h := cfg.Obstacle.Height
	x := float64(cfg.C.Width)

	var y float64
	if top {
		y = cfg.Corridor.BarHeight
	} else {
		y = float64(cfg.C.Height) - cfg.Corridor.BarHeight - h
	}

	obj := resolv.NewObject(x, y, w, h, tags.ResolvObstacle)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = obstacle

	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})
	components.Obstacle.SetValue(obstacle, components.ObstacleData{
		ID:  id,
		Top: top,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return obstacle
}
