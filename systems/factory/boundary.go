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

// CreateBoundaries creates the ceiling and floor bars that bound the corridor
func CreateBoundaries(ecs *ecs.ECS) {
	width := float64(cfg.C.Width)
	height := float64(cfg.C.Height)
	bar := cfg.Corridor.BarHeight

	createBoundary(ecs, 0, 0, width, bar, tags.ResolvCeiling)
	createBoundary(ecs, 0, height-bar, width, bar, tags.ResolvFloor)
}

func createBoundary(ecs *ecs.ECS, x, y, w, h float64, sideTag string) *donburi.Entry {
	boundary := archetypes.Boundary.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid, sideTag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = boundary // Link for O(1) lookup

	components.Object.SetValue(boundary, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return boundary
}
