package systems

import (
	"github.com/lunapark/gravflip/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects syncs every resolv object's cell placement after movement
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
