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

// CreatePlayer spawns the single player entity at mid-corridor height with
// normal gravity.
func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := cfg.Player.Width
	h := cfg.Player.Height
	x := cfg.Player.StartX
	y := float64(cfg.C.Height)/2 - h/2

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  cfg.Player.Gravity,
		MaxSpeed: cfg.Player.MaxSpeed,
	})
	components.SquashStretch.SetValue(player, components.SquashStretchData{
		ScaleX: 1,
		ScaleY: 1,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
