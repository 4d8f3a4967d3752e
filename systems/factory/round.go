package factory

import (
	"github.com/lunapark/gravflip/archetypes"
	"github.com/lunapark/gravflip/components"
	cfg "github.com/lunapark/gravflip/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRound spawns the singleton round entity in the Idle state. The round
// system transitions it to Running on its first update. best is the
// persisted high score loaded at scene start.
func CreateRound(ecs *ecs.ECS, best int) *donburi.Entry {
	round := archetypes.Round.Spawn(ecs)
	components.Round.SetValue(round, components.RoundData{
		State: cfg.RoundIdle,
		Best:  best,
	})
	return round
}
