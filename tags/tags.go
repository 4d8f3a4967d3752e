package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Particle = donburi.NewTag().SetName("Particle")
	Boundary = donburi.NewTag().SetName("Boundary")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPlayer   = "player"
	ResolvObstacle = "obstacle"
	ResolvCeiling  = "ceiling"
	ResolvFloor    = "floor"
)
