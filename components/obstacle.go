package components

import "github.com/yohamta/donburi"

type ObstacleData struct {
	ID  int
	Top bool // mounted to the ceiling rather than the floor
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
