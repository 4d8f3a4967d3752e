package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedY    float64
	Gravity   float64        // acceleration magnitude, sign applied by gravity direction
	MaxSpeed  float64        // vertical speed clamp magnitude
	OnSurface *resolv.Object // boundary bar currently in contact, nil while airborne
}

var Physics = donburi.NewComponentType[PhysicsData]()
