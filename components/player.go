package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	GravityFlipped bool      // true when gravity pulls toward the ceiling
	FlipStartedAt  time.Time // start of the current flip window; zero before the first flip
}

// GravityDir returns the sign of the gravity acceleration: +1 toward the
// floor, -1 toward the ceiling.
func (p *PlayerData) GravityDir() float64 {
	if p.GravityFlipped {
		return -1
	}
	return 1
}

var Player = donburi.NewComponentType[PlayerData]()
