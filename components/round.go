package components

import (
	"time"

	"github.com/lunapark/gravflip/config"
	"github.com/yohamta/donburi"
)

// RoundData is the singleton round state: score, speed ramp, spawn throttle
// and the Idle -> Running -> Over machine.
type RoundData struct {
	State     config.RoundStateID
	Score     int
	GameSpeed float64

	LastSpawn      time.Time // monotonic timestamp of the last obstacle spawn
	NextObstacleID int

	Best      int  // best score known at round start
	NewRecord bool // this round beat the persisted high score
	OverTimer int  // frames elapsed since the round ended
}

var Round = donburi.NewComponentType[RoundData]()
