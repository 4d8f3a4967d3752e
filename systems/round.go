package systems

import (
	"github.com/lunapark/gravflip/components"
	cfg "github.com/lunapark/gravflip/config"
	"github.com/lunapark/gravflip/systems/factory"
	"github.com/lunapark/gravflip/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRound drives the round state machine and the speed ramp.
// Runs every tick, before the gameplay systems it gates.
func UpdateRound(e *ecs.ECS) {
	round := GetRound(e)
	if round == nil {
		return
	}

	switch round.State {
	case cfg.RoundIdle:
		startRound(e, round)

	case cfg.RoundRunning:
		// Linear ramp from score, capped. Score only grows within a
		// round, so the ramp is monotonic non-decreasing.
		speed := cfg.Obstacle.BaseSpeed + float64(round.Score)*cfg.Obstacle.SpeedPerPoint
		if speed > cfg.Obstacle.MaxSpeed {
			speed = cfg.Obstacle.MaxSpeed
		}
		round.GameSpeed = speed

	case cfg.RoundOver:
		round.OverTimer++
	}
}

// startRound transitions Idle -> Running with fresh mutable state. The scene
// spawns the round into a fresh world, so obstacles and particles are already
// empty collections here.
func startRound(e *ecs.ECS, round *components.RoundData) {
	round.State = cfg.RoundRunning
	round.Score = 0
	round.GameSpeed = cfg.Obstacle.BaseSpeed
	round.LastSpawn = timeNow()
	round.NextObstacleID = 0
	round.NewRecord = false
	round.OverTimer = 0

	ShowMessage(e, "GET READY")
	PlaySFX(e, cfg.SoundRoundStart)
}

// EndRound transitions Running -> Over: freezes the simulation, spawns the
// crash burst and runs the high score compare-and-store.
func EndRound(e *ecs.ECS, round *components.RoundData) {
	if round.State != cfg.RoundRunning {
		return
	}
	round.State = cfg.RoundOver
	round.OverTimer = 0
	PlaySFX(e, cfg.SoundCrash)

	if playerEntry, ok := tags.Player.First(e.World); ok {
		obj := components.Object.Get(playerEntry)
		factory.SpawnParticleBurst(e, obj.X+obj.W/2, obj.Y+obj.H/2, cfg.Particle.CrashCount)
	}

	if SaveHighScore(round.Score) {
		round.Best = round.Score
		round.NewRecord = true
		ShowMessage(e, "NEW HIGH SCORE!")
		PlaySFX(e, cfg.SoundHighScore)
	}
}

// WithRoundRunning wraps a system so it only runs while the round is live.
// Everything it gates freezes the moment the round ends.
func WithRoundRunning(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		round := GetRound(e)
		if round == nil || round.State != cfg.RoundRunning {
			return
		}
		system(e)
	}
}

// GetRound returns the singleton round state, or nil outside a round scene
func GetRound(e *ecs.ECS) *components.RoundData {
	entry, ok := components.Round.First(e.World)
	if !ok {
		return nil
	}
	return components.Round.Get(entry)
}
