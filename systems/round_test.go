package systems

import (
	"testing"

	cfg "github.com/lunapark/gravflip/config"
	"github.com/yohamta/donburi/ecs"
)

func TestRoundStartsRunningWithFreshState(t *testing.T) {
	clock := useFakeClock(t)
	e := newTestWorld(t)

	round := GetRound(e)
	if round.State != cfg.RoundIdle {
		t.Fatalf("round state = %v before the first update, want Idle", round.State)
	}

	UpdateRound(e)

	if round.State != cfg.RoundRunning {
		t.Fatalf("round state = %v after the first update, want Running", round.State)
	}
	if round.Score != 0 {
		t.Fatalf("score = %d at round start, want 0", round.Score)
	}
	if round.GameSpeed != cfg.Obstacle.BaseSpeed {
		t.Fatalf("GameSpeed = %v at round start, want base %v", round.GameSpeed, cfg.Obstacle.BaseSpeed)
	}
	if !round.LastSpawn.Equal(clock.t) {
		t.Fatal("LastSpawn should be primed to the round start time")
	}
	msg := getOrCreateMessage(e)
	if msg.Text != "GET READY" {
		t.Fatalf("toast = %q at round start, want GET READY", msg.Text)
	}
}

func TestGameSpeedRampIsMonotonicAndCapped(t *testing.T) {
	useFakeClock(t)
	e := newTestWorld(t)
	UpdateRound(e)
	round := GetRound(e)

	prev := round.GameSpeed
	for score := 0; score <= 2000; score += cfg.Obstacle.PointsPerClear {
		round.Score = score
		UpdateRound(e)

		if round.GameSpeed < prev {
			t.Fatalf("GameSpeed decreased from %v to %v at score %d", prev, round.GameSpeed, score)
		}
		if round.GameSpeed > cfg.Obstacle.MaxSpeed {
			t.Fatalf("GameSpeed = %v at score %d, exceeds cap %v", round.GameSpeed, score, cfg.Obstacle.MaxSpeed)
		}
		prev = round.GameSpeed
	}

	round.Score = 1 << 20
	UpdateRound(e)
	if round.GameSpeed != cfg.Obstacle.MaxSpeed {
		t.Fatalf("GameSpeed = %v at extreme score, want pinned at %v", round.GameSpeed, cfg.Obstacle.MaxSpeed)
	}
}

func TestEndRoundIsIdempotent(t *testing.T) {
	useFakeClock(t)
	e := newTestWorld(t)
	UpdateRound(e)
	round := GetRound(e)

	EndRound(e, round)
	if round.State != cfg.RoundOver {
		t.Fatalf("round state = %v, want Over", round.State)
	}

	particles := countParticles(e)
	EndRound(e, round)
	if round.State != cfg.RoundOver {
		t.Fatal("second EndRound changed the state")
	}
	if got := countParticles(e); got != particles {
		t.Fatalf("second EndRound spawned more particles: %d -> %d", particles, got)
	}
}

func TestEndRoundRecordsNewHighScore(t *testing.T) {
	useFakeClock(t)
	m := useMemStore(t)
	e := newTestWorld(t)
	UpdateRound(e)
	round := GetRound(e)
	round.Score = 50

	EndRound(e, round)

	if !round.NewRecord {
		t.Fatal("score 50 against empty store should be a new record")
	}
	if round.Best != 50 {
		t.Fatalf("Best = %d, want 50", round.Best)
	}
	if LoadHighScore() != 50 {
		t.Fatalf("persisted high score = %d, want 50", LoadHighScore())
	}
	if len(m.items["highscore"]) == 0 {
		t.Fatal("high score record was not written to the store")
	}
}

func TestEndRoundKeepsExistingHighScore(t *testing.T) {
	useFakeClock(t)
	useMemStore(t)
	if !SaveHighScore(100) {
		t.Fatal("seeding the store should report a new record")
	}

	e := newTestWorld(t)
	UpdateRound(e)
	round := GetRound(e)
	round.Best = 100
	round.Score = 40

	EndRound(e, round)

	if round.NewRecord {
		t.Fatal("score below the stored best must not count as a record")
	}
	if round.Best != 100 {
		t.Fatalf("Best = %d, want untouched 100", round.Best)
	}
	if LoadHighScore() != 100 {
		t.Fatalf("persisted high score = %d, want 100", LoadHighScore())
	}
}

func TestOverTimerAdvancesAfterRoundEnds(t *testing.T) {
	useFakeClock(t)
	e := newTestWorld(t)
	UpdateRound(e)
	round := GetRound(e)
	EndRound(e, round)

	for i := 0; i < cfg.Round.OverDelayFrames; i++ {
		UpdateRound(e)
	}
	if round.OverTimer != cfg.Round.OverDelayFrames {
		t.Fatalf("OverTimer = %d, want %d", round.OverTimer, cfg.Round.OverDelayFrames)
	}
}

func TestWithRoundRunningGatesSystems(t *testing.T) {
	useFakeClock(t)
	e := newTestWorld(t)

	calls := 0
	gated := WithRoundRunning(func(*ecs.ECS) { calls++ })

	gated(e)
	if calls != 0 {
		t.Fatal("gated system ran while the round was idle")
	}

	UpdateRound(e)
	gated(e)
	if calls != 1 {
		t.Fatalf("gated system ran %d times while running, want 1", calls)
	}

	EndRound(e, GetRound(e))
	gated(e)
	if calls != 1 {
		t.Fatal("gated system ran after the round ended")
	}
}
