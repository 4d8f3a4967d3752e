package systems

import (
	"testing"
	"time"

	"github.com/lunapark/gravflip/components"
	cfg "github.com/lunapark/gravflip/config"
	"github.com/lunapark/gravflip/systems/factory"
)

func TestSpawnerHonorsWallClockInterval(t *testing.T) {
	clock := useFakeClock(t)
	e := newTestWorld(t)
	UpdateRound(e)

	UpdateObstacles(e)
	if got := countObstacles(e); got != 0 {
		t.Fatalf("spawned %d obstacles immediately after round start, want 0", got)
	}

	clock.advance(cfg.Obstacle.SpawnInterval - time.Millisecond)
	UpdateObstacles(e)
	if got := countObstacles(e); got != 0 {
		t.Fatalf("spawned %d obstacles before the interval elapsed, want 0", got)
	}

	clock.advance(2 * time.Millisecond)
	UpdateObstacles(e)
	if got := countObstacles(e); got != 1 {
		t.Fatalf("got %d obstacles after the interval elapsed, want 1", got)
	}

	// The throttle resets from the spawn, not from the round start.
	UpdateObstacles(e)
	if got := countObstacles(e); got != 1 {
		t.Fatalf("got %d obstacles on the next tick, want still 1", got)
	}

	clock.advance(cfg.Obstacle.SpawnInterval)
	UpdateObstacles(e)
	if got := countObstacles(e); got != 2 {
		t.Fatalf("got %d obstacles after a second interval, want 2", got)
	}
}

func TestObstacleIDsIncrease(t *testing.T) {
	clock := useFakeClock(t)
	e := newTestWorld(t)
	UpdateRound(e)
	round := GetRound(e)

	for i := 0; i < 3; i++ {
		clock.advance(cfg.Obstacle.SpawnInterval)
		spawnIfDue(e, round)
	}
	if round.NextObstacleID != 3 {
		t.Fatalf("NextObstacleID = %d after 3 spawns, want 3", round.NextObstacleID)
	}
}

func TestObstacleScoredWhenFullyOffScreen(t *testing.T) {
	useFakeClock(t)
	e := newTestWorld(t)
	UpdateRound(e)
	round := GetRound(e)
	round.GameSpeed = 2

	entry := factory.CreateObstacle(e, 0, false)
	obj := components.Object.Get(entry)

	// Trailing edge exactly at the left boundary after the move: not yet off.
	obj.X = -obj.W + round.GameSpeed
	UpdateObstacles(e)
	if got := countObstacles(e); got != 1 {
		t.Fatalf("obstacle with trailing edge at x=0 was removed, want kept")
	}
	if round.Score != 0 {
		t.Fatalf("score = %d before the obstacle left the screen, want 0", round.Score)
	}

	// One more move pushes the trailing edge past the boundary.
	UpdateObstacles(e)
	if got := countObstacles(e); got != 0 {
		t.Fatalf("got %d obstacles after exiting the screen, want 0", got)
	}
	if round.Score != cfg.Obstacle.PointsPerClear {
		t.Fatalf("score = %d, want %d for one cleared obstacle", round.Score, cfg.Obstacle.PointsPerClear)
	}
	if round.State != cfg.RoundRunning {
		t.Fatal("scoring an obstacle must not end the round")
	}
}

func TestScoreStaysMultipleOfPointsPerClear(t *testing.T) {
	useFakeClock(t)
	e := newTestWorld(t)
	UpdateRound(e)
	round := GetRound(e)
	round.GameSpeed = cfg.Obstacle.Width

	for i := 0; i < 5; i++ {
		entry := factory.CreateObstacle(e, i, i%2 == 0)
		components.Object.Get(entry).X = -1
	}
	UpdateObstacles(e)

	if round.Score != 5*cfg.Obstacle.PointsPerClear {
		t.Fatalf("score = %d, want %d", round.Score, 5*cfg.Obstacle.PointsPerClear)
	}
	if round.Score%cfg.Obstacle.PointsPerClear != 0 {
		t.Fatalf("score %d is not a multiple of %d", round.Score, cfg.Obstacle.PointsPerClear)
	}
}

func TestCollisionEndsRoundWithoutScoring(t *testing.T) {
	useFakeClock(t)
	e := newTestWorld(t)
	UpdateRound(e)
	round := GetRound(e)

	pe := playerEntry(t, e)
	playerObj := components.Object.Get(pe)

	entry := factory.CreateObstacle(e, 0, false)
	obj := components.Object.Get(entry)
	obj.X = playerObj.X + round.GameSpeed
	obj.Y = playerObj.Y

	UpdateObstacles(e)

	if round.State != cfg.RoundOver {
		t.Fatalf("round state = %v after collision, want Over", round.State)
	}
	if round.Score != 0 {
		t.Fatalf("score = %d, collided obstacle must not score", round.Score)
	}
	if got := countObstacles(e); got != 0 {
		t.Fatalf("got %d obstacles after collision, want the collided one removed", got)
	}
}

func TestSweepFreezesAfterRoundOver(t *testing.T) {
	useFakeClock(t)
	e := newTestWorld(t)
	UpdateRound(e)
	round := GetRound(e)
	EndRound(e, round)

	entry := factory.CreateObstacle(e, 0, true)
	obj := components.Object.Get(entry)
	x := obj.X

	// The scene gates the sweep behind the running state.
	WithRoundRunning(UpdateObstacles)(e)

	if obj.X != x {
		t.Fatalf("obstacle moved from %v to %v while the round was over", x, obj.X)
	}
}

func TestAABBOverlapEdges(t *testing.T) {
	e := newTestWorld(t)
	a := components.Object.Get(playerEntry(t, e)).Object

	touching := factory.CreateObstacle(e, 0, false)
	b := components.Object.Get(touching).Object
	b.X = a.X + a.W
	b.Y = a.Y
	if aabbOverlap(a, b) {
		t.Fatal("edge-touching rectangles must not count as overlapping")
	}

	b.X = a.X + a.W - 1
	if !aabbOverlap(a, b) {
		t.Fatal("rectangles sharing interior area must overlap")
	}
}
