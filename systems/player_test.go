package systems

import (
	"testing"
	"time"

	"github.com/lunapark/gravflip/components"
	cfg "github.com/lunapark/gravflip/config"
)

func TestFlipTogglesGravityAndAppliesImpulse(t *testing.T) {
	clock := useFakeClock(t)
	e := newTestWorld(t)
	UpdateRound(e)

	pe := playerEntry(t, e)
	player := components.Player.Get(pe)
	physics := components.Physics.Get(pe)

	pressFlip(e)
	UpdatePlayer(e)

	if !player.GravityFlipped {
		t.Fatal("flip should invert gravity")
	}
	if player.GravityDir() != -1 {
		t.Fatalf("gravity direction = %v, want -1 after flip", player.GravityDir())
	}
	if physics.SpeedY != -cfg.Player.FlipImpulse {
		t.Fatalf("SpeedY = %v, want impulse %v toward the ceiling", physics.SpeedY, -cfg.Player.FlipImpulse)
	}
	if !player.FlipStartedAt.Equal(clock.t) {
		t.Fatalf("FlipStartedAt = %v, want %v", player.FlipStartedAt, clock.t)
	}
	if got := countParticles(e); got != cfg.Particle.BurstCount {
		t.Fatalf("flip burst spawned %d particles, want %d", got, cfg.Particle.BurstCount)
	}
}

func TestFlipSuppressedDuringFlipWindow(t *testing.T) {
	clock := useFakeClock(t)
	e := newTestWorld(t)
	UpdateRound(e)

	pe := playerEntry(t, e)
	player := components.Player.Get(pe)
	physics := components.Physics.Get(pe)

	pressFlip(e)
	UpdatePlayer(e)
	releaseFlip(e)

	clock.advance(100 * time.Millisecond)
	speedBefore := physics.SpeedY
	pressFlip(e)
	UpdatePlayer(e)

	if !player.GravityFlipped {
		t.Fatal("flip inside the window must be ignored, not toggled back")
	}
	if physics.SpeedY != speedBefore {
		t.Fatalf("SpeedY = %v, want unchanged %v", physics.SpeedY, speedBefore)
	}
	if got := countParticles(e); got != cfg.Particle.BurstCount {
		t.Fatalf("ignored flip spawned particles: got %d, want %d", got, cfg.Particle.BurstCount)
	}
}

func TestFlipAllowedAfterWindowElapses(t *testing.T) {
	clock := useFakeClock(t)
	e := newTestWorld(t)
	UpdateRound(e)

	pe := playerEntry(t, e)
	player := components.Player.Get(pe)
	physics := components.Physics.Get(pe)

	pressFlip(e)
	UpdatePlayer(e)
	releaseFlip(e)

	clock.advance(cfg.Player.FlipWindow + time.Millisecond)
	pressFlip(e)
	UpdatePlayer(e)

	if player.GravityFlipped {
		t.Fatal("second flip after the window should restore normal gravity")
	}
	if physics.SpeedY != cfg.Player.FlipImpulse {
		t.Fatalf("SpeedY = %v, want impulse %v toward the floor", physics.SpeedY, cfg.Player.FlipImpulse)
	}
	if got := countParticles(e); got != 2*cfg.Particle.BurstCount {
		t.Fatalf("got %d particles after two flips, want %d", got, 2*cfg.Particle.BurstCount)
	}
}

func TestHeldFlipDoesNotRetrigger(t *testing.T) {
	clock := useFakeClock(t)
	e := newTestWorld(t)
	UpdateRound(e)

	player := components.Player.Get(playerEntry(t, e))

	pressFlip(e)
	UpdatePlayer(e)

	// Key stays down past the window: no fresh edge, no second flip.
	clock.advance(cfg.Player.FlipWindow + time.Millisecond)
	input := getOrCreateInput(e)
	input.Previous[cfg.ActionFlip] = true
	input.Current[cfg.ActionFlip] = true
	UpdatePlayer(e)

	if !player.GravityFlipped {
		t.Fatal("held flip key must not retrigger the flip")
	}
}

func TestFlipWindowInactiveBeforeFirstFlip(t *testing.T) {
	useFakeClock(t)
	p := &components.PlayerData{}
	if IsFlipWindowActive(p) {
		t.Fatal("flip window must be inactive before the first flip")
	}
}
