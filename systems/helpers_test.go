package systems

import (
	"testing"
	"time"

	"github.com/lunapark/gravflip/components"
	cfg "github.com/lunapark/gravflip/config"
	"github.com/lunapark/gravflip/systems/factory"
	"github.com/lunapark/gravflip/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fakeClock replaces the monotonic time source so spawn throttling and the
// flip window can be driven deterministically.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func useFakeClock(t *testing.T) *fakeClock {
	t.Helper()
	c := &fakeClock{t: time.Unix(1000, 0)}
	prev := timeNow
	timeNow = c.now
	t.Cleanup(func() { timeNow = prev })
	return c
}

// memStore is an in-memory itemStore standing in for gdata in tests
type memStore struct {
	items map[string][]byte
}

func (m *memStore) LoadItem(name string) ([]byte, error) {
	return m.items[name], nil
}

func (m *memStore) SaveItem(name string, data []byte) error {
	m.items[name] = data
	return nil
}

func useMemStore(t *testing.T) *memStore {
	t.Helper()
	prev, prevInit := store, storeInitialized
	m := &memStore{items: map[string][]byte{}}
	store, storeInitialized = m, true
	t.Cleanup(func() { store, storeInitialized = prev, prevInit })
	return m
}

// newTestWorld builds the same corridor the scene builds: space, boundary
// bars, player and an Idle round.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateBoundaries(e)
	factory.CreatePlayer(e)
	factory.CreateRound(e, 0)
	return e
}

func playerEntry(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatal("no player entity in world")
	}
	return entry
}

// pressFlip sets a one-frame flip press edge on the input singleton
func pressFlip(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous[cfg.ActionFlip] = false
	input.Current[cfg.ActionFlip] = true
}

// releaseFlip clears the flip action so the next press is a fresh edge
func releaseFlip(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous[cfg.ActionFlip] = false
	input.Current[cfg.ActionFlip] = false
}

func countParticles(e *ecs.ECS) int {
	n := 0
	components.Particle.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func countObstacles(e *ecs.ECS) int {
	n := 0
	components.Obstacle.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
