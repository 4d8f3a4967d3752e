package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/lunapark/gravflip/config"
	"github.com/lunapark/gravflip/systems"
	"github.com/lunapark/gravflip/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CorridorScene runs the gravity-flip simulation: one round from start to
// collision. Retrying creates a fresh scene, which is what resets all
// mutable round state.
type CorridorScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewCorridorScene creates a new corridor scene
func NewCorridorScene(sc SceneChanger) *CorridorScene {
	return &CorridorScene{sceneChanger: sc}
}

func (cs *CorridorScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()

	// After the collision, linger on the frozen field briefly before the
	// game over screen.
	round := systems.GetRound(cs.ecs)
	if round != nil && round.State == cfg.RoundOver && round.OverTimer >= cfg.Round.OverDelayFrames {
		cs.sceneChanger.ChangeScene(NewGameOverScene(cs.sceneChanger, round.Score, round.Best, round.NewRecord))
	}
}

func (cs *CorridorScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

func (cs *CorridorScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, plays SFX queued on the previous tick)
	e.AddSystem(systems.UpdateAudio)

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateRound)

	// Simulation systems, frozen once the round ends
	e.AddSystem(systems.WithRoundRunning(systems.UpdatePlayer))
	e.AddSystem(systems.WithRoundRunning(systems.UpdatePhysics))
	e.AddSystem(systems.WithRoundRunning(systems.UpdateObjects))
	e.AddSystem(systems.WithRoundRunning(systems.UpdateObstacles))
	e.AddSystem(systems.WithRoundRunning(systems.UpdateParticles))
	e.AddSystem(systems.WithRoundRunning(systems.UpdateEffects))

	// Toast timer keeps running so the high score message stays visible
	e.AddSystem(systems.UpdateMessage)

	// Renderers
	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawMessage)

	cs.ecs = e

	// Build the corridor: collision space first, then its contents
	factory.CreateSpace(cs.ecs, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateBoundaries(cs.ecs)
	factory.CreatePlayer(cs.ecs)
	factory.CreateRound(cs.ecs, systems.LoadHighScore())
}
