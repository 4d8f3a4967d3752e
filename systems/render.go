package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lunapark/gravflip/components"
	cfg "github.com/lunapark/gravflip/config"
	"github.com/lunapark/gravflip/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawWorld redraws the whole corridor every tick: background, boundary
// bars, particles, obstacles, then the player on top.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Corridor.BackgroundColor)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	bar := float32(cfg.Corridor.BarHeight)

	// Ceiling and floor bars
	vector.DrawFilledRect(screen, 0, 0, width, bar, cfg.Corridor.BarColor, false)
	vector.DrawFilledRect(screen, 0, height-bar, width, bar, cfg.Corridor.BarColor, false)

	drawParticles(ecs, screen)
	drawObstacles(ecs, screen)
	drawPlayer(ecs, screen)
}

func drawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	size := float32(cfg.Particle.Size)
	base := cfg.Corridor.ParticleColor

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)

		// Fade out with remaining life
		alpha := p.Life
		if alpha > 1 {
			alpha = 1
		}
		c := color.RGBA{
			R: uint8(float64(base.R) * alpha),
			G: uint8(float64(base.G) * alpha),
			B: uint8(float64(base.B) * alpha),
			A: uint8(255 * alpha),
		}

		vector.DrawFilledRect(screen,
			float32(p.X)-size/2, float32(p.Y)-size/2,
			size, size, c, false)
	})
}

func drawObstacles(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		vector.DrawFilledRect(screen,
			float32(obj.X), float32(obj.Y),
			float32(obj.W), float32(obj.H),
			cfg.Corridor.ObstacleColor, false)
	})
}

// drawPlayer renders the player as a rect scaled about its center by the
// flip squash/stretch, so the deformation never moves the collision box.
func drawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)

	scaleX, scaleY := 1.0, 1.0
	if playerEntry.HasComponent(components.SquashStretch) {
		ss := components.SquashStretch.Get(playerEntry)
		if ss.ScaleX != 0 {
			scaleX = ss.ScaleX
		}
		if ss.ScaleY != 0 {
			scaleY = ss.ScaleY
		}
	}

	w := obj.W * scaleX
	h := obj.H * scaleY
	cx := obj.X + obj.W/2
	cy := obj.Y + obj.H/2

	vector.DrawFilledRect(screen,
		float32(cx-w/2), float32(cy-h/2),
		float32(w), float32(h),
		cfg.Corridor.PlayerColor, false)
}
