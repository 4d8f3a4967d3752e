package systems

import (
	"github.com/lunapark/gravflip/components"
	cfg "github.com/lunapark/gravflip/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Tween timestep, one display frame at 60 ticks per second
const tweenDT = float32(1.0 / 60.0)

// UpdateEffects advances the squash/stretch tweens back toward normal scale
func UpdateEffects(ecs *ecs.ECS) {
	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)

		if ss.TweenX != nil {
			v, done := ss.TweenX.Update(tweenDT)
			ss.ScaleX = float64(v)
			if done {
				ss.ScaleX = 1
				ss.TweenX = nil
			}
		}
		if ss.TweenY != nil {
			v, done := ss.TweenY.Update(tweenDT)
			ss.ScaleY = float64(v)
			if done {
				ss.ScaleY = 1
				ss.TweenY = nil
			}
		}
	})
}

// TriggerFlipStretch starts the cosmetic flip deformation: narrower and
// taller at flip start, easing back to normal over the flip window.
func TriggerFlipStretch(entry *donburi.Entry) {
	ss := components.SquashStretch.Get(entry)
	dur := float32(cfg.SquashStretch.Duration)

	ss.ScaleX = cfg.SquashStretch.FlipScaleX
	ss.ScaleY = cfg.SquashStretch.FlipScaleY
	ss.TweenX = gween.New(float32(cfg.SquashStretch.FlipScaleX), 1, dur, ease.OutQuad)
	ss.TweenY = gween.New(float32(cfg.SquashStretch.FlipScaleY), 1, dur, ease.OutQuad)
}
