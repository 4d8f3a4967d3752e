package systems

import (
	"math"
	"testing"

	"github.com/lunapark/gravflip/components"
	cfg "github.com/lunapark/gravflip/config"
)

func TestFlipStretchEasesBackToNormal(t *testing.T) {
	e := newTestWorld(t)
	pe := playerEntry(t, e)
	ss := components.SquashStretch.Get(pe)

	TriggerFlipStretch(pe)

	if ss.ScaleX != cfg.SquashStretch.FlipScaleX || ss.ScaleY != cfg.SquashStretch.FlipScaleY {
		t.Fatalf("scale = (%v, %v) at flip start, want (%v, %v)",
			ss.ScaleX, ss.ScaleY, cfg.SquashStretch.FlipScaleX, cfg.SquashStretch.FlipScaleY)
	}

	ticks := int(math.Ceil(cfg.SquashStretch.Duration*60)) + 1
	for i := 0; i < ticks; i++ {
		UpdateEffects(e)
	}

	if ss.ScaleX != 1 || ss.ScaleY != 1 {
		t.Fatalf("scale = (%v, %v) after the tween, want (1, 1)", ss.ScaleX, ss.ScaleY)
	}
	if ss.TweenX != nil || ss.TweenY != nil {
		t.Fatal("tweens should be released after completing")
	}
}

func TestUpdateEffectsWithoutActiveTween(t *testing.T) {
	e := newTestWorld(t)
	pe := playerEntry(t, e)
	ss := components.SquashStretch.Get(pe)

	UpdateEffects(e)

	if ss.ScaleX != 1 || ss.ScaleY != 1 {
		t.Fatalf("scale = (%v, %v) with no tween, want (1, 1)", ss.ScaleX, ss.ScaleY)
	}
}
