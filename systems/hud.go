package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	cfg "github.com/lunapark/gravflip/config"
	"github.com/lunapark/gravflip/fonts"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// DrawHUD renders the score in the top-left corner and the best score in
// the top-right.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	round := GetRound(ecs)
	if round == nil {
		return
	}

	hudFont := fonts.Hud.Get()
	width := screen.Bounds().Dx()

	scoreText := fmt.Sprintf("SCORE %d", round.Score)
	text.Draw(screen, scoreText, hudFont, hudMargin, hudMargin+12, cfg.White)

	bestText := fmt.Sprintf("BEST %d", round.Best)
	bestWidth := len(bestText) * 8 // Approximate width for the HUD font
	text.Draw(screen, bestText, hudFont, width-bestWidth-hudMargin, hudMargin+12, cfg.LightBlue)
}
