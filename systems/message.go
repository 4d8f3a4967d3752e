package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lunapark/gravflip/components"
	cfg "github.com/lunapark/gravflip/config"
	"github.com/lunapark/gravflip/fonts"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Cached font face for message rendering (lazy initialized)
var messageFontFace font.Face

// UpdateMessage counts down the active toast. Runs even after the round has
// ended so the high score toast stays visible.
func UpdateMessage(ecs *ecs.ECS) {
	state := getOrCreateMessage(ecs)

	if state.DisplayTimer > 0 {
		state.DisplayTimer--
		if state.DisplayTimer == 0 {
			state.Text = ""
		}
	}
}

// ShowMessage displays a transient toast at the top of the screen. A new
// message replaces whatever is currently showing; toasts are fire-and-forget.
func ShowMessage(ecs *ecs.ECS, text string) {
	state := getOrCreateMessage(ecs)
	state.Text = text
	state.DisplayTimer = cfg.Message.DisplayDuration
}

// DrawMessage renders the active toast in a box at the top center
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessage(ecs)
	if state.Text == "" {
		return
	}

	if messageFontFace == nil {
		messageFontFace = fonts.Bold.Get()
	}

	bounds := text.BoundString(messageFontFace, state.Text) //nolint:staticcheck // TODO: migrate to text/v2
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()

	padding := cfg.Message.BoxPadding
	boxWidth := float32(textWidth) + float32(padding)*2
	boxHeight := float32(textHeight) + float32(padding)*2

	screenWidth := float64(screen.Bounds().Dx())
	boxX := float32((screenWidth - float64(boxWidth)) / 2)
	boxY := float32(cfg.Message.TopMargin)

	vector.FillRect(
		screen,
		boxX, boxY,
		boxWidth, boxHeight,
		cfg.Message.BoxColor,
		false,
	)

	textX := int(boxX + float32(padding))
	textY := int(boxY + float32(padding) + float32(textHeight))
	text.Draw(screen, state.Text, messageFontFace, textX, textY, cfg.Message.TextColor)
}

// getOrCreateMessage returns the singleton Message component, creating if needed
func getOrCreateMessage(ecs *ecs.ECS) *components.MessageData {
	entry, ok := components.Message.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Message))
	}
	return components.Message.Get(entry)
}
