package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lunapark/gravflip/components"
	cfg "github.com/lunapark/gravflip/config"
	"github.com/lunapark/gravflip/fonts"
	"github.com/yohamta/donburi/ecs"
)

// Settings overlay option indices
const (
	settingsSound = iota
	settingsFullscreen
	settingsBack
	settingsOptionCount
)

// UpdateSettingsMenu handles the settings overlay when it is open
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := getOrCreateSettings(e)
	if !settings.Open {
		return
	}
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		PlaySFX(e, cfg.SoundMenuNavigate)
		settings.SelectedIndex = (settings.SelectedIndex - 1 + settingsOptionCount) % settingsOptionCount
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		PlaySFX(e, cfg.SoundMenuNavigate)
		settings.SelectedIndex = (settings.SelectedIndex + 1) % settingsOptionCount
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		switch settings.SelectedIndex {
		case settingsSound:
			settings.Muted = !settings.Muted
			SetMuted(settings.Muted)
			PlaySFX(e, cfg.SoundMenuSelect)
			saveCurrentSettings(settings)
		case settingsFullscreen:
			settings.Fullscreen = !settings.Fullscreen
			ebiten.SetFullscreen(settings.Fullscreen)
			PlaySFX(e, cfg.SoundMenuSelect)
			saveCurrentSettings(settings)
		case settingsBack:
			PlaySFX(e, cfg.SoundMenuSelect)
			settings.Open = false
		}
	}

	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		settings.Open = false
	}
}

// DrawSettingsMenu renders the settings overlay on top of the menu
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	settings := getOrCreateSettings(e)
	if !settings.Open {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.BlackOverlay,
		false,
	)

	titleFont := fonts.Title.Get()
	title := "SETTINGS"
	titleWidth := len(title) * 20
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, label := range settingsLabels(settings) {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == settings.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		textWidth := len(label) * 12
		x := int((width - float64(textWidth)) / 2)
		text.Draw(screen, label, menuFont, x, int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}
}

func settingsLabels(settings *components.SettingsMenuData) []string {
	sound := "On"
	if settings.Muted {
		sound = "Off"
	}
	fullscreen := "Off"
	if settings.Fullscreen {
		fullscreen = "On"
	}
	return []string{
		fmt.Sprintf("Sound: %s", sound),
		fmt.Sprintf("Fullscreen: %s", fullscreen),
		"Back",
	}
}

// OpenSettings opens the settings overlay
func OpenSettings(e *ecs.ECS) {
	settings := getOrCreateSettings(e)
	settings.Open = true
	settings.SelectedIndex = 0
	settings.Muted = IsMuted()
	settings.Fullscreen = ebiten.IsFullscreen()
}

// IsSettingsOpen reports whether the settings overlay is active
func IsSettingsOpen(e *ecs.ECS) bool {
	settings := getOrCreateSettings(e)
	return settings.Open
}

func saveCurrentSettings(s *components.SettingsMenuData) {
	_ = SaveSettings(&SavedSettings{
		Muted:      s.Muted,
		Fullscreen: s.Fullscreen,
	})
}

func getOrCreateSettings(e *ecs.ECS) *components.SettingsMenuData {
	entry, ok := components.SettingsMenu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.SettingsMenu))
	}
	return components.SettingsMenu.Get(entry)
}
