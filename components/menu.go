package components

import "github.com/yohamta/donburi"

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuSettings
	MainMenuExit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex  int
	VisibleOptions []MainMenuOption
}

var Menu = donburi.NewComponentType[MenuData]()

// SettingsMenuData stores the state of the settings overlay
type SettingsMenuData struct {
	Open          bool
	SelectedIndex int

	Muted      bool
	Fullscreen bool
}

var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
