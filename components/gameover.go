package components

import "github.com/yohamta/donburi"

// GameOverOption represents the available game over selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverMenu
)

// GameOverData stores the state of the game over screen
type GameOverData struct {
	SelectedOption GameOverOption

	FinalScore int
	BestScore  int
	NewRecord  bool
}

var GameOver = donburi.NewComponentType[GameOverData]()
