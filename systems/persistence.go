package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedScore represents the high score record stored on disk
type SavedScore struct {
	Best int `json:"best"`
}

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Muted      bool `json:"muted"`
	Fullscreen bool `json:"fullscreen"`
}

// itemStore is the slice of gdata.Manager the game needs. Tests swap in an
// in-memory implementation.
type itemStore interface {
	LoadItem(name string) ([]byte, error)
	SaveItem(name string, data []byte) error
}

var store itemStore
var storeInitialized bool

// InitPersistence initializes the gdata manager for score and settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "gravflip",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	storeInitialized = true
	return nil
}

// LoadHighScore loads the persisted high score, defaulting to 0 when the
// record is absent or unparsable.
func LoadHighScore() int {
	if !storeInitialized || store == nil {
		return 0
	}

	data, err := store.LoadItem("highscore")
	if err != nil {
		log.Printf("Warning: Could not load high score: %v", err)
		return 0
	}
	if len(data) == 0 {
		return 0
	}

	var saved SavedScore
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved high score: %v", err)
		return 0
	}
	if saved.Best < 0 {
		return 0
	}

	return saved.Best
}

// SaveHighScore overwrites the persisted high score if score exceeds it.
// Returns true when a new record was written.
func SaveHighScore(score int) bool {
	if score <= LoadHighScore() {
		return false
	}
	if !storeInitialized || store == nil {
		return false
	}

	data, err := json.Marshal(&SavedScore{Best: score})
	if err != nil {
		log.Printf("Warning: Could not serialize high score: %v", err)
		return false
	}

	if err := store.SaveItem("highscore", data); err != nil {
		log.Printf("Warning: Could not save high score: %v", err)
		return false
	}
	return true
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !storeInitialized || store == nil {
		return nil, nil
	}

	data, err := store.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !storeInitialized || store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := store.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings applies loaded settings to the running game
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetMuted(saved.Muted)
	ebiten.SetFullscreen(saved.Fullscreen)
}
