package components

import (
	cfg "github.com/lunapark/gravflip/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised during the tick for the audio system
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
