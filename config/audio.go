package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundFlip
	SoundScore
	SoundCrash
	SoundRoundStart
	SoundMenuNavigate
	SoundMenuSelect
	SoundHighScore
)

// AudioConfig contains audio system configuration
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64

	// Per-sound volume relative to the SFX volume
	VolumeMultipliers map[SoundID]float64
}

// Audio is the global audio configuration
var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,

		VolumeMultipliers: map[SoundID]float64{
			SoundFlip:         0.7,
			SoundScore:        0.5,
			SoundCrash:        0.9,
			SoundRoundStart:   0.6,
			SoundMenuNavigate: 0.4,
			SoundMenuSelect:   0.5,
			SoundHighScore:    0.8,
		},
	}
}
