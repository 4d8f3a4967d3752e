package assets

import (
	"math"
	"math/rand"

	cfg "github.com/lunapark/gravflip/config"
)

// Sound effects are synthesized at startup instead of decoded from files:
// every cue in the game is a short chirp or noise burst, so a few dozen
// milliseconds of generated PCM replaces an asset pipeline entirely.

// Samples are 16-bit little-endian stereo at the context sample rate.
const bytesPerSample = 4

var sfxCache = map[cfg.SoundID][]byte{}

// SFX returns the PCM bytes for a sound effect, synthesizing on first use.
func SFX(id cfg.SoundID) []byte {
	if pcm, ok := sfxCache[id]; ok {
		return pcm
	}

	var pcm []byte
	switch id {
	case cfg.SoundFlip:
		pcm = chirp(300, 700, 0.09)
	case cfg.SoundScore:
		pcm = chirp(900, 1200, 0.06)
	case cfg.SoundCrash:
		pcm = noiseBurst(0.25)
	case cfg.SoundRoundStart:
		pcm = chirp(400, 800, 0.15)
	case cfg.SoundMenuNavigate:
		pcm = chirp(600, 600, 0.04)
	case cfg.SoundMenuSelect:
		pcm = chirp(500, 1000, 0.08)
	case cfg.SoundHighScore:
		pcm = fanfare()
	default:
		return nil
	}

	sfxCache[id] = pcm
	return pcm
}

// chirp generates a sine sweep from f0 to f1 Hz over dur seconds with a
// linear fade-out envelope.
func chirp(f0, f1, dur float64) []byte {
	sampleRate := float64(cfg.Audio.SampleRate)
	n := int(dur * sampleRate)
	pcm := make([]byte, n*bytesPerSample)

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := f0 + (f1-f0)*t
		phase += 2 * math.Pi * freq / sampleRate
		env := 1 - t
		writeSample(pcm, i, math.Sin(phase)*env)
	}
	return pcm
}

// noiseBurst generates decaying white noise, used for the crash.
func noiseBurst(dur float64) []byte {
	sampleRate := float64(cfg.Audio.SampleRate)
	n := int(dur * sampleRate)
	pcm := make([]byte, n*bytesPerSample)

	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		env := (1 - t) * (1 - t)
		writeSample(pcm, i, (rand.Float64()*2-1)*env)
	}
	return pcm
}

// fanfare is a short ascending three-note arpeggio for a new high score.
func fanfare() []byte {
	notes := []float64{523.25, 659.25, 783.99} // C5 E5 G5
	var pcm []byte
	for _, f := range notes {
		pcm = append(pcm, chirp(f, f, 0.09)...)
	}
	return pcm
}

func writeSample(pcm []byte, i int, v float64) {
	s := int16(v * 0.5 * math.MaxInt16)
	lo, hi := byte(s), byte(s>>8)
	off := i * bytesPerSample
	pcm[off+0] = lo // left
	pcm[off+1] = hi
	pcm[off+2] = lo // right
	pcm[off+3] = hi
}
