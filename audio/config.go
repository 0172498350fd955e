package audio

import (
	"fmt"

	"github.com/lixenwraith/balance/constants"
)

// AudioConfig holds sound output settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.DefaultSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundHit:      1.0,
			SoundHeal:     0.8,
			SoundWhoosh:   0.5,
			SoundGameOver: 1.0,
			SoundChime:    0.7,
		},
	}
}

// NewAudioConfig builds a config from named effect volumes; missing names keep defaults
func NewAudioConfig(enabled bool, master float64, sampleRate int, volumes map[string]float64) (*AudioConfig, error) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = enabled
	cfg.MasterVolume = master
	if sampleRate > 0 {
		cfg.SampleRate = sampleRate
	}
	for name, v := range volumes {
		st, ok := ParseSoundType(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSound, name)
		}
		cfg.EffectVolumes[st] = v
	}
	return cfg, nil
}
