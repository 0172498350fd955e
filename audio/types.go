package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundHit      SoundType = iota // Block strikes a car
	SoundHeal                      // Healer pickup
	SoundWhoosh                    // Lane change
	SoundGameOver                  // Round lost
	SoundChime                     // Spawning begins
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundHit:      "hit",
	SoundHeal:     "heal",
	SoundWhoosh:   "whoosh",
	SoundGameOver: "gameover",
	SoundChime:    "chime",
}

// String returns the config key of the sound
func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// ParseSoundType resolves a config key
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound effect")
)
