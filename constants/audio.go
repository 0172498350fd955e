package constants

import "time"

// Audio Output
const (
	DefaultSampleRate   = 44100
	DefaultMasterVolume = 0.6
	SpeakerBuffer       = 100 * time.Millisecond
)

// Hit Sound Timing
const (
	HitSoundDuration = 120 * time.Millisecond
	HitSoundAttack   = 5 * time.Millisecond
	HitSoundRelease  = 60 * time.Millisecond
)

// Heal Bell Timing
const (
	HealSoundDuration           = 500 * time.Millisecond
	HealSoundAttack             = 5 * time.Millisecond
	HealSoundFundamentalRelease = 450 * time.Millisecond
	HealSoundOvertoneRelease    = 180 * time.Millisecond
)

// Whoosh Sound Timing
const (
	WhooshSoundDuration = 220 * time.Millisecond
	WhooshSoundAttack   = 110 * time.Millisecond
	WhooshSoundRelease  = 110 * time.Millisecond
)

// Game Over Timing
const (
	GameOverNoteDuration = 180 * time.Millisecond
	GameOverNoteAttack   = 5 * time.Millisecond
	GameOverNoteRelease  = 120 * time.Millisecond
)

// Start Chime Timing
const (
	ChimeNote1Duration = 80 * time.Millisecond
	ChimeNote2Duration = 260 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond
	ChimeNote1Release  = 40 * time.Millisecond
	ChimeNote2Release  = 200 * time.Millisecond
)
