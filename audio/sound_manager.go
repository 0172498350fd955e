package audio

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/balance/constants"
	"github.com/lixenwraith/balance/events"
)

// SoundManager plays one-shot effects into a shared mixer.
// Play is safe from any goroutine; playback is skipped until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool

	// lock guards mixer mutation while the speaker is pulling samples
	lock   func()
	unlock func()
}

// NewSoundManager creates a manager; nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		lock:   func() {},
		unlock: func() {},
	}
}

// Initialize opens the speaker once and starts streaming the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrNotInitialized
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBuffer)); err != nil {
		return err
	}
	sm.lock, sm.unlock = speaker.Lock, speaker.Unlock
	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio: speaker initialized at %d Hz", sm.cfg.SampleRate)
	return nil
}

// Cleanup clears pending sounds and stops playback
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.lock()
	sm.mixer.Clear()
	sm.unlock()
	speaker.Clear()
	sm.initialized = false
}

// Play queues an effect. No-op when muted or uninitialized
func (sm *SoundManager) Play(st SoundType) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}

	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return
	}
	sm.lock()
	sm.mixer.Add(s)
	sm.unlock()
}

// ToggleMute flips the mute state and returns the new value. Muting drops sounds in flight
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	muted := !sm.muted.Load()
	sm.muted.Store(muted)
	if muted && sm.initialized {
		sm.lock()
		sm.mixer.Clear()
		sm.unlock()
	}
	return muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Pending returns the number of effects still playing
func (sm *SoundManager) Pending() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.lock()
	defer sm.unlock()
	return sm.mixer.Len()
}

// HandleEvent plays the effect bound to a game event, if any
func (sm *SoundManager) HandleEvent(ev events.GameEvent) {
	if st, ok := SoundFor(ev); ok {
		sm.Play(st)
	}
}

// SoundFor maps game events to effects
func SoundFor(ev events.GameEvent) (SoundType, bool) {
	switch ev.Type {
	case events.EventBlockHit:
		return SoundHit, true
	case events.EventHealerPicked:
		return SoundHeal, true
	case events.EventLaneChange:
		return SoundWhoosh, true
	case events.EventGameOver:
		return SoundGameOver, true
	case events.EventSpawnStarted:
		return SoundChime, true
	default:
		return 0, false
	}
}
