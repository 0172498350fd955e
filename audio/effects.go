package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/balance/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a streamer of the given wave lasting duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) sample() float64 {
	switch o.wave {
	case WaveSquare:
		if o.phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (o.phase - 0.5)
	case WaveNoise:
		return o.rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * o.phase)
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		v := o.sample()
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	start := total - rel
	if start < att {
		start = att
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: start,
		total:        total,
	}
}

// gain returns the envelope level at the current position
func (e *envelope) gain() float64 {
	switch {
	case e.attack > 0 && e.position < e.attack:
		return float64(e.position) / float64(e.attack)
	case e.release > 0 && e.position >= e.releaseStart:
		return math.Max(0, float64(e.total-e.position)/float64(e.release))
	default:
		return 1.0
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; zero or below is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is an enveloped oscillator
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreateHitSound generates a harsh buzz with a noise transient for block strikes
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.HitSoundDuration

	body := tone(110.0, WaveSaw, d, constants.HitSoundAttack, constants.HitSoundRelease, rate)
	crack := tone(0, WaveNoise, d/2, constants.HitSoundAttack, d/4, rate)

	mixed := beep.Mix(newVolume(body, 0.7), newVolume(crack, 0.3))
	return newVolume(mixed, effectVolume(cfg, SoundHit))
}

// CreateHealSound generates a bell for healer pickups
func CreateHealSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.HealSoundDuration

	// C6 with an octave overtone
	fund := tone(1046.5, WaveSine, d, constants.HealSoundAttack, constants.HealSoundFundamentalRelease, rate)
	over := tone(2093.0, WaveSine, d, constants.HealSoundAttack, constants.HealSoundOvertoneRelease, rate)

	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	return newVolume(mixed, effectVolume(cfg, SoundHeal))
}

// CreateWhooshSound generates a soft noise sweep for lane changes
func CreateWhooshSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := tone(0, WaveNoise, constants.WhooshSoundDuration, constants.WhooshSoundAttack, constants.WhooshSoundRelease, rate)
	return newVolume(noise, effectVolume(cfg, SoundWhoosh))
}

// CreateGameOverSound generates three descending square notes
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.GameOverNoteDuration

	// A4, F4, C4
	notes := []float64{440.0, 349.23, 261.63}
	seq := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		seq[i] = tone(f, WaveSquare, d, constants.GameOverNoteAttack, constants.GameOverNoteRelease, rate)
	}
	return newVolume(beep.Seq(seq...), effectVolume(cfg, SoundGameOver)*0.5)
}

// CreateChimeSound generates a rising two-note chime when spawning begins
func CreateChimeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E5 then B5
	n1 := tone(659.25, WaveSine, constants.ChimeNote1Duration, constants.ChimeAttack, constants.ChimeNote1Release, rate)
	n2 := tone(987.77, WaveSine, constants.ChimeNote2Duration, constants.ChimeAttack, constants.ChimeNote2Release, rate)

	return newVolume(beep.Seq(n1, n2), effectVolume(cfg, SoundChime))
}

// GetSoundEffect returns the streamer for the given sound, nil for unknown types
func GetSoundEffect(st SoundType, cfg *AudioConfig) beep.Streamer {
	switch st {
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundHeal:
		return CreateHealSound(cfg)
	case SoundWhoosh:
		return CreateWhooshSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	case SoundChime:
		return CreateChimeSound(cfg)
	default:
		return nil
	}
}
