package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns every left-channel sample
func drain(s beep.Streamer) []float64 {
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
}

// TestOscillatorSine verifies sine output range and length
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := drain(osc)
	if len(samples) != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), len(samples))
	}
	for i, v := range samples {
		if v < -1 || v > 1 {
			t.Fatalf("Sample %d out of range: %f", i, v)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square output is bipolar unity
func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	for i, v := range drain(osc) {
		if v != -1.0 && v != 1.0 {
			t.Fatalf("Square wave sample %d should be -1.0 or 1.0, got %f", i, v)
		}
	}
}

// TestOscillatorNoiseDeterministic verifies noise is repeatable for equal parameters
func TestOscillatorNoiseDeterministic(t *testing.T) {
	rate := beep.SampleRate(22050)
	a := drain(NewOscillator(0, 20*time.Millisecond, WaveNoise, rate))
	b := drain(NewOscillator(0, 20*time.Millisecond, WaveNoise, rate))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected identical noise at %d, got %f and %f", i, a[i], b[i])
		}
	}
}

// TestEnvelopeShape verifies silence at the edges and unity in the sustain
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	square := NewOscillator(1, d, WaveSquare, rate) // first half +1
	env := NewEnvelope(square, d, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := drain(env)
	if len(samples) != 100 {
		t.Fatalf("Expected 100 samples, got %d", len(samples))
	}
	if samples[0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0])
	}
	if math.Abs(samples[5]-0.5) > 1e-9 {
		t.Errorf("Expected half gain mid-attack, got %f", samples[5])
	}
	if samples[30] != 1 {
		t.Errorf("Expected unity sustain, got %f", samples[30])
	}
	if math.Abs(samples[99]) > 0.11 {
		t.Errorf("Expected near-silent tail, got %f", samples[99])
	}
}

// TestVolumeZeroIsSilent verifies zero gain does not produce -Inf
func TestVolumeZeroIsSilent(t *testing.T) {
	s := newVolume(NewOscillator(440, 10*time.Millisecond, WaveSquare, beep.SampleRate(44100)), 0)
	for i, v := range drain(s) {
		if v != 0 {
			t.Fatalf("Expected silence at %d, got %f", i, v)
		}
	}
}

// TestAllSoundEffectsFinite verifies every effect streams finite bounded audio
func TestAllSoundEffectsFinite(t *testing.T) {
	cfg := DefaultAudioConfig()
	for st := SoundType(0); st < soundTypeCount; st++ {
		s := GetSoundEffect(st, cfg)
		if s == nil {
			t.Fatalf("Expected streamer for %s", st)
		}
		samples := drain(s)
		if len(samples) == 0 {
			t.Errorf("Expected samples for %s", st)
		}
		for i, v := range samples {
			if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > 1 {
				t.Fatalf("%s sample %d invalid: %f", st, i, v)
			}
		}
	}
	if GetSoundEffect(soundTypeCount, cfg) != nil {
		t.Error("Expected nil streamer for unknown sound")
	}
}

// TestGameOverLongerThanNote verifies the three-note sequence
func TestGameOverLongerThanNote(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 8000
	rate := beep.SampleRate(cfg.SampleRate)

	n := len(drain(CreateGameOverSound(cfg)))
	note := 180 * time.Millisecond
	if n != 3*rate.N(note) {
		t.Errorf("Expected %d samples, got %d", 3*rate.N(note), n)
	}
}
