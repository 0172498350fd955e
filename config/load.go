package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/balance/constants"
)

// Load builds the configuration: defaults, then the TOML file at path (optional),
// then envFile (optional, already-set variables win), then BALANCE_* variables.
// The result is validated
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("decode config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	log.Printf("config loaded from %s", path)
	return nil
}

// LookupFunc resolves an environment variable
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays BALANCE_* variables. Unparseable values are errors
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	e := envReader{lookup: lookup}

	e.getInt64("SEED", &c.Seed)
	e.getBool("DEBUG", &c.Debug)
	e.getInt("FILL_AT_MOST", &c.Gameplay.FillAtMost)
	e.getFloat("INITIAL_SPEED", &c.Gameplay.InitialSpeed)
	e.getInt("FIRST_SPAWN_TIME", &c.Gameplay.FirstSpawnTime)

	e.getBool("AUDIO_ENABLED", &c.Audio.Enabled)
	e.getInt("SAMPLE_RATE", &c.Audio.SampleRate)
	// Master volume is given as 0-100
	var volume int
	if e.getInt("MASTER_VOLUME", &volume) {
		c.Audio.MasterVolume = float64(volume) / 100.0
	}

	e.getBool("GESTURE_ENABLED", &c.Gesture.Enabled)
	e.getString("GESTURE_ADDR", &c.Gesture.Addr)
	e.getFloat("GESTURE_MIN_CONFIDENCE", &c.Gesture.MinConfidence)

	e.getString("SCORES_PATH", &c.Scores.Path)
	e.getInt("SCORES_KEEP", &c.Scores.Keep)

	return e.err
}

// envReader collects the first parse error and skips unset keys
type envReader struct {
	lookup LookupFunc
	err    error
}

func (e *envReader) raw(name string) (string, bool) {
	if e.err != nil {
		return "", false
	}
	v, ok := e.lookup(constants.EnvPrefix + name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (e *envReader) fail(name, v string, err error) {
	e.err = fmt.Errorf("env %s%s=%q: %w", constants.EnvPrefix, name, v, err)
}

func (e *envReader) getString(name string, dst *string) bool {
	v, ok := e.raw(name)
	if ok {
		*dst = v
	}
	return ok
}

func (e *envReader) getBool(name string, dst *bool) bool {
	v, ok := e.raw(name)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(name, v, err)
		return false
	}
	*dst = b
	return true
}

func (e *envReader) getInt(name string, dst *int) bool {
	v, ok := e.raw(name)
	if !ok {
		return false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(name, v, err)
		return false
	}
	*dst = n
	return true
}

func (e *envReader) getInt64(name string, dst *int64) bool {
	v, ok := e.raw(name)
	if !ok {
		return false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		e.fail(name, v, err)
		return false
	}
	*dst = n
	return true
}

func (e *envReader) getFloat(name string, dst *float64) bool {
	v, ok := e.raw(name)
	if !ok {
		return false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.fail(name, v, err)
		return false
	}
	*dst = f
	return true
}
