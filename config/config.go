package config

import (
	"fmt"
	"os"

	"github.com/lixenwraith/flightpath/trajectory"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Flight  FlightConfig  `yaml:"flight"`
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Debug   bool          `yaml:"debug"`
}

type FlightConfig struct {
	DurationS          float64 `yaml:"duration_s"`
	StepS              float64 `yaml:"step_s"`
	ForwardVelocityMps float64 `yaml:"forward_velocity_mps"`
	AmplitudeM         float64 `yaml:"amplitude_m"`
	PeriodS            float64 `yaml:"period_s"`
	BaseAltitudeM      float64 `yaml:"base_altitude_m"`
}

type DisplayConfig struct {
	Title  string `yaml:"title"`
	Status bool   `yaml:"status"`
}

type AudioConfig struct {
	Enable bool    `yaml:"enable"`
	MinHz  float64 `yaml:"min_hz"`
	MaxHz  float64 `yaml:"max_hz"`
	Volume float64 `yaml:"volume"`
	ToneMs int     `yaml:"tone_ms"`
}

// Default returns the built-in scenario: an 8s flight at 4 m/s with a 0.5m
// oscillation every 1.25s around 5m, sampled every 0.1s.
func Default() Config {
	return Config{
		Flight: FlightConfig{
			DurationS:          8,
			StepS:              0.1,
			ForwardVelocityMps: 4,
			AmplitudeM:         0.5,
			PeriodS:            1.25,
			BaseAltitudeM:      5,
		},
		Display: DisplayConfig{
			Title:  "Simulated Drone Flight Path",
			Status: true,
		},
		Audio: AudioConfig{
			Enable: false,
			MinHz:  440,
			MaxHz:  1320,
			Volume: 0.3,
			ToneMs: 60,
		},
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep their default value.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(b []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks flight parameters and audio ranges
func (c Config) Validate() error {
	if err := c.Flight.Params().Validate(); err != nil {
		return fmt.Errorf("flight: %w", err)
	}

	if c.Audio.Enable {
		if c.Audio.MinHz <= 0 || c.Audio.MaxHz <= c.Audio.MinHz {
			return fmt.Errorf("audio: need 0 < min_hz < max_hz, got %v..%v", c.Audio.MinHz, c.Audio.MaxHz)
		}
		if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
			return fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume)
		}
		if c.Audio.ToneMs <= 0 {
			return fmt.Errorf("audio.tone_ms must be > 0, got %d", c.Audio.ToneMs)
		}
	}
	return nil
}

// Params converts the flight block to generator parameters
func (f FlightConfig) Params() trajectory.Params {
	return trajectory.Params{
		Duration:        f.DurationS,
		Step:            f.StepS,
		ForwardVelocity: f.ForwardVelocityMps,
		Amplitude:       f.AmplitudeM,
		Period:          f.PeriodS,
		BaseAltitude:    f.BaseAltitudeM,
	}
}
