package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/flightpath/trajectory"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flightpath.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}

	want := trajectory.Params{Duration: 8, Step: 0.1, ForwardVelocity: 4, Amplitude: 0.5, Period: 1.25, BaseAltitude: 5}
	if got := cfg.Flight.Params(); got != want {
		t.Errorf("Default params = %+v, want %+v", got, want)
	}
	if cfg.Audio.Enable {
		t.Error("Audio should be off by default")
	}
	if cfg.Debug {
		t.Error("Debug should be off by default")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeTemp(t, `
flight:
  duration_s: 20
  period_s: 4
display:
  status: false
audio:
  enable: true
  volume: 0.8
debug: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Flight.DurationS != 20 || cfg.Flight.PeriodS != 4 {
		t.Errorf("Overrides not applied: %+v", cfg.Flight)
	}
	// Untouched keys keep defaults
	if cfg.Flight.StepS != 0.1 || cfg.Flight.BaseAltitudeM != 5 {
		t.Errorf("Defaults lost: %+v", cfg.Flight)
	}
	if cfg.Display.Status {
		t.Error("display.status should be false")
	}
	if cfg.Display.Title != Default().Display.Title {
		t.Errorf("Title = %q, want default", cfg.Display.Title)
	}
	if !cfg.Audio.Enable || cfg.Audio.Volume != 0.8 || cfg.Audio.MinHz != 440 {
		t.Errorf("Audio = %+v", cfg.Audio)
	}
	if !cfg.Debug {
		t.Error("debug should be true")
	}
}

func TestLoadZeroAmplitudeAllowed(t *testing.T) {
	cfg, err := Parse([]byte("flight:\n  amplitude_m: 0\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Flight.AmplitudeM != 0 {
		t.Errorf("amplitude = %v, want 0", cfg.Flight.AmplitudeM)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"zero period", "flight:\n  period_s: 0\n", trajectory.ErrInvalidPeriod},
		{"negative step", "flight:\n  step_s: -0.1\n", trajectory.ErrInvalidStep},
		{"negative velocity", "flight:\n  forward_velocity_mps: -1\n", trajectory.ErrNegativeParam},
		{"infinite duration", "flight:\n  duration_s: .inf\n", trajectory.ErrInvalidDuration},
		{"huge duration", "flight:\n  duration_s: 1e300\n", trajectory.ErrTooManySamples},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadRejectsBadAudio(t *testing.T) {
	inputs := []string{
		"audio:\n  enable: true\n  min_hz: 900\n  max_hz: 400\n",
		"audio:\n  enable: true\n  volume: 2\n",
		"audio:\n  enable: true\n  tone_ms: 0\n",
	}
	for _, in := range inputs {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("Expected error for %q", in)
		}
	}

	// Disabled audio is not validated
	if _, err := Parse([]byte("audio:\n  enable: false\n  volume: 2\n")); err != nil {
		t.Errorf("Disabled audio should not be validated: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}

	path := writeTemp(t, "flight: [unclosed")
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error for malformed YAML")
	}
}
