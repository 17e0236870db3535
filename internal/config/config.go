package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// RunnerConfig is the runtime configuration, stored as JSON next to the game
type RunnerConfig struct {
	LevelPath      string  `json:"level_path,omitempty"`
	FixedDelta     float32 `json:"fixed_delta"`
	Runs           int     `json:"runs"`
	MaxRunSeconds  float32 `json:"max_run_seconds"`
	LogLevel       string  `json:"log_level"`
	Seed           int64   `json:"seed"`
	GeneratedGates int     `json:"generated_gates"`
	GateSpacing    float32 `json:"gate_spacing"`
	PlayerSpeed    float32 `json:"player_speed"`
	HotReload      bool    `json:"hot_reload"`
	Realtime       bool    `json:"realtime"`
	SaveRecords    bool    `json:"save_records"`
	AppName        string  `json:"app_name"`
}

func Default() RunnerConfig {
	return RunnerConfig{
		FixedDelta:     1.0 / 60.0,
		Runs:           3,
		MaxRunSeconds:  120,
		LogLevel:       "info",
		Seed:           1,
		GeneratedGates: 8,
		GateSpacing:    25,
		PlayerSpeed:    10,
		SaveRecords:    true,
		AppName:        "gopher_runner",
	}
}

// Load reads the config at path on top of the defaults.
// A missing file is not an error.
func Load(path string) (RunnerConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as indented JSON
func Save(path string, cfg RunnerConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

func (c RunnerConfig) Validate() error {
	var errs []error
	if c.FixedDelta <= 0 {
		errs = append(errs, fmt.Errorf("fixed_delta must be positive, got %v", c.FixedDelta))
	}
	if c.Runs < 0 {
		errs = append(errs, fmt.Errorf("runs must not be negative, got %d", c.Runs))
	}
	if c.MaxRunSeconds <= 0 {
		errs = append(errs, fmt.Errorf("max_run_seconds must be positive, got %v", c.MaxRunSeconds))
	} else if c.FixedDelta > 0 && c.MaxRunSeconds < c.FixedDelta {
		errs = append(errs, fmt.Errorf("max_run_seconds %v is shorter than one fixed_delta step %v", c.MaxRunSeconds, c.FixedDelta))
	}
	if c.LevelPath == "" && c.GeneratedGates < 0 {
		errs = append(errs, fmt.Errorf("generated_gates must not be negative, got %d", c.GeneratedGates))
	}
	return errors.Join(errs...)
}

// MaxFrames is the frame budget for a single run, never less than one frame
func (c RunnerConfig) MaxFrames() int {
	return max(int(c.MaxRunSeconds/c.FixedDelta), 1)
}
