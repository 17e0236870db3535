package level

import (
	"errors"
	"fmt"
	"os"

	"GopherRunner/scripts"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Level is the authored layout of a single run
type Level struct {
	Name   string     `yaml:"name"`
	Length float32    `yaml:"length"`
	Player PlayerSpec `yaml:"player"`
	Cars   []CarSpec  `yaml:"cars,omitempty"`
	Gates  []GateSpec `yaml:"gates,omitempty"`
}

type PlayerSpec struct {
	Speed    float32    `yaml:"speed"`
	Position [3]float32 `yaml:"position"`
	Scale    [3]float32 `yaml:"scale,omitempty"`
}

type CarSpec struct {
	Speed    float32    `yaml:"speed"`
	Manual   bool       `yaml:"manual,omitempty"`
	Position [3]float32 `yaml:"position"`
	Scale    [3]float32 `yaml:"scale,omitempty"`
}

type GateSpec struct {
	Type     string     `yaml:"type"`
	Value    float32    `yaml:"value"`
	Start    string     `yaml:"start,omitempty"`
	Position [3]float32 `yaml:"position"`
	Scale    [3]float32 `yaml:"scale,omitempty"`
	Label    bool       `yaml:"label,omitempty"`
}

// Load reads and validates a level file
func Load(filename string) (*Level, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("level: load %s: %w", filename, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level: %s: %w", filename, err)
	}
	return lvl, nil
}

// Parse decodes and validates level YAML
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Marshal encodes the level back to YAML
func (l *Level) Marshal() ([]byte, error) {
	return yaml.Marshal(l)
}

// Validate reports every problem in the level at once
func (l *Level) Validate() error {
	var errs []error
	if l.Length <= 0 {
		errs = append(errs, fmt.Errorf("length must be positive, got %v", l.Length))
	}
	if l.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player speed must be positive, got %v", l.Player.Speed))
	}
	for i, c := range l.Cars {
		if c.Speed <= 0 {
			errs = append(errs, fmt.Errorf("car %d: speed must be positive, got %v", i, c.Speed))
		}
	}
	for i, g := range l.Gates {
		if _, err := scripts.ParseGateType(g.Type); err != nil {
			errs = append(errs, fmt.Errorf("gate %d: %w", i, err))
		}
		if _, err := scripts.ParseGateStartPosition(g.Start); err != nil {
			errs = append(errs, fmt.Errorf("gate %d: %w", i, err))
		}
		if hasScale(g.Scale) && (g.Scale[0] == 0 || g.Scale[1] == 0) {
			errs = append(errs, fmt.Errorf("gate %d: scale x and y must be non-zero", i))
		}
	}
	return errors.Join(errs...)
}

func hasScale(s [3]float32) bool {
	return s != [3]float32{}
}

func vec(a [3]float32) mgl32.Vec3 {
	return mgl32.Vec3(a)
}
