// Package config loads the game setup from YAML layered over built-in defaults
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/dodge/audio"
	"github.com/lixenwraith/dodge/component"
	"github.com/lixenwraith/dodge/constants"
	"github.com/lixenwraith/dodge/engine"
	"github.com/lixenwraith/dodge/input"
	"github.com/lixenwraith/dodge/logger"
	"github.com/lixenwraith/dodge/physics"
)

// FieldConfig is the arena size in logical units
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ActorConfig is one actor's restart defaults
type ActorConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
	Color  string  `yaml:"color"`
}

// ActorsConfig holds both actors
type ActorsConfig struct {
	P1 ActorConfig `yaml:"p1"`
	P2 ActorConfig `yaml:"p2"`
}

// Config is the full host configuration
type Config struct {
	Field         FieldConfig              `yaml:"field"`
	TickRate      int                      `yaml:"tick_rate"`
	RestartPolicy string                   `yaml:"restart_policy"`
	Actors        ActorsConfig             `yaml:"actors"`
	Keymap        map[string]input.KeyList `yaml:"keymap"`
	Audio         audio.AudioConfig        `yaml:"audio"`
	HoldWindow    time.Duration            `yaml:"hold_window"`
	Log           logger.Config            `yaml:"log"`
	DebugHUD      bool                     `yaml:"debug_hud"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Field:         FieldConfig{Width: constants.FieldWidth, Height: constants.FieldHeight},
		TickRate:      constants.DefaultTickRate,
		RestartPolicy: engine.RestartWhenOver.String(),
		Actors: ActorsConfig{
			P1: ActorConfig{
				X:      constants.Actor1StartX,
				Y:      constants.Actor1StartY,
				Speed:  constants.ActorSpeed,
				Radius: constants.ActorRadius,
				Color:  constants.Actor1Color,
			},
			P2: ActorConfig{
				X:      constants.Actor2StartX,
				Y:      constants.Actor2StartY,
				Speed:  constants.ActorSpeed,
				Radius: constants.ActorRadius,
				Color:  constants.Actor2Color,
			},
		},
		Audio:      *audio.DefaultAudioConfig(),
		HoldWindow: constants.KeyHoldWindow,
		Log:        logger.Config{Level: "info"},
	}
}

// Load reads path over the defaults, applies DODGE_* environment overrides and validates
// An empty path returns the validated defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Audio.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults and validates it
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode overlays data onto c; unknown keys are errors
func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks ranges and cross-field constraints
func (c *Config) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("field: size must be positive, got %gx%g", c.Field.Width, c.Field.Height)
	}
	if c.TickRate < 1 || c.TickRate > 1000 {
		return fmt.Errorf("tick_rate: must be 1-1000, got %d", c.TickRate)
	}
	if _, ok := engine.ParseRestartPolicy(c.RestartPolicy); !ok {
		return fmt.Errorf("restart_policy: unknown value %q", c.RestartPolicy)
	}

	field := c.field()
	actors := c.ActorDefaults()
	for _, a := range actors {
		if a.Speed <= 0 {
			return fmt.Errorf("actors.%s: speed must be positive", a.ID)
		}
		if a.Radius <= 0 {
			return fmt.Errorf("actors.%s: radius must be positive", a.ID)
		}
		if !physics.InField(a.Pos, a.Radius, field) {
			return fmt.Errorf("actors.%s: disc at (%g, %g) r=%g does not fit the field", a.ID, a.Pos.X, a.Pos.Y, a.Radius)
		}
		if tcell.GetColor(a.Color) == tcell.ColorDefault {
			return fmt.Errorf("actors.%s: unknown color %q", a.ID, a.Color)
		}
	}
	if physics.Collides(actors[component.Actor1], actors[component.Actor2]) {
		return errors.New("actors: default positions overlap")
	}

	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("audio.master_volume: must be 0-1, got %g", c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate: must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Audio.Buffer <= 0 {
		return fmt.Errorf("audio.buffer: must be positive, got %s", c.Audio.Buffer)
	}

	if c.HoldWindow < constants.KeyHoldCheckInterval {
		return fmt.Errorf("hold_window: must be at least %s, got %s", constants.KeyHoldCheckInterval, c.HoldWindow)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}
	return nil
}

func (c *Config) field() component.Field {
	return component.Field{Width: c.Field.Width, Height: c.Field.Height}
}

// ActorDefaults returns the configured restart positions
func (c *Config) ActorDefaults() component.Actors {
	build := func(id component.ActorID, ac ActorConfig) component.Actor {
		return component.Actor{
			ID:     id,
			Pos:    component.Vec2{X: ac.X, Y: ac.Y},
			Speed:  ac.Speed,
			Radius: ac.Radius,
			Color:  ac.Color,
		}
	}
	return component.Actors{
		build(component.Actor1, c.Actors.P1),
		build(component.Actor2, c.Actors.P2),
	}
}

// KeyTable merges the keymap section over the default bindings
func (c *Config) KeyTable() (input.KeyTable, error) {
	overrides, err := input.ParseKeyTable(c.Keymap)
	if err != nil {
		return nil, err
	}
	return input.DefaultKeyTable().Merge(overrides), nil
}

// Bindings resolves the merged key table
func (c *Config) Bindings() (*input.Bindings, error) {
	kt, err := c.KeyTable()
	if err != nil {
		return nil, err
	}
	b, err := input.Resolve(kt)
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	return b, nil
}

// FrameInterval converts tick_rate to a period
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// SessionConfig builds the engine setup; c must have passed Validate
func (c *Config) SessionConfig() (engine.SessionConfig, error) {
	b, err := c.Bindings()
	if err != nil {
		return engine.SessionConfig{}, err
	}
	policy, _ := engine.ParseRestartPolicy(c.RestartPolicy)

	return engine.SessionConfig{
		Field:           c.field(),
		Defaults:        c.ActorDefaults(),
		Bindings:        b,
		FrameInterval:   c.FrameInterval(),
		CounterInterval: constants.ElapsedCounterInterval,
		RestartPolicy:   policy,
	}, nil
}
