package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cbodonnell/pocketpet/pkg/log"
	"github.com/cbodonnell/pocketpet/pkg/pet"
	"github.com/cbodonnell/pocketpet/pkg/pet/constants"
	"github.com/cbodonnell/pocketpet/pkg/pet/types"
	"github.com/pelletier/go-toml/v2"
)

// Duration is a time.Duration written as a Go duration string ("10s", "24h").
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Config is the optional tuning file.
type Config struct {
	LogLevel string                `toml:"logLevel"`
	Storage  string                `toml:"storage"`
	Timing   Timing                `toml:"timing"`
	Decay    Decay                 `toml:"decay"`
	Actions  map[string]ActionRule `toml:"actions"`
}

type Timing struct {
	Decay       Duration `toml:"decay"`
	Autosave    Duration `toml:"autosave"`
	Age         Duration `toml:"age"`
	ActionFrame Duration `toml:"actionFrame"`
	IdleFrame   Duration `toml:"idleFrame"`
	Loop        Duration `toml:"loop"`
}

// Decay is how much each stat drops per decay interval.
type Decay struct {
	Hunger    int `toml:"hunger"`
	Happiness int `toml:"happiness"`
	Energy    int `toml:"energy"`
	Love      int `toml:"love"`
}

type ActionRule struct {
	Cost      int `toml:"cost"`
	Hunger    int `toml:"hunger"`
	Happiness int `toml:"happiness"`
	Love      int `toml:"love"`
	XP        int `toml:"xp"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	tuning := pet.DefaultTuning()
	actions := make(map[string]ActionRule, len(tuning.Rules))
	for action, rule := range tuning.Rules {
		actions[action.String()] = ActionRule(rule)
	}
	return &Config{
		LogLevel: log.LogLevelInfo.String(),
		Timing: Timing{
			Decay:       Duration(tuning.DecayInterval),
			Autosave:    Duration(constants.AutosaveInterval),
			Age:         Duration(tuning.AgeInterval),
			ActionFrame: Duration(tuning.ActionFrameDuration),
			IdleFrame:   Duration(tuning.IdleFrameDuration),
			Loop:        Duration(constants.LoopInterval),
		},
		Decay: Decay{
			Hunger:    tuning.DecayHunger,
			Happiness: tuning.DecayHappiness,
			Energy:    tuning.DecayEnergy,
			Love:      tuning.DecayLove,
		},
		Actions: actions,
	}
}

// Load reads the tuning file at path. Keys missing from the file keep
// their defaults and a missing file yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("Config file %s not found, using defaults", path)
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a tuning document.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	defaultActions := cfg.Actions
	cfg.Actions = nil

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("failed to decode config: %s", strict.String())
		}
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	for name, rule := range defaultActions {
		if _, ok := cfg.Actions[name]; !ok {
			if cfg.Actions == nil {
				cfg.Actions = make(map[string]ActionRule, len(defaultActions))
			}
			cfg.Actions[name] = rule
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values a decoder cannot.
func (c *Config) Validate() error {
	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid logLevel: %w", err)
	}

	positive := []struct {
		name  string
		value Duration
	}{
		{"timing.decay", c.Timing.Decay},
		{"timing.autosave", c.Timing.Autosave},
		{"timing.actionFrame", c.Timing.ActionFrame},
		{"timing.idleFrame", c.Timing.IdleFrame},
		{"timing.loop", c.Timing.Loop},
	}
	for _, d := range positive {
		if d.value <= 0 {
			return fmt.Errorf("invalid %s: must be positive", d.name)
		}
	}
	if c.Timing.Age < 0 {
		return fmt.Errorf("invalid timing.age: must not be negative")
	}

	rates := []struct {
		name  string
		value int
	}{
		{"hunger", c.Decay.Hunger},
		{"happiness", c.Decay.Happiness},
		{"energy", c.Decay.Energy},
		{"love", c.Decay.Love},
	}
	for _, rate := range rates {
		if rate.value < 0 || rate.value > constants.MaxStat {
			return fmt.Errorf("invalid decay.%s: %d is outside [0,%d]", rate.name, rate.value, constants.MaxStat)
		}
	}

	for name, rule := range c.Actions {
		trigger, err := types.ParseTrigger(name)
		if err != nil {
			return fmt.Errorf("invalid action %q", name)
		}
		if _, ok := trigger.Action(); !ok {
			return fmt.Errorf("invalid action %q", name)
		}
		if rule.Cost < 0 || rule.XP < 0 {
			return fmt.Errorf("invalid action %q: cost and xp must not be negative", name)
		}
		if rule.XP > constants.MaxXP {
			return fmt.Errorf("invalid action %q: xp must not exceed %d", name, constants.MaxXP)
		}
	}
	return nil
}

// Tuning converts the configuration into engine tuning.
func (c *Config) Tuning() pet.Tuning {
	rules := pet.DefaultRules()
	for name, rule := range c.Actions {
		trigger, err := types.ParseTrigger(name)
		if err != nil {
			continue
		}
		if action, ok := trigger.Action(); ok {
			rules[action] = pet.Rule(rule)
		}
	}
	return pet.Tuning{
		DecayInterval:       time.Duration(c.Timing.Decay),
		DecayHunger:         c.Decay.Hunger,
		DecayHappiness:      c.Decay.Happiness,
		DecayEnergy:         c.Decay.Energy,
		DecayLove:           c.Decay.Love,
		ActionFrameDuration: time.Duration(c.Timing.ActionFrame),
		IdleFrameDuration:   time.Duration(c.Timing.IdleFrame),
		AgeInterval:         time.Duration(c.Timing.Age),
		Rules:               rules,
	}
}

// Encode writes the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	b, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return b, nil
}
