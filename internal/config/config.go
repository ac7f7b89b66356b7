package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Simulator holds all configuration for the ehpcalc command.
type Simulator struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
	Workers  int    `yaml:"workers"`   // 0 means GOMAXPROCS

	// Extra buffs, heals, units, equipment and stages layered over the
	// built-in catalog. Empty means built-ins only.
	PresetsFile string `yaml:"presets_file"`

	// Named equipment lists referenced by runs.
	Loadouts map[string][]string `yaml:"loadouts"`

	Runs []Run `yaml:"runs"`

	// Print only the best N results, ranked by EHP. 0 prints every result
	// in run order.
	Top int `yaml:"top"`
}

// Run evaluates every listed unit on one stage with one loadout.
type Run struct {
	Units   []string `yaml:"units"`
	Stage   string   `yaml:"stage"`
	Loadout string   `yaml:"loadout"` // key into Loadouts, empty for none
}

// DefaultSimulator returns the stock report: a few vanguard tanks against
// the taihou boss.
func DefaultSimulator() Simulator {
	return Simulator{
		LogLevel: "info",
		Loadouts: map[string][]string{
			"rudder/beaver": {"rudder", "beaver"},
			"rudder/box":    {"rudder", "toolbox"},
			"manjuu/box":    {"manjuu", "toolbox"},
		},
		Runs: []Run{
			{Units: []string{"Portland"}, Stage: "taihou_boss", Loadout: "rudder/beaver"},
			{Units: []string{"Seattle"}, Stage: "taihou_boss", Loadout: "rudder/box"},
			{Units: []string{"Takao"}, Stage: "taihou_boss", Loadout: "rudder/beaver"},
			{Units: []string{"Pamiat Merkuria", "Tashkent"}, Stage: "taihou_boss", Loadout: "rudder/box"},
			{Units: []string{"Tashkent"}, Stage: "taihou_boss", Loadout: "manjuu/box"},
		},
	}
}

// LoadSimulator loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSimulator(path string) (Simulator, error) {
	cfg := DefaultSimulator()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks references between sections. Unit, stage and equipment
// names are resolved later against the catalog.
func (s Simulator) Validate() error {
	var errs []error
	if s.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d must not be negative", s.Workers))
	}
	if s.Top < 0 {
		errs = append(errs, fmt.Errorf("top %d must not be negative", s.Top))
	}
	for i, r := range s.Runs {
		if len(r.Units) == 0 {
			errs = append(errs, fmt.Errorf("run %d: no units", i))
		}
		if r.Stage == "" {
			errs = append(errs, fmt.Errorf("run %d: no stage", i))
		}
		if r.Loadout != "" {
			if _, ok := s.Loadouts[r.Loadout]; !ok {
				errs = append(errs, fmt.Errorf("run %d: unknown loadout %q", i, r.Loadout))
			}
		}
	}
	return errors.Join(errs...)
}

// Loadout returns the equipment names of a named loadout. The empty name is
// the bare unit.
func (s Simulator) Loadout(name string) []string {
	if name == "" {
		return nil
	}
	return s.Loadouts[name]
}

// Level maps LogLevel to a slog level, defaulting to info.
func (s Simulator) Level() slog.Level {
	switch s.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
