package data

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/ehpsim/internal/buff"
	"github.com/udisondev/ehpsim/internal/heal"
	"github.com/udisondev/ehpsim/internal/preset"
	"github.com/udisondev/ehpsim/internal/unit"
)

// Buff table kinds accepted in preset files.
const (
	KindFlat      = "flat"
	KindPeriodic  = "periodic"
	KindComposite = "composite"
)

// File is the YAML layout of a user preset file.
type File struct {
	Buffs     []BuffSpec        `yaml:"buffs"`
	Heals     []HealSpec        `yaml:"heals"`
	Units     []unit.Definition `yaml:"units"`
	Equipment []EquipSpec       `yaml:"equipment"`
	Stages    []StageSpec       `yaml:"stages"`
}

// StageSpec decodes a stage on top of unit.DefaultStage, so a file only
// lists the fields that differ.
type StageSpec unit.Stage

func (s *StageSpec) UnmarshalYAML(n *yaml.Node) error {
	st := unit.DefaultStage()
	if err := n.Decode(&st); err != nil {
		return err
	}
	*s = StageSpec(st)
	return nil
}

// ValueSpec mirrors buff.Value; an omitted damage_mul means 1.0.
type ValueSpec struct {
	DamageMul    *float64 `yaml:"damage_mul"`
	PerfectDodge bool     `yaml:"perfect_dodge"`
	Eva          float64  `yaml:"eva"`
	EvasionRate  float64  `yaml:"evasion_rate"`
}

func (v ValueSpec) value() buff.Value {
	out := buff.Value{
		DamageMul:     1.0,
		PerfectDodge:  v.PerfectDodge,
		EvasionAdd:    v.Eva,
		EvasionChance: v.EvasionRate,
	}
	if v.DamageMul != nil {
		out.DamageMul = *v.DamageMul
	}
	return out
}

// BuffSpec describes a buff table. Kind defaults to flat.
type BuffSpec struct {
	Name        string     `yaml:"name"`
	Kind        string     `yaml:"kind"`
	Info        string     `yaml:"info"`
	Value       ValueSpec  `yaml:"value"`
	Duration    float64    `yaml:"duration"`
	Period      float64    `yaml:"period"`
	Rate        float64    `yaml:"rate"`
	FirstOffset *float64   `yaml:"first_offset"`
	FirstRate   *float64   `yaml:"first_rate"`
	Children    []BuffSpec `yaml:"children"`
}

// Build constructs the table through the validating buff constructors.
func (s BuffSpec) Build() (buff.Table, error) {
	switch s.Kind {
	case "", KindFlat:
		return buff.NewFlat(s.Value.value(), s.Info), nil
	case KindPeriodic:
		return buff.NewPeriodic(buff.PeriodicParams{
			Value:       s.Value.value(),
			Duration:    s.Duration,
			Period:      s.Period,
			Rate:        s.Rate,
			FirstOffset: s.FirstOffset,
			FirstRate:   s.FirstRate,
			Info:        s.Info,
		})
	case KindComposite:
		children := make([]buff.Table, 0, len(s.Children)+1)
		for i, c := range s.Children {
			t, err := c.Build()
			if err != nil {
				return nil, fmt.Errorf("child %d: %w", i, err)
			}
			children = append(children, t)
		}
		if s.Info != "" {
			children = append(children, buff.NewFlat(buff.Identity(), s.Info))
		}
		return buff.NewComposite(children...), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", buff.ErrInvalidArgument, s.Kind)
	}
}

// HealSpec describes a heal entry.
type HealSpec struct {
	Name        string   `yaml:"name"`
	Magnitude   float64  `yaml:"magnitude"`
	Period      float64  `yaml:"period"`
	Rate        *float64 `yaml:"rate"` // default 1
	FirstOffset *float64 `yaml:"first_offset"`
	FirstRate   *float64 `yaml:"first_rate"`
	Info        string   `yaml:"info"`
}

// Build constructs the entry through heal.New.
func (s HealSpec) Build() (heal.Entry, error) {
	rate := 1.0
	if s.Rate != nil {
		rate = *s.Rate
	}
	return heal.New(heal.Params{
		Magnitude:   s.Magnitude,
		Period:      s.Period,
		Rate:        rate,
		FirstOffset: s.FirstOffset,
		FirstRate:   s.FirstRate,
		Info:        s.Info,
	})
}

// EquipSpec describes an equipment item.
type EquipSpec struct {
	Name     string     `yaml:"name"`
	Buffs    *BuffSpec  `yaml:"buffs"`
	Heals    []HealSpec `yaml:"heals"`
	ExtraHP  float64    `yaml:"extra_hp"`
	ExtraEva float64    `yaml:"extra_eva"`
}

// Build resolves the item's tables.
func (s EquipSpec) Build() (unit.Equip, error) {
	var tbl buff.Table
	if s.Buffs != nil {
		t, err := s.Buffs.Build()
		if err != nil {
			return unit.Equip{}, fmt.Errorf("buffs: %w", err)
		}
		tbl = t
	}
	heals := make([]heal.Entry, 0, len(s.Heals))
	for i, h := range s.Heals {
		e, err := h.Build()
		if err != nil {
			return unit.Equip{}, fmt.Errorf("heal %d: %w", i, err)
		}
		heals = append(heals, e)
	}
	return unit.NewEquip(s.Name, tbl, heals, s.ExtraHP, s.ExtraEva), nil
}

// LoadFile reads a preset file.
func LoadFile(path string) (File, error) {
	var file File
	raw, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("reading presets %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return file, fmt.Errorf("parsing presets %s: %w", path, err)
	}
	return file, nil
}

// Overlay returns a catalog with the file's entries added to c. Entries that
// share a name with an existing one replace it. Every entry is validated and
// every unit resolved, so bad input fails here rather than during evaluation.
func (c Catalog) Overlay(file File) (Catalog, error) {
	buffs := make(map[string]buff.Table, len(file.Buffs))
	for _, s := range file.Buffs {
		if s.Name == "" {
			return Catalog{}, errors.New("buff preset without name")
		}
		t, err := s.Build()
		if err != nil {
			return Catalog{}, fmt.Errorf("buff preset %q: %w", s.Name, err)
		}
		buffs[s.Name] = t
	}

	heals := make(map[string]heal.Entry, len(file.Heals))
	for _, s := range file.Heals {
		if s.Name == "" {
			return Catalog{}, errors.New("heal preset without name")
		}
		e, err := s.Build()
		if err != nil {
			return Catalog{}, fmt.Errorf("heal preset %q: %w", s.Name, err)
		}
		heals[s.Name] = e
	}

	base := c.Presets
	if base == nil {
		base = preset.New(nil, nil)
	}
	out := Catalog{
		Presets:   base.With(buffs, heals),
		Units:     maps.Clone(c.Units),
		Equipment: maps.Clone(c.Equipment),
		Stages:    maps.Clone(c.Stages),
	}
	if out.Units == nil {
		out.Units = map[string]unit.Definition{}
	}
	if out.Equipment == nil {
		out.Equipment = map[string]unit.Equip{}
	}
	if out.Stages == nil {
		out.Stages = map[string]unit.Stage{}
	}

	for _, d := range file.Units {
		if _, err := unit.New(d, out.Presets); err != nil {
			return Catalog{}, err
		}
		out.Units[d.Name] = d
	}
	for _, s := range file.Equipment {
		eq, err := s.Build()
		if err != nil {
			return Catalog{}, fmt.Errorf("equipment %q: %w", s.Name, err)
		}
		out.Equipment[s.Name] = eq
	}
	for _, spec := range file.Stages {
		s := unit.Stage(spec)
		if err := s.Validate(); err != nil {
			return Catalog{}, fmt.Errorf("stage %q: %w", s.Name, err)
		}
		out.Stages[s.Name] = s
	}

	slog.Debug("preset file applied",
		"buffs", len(file.Buffs),
		"heals", len(file.Heals),
		"units", len(file.Units),
		"equipment", len(file.Equipment),
		"stages", len(file.Stages))
	return out, nil
}
