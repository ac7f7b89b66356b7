// Package unit evaluates effective HP for a unit against an encounter.
//
// All methods are pure: a Unit is built once from its definition and the
// preset table, then every quantity is recomputed from (Unit, Stage, equips).
package unit

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/udisondev/ehpsim/internal/buff"
	"github.com/udisondev/ehpsim/internal/heal"
	"github.com/udisondev/ehpsim/internal/preset"
	"github.com/udisondev/ehpsim/internal/stream"
)

// Hit rate bounds. A perfect dodge bypasses the floor.
const (
	MinHitRate = 0.1
	MaxHitRate = 1.0
)

// ErrInvalidUnit is returned for definitions with unusable base stats.
var ErrInvalidUnit = errors.New("invalid unit")

// Definition is the static record of a unit; Skills and Heals name presets.
type Definition struct {
	Name      string   `yaml:"name"`
	Hitpoints float64  `yaml:"hitpoints"`
	Luck      float64  `yaml:"def_luck"`
	Evasion   float64  `yaml:"def_eva"`
	Level     int      `yaml:"def_level"`
	Skills    []string `yaml:"skills"`
	Heals     []string `yaml:"heals"`
}

// Unit is a definition with its presets resolved.
type Unit struct {
	def   Definition
	buffs buff.Table
	heals []heal.Entry
}

// New resolves every preset the definition names. Unknown names fail here,
// not at evaluation time.
func New(def Definition, presets *preset.Table) (*Unit, error) {
	if !(def.Hitpoints > 0) || math.IsInf(def.Hitpoints, 0) {
		return nil, fmt.Errorf("%w: %s: hitpoints %g", ErrInvalidUnit, def.Name, def.Hitpoints)
	}

	u := &Unit{def: def, buffs: buff.Empty()}
	u.def.Skills = slices.Clone(def.Skills)
	u.def.Heals = slices.Clone(def.Heals)

	if len(def.Skills) > 0 {
		tables := make([]buff.Table, 0, len(def.Skills))
		for _, name := range def.Skills {
			t, err := presets.Buff(name)
			if err != nil {
				return nil, fmt.Errorf("unit %s: %w", def.Name, err)
			}
			tables = append(tables, t)
		}
		u.buffs = buff.NewComposite(tables...)
	}

	for _, name := range def.Heals {
		h, err := presets.Heal(name)
		if err != nil {
			return nil, fmt.Errorf("unit %s: %w", def.Name, err)
		}
		u.heals = append(u.heals, h)
	}

	slog.Debug("unit resolved", "unit", def.Name, "skills", len(def.Skills), "heals", len(u.heals))
	return u, nil
}

func (u *Unit) Name() string           { return u.def.Name }
func (u *Unit) Definition() Definition { return u.def }

// Buffs returns the innate buff table.
func (u *Unit) Buffs() buff.Table { return u.buffs }

// Info returns the innate skill labels.
func (u *Unit) Info() string { return u.buffs.Info() }

// HitRate is the chance an attack lands while v is in effect.
func (u *Unit) HitRate(v buff.Value, stage Stage, equips []Equip) float64 {
	if v.PerfectDodge {
		return 0
	}

	eva := u.def.Evasion
	for _, eq := range equips {
		eva += eq.ExtraEva
	}

	rate := 0.1 +
		stage.AtkHit/(2.0+stage.AtkHit+v.BakeEvasion(eva, stage.FormationBonus)) +
		(stage.AtkLuck-u.def.Luck+float64(stage.AtkLevel-u.def.Level))/1000.0 +
		stage.HitRateBuff -
		v.EvasionChance

	return min(max(rate, MinHitRate), MaxHitRate)
}

// Table combines the equipment tables (in order) with the innate table.
func (u *Unit) Table(equips []Equip) *buff.Composite {
	tables := make([]buff.Table, 0, len(equips)+1)
	for _, eq := range equips {
		tables = append(tables, eq.table())
	}
	tables = append(tables, u.buffs)
	return buff.NewComposite(tables...)
}

// Segment is a half-open interval [Start, End) over which the expected
// fraction of damage taken is constant.
type Segment struct {
	Start    float64
	End      float64
	Expected float64
}

// Timeline partitions [0, stage.Length) at the breakpoints of the combined
// table and evaluates each piece at its start.
func (u *Unit) Timeline(stage Stage, equips []Equip) ([]Segment, error) {
	if err := stage.Validate(); err != nil {
		return nil, err
	}

	tbl := u.Table(equips)
	points := stream.CollectBelow(tbl.Breakpoints(), stage.Length)

	taken := func(v buff.Value) float64 {
		return u.HitRate(v, stage, equips) * v.DamageMul
	}

	segments := make([]Segment, len(points))
	for i, ts := range points {
		end := stage.Length
		if i+1 < len(points) {
			end = points[i+1]
		}
		d := tbl.Distribution(ts)
		d.MustCheck()
		segments[i] = Segment{Start: ts, End: end, Expected: d.Expect(taken)}
	}
	return segments, nil
}

// EHPDivisor is the time-averaged fraction of incoming damage the unit takes.
func (u *Unit) EHPDivisor(stage Stage, equips []Equip) (float64, error) {
	segments, err := u.Timeline(stage, equips)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, s := range segments {
		sum += s.Expected * (s.End - s.Start)
	}
	return sum / stage.Length, nil
}

// HealingFraction sums every equipment and innate heal over the stage.
func (u *Unit) HealingFraction(stage Stage, equips []Equip) float64 {
	var total float64
	for _, eq := range equips {
		for _, h := range eq.Heals {
			total += h.Total(stage.Length)
		}
	}
	for _, h := range u.heals {
		total += h.Total(stage.Length)
	}
	return total
}

// ModifiedHP is base plus equipment HP, scaled by total healing.
func (u *Unit) ModifiedHP(stage Stage, equips []Equip) float64 {
	hp := u.def.Hitpoints
	for _, eq := range equips {
		hp += eq.ExtraHP
	}
	return hp * (1.0 + u.HealingFraction(stage, equips))
}

// EHP is ModifiedHP / EHPDivisor. A unit that can never be damaged gets +Inf.
func (u *Unit) EHP(stage Stage, equips ...Equip) (float64, error) {
	div, err := u.EHPDivisor(stage, equips)
	if err != nil {
		return 0, fmt.Errorf("ehp of %s: %w", u.def.Name, err)
	}
	if div == 0 {
		return math.Inf(1), nil
	}
	return u.ModifiedHP(stage, equips) / div, nil
}
