// Package data holds the static configuration the engine runs against: buff
// and heal presets, the unit roster, equipment and stages. Built-in entries
// are Go literals; LoadFile overlays user YAML on top.
package data

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/udisondev/ehpsim/internal/buff"
	"github.com/udisondev/ehpsim/internal/heal"
	"github.com/udisondev/ehpsim/internal/preset"
	"github.com/udisondev/ehpsim/internal/unit"
)

var (
	ErrUnknownUnit  = errors.New("unknown unit")
	ErrUnknownEquip = errors.New("unknown equipment")
	ErrUnknownStage = errors.New("unknown stage")
)

// Catalog is everything a query can name. Do not modify the maps of a
// Catalog after building it; Overlay returns a new one.
type Catalog struct {
	Presets   *preset.Table
	Units     map[string]unit.Definition
	Equipment map[string]unit.Equip
	Stages    map[string]unit.Stage
}

// Builtin returns the catalog compiled into the binary.
func Builtin() Catalog {
	units := make(map[string]unit.Definition, len(rosterDefs))
	for _, d := range rosterDefs {
		units[d.Name] = d
	}
	c := Catalog{
		Presets:   Presets(),
		Units:     units,
		Equipment: builtinEquipment(),
		Stages:    builtinStages(),
	}
	slog.Debug("builtin catalog loaded",
		"buffs", len(c.Presets.BuffNames()),
		"heals", len(c.Presets.HealNames()),
		"units", len(c.Units),
		"equipment", len(c.Equipment),
		"stages", len(c.Stages))
	return c
}

func builtinEquipment() map[string]unit.Equip {
	rudder := buff.MustPeriodic(buff.PeriodicParams{
		Value: buff.Value{DamageMul: 1, PerfectDodge: true}, Period: 20, Rate: 0.30, Duration: 2,
		Info: "Every 20s, 30% chance to evade all incoming attacks for 2s.",
	})
	toolbox := heal.MustNew(heal.Params{Magnitude: 0.01, Period: 15, Rate: 1, Info: "Every 15s, heal 1% of max HP."})

	return map[string]unit.Equip{
		"rudder":  unit.NewEquip("rudder", rudder, nil, 60, 40),
		"beaver":  unit.NewEquip("beaver", nil, nil, 75, 35),
		"toolbox": unit.NewEquip("toolbox", nil, []heal.Entry{toolbox}, 500, 0),
		"manjuu":  unit.NewEquip("manjuu", nil, nil, 550, 0),
	}
}

func builtinStages() map[string]unit.Stage {
	meta := unit.DefaultStage()
	meta.Name = "meta_boss"
	meta.Length = 80
	meta.FormationBonus = 0
	meta.AtkHit = 105
	meta.AtkLuck = 20

	taihou := unit.DefaultStage()
	taihou.Name = "taihou_boss"

	return map[string]unit.Stage{
		meta.Name:   meta,
		taihou.Name: taihou,
	}
}

// Unit resolves a roster entry against the catalog presets.
func (c Catalog) Unit(name string) (*unit.Unit, error) {
	def, ok := c.Units[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return unit.New(def, c.Presets)
}

// Loadout resolves equipment names in order.
func (c Catalog) Loadout(names []string) ([]unit.Equip, error) {
	out := make([]unit.Equip, 0, len(names))
	for _, name := range names {
		eq, ok := c.Equipment[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEquip, name)
		}
		out = append(out, eq)
	}
	return out, nil
}

// Stage looks up a stage by name.
func (c Catalog) Stage(name string) (unit.Stage, error) {
	s, ok := c.Stages[name]
	if !ok {
		return unit.Stage{}, fmt.Errorf("%w: %q", ErrUnknownStage, name)
	}
	return s, nil
}

// UnitNames returns sorted roster names.
func (c Catalog) UnitNames() []string {
	return slices.Sorted(maps.Keys(c.Units))
}

// Validate resolves every unit, so a roster entry naming a missing preset is
// reported before any evaluation runs.
func (c Catalog) Validate() error {
	var errs []error
	for _, name := range c.UnitNames() {
		if _, err := c.Unit(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
