// Package preset holds the named buff and heal presets that unit definitions
// refer to. A Table is built once and never changes.
package preset

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/udisondev/ehpsim/internal/buff"
	"github.com/udisondev/ehpsim/internal/heal"
)

var (
	ErrUnknownBuff = errors.New("unknown buff preset")
	ErrUnknownHeal = errors.New("unknown heal preset")
)

// Table maps preset names to buff tables and heal entries.
type Table struct {
	buffs map[string]buff.Table
	heals map[string]heal.Entry
}

// New copies the given maps; later changes to them do not affect the Table.
func New(buffs map[string]buff.Table, heals map[string]heal.Entry) *Table {
	t := &Table{
		buffs: make(map[string]buff.Table, len(buffs)),
		heals: make(map[string]heal.Entry, len(heals)),
	}
	maps.Copy(t.buffs, buffs)
	maps.Copy(t.heals, heals)
	return t
}

// Buff looks up a buff preset by name.
func (t *Table) Buff(name string) (buff.Table, error) {
	b, ok := t.buffs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBuff, name)
	}
	return b, nil
}

// Heal looks up a heal preset by name.
func (t *Table) Heal(name string) (heal.Entry, error) {
	h, ok := t.heals[name]
	if !ok {
		return heal.Entry{}, fmt.Errorf("%w: %q", ErrUnknownHeal, name)
	}
	return h, nil
}

// BuffNames returns sorted buff preset names.
func (t *Table) BuffNames() []string {
	return slices.Sorted(maps.Keys(t.buffs))
}

// HealNames returns sorted heal preset names.
func (t *Table) HealNames() []string {
	return slices.Sorted(maps.Keys(t.heals))
}

// With returns a new Table with the given presets added; entries with an
// existing name replace the old ones.
func (t *Table) With(buffs map[string]buff.Table, heals map[string]heal.Entry) *Table {
	out := New(t.buffs, t.heals)
	maps.Copy(out.buffs, buffs)
	maps.Copy(out.heals, heals)
	return out
}
