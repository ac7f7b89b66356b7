package unit

import (
	"slices"

	"github.com/udisondev/ehpsim/internal/buff"
	"github.com/udisondev/ehpsim/internal/heal"
)

// Equip is one equipped item. The engine only reads it.
type Equip struct {
	Name     string
	Buffs    buff.Table
	Heals    []heal.Entry
	ExtraHP  float64
	ExtraEva float64
}

// NewEquip fills the defaults: the identity table when buffs is nil and a
// single zero heal when heals is empty.
func NewEquip(name string, buffs buff.Table, heals []heal.Entry, extraHP, extraEva float64) Equip {
	if buffs == nil {
		buffs = buff.Empty()
	}
	if len(heals) == 0 {
		heals = []heal.Entry{heal.None()}
	}
	return Equip{
		Name:     name,
		Buffs:    buffs,
		Heals:    slices.Clone(heals),
		ExtraHP:  extraHP,
		ExtraEva: extraEva,
	}
}

func (e Equip) table() buff.Table {
	if e.Buffs == nil {
		return buff.Empty()
	}
	return e.Buffs
}
