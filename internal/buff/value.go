package buff

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
)

// Value is an immutable bundle of instantaneous combat modifiers.
//
// DamageMul stacks multiplicatively, EvasionAdd and EvasionChance stack
// additively, PerfectDodge is OR-ed. The zero Value is NOT the identity:
// use Identity() (DamageMul 1.0).
type Value struct {
	DamageMul     float64 // fraction of incoming damage actually taken
	PerfectDodge  bool    // every attack misses while set
	EvasionAdd    float64 // fractional bonus to the evasion stat (0.15 = +15%)
	EvasionChance float64 // flat chance to be missed, subtracted from hit rate
}

// Identity returns the neutral Value.
func Identity() Value {
	return Value{DamageMul: 1.0}
}

// Combine stacks two values. Neither operand is modified.
func (v Value) Combine(o Value) Value {
	return Value{
		DamageMul:     v.DamageMul * o.DamageMul,
		PerfectDodge:  v.PerfectDodge || o.PerfectDodge,
		EvasionAdd:    v.EvasionAdd + o.EvasionAdd,
		EvasionChance: v.EvasionChance + o.EvasionChance,
	}
}

// BakeEvasion applies the evasion bonus and the formation bonus to a raw
// evasion stat.
func (v Value) BakeEvasion(eva, formationBonus float64) float64 {
	return eva * (1.0 + v.EvasionAdd + formationBonus)
}

// Equal compares all fields exactly.
func (v Value) Equal(o Value) bool {
	return v == o
}

// Hash is stable across runs for equal values.
func (v Value) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, f := range [...]float64{v.DamageMul, v.EvasionAdd, v.EvasionChance} {
		if f == 0 {
			f = 0 // -0 hashes like 0
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	}
	if v.PerfectDodge {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	return h.Sum64()
}

func (v Value) String() string {
	return fmt.Sprintf("Value[damage_mul: %g, perfect_dodge: %t, eva: %g, evasion_rate: %g]",
		v.DamageMul, v.PerfectDodge, v.EvasionAdd, v.EvasionChance)
}
