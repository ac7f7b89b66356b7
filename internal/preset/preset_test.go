package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/ehpsim/internal/buff"
	"github.com/udisondev/ehpsim/internal/heal"
)

func TestTable_Lookup(t *testing.T) {
	guard := buff.NewFlat(buff.Value{DamageMul: 0.96}, "Vice Defense")
	regen := heal.MustNew(heal.Params{Magnitude: 0.06, Period: 20, Rate: 1})
	tbl := New(map[string]buff.Table{"Vice Defense": guard}, map[string]heal.Entry{"Regen": regen})

	got, err := tbl.Buff("Vice Defense")
	require.NoError(t, err)
	assert.Same(t, guard, got)

	h, err := tbl.Heal("Regen")
	require.NoError(t, err)
	assert.Equal(t, regen, h)
}

func TestTable_UnknownNames(t *testing.T) {
	tbl := New(nil, nil)

	_, err := tbl.Buff("Missing")
	assert.ErrorIs(t, err, ErrUnknownBuff)
	assert.Contains(t, err.Error(), `"Missing"`)

	_, err = tbl.Heal("Missing")
	assert.ErrorIs(t, err, ErrUnknownHeal)
}

func TestTable_IsolatedFromSourceMaps(t *testing.T) {
	buffs := map[string]buff.Table{"A": buff.Empty()}
	tbl := New(buffs, nil)

	buffs["B"] = buff.Empty()
	delete(buffs, "A")

	assert.Equal(t, []string{"A"}, tbl.BuffNames())
}

func TestTable_WithOverrides(t *testing.T) {
	base := New(map[string]buff.Table{"A": buff.Empty(), "B": buff.Empty()}, nil)
	replacement := buff.NewFlat(buff.Value{DamageMul: 0.5}, "")

	next := base.With(map[string]buff.Table{"B": replacement, "C": buff.Empty()}, map[string]heal.Entry{"H": heal.None()})

	assert.Equal(t, []string{"A", "B"}, base.BuffNames())
	assert.Equal(t, []string{"A", "B", "C"}, next.BuffNames())
	assert.Equal(t, []string{"H"}, next.HealNames())

	got, err := next.Buff("B")
	require.NoError(t, err)
	assert.Same(t, replacement, got)
}
