package data

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/ehpsim/internal/stream"
)

func TestBuiltin_AllUnitsResolve(t *testing.T) {
	c := Builtin()
	require.NoError(t, c.Validate())
	assert.Len(t, c.Units, 330)
	assert.Len(t, c.UnitNames(), 330)
}

func TestBuiltin_PresetDistributionsAreValid(t *testing.T) {
	p := Presets()
	for _, name := range p.BuffNames() {
		tbl, err := p.Buff(name)
		require.NoError(t, err)
		for _, ts := range stream.CollectBelow(tbl.Breakpoints(), 300) {
			require.NoError(t, tbl.Distribution(ts).Check(), "%s at t=%g", name, ts)
		}
	}
}

func TestBuiltin_Lookups(t *testing.T) {
	c := Builtin()

	_, err := c.Unit("Nobody")
	assert.ErrorIs(t, err, ErrUnknownUnit)

	_, err = c.Loadout([]string{"rudder", "anchor"})
	assert.ErrorIs(t, err, ErrUnknownEquip)

	_, err = c.Stage("final_boss")
	assert.ErrorIs(t, err, ErrUnknownStage)

	meta, err := c.Stage("meta_boss")
	require.NoError(t, err)
	assert.Equal(t, 80.0, meta.Length)
	assert.Equal(t, 105.0, meta.AtkHit)
	assert.Equal(t, 20.0, meta.AtkLuck)
	assert.Equal(t, 0.0, meta.FormationBonus)
}

func TestBuiltin_ReferenceEHP(t *testing.T) {
	c := Builtin()

	tests := []struct {
		unit    string
		stage   string
		loadout []string
		want    float64
	}{
		{"Portland", "taihou_boss", []string{"rudder", "beaver"}, 17805.889241108198},
		{"Seattle", "taihou_boss", []string{"rudder", "toolbox"}, 18356.752696844207},
		{"Takao", "taihou_boss", []string{"rudder", "beaver"}, 17981.73518335338},
		{"Tashkent", "taihou_boss", []string{"rudder", "toolbox"}, 14067.184632058947},
		{"Anchorage", "taihou_boss", nil, 19618.554233995168},
		{"Anchorage", "meta_boss", nil, 14649.797808743837},
		{"Ayanami", "taihou_boss", []string{"rudder", "toolbox"}, 10135.140049361522},
		{"Belfast", "meta_boss", []string{"manjuu"}, 9392.37603897965},
		{"Acasta", "taihou_boss", nil, 6138.621327731569},
	}

	for _, tt := range tests {
		t.Run(tt.unit+"/"+tt.stage, func(t *testing.T) {
			u, err := c.Unit(tt.unit)
			require.NoError(t, err)
			stage, err := c.Stage(tt.stage)
			require.NoError(t, err)
			equips, err := c.Loadout(tt.loadout)
			require.NoError(t, err)

			got, err := u.EHP(stage, equips...)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestBuiltin_HideAndSeekHeals(t *testing.T) {
	c := Builtin()
	u, err := c.Unit("Anchorage")
	require.NoError(t, err)
	stage, err := c.Stage("taihou_boss")
	require.NoError(t, err)

	assert.InDelta(t, 8132.8, u.ModifiedHP(stage, nil), 1e-9)
}

func TestBuiltin_CompositeInfoIsSorted(t *testing.T) {
	c := Builtin()
	u, err := c.Unit("Anchorage")
	require.NoError(t, err)

	lines := strings.Split(u.Info(), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "For the purpose"))
	assert.True(t, strings.HasPrefix(lines[1], "When this ship fires"))
}
