package buff

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/ehpsim/internal/stream"
)

func ptr(v float64) *float64 { return &v }

func mustPeriodic(t *testing.T, p PeriodicParams) *Periodic {
	t.Helper()
	tbl, err := NewPeriodic(p)
	require.NoError(t, err)
	return tbl
}

func TestFlat_SingleBreakpointAndCertainValue(t *testing.T) {
	v := Value{DamageMul: 0.85}
	tbl := NewFlat(v, "Abyssal Banquet")

	assert.Equal(t, []float64{0}, stream.CollectBelow(tbl.Breakpoints(), 1000))
	for _, ts := range []float64{0, 1.5, 90, 1e6} {
		d := tbl.Distribution(ts)
		require.Len(t, d, 1)
		assert.Equal(t, 1.0, d[0].Prob)
		assert.Equal(t, v, d[0].Value)
	}
}

func TestEmpty_IsIdentity(t *testing.T) {
	d := Empty().Distribution(42)
	require.Len(t, d, 1)
	assert.Equal(t, Identity(), d[0].Value)
}

func TestNewPeriodic_Defaults(t *testing.T) {
	tbl := mustPeriodic(t, PeriodicParams{Value: Value{DamageMul: 0.85}, Duration: 8, Period: 20, Rate: 0.25})

	assert.Equal(t, 20.0, tbl.firstOffset)
	assert.Equal(t, 0.25, tbl.firstRate)
}

func TestNewPeriodic_RejectsDegenerateParams(t *testing.T) {
	tests := []struct {
		name string
		p    PeriodicParams
	}{
		{"zero period", PeriodicParams{Period: 0, Rate: 0.5}},
		{"negative period", PeriodicParams{Period: -5, Rate: 0.5}},
		{"negative duration", PeriodicParams{Period: 10, Duration: -1, Rate: 0.5}},
		{"rate above one", PeriodicParams{Period: 10, Rate: 70}},
		{"negative rate", PeriodicParams{Period: 10, Rate: -0.1}},
		{"first rate above one", PeriodicParams{Period: 10, Rate: 0.5, FirstRate: ptr(1.5)}},
		{"negative first offset", PeriodicParams{Period: 10, Rate: 0.5, FirstOffset: ptr(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPeriodic(tt.p)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestPeriodic_Breakpoints(t *testing.T) {
	tbl := mustPeriodic(t, PeriodicParams{Value: Value{DamageMul: 1, PerfectDodge: true}, Duration: 6, Period: 20, Rate: 0.3})

	got := stream.CollectBelow(tbl.Breakpoints(), 90)
	assert.Equal(t, []float64{0, 20, 26, 40, 46, 60, 66, 80, 86}, got)
}

func TestPeriodic_BreakpointsWithFirstOffsetZero(t *testing.T) {
	tbl := mustPeriodic(t, PeriodicParams{Value: Value{DamageMul: 1, EvasionChance: 0.4}, Duration: 5, Period: 15, Rate: 0.3, FirstOffset: ptr(0), FirstRate: ptr(1)})

	got := stream.CollectBelow(tbl.Breakpoints(), 50)
	assert.Equal(t, []float64{0, 5, 15, 20, 30, 35, 45}, got)
}

func TestPeriodic_CertainProc(t *testing.T) {
	buffed := Value{DamageMul: 1, EvasionAdd: 0.25}
	tbl := mustPeriodic(t, PeriodicParams{Value: buffed, Duration: 12, Period: 20, Rate: 1})

	tests := []struct {
		ts   float64
		want Value
	}{
		{0, Identity()},
		{19.9, Identity()},
		{20, buffed},
		{31.9, buffed},
		{32, Identity()},
		{40, buffed},
		{75, Identity()},
	}
	for _, tt := range tests {
		d := tbl.Distribution(tt.ts)
		require.Len(t, d, 1, "t=%g", tt.ts)
		assert.Equal(t, 1.0, d[0].Prob, "t=%g", tt.ts)
		assert.Equal(t, tt.want, d[0].Value, "t=%g", tt.ts)
	}
}

func TestPeriodic_FirstRateAppliesToFirstWindowOnly(t *testing.T) {
	smoke := Value{DamageMul: 1, EvasionChance: 0.35}
	tbl := mustPeriodic(t, PeriodicParams{Value: smoke, Duration: 10, Period: 20, Rate: 0.2, FirstOffset: ptr(10), FirstRate: ptr(1)})

	first := tbl.Distribution(12)
	require.Len(t, first, 1)
	assert.Equal(t, smoke, first[0].Value)

	later := tbl.Distribution(32)
	require.Len(t, later, 2)
	assert.InDelta(t, 0.2, later[0].Prob, 1e-12)
	assert.Equal(t, smoke, later[0].Value)
	assert.InDelta(t, 0.8, later[1].Prob, 1e-12)
	assert.Equal(t, Identity(), later[1].Value)

	assert.Equal(t, Identity(), tbl.Distribution(25)[0].Value)
}

func TestPeriodic_ZeroLaterRate(t *testing.T) {
	tbl := mustPeriodic(t, PeriodicParams{Value: Value{DamageMul: 1, EvasionChance: 0.1}, Duration: 300, Period: 300, Rate: 0, FirstOffset: ptr(18), FirstRate: ptr(1)})

	assert.Equal(t, Identity(), tbl.Distribution(10)[0].Value)
	assert.Equal(t, 0.1, tbl.Distribution(50)[0].Value.EvasionChance)
	assert.Equal(t, Identity(), tbl.Distribution(400)[0].Value)
}

func TestPeriodic_ProbabilitiesSumToOne(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 50; i++ {
		p := PeriodicParams{
			Value:       Value{DamageMul: 0.5 + rng.Float64(), PerfectDodge: rng.IntN(2) == 0},
			Duration:    rng.Float64() * 30,
			Period:      1 + rng.Float64()*30,
			Rate:        rng.Float64(),
			FirstOffset: ptr(rng.Float64() * 20),
			FirstRate:   ptr(rng.Float64()),
		}
		tbl := mustPeriodic(t, p)
		for ts := 0.0; ts < 120; ts += 0.37 {
			d := tbl.Distribution(ts)
			require.NoError(t, d.Check())
			assert.InDelta(t, 1.0, d.Total(), 1e-9)
			assert.LessOrEqual(t, len(d), 2)
		}
	}
}

func TestComposite_BreakpointsMergeChildren(t *testing.T) {
	a := mustPeriodic(t, PeriodicParams{Value: Identity(), Duration: 5, Period: 20, Rate: 1, FirstOffset: ptr(0)})
	b := mustPeriodic(t, PeriodicParams{Value: Identity(), Duration: 2, Period: 20, Rate: 1, FirstOffset: ptr(0)})
	c := NewComposite(a, b, NewFlat(Identity(), ""))

	got := stream.CollectBelow(c.Breakpoints(), 45)
	assert.Equal(t, []float64{0, 2, 5, 20, 22, 25, 40, 42}, got)
}

func TestComposite_EmptyHasIdentity(t *testing.T) {
	c := NewComposite()
	assert.Equal(t, []float64{0}, stream.CollectBelow(c.Breakpoints(), 10))
	d := c.Distribution(3)
	require.Len(t, d, 1)
	assert.Equal(t, Identity(), d[0].Value)
}

func TestComposite_CrossProduct(t *testing.T) {
	dodge := Value{DamageMul: 1, PerfectDodge: true}
	guard := Value{DamageMul: 0.85}
	a := mustPeriodic(t, PeriodicParams{Value: dodge, Duration: 6, Period: 20, Rate: 0.3})
	b := mustPeriodic(t, PeriodicParams{Value: guard, Duration: 8, Period: 20, Rate: 0.25})
	c := NewComposite(a, b, NewFlat(Value{DamageMul: 0.96}, ""))

	d := c.Distribution(21)
	require.Len(t, d, 4)
	require.NoError(t, d.Check())

	want := []Branch{
		{Prob: 0.3 * 0.25, Value: Value{DamageMul: 0.85 * 0.96, PerfectDodge: true}},
		{Prob: 0.3 * 0.75, Value: Value{DamageMul: 0.96, PerfectDodge: true}},
		{Prob: 0.7 * 0.25, Value: Value{DamageMul: 0.85 * 0.96}},
		{Prob: 0.7 * 0.75, Value: Value{DamageMul: 0.96}},
	}
	for i := range want {
		assert.InDelta(t, want[i].Prob, d[i].Prob, 1e-12)
		assert.InDelta(t, want[i].Value.DamageMul, d[i].Value.DamageMul, 1e-12)
		assert.Equal(t, want[i].Value.PerfectDodge, d[i].Value.PerfectDodge)
	}

	// outside both windows only the flat child contributes
	d = c.Distribution(15)
	require.Len(t, d, 1)
	assert.InDelta(t, 0.96, d[0].Value.DamageMul, 1e-12)
}

func TestComposite_ProbabilitiesSumToOne(t *testing.T) {
	var children []Table
	for i := range 6 {
		children = append(children, mustPeriodic(t, PeriodicParams{
			Value:    Value{DamageMul: 0.9, EvasionAdd: 0.05 * float64(i)},
			Duration: float64(3 + i),
			Period:   float64(11 + 3*i),
			Rate:     0.1 + 0.13*float64(i),
		}))
	}
	c := NewComposite(children...)

	for _, ts := range stream.CollectBelow(c.Breakpoints(), 200) {
		d := c.Distribution(ts)
		assert.InDelta(t, 1.0, d.Total(), 1e-9, "t=%g", ts)
		assert.LessOrEqual(t, len(d), 64)
	}
}

func TestComposite_InfoSortedAndDeduplicated(t *testing.T) {
	a := NewFlat(Identity(), "b line\na line")
	b := NewFlat(Identity(), "a line\n\nc line")
	c := NewComposite(a, b, Empty())

	assert.Equal(t, "a line\nb line\nc line", c.Info())
	assert.Equal(t, "a line\nb line\nc line", NewComposite(c).Info())
}
