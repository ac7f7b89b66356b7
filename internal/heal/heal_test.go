package heal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestNew_Defaults(t *testing.T) {
	e, err := New(Params{Magnitude: 0.01, Period: 15, Rate: 1})
	require.NoError(t, err)

	assert.Equal(t, 15.0, e.firstOffset)
	assert.Equal(t, 1.0, e.firstRate)
}

func TestNew_RejectsDegenerateParams(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"zero period", Params{Magnitude: 0.1, Period: 0, Rate: 1}},
		{"negative period", Params{Magnitude: 0.1, Period: -3, Rate: 1}},
		{"negative first offset", Params{Magnitude: 0.1, Period: 10, Rate: 1, FirstOffset: ptr(-1)}},
		{"rate above one", Params{Magnitude: 0.1, Period: 10, Rate: 2}},
		{"first rate below zero", Params{Magnitude: 0.1, Period: 10, Rate: 1, FirstRate: ptr(-0.5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.p)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestTotal_KnownValues(t *testing.T) {
	// toolbox: 1% every 15s, first at 15s, 90s fight -> procs at 15..90
	toolbox := MustNew(Params{Magnitude: 0.01, Period: 15, Rate: 1})
	assert.InDelta(t, 0.06, toolbox.Total(90), 1e-12)

	// proc at t=0 and every 20s after
	hideAndSeek := MustNew(Params{Magnitude: 0.06, Period: 20, Rate: 1, FirstOffset: ptr(0)})
	assert.InDelta(t, 0.30, hideAndSeek.Total(90), 1e-12)

	assert.Equal(t, 0.0, None().Total(90))
}

func TestTotal_FirstProcAfterEncounterIsZero(t *testing.T) {
	e := MustNew(Params{Magnitude: 0.05, Period: 100, Rate: 0.5})
	assert.Equal(t, 0.0, e.Total(80))
	assert.GreaterOrEqual(t, e.Total(0), 0.0)
}

func TestTotal_MatchesEnumeration(t *testing.T) {
	entries := []Entry{
		MustNew(Params{Magnitude: 0.01, Period: 15, Rate: 1}),
		MustNew(Params{Magnitude: 0.06, Period: 20, Rate: 1, FirstOffset: ptr(0)}),
		MustNew(Params{Magnitude: 0.03, Period: 7, Rate: 0.4, FirstOffset: ptr(3), FirstRate: ptr(1)}),
		MustNew(Params{Magnitude: 0.1, Period: 12.5, Rate: 0.25, FirstOffset: ptr(40), FirstRate: ptr(0)}),
		None(),
	}

	for i, e := range entries {
		for length := 0.0; length <= 120; length += 0.5 {
			assert.InDelta(t, e.Enumerate(length), e.Total(length), 1e-9, "entry %d length %g", i, length)
		}
	}
}
