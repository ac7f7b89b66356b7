package batch

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/ehpsim/internal/data"
	"github.com/udisondev/ehpsim/internal/testutil"
	"github.com/udisondev/ehpsim/internal/unit"
)

func sampleQueries() []Query {
	return []Query{
		{Unit: "Portland", Stage: "taihou_boss", Loadout: []string{"rudder", "beaver"}},
		{Unit: "Seattle", Stage: "taihou_boss", Loadout: []string{"rudder", "toolbox"}},
		{Unit: "Takao", Stage: "taihou_boss", Loadout: []string{"rudder", "beaver"}},
		{Unit: "Tashkent", Stage: "taihou_boss", Loadout: []string{"rudder", "toolbox"}},
	}
}

func TestRun_KeepsQueryOrder(t *testing.T) {
	want := []float64{17805.889241108198, 18356.752696844207, 17981.73518335338, 14067.184632058947}

	for _, workers := range []int{0, 1, 3} {
		ctx := testutil.ContextWithTimeout(t, 10*time.Second)
		results, err := Run(ctx, data.Builtin(), workers, sampleQueries())
		require.NoError(t, err)
		require.Len(t, results, len(want))
		for i, r := range results {
			assert.Equal(t, sampleQueries()[i].Unit, r.Unit)
			assert.InDelta(t, want[i], r.EHP, 1e-6, "workers=%d %s", workers, r.Query)
			assert.InDelta(t, r.ModifiedHP/r.Divisor, r.EHP, 1e-9)
		}
	}
}

func TestRun_Empty(t *testing.T) {
	results, err := Run(context.Background(), data.Builtin(), 2, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRun_FirstErrorFails(t *testing.T) {
	queries := append(sampleQueries(), Query{Unit: "Nobody", Stage: "taihou_boss"})

	_, err := Run(context.Background(), data.Builtin(), 2, queries)
	require.Error(t, err)
	assert.ErrorIs(t, err, data.ErrUnknownUnit)
	assert.Contains(t, err.Error(), "query 4")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, data.Builtin(), 1, sampleQueries())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEvaluate_Errors(t *testing.T) {
	cat := data.Builtin()

	_, err := Evaluate(cat, Query{Unit: "Portland", Stage: "nowhere"})
	assert.ErrorIs(t, err, data.ErrUnknownStage)

	_, err = Evaluate(cat, Query{Unit: "Portland", Stage: "taihou_boss", Loadout: []string{"anchor"}})
	assert.ErrorIs(t, err, data.ErrUnknownEquip)

	cat.Stages = map[string]unit.Stage{"broken": {Name: "broken"}}
	_, err = Evaluate(cat, Query{Unit: "Portland", Stage: "broken"})
	assert.ErrorIs(t, err, unit.ErrInvalidStage)
}

func TestResult_Whole(t *testing.T) {
	assert.Equal(t, 17805.0, Result{EHP: 17805.889241108198}.Whole())
	assert.True(t, math.IsInf(Result{EHP: math.Inf(1)}.Whole(), 1))
}

func TestRank(t *testing.T) {
	results := []Result{
		{Query: Query{Unit: "b"}, EHP: 10},
		{Query: Query{Unit: "a"}, EHP: 30},
		{Query: Query{Unit: "d"}, EHP: 20},
		{Query: Query{Unit: "c"}, EHP: 20},
		{Query: Query{Unit: "e"}, EHP: math.Inf(1)},
	}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"all", 0, []string{"e", "a", "c", "d", "b"}},
		{"top two", 2, []string{"e", "a"}},
		{"more than available", 10, []string{"e", "a", "c", "d", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := Rank(results, tt.n)
			names := make([]string, len(ranked))
			for i, r := range ranked {
				names[i] = r.Unit
			}
			assert.Equal(t, tt.want, names)
		})
	}

	assert.Equal(t, "b", results[0].Unit, "input must not be reordered")
}

func TestQuery_String(t *testing.T) {
	assert.Equal(t, "Portland rudder/beaver @ taihou_boss",
		Query{Unit: "Portland", Stage: "taihou_boss", Loadout: []string{"rudder", "beaver"}}.String())
	assert.Equal(t, "Acasta @ meta_boss", Query{Unit: "Acasta", Stage: "meta_boss"}.String())
}
