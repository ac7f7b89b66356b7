// Package batch evaluates many (unit, stage, loadout) queries against a
// catalog in parallel and ranks the results.
package batch

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/ehpsim/internal/data"
)

// Query names one evaluation. Loadout items are applied in order.
type Query struct {
	Unit    string
	Stage   string
	Loadout []string
}

func (q Query) String() string {
	if len(q.Loadout) == 0 {
		return fmt.Sprintf("%s @ %s", q.Unit, q.Stage)
	}
	return fmt.Sprintf("%s %s @ %s", q.Unit, strings.Join(q.Loadout, "/"), q.Stage)
}

// Result is the outcome of a single query.
type Result struct {
	Query
	ModifiedHP float64
	Divisor    float64
	EHP        float64 // +Inf when nothing can hit the unit
}

// Whole returns EHP truncated toward zero, the figure reports print.
func (r Result) Whole() float64 { return math.Trunc(r.EHP) }

// Run evaluates queries with at most workers goroutines (GOMAXPROCS when
// workers <= 0). Results are in query order. The first failing query cancels
// the rest and its error is returned.
func Run(ctx context.Context, cat data.Catalog, workers int, queries []Query) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	slog.Debug("batch started", "queries", len(queries), "workers", workers)

	results := make([]Result, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, q := range queries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := Evaluate(cat, q)
			if err != nil {
				return fmt.Errorf("query %d (%s): %w", i, q, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("batch finished", "queries", len(queries), "elapsed", time.Since(start))
	return results, nil
}

// Evaluate resolves a query against the catalog and computes its result.
func Evaluate(cat data.Catalog, q Query) (Result, error) {
	u, err := cat.Unit(q.Unit)
	if err != nil {
		return Result{}, err
	}
	stage, err := cat.Stage(q.Stage)
	if err != nil {
		return Result{}, err
	}
	equips, err := cat.Loadout(q.Loadout)
	if err != nil {
		return Result{}, err
	}

	div, err := u.EHPDivisor(stage, equips)
	if err != nil {
		return Result{}, err
	}
	hp := u.ModifiedHP(stage, equips)

	ehp := math.Inf(1)
	if div > 0 {
		ehp = hp / div
	}
	return Result{Query: q, ModifiedHP: hp, Divisor: div, EHP: ehp}, nil
}

// Rank returns the n best results by EHP, ties broken by unit name. n <= 0
// keeps every result. The input slice is not modified.
func Rank(results []Result, n int) []Result {
	out := slices.Clone(results)
	slices.SortStableFunc(out, func(a, b Result) int {
		if c := cmp.Compare(b.EHP, a.EHP); c != 0 {
			return c
		}
		return strings.Compare(a.Unit, b.Unit)
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
