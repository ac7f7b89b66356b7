package buff

import (
	"errors"
	"fmt"
	"math"
)

// ProbTolerance is the allowed deviation of a distribution's total from 1.0.
const ProbTolerance = 1e-9

// ErrInvalidDistribution marks a distribution that is empty, has a negative
// branch or does not sum to 1.0. It always indicates a bug in a Table.
var ErrInvalidDistribution = errors.New("invalid probability distribution")

// Branch is one mutually exclusive outcome at an instant.
type Branch struct {
	Prob  float64
	Value Value
}

// Distribution lists every outcome at an instant. Branches are not merged
// even when two of them carry equal values.
type Distribution []Branch

func certain(v Value) Distribution {
	return Distribution{{Prob: 1.0, Value: v}}
}

// Total sums branch probabilities.
func (d Distribution) Total() float64 {
	var sum float64
	for _, b := range d {
		sum += b.Prob
	}
	return sum
}

// Check verifies the distribution invariant.
func (d Distribution) Check() error {
	if len(d) == 0 {
		return fmt.Errorf("%w: no branches", ErrInvalidDistribution)
	}
	for i, b := range d {
		if b.Prob < 0 || math.IsNaN(b.Prob) {
			return fmt.Errorf("%w: branch %d has probability %g", ErrInvalidDistribution, i, b.Prob)
		}
	}
	if total := d.Total(); math.Abs(total-1.0) > ProbTolerance {
		return fmt.Errorf("%w: probabilities sum to %.12f", ErrInvalidDistribution, total)
	}
	return nil
}

// MustCheck panics if the invariant does not hold. A broken distribution is
// never normalized.
func (d Distribution) MustCheck() {
	if err := d.Check(); err != nil {
		panic(err)
	}
}

// Expect returns the probability-weighted sum of f over all branches.
func (d Distribution) Expect(f func(Value) float64) float64 {
	var sum float64
	for _, b := range d {
		sum += b.Prob * f(b.Value)
	}
	return sum
}
