// Package buff models time-varying combat modifiers.
//
// A Table describes one source of modifiers over an encounter: the instants
// at which its state may change (breakpoints) and, at any instant, the
// probability distribution over Values. Three variants exist: Flat (constant),
// Periodic (a recurring proc) and Composite (independent tables combined).
package buff

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"

	"github.com/udisondev/ehpsim/internal/stream"
)

// ErrInvalidArgument is returned for degenerate table parameters.
var ErrInvalidArgument = errors.New("invalid buff table argument")

// Table is implemented only by *Flat, *Periodic and *Composite.
type Table interface {
	// Breakpoints returns a strictly increasing, possibly infinite sequence
	// starting at 0. Callers must bound consumption (see stream.Below).
	Breakpoints() iter.Seq[float64]
	// Distribution returns the outcomes at timestamp t.
	Distribution(t float64) Distribution
	// Info is descriptive text, one label per line.
	Info() string

	sealed()
}

// Flat is a constant modifier.
type Flat struct {
	value Value
	info  string
}

// NewFlat returns a table that always yields v.
func NewFlat(v Value, info string) *Flat {
	return &Flat{value: v, info: info}
}

// Empty returns the identity table.
func Empty() *Flat {
	return NewFlat(Identity(), "")
}

func (f *Flat) Breakpoints() iter.Seq[float64]    { return stream.Values(0.0) }
func (f *Flat) Distribution(float64) Distribution { return certain(f.value) }
func (f *Flat) Info() string                      { return f.info }
func (f *Flat) sealed()                           {}

// Value returns the constant value.
func (f *Flat) Value() Value { return f.value }

// PeriodicParams configures a Periodic table. Nil optional fields take their
// defaults in NewPeriodic: FirstOffset defaults to Period and FirstRate to Rate.
type PeriodicParams struct {
	Value       Value
	Duration    float64 // seconds the value stays active after each proc
	Period      float64 // seconds between proc chances
	Rate        float64 // activation chance per proc
	FirstOffset *float64
	FirstRate   *float64
	Info        string
}

// Periodic is a proc that may activate Value for Duration seconds every
// Period seconds, starting at FirstOffset.
//
// The distribution at t depends only on t. It never remembers which branch
// earlier cycles took, so it is the per-instant expectation under independent
// cycles rather than a trajectory simulation.
type Periodic struct {
	value       Value
	duration    float64
	period      float64
	rate        float64
	firstOffset float64
	firstRate   float64
	info        string
}

// NewPeriodic validates p and resolves its defaults once.
func NewPeriodic(p PeriodicParams) (*Periodic, error) {
	t := &Periodic{
		value:       p.Value,
		duration:    p.Duration,
		period:      p.Period,
		rate:        p.Rate,
		firstOffset: p.Period,
		firstRate:   p.Rate,
		info:        p.Info,
	}
	if p.FirstOffset != nil {
		t.firstOffset = *p.FirstOffset
	}
	if p.FirstRate != nil {
		t.firstRate = *p.FirstRate
	}

	switch {
	case !(t.period > 0) || math.IsInf(t.period, 0):
		return nil, fmt.Errorf("%w: period %g must be positive and finite", ErrInvalidArgument, t.period)
	case !(t.duration >= 0) || math.IsInf(t.duration, 0):
		return nil, fmt.Errorf("%w: duration %g must be non-negative and finite", ErrInvalidArgument, t.duration)
	case !(t.firstOffset >= 0) || math.IsInf(t.firstOffset, 0):
		return nil, fmt.Errorf("%w: first offset %g must be non-negative and finite", ErrInvalidArgument, t.firstOffset)
	case !validRate(t.rate):
		return nil, fmt.Errorf("%w: rate %g outside [0, 1]", ErrInvalidArgument, t.rate)
	case !validRate(t.firstRate):
		return nil, fmt.Errorf("%w: first rate %g outside [0, 1]", ErrInvalidArgument, t.firstRate)
	}
	return t, nil
}

// MustPeriodic is NewPeriodic for static tables; it panics on error.
func MustPeriodic(p PeriodicParams) *Periodic {
	t, err := NewPeriodic(p)
	if err != nil {
		panic(err)
	}
	return t
}

func validRate(r float64) bool {
	return r >= 0 && r <= 1
}

// Breakpoints merges 0 with the window starts and the window ends.
func (p *Periodic) Breakpoints() iter.Seq[float64] {
	return stream.IncMerge(
		stream.Values(0.0),
		stream.Arithmetic(p.firstOffset, p.period),
		stream.Arithmetic(p.firstOffset+p.duration, p.period),
	)
}

func (p *Periodic) Distribution(t float64) Distribution {
	if t < p.firstOffset {
		return certain(Identity())
	}
	elapsed := t - p.firstOffset
	if math.Mod(elapsed, p.period) >= p.duration {
		return certain(Identity())
	}

	rate := p.rate
	if math.Floor(elapsed/p.period) == 0 {
		rate = p.firstRate
	}
	switch {
	case rate >= 1:
		return certain(p.value)
	case rate <= 0:
		return certain(Identity())
	}
	return Distribution{
		{Prob: rate, Value: p.value},
		{Prob: 1.0 - rate, Value: Identity()},
	}
}

func (p *Periodic) Info() string { return p.info }
func (p *Periodic) sealed()      {}

// Composite combines independent child tables.
//
// Its distribution is the cross product of the children's distributions:
// K children with M branches each yield M^K branches.
type Composite struct {
	children []Table
	info     string
}

// NewComposite combines children in order. The label is every child label
// line, deduplicated and sorted.
func NewComposite(children ...Table) *Composite {
	var lines []string
	for _, c := range children {
		for line := range strings.SplitSeq(c.Info(), "\n") {
			if line != "" {
				lines = append(lines, line)
			}
		}
	}
	slices.Sort(lines)
	lines = slices.Compact(lines)

	return &Composite{
		children: slices.Clone(children),
		info:     strings.Join(lines, "\n"),
	}
}

func (c *Composite) Breakpoints() iter.Seq[float64] {
	seqs := make([]iter.Seq[float64], 0, len(c.children)+1)
	seqs = append(seqs, stream.Values(0.0))
	for _, child := range c.children {
		seqs = append(seqs, child.Breakpoints())
	}
	return stream.IncMerge(seqs...)
}

// Distribution reduces each combination left to right starting from the
// identity; earlier children vary slowest.
func (c *Composite) Distribution(t float64) Distribution {
	out := certain(Identity())
	for _, child := range c.children {
		cd := child.Distribution(t)
		next := make(Distribution, 0, len(out)*len(cd))
		for _, a := range out {
			for _, b := range cd {
				next = append(next, Branch{
					Prob:  a.Prob * b.Prob,
					Value: a.Value.Combine(b.Value),
				})
			}
		}
		out = next
	}
	return out
}

func (c *Composite) Info() string { return c.info }
func (c *Composite) sealed()      {}

// Children returns the combined tables.
func (c *Composite) Children() []Table { return slices.Clone(c.children) }
