// Package heal computes regeneration expressed as a fraction of max HP.
package heal

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned for degenerate heal parameters.
var ErrInvalidArgument = errors.New("invalid heal argument")

// Params configures an Entry. FirstOffset defaults to Period and FirstRate to
// Rate when nil.
type Params struct {
	Magnitude   float64 // fraction of max HP restored per proc
	Period      float64 // seconds between procs after the first
	Rate        float64 // chance (or applied fraction) per proc
	FirstOffset *float64
	FirstRate   *float64
	Info        string
}

// Entry is a periodic percentage heal.
type Entry struct {
	magnitude   float64
	period      float64
	rate        float64
	firstOffset float64
	firstRate   float64
	info        string
}

// DefaultPeriod is the proc interval of the zero heal an item gets when it
// declares none.
const DefaultPeriod = 300.0

// None returns the zero-magnitude heal.
func None() Entry {
	return Entry{period: DefaultPeriod, rate: 1, firstOffset: DefaultPeriod, firstRate: 1}
}

// New validates p and resolves its defaults.
func New(p Params) (Entry, error) {
	e := Entry{
		magnitude:   p.Magnitude,
		period:      p.Period,
		rate:        p.Rate,
		firstOffset: p.Period,
		firstRate:   p.Rate,
		info:        p.Info,
	}
	if p.FirstOffset != nil {
		e.firstOffset = *p.FirstOffset
	}
	if p.FirstRate != nil {
		e.firstRate = *p.FirstRate
	}

	switch {
	case !(e.period > 0) || math.IsInf(e.period, 0):
		return Entry{}, fmt.Errorf("%w: period %g must be positive and finite", ErrInvalidArgument, e.period)
	case !(e.firstOffset >= 0) || math.IsInf(e.firstOffset, 0):
		return Entry{}, fmt.Errorf("%w: first offset %g must be non-negative and finite", ErrInvalidArgument, e.firstOffset)
	case math.IsNaN(e.magnitude) || math.IsInf(e.magnitude, 0):
		return Entry{}, fmt.Errorf("%w: magnitude %g", ErrInvalidArgument, e.magnitude)
	case !(e.rate >= 0 && e.rate <= 1):
		return Entry{}, fmt.Errorf("%w: rate %g outside [0, 1]", ErrInvalidArgument, e.rate)
	case !(e.firstRate >= 0 && e.firstRate <= 1):
		return Entry{}, fmt.Errorf("%w: first rate %g outside [0, 1]", ErrInvalidArgument, e.firstRate)
	}
	return e, nil
}

// MustNew is New for static tables; it panics on error.
func MustNew(p Params) Entry {
	e, err := New(p)
	if err != nil {
		panic(err)
	}
	return e
}

// Total returns the expected healing over an encounter of the given length
// in closed form. Procs fall at firstOffset + k*period for every k >= 0 up to
// and including length. When the first proc is past the end nothing heals.
func (e Entry) Total(length float64) float64 {
	if length < e.firstOffset {
		return 0
	}
	extra := math.Floor((length - e.firstOffset) / e.period)
	return e.magnitude * (e.firstRate + extra*e.rate)
}

// Enumerate computes the same quantity as Total by walking every proc. It is
// the reference for Total and is linear in length/period.
func (e Entry) Enumerate(length float64) float64 {
	var sum float64
	for k := 0; ; k++ {
		ts := e.firstOffset + float64(k)*e.period
		if ts > length {
			break
		}
		rate := e.rate
		if k == 0 {
			rate = e.firstRate
		}
		sum += e.magnitude * rate
	}
	return sum
}

func (e Entry) Magnitude() float64 { return e.magnitude }
func (e Entry) Period() float64    { return e.period }
func (e Entry) Info() string       { return e.info }
