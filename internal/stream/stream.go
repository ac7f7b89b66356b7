// Package stream provides lazy sequences of float64 timestamps and the
// K-way merge used to compute buff table breakpoints.
//
// Sequences may be infinite. Only Below (or an explicit break by the caller)
// bounds consumption; collecting an unbounded sequence never returns.
package stream

import (
	"iter"
	"slices"
)

// Values returns a finite sequence over vs.
func Values(vs ...float64) iter.Seq[float64] {
	return slices.Values(vs)
}

// Arithmetic returns the infinite sequence start, start+step, start+2*step, ...
// Each element is computed as start+k*step so long streams do not drift.
func Arithmetic(start, step float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for k := 0; ; k++ {
			if !yield(start + float64(k)*step) {
				return
			}
		}
	}
}

// head is the current front element of one merged source.
type head struct {
	next  func() (float64, bool)
	stop  func()
	value float64
}

// Merge merges non-decreasing sequences into one non-decreasing sequence.
// Exactly one element is pulled from a source per emitted value. Among equal
// heads the lowest source index wins; callers must not rely on that.
func Merge(seqs ...iter.Seq[float64]) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		heads := make([]head, 0, len(seqs))
		defer func() {
			for _, h := range heads {
				h.stop()
			}
		}()

		for _, seq := range seqs {
			next, stop := iter.Pull(seq)
			v, ok := next()
			if !ok {
				stop()
				continue
			}
			heads = append(heads, head{next: next, stop: stop, value: v})
		}

		for len(heads) > 0 {
			i := minHead(heads)
			if !yield(heads[i].value) {
				return
			}
			v, ok := heads[i].next()
			if !ok {
				heads[i].stop()
				heads = slices.Delete(heads, i, i+1)
				continue
			}
			heads[i].value = v
		}
	}
}

func minHead(heads []head) int {
	mi := 0
	for i := 1; i < len(heads); i++ {
		if heads[i].value < heads[mi].value {
			mi = i
		}
	}
	return mi
}

// Increasing drops every value that is <= the last emitted one, turning a
// non-decreasing sequence into a strictly increasing one.
func Increasing(seq iter.Seq[float64]) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		first := true
		var last float64
		for v := range seq {
			if !first && v <= last {
				continue
			}
			first = false
			last = v
			if !yield(v) {
				return
			}
		}
	}
}

// IncMerge is Increasing(Merge(seqs...)).
func IncMerge(seqs ...iter.Seq[float64]) iter.Seq[float64] {
	return Increasing(Merge(seqs...))
}

// Below yields elements of a non-decreasing seq while they are < bound and
// stops at the first element that is not.
func Below(seq iter.Seq[float64], bound float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for v := range seq {
			if v >= bound || !yield(v) {
				return
			}
		}
	}
}

// CollectBelow materializes the prefix of seq strictly below bound.
func CollectBelow(seq iter.Seq[float64], bound float64) []float64 {
	return slices.Collect(Below(seq, bound))
}
