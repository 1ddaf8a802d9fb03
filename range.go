package anoniter

import (
	"math"

	"go.abhg.dev/anoniter/internal/must"
)

// Integer is the set of built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Range returns an iterator over the integers in [lo, hi).
// If hi is not greater than lo, the range is empty.
func Range[T Integer](lo, hi T) *RangeIter[T] {
	if hi < lo {
		hi = lo
	}
	return &RangeIter[T]{lo: lo, hi: hi}
}

// RangeIter iterates over a half-open range of integers
// from either end.
//
// Ranges of 64-bit integers may hold more than math.MaxInt items.
// Len panics for these until enough items have been consumed.
type RangeIter[T Integer] struct {
	lo, hi T // invariant: lo <= hi
}

var (
	_ DoubleEndedIterator[int] = (*RangeIter[int])(nil)
	_ ExactSizeIterator[int]   = (*RangeIter[int])(nil)
	_ FusedIterator[int]       = (*RangeIter[int])(nil)
)

// Next returns the lowest remaining integer.
func (r *RangeIter[T]) Next() (T, bool) {
	if r.lo >= r.hi {
		var zero T
		return zero, false
	}

	v := r.lo
	r.lo++
	return v, true
}

// NextBack returns the highest remaining integer.
func (r *RangeIter[T]) NextBack() (T, bool) {
	if r.lo >= r.hi {
		var zero T
		return zero, false
	}

	r.hi--
	return r.hi, true
}

// Len reports the number of integers remaining.
func (r *RangeIter[T]) Len() int {
	// Conversion to uint64 sign-extends negative values,
	// so the difference is exact for every lo <= hi.
	span := uint64(r.hi) - uint64(r.lo)
	if span > math.MaxInt {
		must.Failf("anoniter: range [%v, %v) has %d items, more than an int can hold", r.lo, r.hi, span)
	}
	return int(span)
}

// Fused marks RangeIter as a [FusedIterator].
func (*RangeIter[T]) Fused() {}
