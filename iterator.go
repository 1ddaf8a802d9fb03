package anoniter

import (
	"fmt"
	"iter"

	"go.abhg.dev/anoniter/internal/iterutil"
)

// Iterator produces items of type T one at a time.
//
// Next returns the next item and true,
// or the zero value and false when there are no more items.
type Iterator[T any] interface {
	Next() (T, bool)
}

// DoubleEndedIterator is an Iterator that can also produce items
// from the back of the sequence.
//
// Items are consumed from both ends until they meet.
// No item is produced twice.
type DoubleEndedIterator[T any] interface {
	Iterator[T]

	// NextBack returns the last remaining item and true,
	// or the zero value and false when there are no more items.
	NextBack() (T, bool)
}

// ExactSizeIterator is an Iterator that knows
// exactly how many items it has left.
type ExactSizeIterator[T any] interface {
	Iterator[T]

	// Len reports the number of items remaining.
	// It must be exact and must not consume anything.
	Len() int
}

// FusedIterator is an Iterator that, once exhausted, stays exhausted.
// Every call to Next after the first one that returns false
// also returns false.
type FusedIterator[T any] interface {
	Iterator[T]

	// Fused is a marker method. It does nothing.
	Fused()
}

// FullIterator is an Iterator with every optional capability.
//
// A wrapper is a FullIterator only through its Full view,
// for example [Full2], and only if all of its variants are.
type FullIterator[T any] interface {
	DoubleEndedIterator[T]
	ExactSizeIterator[T]
	FusedIterator[T]
}

// All returns a sequence over the remaining items of it.
// Ranging over the sequence consumes it.
func All[T any](it Iterator[T]) iter.Seq[T] {
	return iterutil.FromNext(it.Next)
}

// unconstructed reports use of a wrapper that was not built
// with one of its constructors.
func unconstructed(it any) error {
	return fmt.Errorf("anoniter: %T used without a constructor", it)
}
