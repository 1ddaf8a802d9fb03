package anoniter

import "iter"

// FromSeq returns an iterator that pulls items from seq.
//
// The returned iterator only moves forward.
// Call Stop if it's abandoned before it is exhausted
// to release the resources held by seq.
func FromSeq[T any](seq iter.Seq[T]) *SeqIter[T] {
	next, stop := iter.Pull(seq)
	return &SeqIter[T]{next: next, stop: stop}
}

// SeqIter adapts an [iter.Seq] into an [Iterator].
type SeqIter[T any] struct {
	next func() (T, bool)
	stop func()
}

var _ FusedIterator[int] = (*SeqIter[int])(nil)

// Next pulls the next item from the sequence.
func (s *SeqIter[T]) Next() (T, bool) {
	return s.next()
}

// Stop ends iteration early.
// Next reports exhaustion after Stop.
// It's safe to call Stop multiple times.
func (s *SeqIter[T]) Stop() {
	s.stop()
}

// Fused marks SeqIter as a [FusedIterator].
// Exhausted or stopped pulls keep reporting exhaustion.
func (*SeqIter[T]) Fused() {}
