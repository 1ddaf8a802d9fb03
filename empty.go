package anoniter

// Empty returns an iterator that produces nothing.
//
// It's useful for a branch that has no items
// where the other branches do.
func Empty[T any]() *EmptyIter[T] {
	return &EmptyIter[T]{}
}

// EmptyIter is an iterator with no items.
type EmptyIter[T any] struct{}

var (
	_ DoubleEndedIterator[int] = (*EmptyIter[int])(nil)
	_ ExactSizeIterator[int]   = (*EmptyIter[int])(nil)
	_ FusedIterator[int]       = (*EmptyIter[int])(nil)
)

// Next always reports exhaustion.
func (*EmptyIter[T]) Next() (T, bool) {
	var zero T
	return zero, false
}

// NextBack always reports exhaustion.
func (*EmptyIter[T]) NextBack() (T, bool) {
	var zero T
	return zero, false
}

// Len is always 0.
func (*EmptyIter[T]) Len() int { return 0 }

// Fused marks EmptyIter as a [FusedIterator].
func (*EmptyIter[T]) Fused() {}
