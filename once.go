package anoniter

// Once returns an iterator that produces v exactly once.
func Once[T any](v T) *OnceIter[T] {
	return &OnceIter[T]{v: v, ok: true}
}

// OnceIter produces a single item.
type OnceIter[T any] struct {
	v  T
	ok bool // whether v has not been produced yet
}

var (
	_ DoubleEndedIterator[int] = (*OnceIter[int])(nil)
	_ ExactSizeIterator[int]   = (*OnceIter[int])(nil)
	_ FusedIterator[int]       = (*OnceIter[int])(nil)
)

// Next returns the item if it hasn't been produced yet.
func (o *OnceIter[T]) Next() (T, bool) {
	if !o.ok {
		var zero T
		return zero, false
	}

	var zero T
	v := o.v
	o.v, o.ok = zero, false
	return v, true
}

// NextBack is the same as Next.
func (o *OnceIter[T]) NextBack() (T, bool) {
	return o.Next()
}

// Len reports 1 until the item is produced, and 0 afterwards.
func (o *OnceIter[T]) Len() int {
	if o.ok {
		return 1
	}
	return 0
}

// Fused marks OnceIter as a [FusedIterator].
func (*OnceIter[T]) Fused() {}
