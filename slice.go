package anoniter

// Slice returns an iterator over the items of a slice.
// The slice is not copied and must not be modified while iterating.
func Slice[T any](items []T) *SliceIter[T] {
	return &SliceIter[T]{items: items}
}

// SliceIter iterates over a slice from either end.
type SliceIter[T any] struct {
	items []T // remaining items
}

var (
	_ DoubleEndedIterator[int] = (*SliceIter[int])(nil)
	_ ExactSizeIterator[int]   = (*SliceIter[int])(nil)
	_ FusedIterator[int]       = (*SliceIter[int])(nil)
)

// Next returns the first remaining item.
func (s *SliceIter[T]) Next() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	v := s.items[0]
	s.items = s.items[1:]
	return v, true
}

// NextBack returns the last remaining item.
func (s *SliceIter[T]) NextBack() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	last := len(s.items) - 1
	v := s.items[last]
	s.items = s.items[:last]
	return v, true
}

// Len reports the number of items remaining.
func (s *SliceIter[T]) Len() int {
	return len(s.items)
}

// Fused marks SliceIter as a [FusedIterator].
func (*SliceIter[T]) Fused() {}
