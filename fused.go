package anoniter

// Fused is a view of an iterator whose every variant is a [FusedIterator].
// Build one with [Fuse2] through [Fuse12].
//
// Fused stores no state of its own.
// The guarantee holds because each variant upholds it.
type Fused[T any, I Iterator[T]] struct{ it I }

var _ FusedIterator[int] = Fused[int, *SliceIter[int]]{}

// Next returns the next item from the underlying iterator.
func (f Fused[T, I]) Next() (T, bool) {
	return f.it.Next()
}

// Fused marks f as a [FusedIterator].
func (Fused[T, I]) Fused() {}

// Unwrap returns the underlying iterator.
func (f Fused[T, I]) Unwrap() I {
	return f.it
}
