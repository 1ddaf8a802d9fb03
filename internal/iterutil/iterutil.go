// Package iterutil contains utilities for working with iterators.
package iterutil

import "iter"

// FromNext returns a sequence that calls next until it reports false.
// Each call to the sequence resumes where the previous one stopped.
func FromNext[T any](next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
