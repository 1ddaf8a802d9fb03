package typecheck

import "go.abhg.dev/anoniter"

// A wrapper that may hold a SeqIter has no Full view.
func full() anoniter.FullIterator[int] {
	it := anoniter.Iter2I1[int, *anoniter.SliceIter[int], *anoniter.SeqIter[int]](
		anoniter.Slice([]int{1}),
	)
	return anoniter.Full2(it)
}
