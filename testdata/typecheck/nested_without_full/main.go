package typecheck

import "go.abhg.dev/anoniter"

type inner = anoniter.Iter2[int, *anoniter.SliceIter[int], *anoniter.RangeIter[int]]

// Wrappers only have NextBack as a method through their Full view.
func nextBack() (int, bool) {
	in := anoniter.Iter2I1[int, *anoniter.SliceIter[int], *anoniter.RangeIter[int]](
		anoniter.Slice([]int{1}),
	)
	it := anoniter.Iter2I1[int, *inner, *anoniter.SliceIter[int]](in)
	return anoniter.NextBack2(it)
}
