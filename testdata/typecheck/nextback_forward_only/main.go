package typecheck

import "go.abhg.dev/anoniter"

// SeqIter can't iterate backwards,
// so neither can a wrapper that may hold one.
func nextBack() (int, bool) {
	it := anoniter.Iter2I1[int, *anoniter.SliceIter[int], *anoniter.SeqIter[int]](
		anoniter.Slice([]int{1}),
	)
	return anoniter.NextBack2(it)
}
