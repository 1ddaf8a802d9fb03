package typecheck

import "go.abhg.dev/anoniter"

// SeqIter doesn't know its length.
func length() int {
	it := anoniter.Iter3I3[int, *anoniter.RangeIter[int], *anoniter.SeqIter[int], *anoniter.SliceIter[int]](
		anoniter.Slice([]int{1}),
	)
	return anoniter.Len3(it)
}
