package typecheck

import "go.abhg.dev/anoniter"

// Variants must produce the same item type.
var _ = anoniter.Iter2I1[int, *anoniter.SliceIter[int], *anoniter.SliceIter[string]](
	anoniter.Slice([]int{1}),
)
