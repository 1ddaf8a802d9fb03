package typecheck

import "go.abhg.dev/anoniter"

// counter keeps counting after it reports exhaustion.
type counter struct{ n int }

func (c *counter) Next() (int, bool) {
	c.n++
	return c.n, c.n%3 != 0
}

func fuse() anoniter.FusedIterator[int] {
	it := anoniter.Iter2I2[int, *anoniter.SliceIter[int], *counter](&counter{})
	return anoniter.Fuse2(it)
}
