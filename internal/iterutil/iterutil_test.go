package iterutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromNext(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		got := slices.Collect(FromNext(func() (int, bool) { return 0, false }))
		assert.Empty(t, got)
	})

	t.Run("Drains", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3}, slices.Collect(FromNext(counter(3))))
	})

	t.Run("EarlyTermination", func(t *testing.T) {
		seq := FromNext(counter(5))

		var got []int
		for v := range seq {
			got = append(got, v)
			if v == 2 {
				break
			}
		}
		assert.Equal(t, []int{1, 2}, got)

		// The next range resumes after the last item yielded.
		assert.Equal(t, []int{3, 4, 5}, slices.Collect(seq))
	})

	t.Run("StopsAtFirstFalse", func(t *testing.T) {
		var calls int
		seq := FromNext(func() (int, bool) {
			calls++
			return calls, calls < 3
		})

		assert.Equal(t, []int{1, 2}, slices.Collect(seq))
		assert.Equal(t, 3, calls)
	})
}

// counter returns a next function that produces 1 through n.
func counter(n int) func() (int, bool) {
	var i int
	return func() (int, bool) {
		if i >= n {
			return 0, false
		}
		i++
		return i, true
	}
}
