package anoniter_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/anoniter"
	"pgregory.net/rapid"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi int
		want   []int
	}{
		{name: "Empty", lo: 3, hi: 3},
		{name: "Reversed", lo: 5, hi: 1},
		{name: "Single", lo: 7, hi: 8, want: []int{7}},
		{name: "Negative", lo: -2, hi: 2, want: []int{-2, -1, 0, 1}},
		{name: "OneToTen", lo: 1, hi: 11, want: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := anoniter.Range(tt.lo, tt.hi)
			assert.Equal(t, len(tt.want), it.Len())
			assert.Equal(t, tt.want, collect(it.Next))
			assert.Zero(t, it.Len())
		})
	}
}

func TestRange_NextBack(t *testing.T) {
	it := anoniter.Range[uint8](250, 255)

	var got []uint8
	for {
		v, ok := it.NextBack()
		if !ok {
			break
		}
		got = append(got, v)
	}

	assert.Equal(t, []uint8{254, 253, 252, 251, 250}, got)
}

func TestRange_LenNoOverflow(t *testing.T) {
	t.Run("Int8", func(t *testing.T) {
		it := anoniter.Range[int8](math.MinInt8, math.MaxInt8)
		assert.Equal(t, 255, it.Len())
	})

	t.Run("Uint8", func(t *testing.T) {
		it := anoniter.Range[uint8](0, math.MaxUint8)
		assert.Equal(t, 255, it.Len())
	})

	t.Run("Int16", func(t *testing.T) {
		it := anoniter.Range[int16](math.MinInt16, math.MaxInt16)
		assert.Equal(t, math.MaxUint16, it.Len())
	})
}

func TestRange_Len64(t *testing.T) {
	t.Run("Uint64", func(t *testing.T) {
		it := anoniter.Range[uint64](math.MaxUint64-3, math.MaxUint64)
		assert.Equal(t, 3, it.Len())

		v, ok := it.NextBack()
		require.True(t, ok)
		assert.Equal(t, uint64(math.MaxUint64-1), v)
		assert.Equal(t, 2, it.Len())
	})

	t.Run("Int64", func(t *testing.T) {
		it := anoniter.Range[int64](math.MinInt64, math.MinInt64+5)
		assert.Equal(t, 5, it.Len())

		v, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, int64(math.MinInt64), v)
		assert.Equal(t, 4, it.Len())
	})

	t.Run("Int64AcrossZero", func(t *testing.T) {
		it := anoniter.Range[int64](-(1 << 30), 1<<30-1)
		assert.Equal(t, math.MaxInt32, it.Len())
	})
}

func TestRange_LenTooLarge(t *testing.T) {
	t.Run("Uint64", func(t *testing.T) {
		it := anoniter.Range[uint64](0, math.MaxUint64)
		assert.PanicsWithError(t,
			"anoniter: range [0, 18446744073709551615) has 18446744073709551615 items, more than an int can hold",
			func() { it.Len() })
	})

	t.Run("Int64", func(t *testing.T) {
		it := anoniter.Range[int64](math.MinInt64, math.MaxInt64)
		assert.Panics(t, func() { it.Len() })

		// Items can still be produced.
		v, ok := it.NextBack()
		require.True(t, ok)
		assert.Equal(t, int64(math.MaxInt64-1), v)
	})

	t.Run("Wrapped", func(t *testing.T) {
		it := anoniter.Iter2I2[uint64, *anoniter.SliceIter[uint64], *anoniter.RangeIter[uint64]](
			anoniter.Range[uint64](1, math.MaxUint64),
		)
		assert.Panics(t, func() { anoniter.Len2(it) })
	})
}

func TestRange_ExhaustedYieldsZero(t *testing.T) {
	it := anoniter.Range(10, 11)

	v, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 10, v)

	for range 3 {
		v, ok = it.Next()
		assert.False(t, ok)
		assert.Zero(t, v)

		v, ok = it.NextBack()
		assert.False(t, ok)
		assert.Zero(t, v)
	}
}

func TestRangeRapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.Int16().Draw(t, "lo")
		hi := rapid.Int16().Draw(t, "hi")

		var want []int16
		for v := int(lo); v < int(hi); v++ {
			want = append(want, int16(v))
		}

		it := anoniter.Range(lo, hi)
		require.Equal(t, len(want), it.Len())

		var got []int16
		for {
			v, ok := it.Next()
			if !ok {
				break
			}
			got = append(got, v)
		}
		assert.Equal(t, want, got)
	})
}
