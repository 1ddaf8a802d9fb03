// Package anoniter provides wrapper types that let a function
// return one of several iterator types behind a single static type.
//
// Go functions have one concrete return type.
// To return a different iterator from each branch
// without boxing it in an interface,
// wrap each branch's iterator in a different variant of an [Iter2]
// (or [Iter3] through [Iter12] for more branches):
//
//	type numbers = anoniter.Iter2[int, *anoniter.RangeIter[int], *anoniter.SliceIter[int]]
//
//	func foo(x int) *numbers {
//		switch x {
//		case 0:
//			return anoniter.Iter2I1[int, *anoniter.RangeIter[int], *anoniter.SliceIter[int]](anoniter.Range(1, 11))
//		default:
//			return anoniter.Iter2I2[int, *anoniter.RangeIter[int], *anoniter.SliceIter[int]](anoniter.Slice([]int{5, 10}))
//		}
//	}
//
// The wrapper dispatches every call to the iterator it holds
// with a switch over its variants.
//
// # Capabilities
//
// All wrappers implement [Iterator].
// The other capabilities are available only if every variant has them:
//
//   - [NextBack2] et al. for [DoubleEndedIterator] variants
//   - [Len2] et al. for [ExactSizeIterator] variants
//   - [Fuse2] et al. for [FusedIterator] variants
//
// These are functions rather than methods
// because a method cannot constrain its receiver's type parameters
// further than the type declaration does.
// Using one with a variant that lacks the capability
// is a compile-time error.
//
// If every variant is a [FullIterator],
// [Full2] et al. return a view of the wrapper
// that has all these capabilities as methods.
// Use it to hold a wrapper inside another wrapper,
// or to pass it where a [DoubleEndedIterator] is expected.
package anoniter

//go:generate go run ./tools/anonitergen --out iter_gen.go --test-out iter_gen_test.go
