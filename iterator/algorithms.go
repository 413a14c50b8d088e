// SPDX-License-Identifier: MIT
// Package: lvstl/iterator
//
// algorithms.go — Distance, Advance and Copy.
//
// Dispatch:
//   • The generic entry points probe the capability ONCE per call and pick
//     the cheapest valid path.
//   • The typed entry points (DistanceForward, AdvanceBidirectional, ...)
//     are resolved entirely by the compiler.

package iterator

import "fmt"

// Distance RETURNS the number of steps from first to last.
//
// Implementation:
//   - Stage 1: If I is random-access, return last.Sub(first) in O(1).
//   - Stage 2: Otherwise walk first forward until it equals last.
//
// Notes:
//   - last must be reachable from first; otherwise the walk never ends.
//
// Complexity:
//   - Time O(1) for random-access, O(n) otherwise. Space O(1).
func Distance[I Input[I]](first, last I) int {
	if ra, ok := any(last).(RandomAccess[I]); ok {
		return ra.Sub(first)
	}

	return walkDistance(first, last)
}

// DistanceForward is Distance for iterators known to be at most forward.
// Complexity: O(n).
func DistanceForward[I Input[I]](first, last I) int {
	return walkDistance(first, last)
}

// DistanceRandomAccess is Distance for random-access iterators.
// Complexity: O(1).
func DistanceRandomAccess[I RandomAccess[I]](first, last I) int {
	return last.Sub(first)
}

func walkDistance[I Input[I]](first, last I) int {
	n := 0
	for !first.Equal(last) {
		first = first.Next()
		n++
	}

	return n
}

// Advance RETURNS it moved by n steps.
//
// Implementation:
//   - Stage 1: Random-access iterators jump with Add(n).
//   - Stage 2: Bidirectional iterators walk backward when n < 0.
//   - Stage 3: Everything else walks forward; n < 0 panics with
//     ErrBackwardAdvance because the category cannot step back.
//
// Complexity:
//   - Time O(1) for random-access, O(|n|) otherwise. Space O(1).
func Advance[I Input[I]](it I, n int) I {
	if ra, ok := any(it).(RandomAccess[I]); ok {
		return ra.Add(n)
	}
	if n >= 0 {
		return stepForward(it, n)
	}
	if _, ok := any(it).(Bidirectional[I]); !ok {
		panic(fmt.Errorf("Advance(%d) on %s iterator: %w", n, CategoryOf(it), ErrBackwardAdvance))
	}
	for ; n < 0; n++ {
		// The capability was established above; every position of the same
		// iterator type shares it.
		it = any(it).(Bidirectional[I]).Prev()
	}

	return it
}

// AdvanceForward moves a forward-only iterator n >= 0 steps.
func AdvanceForward[I Input[I]](it I, n int) I {
	if n < 0 {
		panic(fmt.Errorf("AdvanceForward(%d): %w", n, ErrBackwardAdvance))
	}

	return stepForward(it, n)
}

// AdvanceBidirectional moves a bidirectional iterator n steps in either
// direction.
func AdvanceBidirectional[I Bidirectional[I]](it I, n int) I {
	for ; n > 0; n-- {
		it = it.Next()
	}
	for ; n < 0; n++ {
		it = it.Prev()
	}

	return it
}

// AdvanceRandomAccess moves a random-access iterator n steps in O(1).
func AdvanceRandomAccess[I RandomAccess[I]](it I, n int) I {
	return it.Add(n)
}

func stepForward[I Input[I]](it I, n int) I {
	for ; n > 0; n-- {
		it = it.Next()
	}

	return it
}

// Copy writes every value of [first, last) to out, in order.
//
// The element type cannot be inferred from the iterator methods, so callers
// name it explicitly: iterator.Copy[int](first, last, out).
//
// Returns:
//   - O: the output iterator after the last write.
//   - error: the first Put failure; values before it have been written.
//
// Complexity: O(n) Put calls.
func Copy[T any, I interface {
	Input[I]
	Reader[T]
}, O Output[T]](first, last I, out O) (O, error) {
	for ; !first.Equal(last); first = first.Next() {
		if err := out.Put(first.Value()); err != nil {
			return out, fmt.Errorf("Copy: %w", err)
		}
	}

	return out, nil
}
