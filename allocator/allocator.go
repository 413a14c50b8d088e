// SPDX-License-Identifier: MIT
// Package: lvstl/allocator
//
// allocator.go — typed raw storage acquisition and release.
//
// Contract:
//   • Allocate never constructs: the block is the zero value of T and no
//     Initializer hook has run on it.
//   • Deallocate never destroys: it only scrubs the block so it stops
//     pinning referenced memory, and records the release.
//   • nil input to Deallocate/DeallocateN is a no-op.

package allocator

// Raw is a stateless storage source for values of type T.
// The zero value is ready to use and Raw[T]{} values are interchangeable.
type Raw[T any] struct{}

// Allocate RETURNS storage for exactly one T.
//
// Implementation:
//   - Stage 1: Reserve one zeroed block.
//   - Stage 2: Record the allocation in the process-wide counters.
//
// Complexity:
//   - Time O(1), Space O(sizeof T).
func (Raw[T]) Allocate() *T {
	p := new(T)
	recordAllocate(1)

	return p
}

// AllocateN RETURNS contiguous storage for n blocks of T, or nil when n <= 0.
//
// Notes:
//   - The returned slice has len == cap == n; its elements are unconstructed.
//
// Complexity:
//   - Time O(n) for zeroing, Space O(n·sizeof T).
func (Raw[T]) AllocateN(n int) []T {
	if n <= 0 {
		return nil
	}
	s := make([]T, n)
	recordAllocate(int64(n))

	return s
}

// Deallocate releases a block obtained from Allocate. A nil p is ignored.
//
// The block is reset to the zero value of T; no teardown hook is invoked.
// Complexity: O(1).
func (Raw[T]) Deallocate(p *T) {
	if p == nil {
		return
	}
	var zero T
	*p = zero
	recordDeallocate(1)
}

// DeallocateN releases storage obtained from AllocateN. A nil s is ignored.
// Complexity: O(len(s)).
func (Raw[T]) DeallocateN(s []T) {
	if s == nil {
		return
	}
	clear(s)
	recordDeallocate(int64(len(s)))
}
