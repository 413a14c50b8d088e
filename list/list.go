// SPDX-License-Identifier: MIT
// Package: lvstl/list
//
// list.go — List type, construction, ownership transfer and teardown.
//
// Lifecycle:
//   • Every constructor allocates the sentinel first; the zero value gets
//     one lazily on first use (as container/list does).
//   • Fill/copy constructors are transactional: if any element fails to
//     construct, every built node and the sentinel are released and no list
//     is returned.
//   • Release is the destructor: idempotent, never fails.

package list

import (
	"fmt"

	"github.com/inconshreveable/log15"
	"github.com/katalvlaran/lvstl/allocator"
	"github.com/katalvlaran/lvstl/construct"
)

// List is a generic circular doubly-linked list with a sentinel node.
//
// The zero value is an empty list ready to use. A List must not be copied
// by value once used; use Clone, Move or Swap.
// List is not safe for concurrent use; callers serialize access.
type List[T any] struct {
	alloc    allocator.Raw[node[T]]
	sentinel *node[T] // end(); nil only for zero-value, moved-from or released lists
	size     int      // maintained at every link/unlink boundary
	log      log15.Logger
}

// New creates an empty list.
// Complexity: O(1).
func New[T any](opts ...Option) *List[T] {
	l := &List[T]{log: newConfig(opts).loggerFor()}
	l.sentinel = l.newSentinel()

	return l
}

// NewN creates a list of n default-constructed values (see
// construct.Construct).
//
// Errors:
//   - ErrBadCount: n < 0.
//   - construct.ErrConstruct (wrapped): an element failed to initialize; no
//     list is returned and nothing is leaked.
//
// Complexity: O(n).
func NewN[T any](n int, opts ...Option) (*List[T], error) {
	return newBuilt(methodNewN, n, func(_ int, p *T) error { return construct.Construct(p) }, opts)
}

// NewFilled creates a list holding n copies of v.
//
// Errors: as NewN; copies are made with construct.ConstructCopy.
// Complexity: O(n).
func NewFilled[T any](n int, v T, opts ...Option) (*List[T], error) {
	return newBuilt(methodNewFilled, n, func(_ int, p *T) error { return construct.ConstructCopy(p, v) }, opts)
}

// Of creates a list from an initializer sequence of values.
// Errors: construct.ErrConstruct (wrapped) when a Copier refuses.
func Of[T any](vals ...T) (*List[T], error) {
	return newBuilt(methodOf, len(vals), func(i int, p *T) error { return construct.ConstructCopy(p, vals[i]) }, nil)
}

// newBuilt is the shared transactional fill path.
//
// Implementation:
//   - Stage 1: Validate the count and allocate the sentinel.
//   - Stage 2: Build the whole chain detached from the ring.
//   - Stage 3: On failure release the sentinel too and report; on success
//     link the chain in one splice and set size.
func newBuilt[T any](method string, n int, build builder[T], opts []Option) (*List[T], error) {
	if n < 0 {
		return nil, wrapErr(method, fmt.Errorf("n=%d: %w", n, ErrBadCount))
	}
	l := New[T](opts...)
	if n == 0 {
		return l, nil
	}

	first, last, err := l.buildChain(n, build)
	if err != nil {
		l.alloc.Deallocate(l.sentinel)
		l.sentinel = nil
		l.logger().Debug("construction rolled back", "op", method, "err", err)
		return nil, wrapErr(method, err)
	}
	linkBefore(l.sentinel, first, last)
	l.size = n

	return l, nil
}

// Clone returns a deep copy of l made element by element with
// construct.ConstructCopy. The clone shares l's logger.
//
// Errors: construct.ErrConstruct (wrapped); nothing is leaked on failure.
// Complexity: O(n).
func (l *List[T]) Clone() (*List[T], error) {
	cp := &List[T]{log: l.log}
	cp.sentinel = cp.newSentinel()
	if l.Empty() {
		return cp, nil
	}

	src := l.sentinel.next
	first, last, err := cp.buildChain(l.size, func(_ int, p *T) error {
		v := src.value
		src = src.next
		return construct.ConstructCopy(p, v)
	})
	if err != nil {
		cp.alloc.Deallocate(cp.sentinel)
		cp.sentinel = nil
		return nil, wrapErr(methodClone, err)
	}
	linkBefore(cp.sentinel, first, last)
	cp.size = l.size

	return cp, nil
}

// Move transfers l's nodes to a new list in O(1).
//
// The returned list adopts l's sentinel, size and logger; l is left empty,
// owning no storage, and stays fully usable (it lazily re-creates a sentinel
// on next use) and releasable.
func (l *List[T]) Move() *List[T] {
	dst := &List[T]{sentinel: l.sentinel, size: l.size, log: l.log}
	l.sentinel = nil
	l.size = 0
	dst.logger().Debug("list moved", "size", dst.size)

	return dst
}

// Release destroys every element, returns the sentinel to the allocator and
// resets l to the zero state. Calling Release twice is harmless.
// Complexity: O(n).
func (l *List[T]) Release() {
	if l.sentinel == nil {
		return
	}
	released := l.size
	l.Clear()
	l.alloc.Deallocate(l.sentinel)
	l.sentinel = nil
	l.size = 0
	l.logger().Debug("list released", "elements", released)
}

// Size returns the number of elements. Complexity: O(1).
func (l *List[T]) Size() int { return l.size }

// Empty reports whether the list holds no elements. Complexity: O(1).
func (l *List[T]) Empty() bool {
	return l.sentinel == nil || l.sentinel.next == l.sentinel
}

// Front returns the first element. Panics with ErrEmptyList when empty.
func (l *List[T]) Front() T {
	if l.Empty() {
		l.violate(methodFront, ErrEmptyList)
	}

	return l.sentinel.next.value
}

// Back returns the last element. Panics with ErrEmptyList when empty.
func (l *List[T]) Back() T {
	if l.Empty() {
		l.violate(methodBack, ErrEmptyList)
	}

	return l.sentinel.prev.value
}

// Begin returns an iterator to the first element (End() when empty).
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{node: l.sentinel.next}
}

// End returns the past-the-end iterator (the sentinel position).
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{node: l.sentinel}
}

// logger never returns nil; zero-value lists log nowhere.
func (l *List[T]) logger() log15.Logger {
	if l.log == nil {
		return discardLogger
	}

	return l.log
}

// violate reports a precondition violation and panics with the wrapped
// sentinel.
func (l *List[T]) violate(method string, sentinel error) {
	err := wrapErr(method, sentinel)
	l.logger().Error("precondition violated", "op", method, "err", err)
	panic(err)
}
