// SPDX-License-Identifier: MIT
// Package: lvstl/list
//
// node.go — node storage lifecycle and link surgery.
//
// Invariants:
//   • A linked node has non-nil prev/next pointing into the same ring.
//   • A released node has been scrubbed by the allocator: next == nil marks it
//     dead, which is how iterators detect use-after-erase.
//   • Chains under construction are nil-terminated (last.next == nil) until
//     linkBefore splices them into the ring.

package list

import (
	"fmt"

	"github.com/katalvlaran/lvstl/construct"
)

// node is one storage unit: payload plus ring links.
type node[T any] struct {
	prev, next *node[T]
	sentinel   bool
	value      T
}

// alive reports whether n is still linked into some list.
func (n *node[T]) alive() bool { return n != nil && n.next != nil }

// selfLink closes n onto itself (the empty-ring shape of a sentinel).
func (n *node[T]) selfLink() { n.prev, n.next = n, n }

// builder constructs the i-th payload of a batch into p.
type builder[T any] func(i int, p *T) error

// newSentinel reserves the end-marker node. Its payload is never constructed.
func (l *List[T]) newSentinel() *node[T] {
	s := l.alloc.Allocate()
	s.sentinel = true
	s.selfLink()

	return s
}

// lazyInit gives a zero-value or moved-from list its sentinel.
func (l *List[T]) lazyInit() {
	if l.sentinel == nil {
		l.sentinel = l.newSentinel()
	}
}

// resetSentinel returns the ring to the empty shape.
func (l *List[T]) resetSentinel() { l.sentinel.selfLink() }

// createNode performs the two-phase build: reserve storage, construct the
// payload, and on failure give the storage back without destroying anything.
func (l *List[T]) createNode(build func(p *T) error) (*node[T], error) {
	n := l.alloc.Allocate()
	if err := build(&n.value); err != nil {
		l.alloc.Deallocate(n)
		return nil, err
	}

	return n, nil
}

// destroyNode tears down the payload, then releases the storage.
func (l *List[T]) destroyNode(n *node[T]) {
	construct.Destroy(&n.value)
	l.alloc.Deallocate(n)
}

// buildChain creates count detached nodes linked first→…→last.
//
// Implementation:
//   - Stage 1: Create nodes one by one, appending each to the chain.
//   - Stage 2: On the first failure destroy every node built so far and
//     return the error; nothing outside the chain has been touched.
//
// Complexity: O(count).
func (l *List[T]) buildChain(count int, build builder[T]) (first, last *node[T], err error) {
	for i := 0; i < count; i++ {
		n, err := l.createNode(func(p *T) error { return build(i, p) })
		if err != nil {
			l.destroyChain(first)
			l.logger().Debug("batch rolled back", "built", i, "requested", count, "err", err)
			return nil, nil, fmt.Errorf("element %d: %w", i, err)
		}
		if first == nil {
			first = n
		} else {
			last.next = n
			n.prev = last
		}
		last = n
	}

	return first, last, nil
}

// destroyChain releases a nil-terminated detached chain.
func (l *List[T]) destroyChain(first *node[T]) {
	for n := first; n != nil; {
		next := n.next
		l.destroyNode(n)
		n = next
	}
}

// linkBefore splices the run [first..last] in front of pos.
// Complexity: O(1).
func linkBefore[T any](pos, first, last *node[T]) {
	prev := pos.prev
	prev.next = first
	first.prev = prev
	last.next = pos
	pos.prev = last
}

// unlinkRun detaches the run [first..last] from its ring, joining its
// neighbours. first/last keep their outward pointers until reused.
// Complexity: O(1).
func unlinkRun[T any](first, last *node[T]) {
	first.prev.next = last.next
	last.next.prev = first.prev
}
