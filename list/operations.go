// SPDX-License-Identifier: MIT
// Package: lvstl/list
//
// operations.go — list algorithms that relink nodes instead of copying
// payloads: Splice*, RemoveIf, Unique, Merge, Sort, Reverse.
//
// Invariants:
//   • No payload is constructed, copied or destroyed by Splice*, Merge, Sort
//     or Reverse; nodes keep their identity, so iterators to moved elements
//     stay valid (they now walk the destination list).
//   • Sizes of both lists are exact after every transfer.

package list

// transfer moves the run [first, last) of src, holding n elements, in front
// of pos in l.
func (l *List[T]) transfer(pos *node[T], src *List[T], first, last *node[T], n int) {
	tail := last.prev
	unlinkRun(first, tail)
	linkBefore(pos, first, tail)
	if src != l {
		src.size -= n
		l.size += n
		if src.size == 0 {
			src.resetSentinel()
		}
	}
}

// Splice moves every element of other in front of pos in O(1).
// other is left empty. Splicing a list into itself is a no-op.
func (l *List[T]) Splice(pos Iterator[T], other *List[T]) {
	if other == l || other.Empty() {
		return
	}
	l.lazyInit()
	pos.mustAlive()
	l.transfer(pos.node, other, other.sentinel.next, other.sentinel, other.size)
}

// SpliceOne moves the element at it (which belongs to other) in front of pos
// in O(1). other may be l itself.
func (l *List[T]) SpliceOne(pos Iterator[T], other *List[T], it Iterator[T]) {
	it.mustAlive()
	if it.node.sentinel {
		other.violate("SpliceOne", ErrEraseEnd)
	}
	l.lazyInit()
	pos.mustAlive()
	if pos.node == it.node || pos.node == it.node.next {
		return
	}
	l.transfer(pos.node, other, it.node, it.node.next, 1)
}

// SpliceRange moves [first, last) of other in front of pos.
//
// pos must not lie inside [first, last) when other == l.
//
// Complexity: O(1) within one list; O(k) across lists, k = moved elements,
// because both sizes are kept exact.
func (l *List[T]) SpliceRange(pos Iterator[T], other *List[T], first, last Iterator[T]) {
	if first.Equal(last) {
		return
	}
	first.mustAlive()
	last.mustAlive()
	l.lazyInit()
	pos.mustAlive()

	n := 0
	if other != l {
		n = countRun(first.node, last.node)
	}
	l.transfer(pos.node, other, first.node, last.node, n)
}

// countRun counts the nodes of [first, last).
func countRun[T any](first, last *node[T]) int {
	n := 0
	for ; first != last; first = first.next {
		n++
	}

	return n
}

// RemoveIf erases every element for which pred returns true, preserving the
// order of the survivors, and returns how many were erased.
// Complexity: O(n).
func (l *List[T]) RemoveIf(pred func(T) bool) int {
	if l.Empty() {
		return 0
	}
	removed := 0
	for it, end := l.Begin(), l.End(); !it.Equal(end); {
		if pred(it.node.value) {
			it = l.Erase(it)
			removed++
			continue
		}
		it = it.Next()
	}

	return removed
}

// Unique erases every element equal (by eq) to its predecessor and returns
// how many were erased. Complexity: O(n).
func (l *List[T]) Unique(eq func(a, b T) bool) int {
	if l.size < 2 {
		return 0
	}
	removed := 0
	prev := l.sentinel.next
	for n := prev.next; n != l.sentinel; {
		next := n.next
		if eq(prev.value, n.value) {
			l.Erase(Iterator[T]{node: n})
			removed++
		} else {
			prev = n
		}
		n = next
	}

	return removed
}

// Merge moves every element of other into l, which must both be sorted by
// less, producing one sorted list. Elements of l precede equal elements of
// other (stable). other is left empty. Merging a list with itself is a no-op.
//
// Implementation:
//   - Stage 1: Walk both lists; whenever other's head sorts strictly before
//     the current l node, relink it in front of that node.
//   - Stage 2: Append what remains of other in one splice.
//
// Complexity: O(len(l) + len(other)) comparisons, no payload copies.
func (l *List[T]) Merge(other *List[T], less func(a, b T) bool) {
	if other == l || other.Empty() {
		return
	}
	l.lazyInit()

	a := l.sentinel.next
	for a != l.sentinel && !other.Empty() {
		b := other.sentinel.next
		if less(b.value, a.value) {
			l.transfer(a, other, b, b.next, 1)
			continue
		}
		a = a.next
	}
	if !other.Empty() {
		l.transfer(l.sentinel, other, other.sentinel.next, other.sentinel, other.size)
	}
}

// Sort orders l by less with a stable merge sort that only relinks nodes.
// Complexity: O(n log n) comparisons, O(log n) temporary sentinels.
func (l *List[T]) Sort(less func(a, b T) bool) {
	if l.size < 2 {
		return
	}

	var right List[T]
	right.lazyInit()
	mid := l.at(l.size / 2)
	right.transfer(right.sentinel, l, mid.node, l.sentinel, l.size-l.size/2)

	l.Sort(less)
	right.Sort(less)
	l.Merge(&right, less)
	right.Release()
}

// Reverse inverts the order of l by swapping every node's links, the
// sentinel included. Complexity: O(n), no payload copies.
func (l *List[T]) Reverse() {
	if l.size < 2 {
		return
	}
	n := l.sentinel
	for {
		n.prev, n.next = n.next, n.prev
		n = n.prev
		if n == l.sentinel {
			return
		}
	}
}
