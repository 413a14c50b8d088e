// SPDX-License-Identifier: MIT
// Package: lvstl/list
//
// modifiers.go — insert, emplace, erase, clear, resize, assign, swap.
//
// Safety:
//   • Single-element operations are strong: on failure the list is exactly
//     as before the call.
//   • Batch operations (InsertN, InsertValues, InsertRange, Resize, Assign*)
//     build the whole batch off-list and splice it in one step, so a failure
//     unwinds the entire batch and leaves the list unchanged.

package list

import (
	"fmt"

	"github.com/katalvlaran/lvstl/construct"
	"github.com/katalvlaran/lvstl/iterator"
)

// Insert places a copy of v in front of pos and returns an iterator to it.
//
// Errors:
//   - construct.ErrConstruct (wrapped): the copy failed; the list is unchanged.
//
// Complexity: O(1).
func (l *List[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	return l.emplaceAt(methodInsert, pos, func(p *T) error { return construct.ConstructCopy(p, v) })
}

// Emplace builds a new element in front of pos from ctor and returns an
// iterator to it. ctor captures the construction arguments; its result is
// moved into the node without a further copy.
func (l *List[T]) Emplace(pos Iterator[T], ctor func() (T, error)) (Iterator[T], error) {
	return l.emplaceAt(methodEmplace, pos, func(p *T) error { return construct.ConstructWith(p, ctor) })
}

// EmplaceFront builds a new first element from ctor.
func (l *List[T]) EmplaceFront(ctor func() (T, error)) error {
	_, err := l.Emplace(l.Begin(), ctor)
	return err
}

// EmplaceBack builds a new last element from ctor.
func (l *List[T]) EmplaceBack(ctor func() (T, error)) error {
	_, err := l.Emplace(l.End(), ctor)
	return err
}

// PushFront inserts a copy of v at the front.
func (l *List[T]) PushFront(v T) error {
	_, err := l.Insert(l.Begin(), v)
	return err
}

// PushBack inserts a copy of v at the back.
func (l *List[T]) PushBack(v T) error {
	_, err := l.Insert(l.End(), v)
	return err
}

// emplaceAt is the single-node path: build detached, then link and count.
func (l *List[T]) emplaceAt(method string, pos Iterator[T], build func(p *T) error) (Iterator[T], error) {
	l.lazyInit()
	pos.mustAlive()

	n, err := l.createNode(build)
	if err != nil {
		return Iterator[T]{}, wrapErr(method, err)
	}
	linkBefore(pos.node, n, n)
	l.size++

	return Iterator[T]{node: n}, nil
}

// InsertN inserts n copies of v in front of pos as one batch and returns an
// iterator to the first inserted element (pos when n == 0).
//
// Errors:
//   - ErrBadCount: n < 0.
//   - construct.ErrConstruct (wrapped): the batch is unwound; list unchanged.
//
// Complexity: O(n).
func (l *List[T]) InsertN(pos Iterator[T], n int, v T) (Iterator[T], error) {
	return l.insertBatch(methodInsertN, pos, n, func(_ int, p *T) error { return construct.ConstructCopy(p, v) })
}

// InsertValues inserts copies of vals in front of pos, in order, as one batch.
func (l *List[T]) InsertValues(pos Iterator[T], vals ...T) (Iterator[T], error) {
	return l.insertBatch(methodInsertN, pos, len(vals), func(i int, p *T) error { return construct.ConstructCopy(p, vals[i]) })
}

// insertBatch builds count nodes off-list and links them before pos.
func (l *List[T]) insertBatch(method string, pos Iterator[T], count int, build builder[T]) (Iterator[T], error) {
	if count < 0 {
		return pos, wrapErr(method, fmt.Errorf("n=%d: %w", count, ErrBadCount))
	}
	l.lazyInit()
	pos.mustAlive()
	if count == 0 {
		return pos, nil
	}

	first, last, err := l.buildChain(count, build)
	if err != nil {
		return pos, wrapErr(method, err)
	}
	linkBefore(pos.node, first, last)
	l.size += count

	return Iterator[T]{node: first}, nil
}

// Erase removes the element at pos and returns the iterator that followed
// it. Only iterators to the erased element are invalidated.
//
// Panics with ErrEraseEnd for End() and ErrInvalidIterator for an erased pos.
// Complexity: O(1).
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	if !pos.node.alive() {
		l.violate(methodErase, ErrInvalidIterator)
	}
	if pos.node.sentinel {
		l.violate(methodErase, ErrEraseEnd)
	}

	n := pos.node
	next := n.next
	unlinkRun(n, n)
	l.destroyNode(n)
	l.size--
	if l.size == 0 {
		l.resetSentinel()
	}

	return Iterator[T]{node: next}
}

// EraseRange removes [first, last) and returns last.
//
// Implementation:
//   - Stage 1: Detach the whole run from the ring in one O(1) splice.
//   - Stage 2: Destroy and release each detached node, decrementing size.
//   - Stage 3: Reset the sentinel when the list became empty.
//
// Complexity: O(k) for k erased elements.
func (l *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	if first.Equal(last) {
		return last
	}
	if !first.node.alive() || !last.node.alive() {
		l.violate(methodErase, ErrInvalidIterator)
	}
	if first.node.sentinel {
		l.violate(methodErase, ErrEraseEnd)
	}

	unlinkRun(first.node, last.node.prev)
	for n := first.node; n != last.node; {
		next := n.next
		l.destroyNode(n)
		l.size--
		n = next
	}
	if l.size == 0 {
		l.resetSentinel()
	}

	return last
}

// PopFront erases the first element. Panics with ErrEmptyList when empty.
func (l *List[T]) PopFront() {
	if l.Empty() {
		l.violate(methodPopFront, ErrEmptyList)
	}
	l.Erase(l.Begin())
}

// PopBack erases the last element. Panics with ErrEmptyList when empty.
func (l *List[T]) PopBack() {
	if l.Empty() {
		l.violate(methodPopBack, ErrEmptyList)
	}
	l.Erase(l.End().Prev())
}

// Clear destroys every element. The sentinel is kept; a no-op when empty.
// Complexity: O(n).
func (l *List[T]) Clear() {
	if l.Empty() {
		return
	}
	for n := l.sentinel.next; n != l.sentinel; {
		next := n.next
		l.destroyNode(n)
		n = next
	}
	l.resetSentinel()
	l.size = 0
}

// Swap exchanges the contents of l and other in O(1). Loggers stay put.
func (l *List[T]) Swap(other *List[T]) {
	l.sentinel, other.sentinel = other.sentinel, l.sentinel
	l.size, other.size = other.size, l.size
}

// Resize grows l with default-constructed elements or shrinks it by erasing
// from the back until Size() == n.
//
// Errors:
//   - ErrBadCount: n < 0.
//   - construct.ErrConstruct (wrapped): growth failed; list unchanged.
//
// Complexity: O(|n - Size()|) plus the walk to the cut point when shrinking.
func (l *List[T]) Resize(n int) error {
	return l.resize(n, func(_ int, p *T) error { return construct.Construct(p) })
}

// ResizeWith is Resize with copies of v as the fill value.
func (l *List[T]) ResizeWith(n int, v T) error {
	return l.resize(n, func(_ int, p *T) error { return construct.ConstructCopy(p, v) })
}

func (l *List[T]) resize(n int, build builder[T]) error {
	if n < 0 {
		return wrapErr(methodResize, fmt.Errorf("n=%d: %w", n, ErrBadCount))
	}
	switch {
	case n < l.size:
		l.EraseRange(l.at(n), l.End())
	case n > l.size:
		if _, err := l.insertBatch(methodResize, l.End(), n-l.size, build); err != nil {
			return err
		}
	}

	return nil
}

// at returns the iterator to index i (End() for i == size), walking from the
// nearer end.
func (l *List[T]) at(i int) Iterator[T] {
	if i <= l.size/2 {
		return iterator.AdvanceBidirectional(l.Begin(), i)
	}

	return iterator.AdvanceBidirectional(l.End(), i-l.size)
}

// Assign replaces the contents of l with copies of other's elements.
// Strong safety: the copy is built first; on failure l is unchanged.
// Self-assignment is a no-op.
func (l *List[T]) Assign(other *List[T]) error {
	if other == l {
		return nil
	}
	var src *node[T]
	if !other.Empty() {
		src = other.sentinel.next
	}

	return l.replace(other.Size(), func(_ int, p *T) error {
		v := src.value
		src = src.next
		return construct.ConstructCopy(p, v)
	})
}

// AssignN replaces the contents of l with n copies of v.
func (l *List[T]) AssignN(n int, v T) error {
	if n < 0 {
		return wrapErr(methodAssign, fmt.Errorf("n=%d: %w", n, ErrBadCount))
	}

	return l.replace(n, func(_ int, p *T) error { return construct.ConstructCopy(p, v) })
}

// AssignValues replaces the contents of l with copies of vals.
func (l *List[T]) AssignValues(vals ...T) error {
	return l.replace(len(vals), func(i int, p *T) error { return construct.ConstructCopy(p, vals[i]) })
}

// replace builds the new contents detached, then clears and links them.
func (l *List[T]) replace(count int, build builder[T]) error {
	l.lazyInit()
	var first, last *node[T]
	if count > 0 {
		var err error
		if first, last, err = l.buildChain(count, build); err != nil {
			return wrapErr(methodAssign, err)
		}
	}

	l.Clear()
	if count > 0 {
		linkBefore(l.sentinel, first, last)
		l.size = count
	}

	return nil
}
