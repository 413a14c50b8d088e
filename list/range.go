// SPDX-License-Identifier: MIT
// Package: lvstl/list
//
// range.go — operations parameterized by a second type (source iterators,
// comparable payloads) and sequence views. Go methods cannot introduce type
// parameters, so these are package-level functions.

package list

import (
	"iter"

	"github.com/katalvlaran/lvstl/construct"
	"github.com/katalvlaran/lvstl/iterator"
)

// Source is the constraint for range sources: a multi-pass readable
// iterator. Single-pass (input-only) iterators are rejected at compile time
// because the range is counted before it is copied.
type Source[T, I any] interface {
	iterator.Forward[I]
	iterator.Reader[T]
}

// NewFromRange creates a list holding copies of [first, last).
//
// Errors: construct.ErrConstruct (wrapped); nothing is leaked on failure.
// Complexity: O(n), plus O(n) to measure the range unless I is random-access.
func NewFromRange[T any, I Source[T, I]](first, last I, opts ...Option) (*List[T], error) {
	n := iterator.Distance(first, last)
	src := first

	return newBuilt(methodNewFromRange, n, func(_ int, p *T) error {
		v := src.Value()
		src = src.Next()
		return construct.ConstructCopy(p, v)
	}, opts)
}

// InsertRange inserts copies of [first, last) in front of pos as one batch
// and returns an iterator to the first inserted element (pos when the range
// is empty). On failure l is unchanged.
func InsertRange[T any, I Source[T, I]](l *List[T], pos Iterator[T], first, last I) (Iterator[T], error) {
	n := iterator.Distance(first, last)
	src := first

	return l.insertBatch(methodInsertRange, pos, n, func(_ int, p *T) error {
		v := src.Value()
		src = src.Next()
		return construct.ConstructCopy(p, v)
	})
}

// AssignRange replaces the contents of l with copies of [first, last).
// Strong safety: on failure l is unchanged.
func AssignRange[T any, I Source[T, I]](l *List[T], first, last I) error {
	n := iterator.Distance(first, last)
	src := first

	return l.replace(n, func(_ int, p *T) error {
		v := src.Value()
		src = src.Next()
		return construct.ConstructCopy(p, v)
	})
}

// Remove erases every element equal to v and returns how many were erased.
func Remove[T comparable](l *List[T], v T) int {
	return l.RemoveIf(func(x T) bool { return x == v })
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	if a.Size() != b.Size() {
		return false
	}
	if a.Empty() {
		return true
	}
	for x, y := a.sentinel.next, b.sentinel.next; x != a.sentinel; x, y = x.next, y.next {
		if x.value != y.value {
			return false
		}
	}

	return true
}

// All returns a front-to-back sequence of the elements. The list must not be
// modified during iteration except through erasing already-visited elements.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.Empty() {
			return
		}
		for n := l.sentinel.next; n != l.sentinel; {
			next := n.next
			if !yield(n.value) {
				return
			}
			n = next
		}
	}
}

// Backward returns a back-to-front sequence of the elements.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.Empty() {
			return
		}
		for n := l.sentinel.prev; n != l.sentinel; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the elements front to back in a fresh slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for v := range l.All() {
		out = append(out, v)
	}

	return out
}
