// SPDX-License-Identifier: MIT
// Package: lvstl/list
//
// iterator.go — the bidirectional list iterator and the insert-output adapter.

package list

import (
	"fmt"

	"github.com/katalvlaran/lvstl/iterator"
)

// Iterator is a bidirectional cursor over a List. It does not own the node
// it references; it stays valid until that node is erased. Two iterators are
// equal iff they reference the same node.
//
// Iterators are values: Next and Prev return the moved iterator.
type Iterator[T any] struct {
	iterator.BidirectionalTag
	node *node[T]
}

var _ iterator.Bidirectional[Iterator[int]] = Iterator[int]{}

// Next returns the iterator one element forward. From the last element it
// reaches End(); from End() it wraps to the first element.
func (it Iterator[T]) Next() Iterator[T] {
	it.mustAlive()
	return Iterator[T]{node: it.node.next}
}

// Prev returns the iterator one element backward. From End() it reaches the
// last element.
func (it Iterator[T]) Prev() Iterator[T] {
	it.mustAlive()
	return Iterator[T]{node: it.node.prev}
}

// Equal reports whether both iterators reference the same node.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.node == other.node }

// Value returns the referenced element. Panics with ErrInvalidIterator on
// End() or an erased node.
func (it Iterator[T]) Value() T { return *it.Ptr() }

// Ptr returns the address of the referenced element for in-place updates.
// Same preconditions as Value.
func (it Iterator[T]) Ptr() *T {
	it.mustAlive()
	if it.node.sentinel {
		panic(fmt.Errorf("%s: dereference of end position: %w", methodIterator, ErrInvalidIterator))
	}

	return &it.node.value
}

// Set overwrites the referenced element.
func (it Iterator[T]) Set(v T) { *it.Ptr() = v }

// Valid reports whether the iterator references a node that is still linked
// (an element or the sentinel).
func (it Iterator[T]) Valid() bool { return it.node.alive() }

func (it Iterator[T]) mustAlive() {
	if !it.node.alive() {
		panic(fmt.Errorf("%s: %w", methodIterator, ErrInvalidIterator))
	}
}

// Inserter is an output iterator that inserts every value it receives in
// front of a fixed position of a list, preserving arrival order.
type Inserter[T any] struct {
	iterator.OutputTag
	l   *List[T]
	pos Iterator[T]
}

// InserterAt returns an Inserter writing in front of pos.
func (l *List[T]) InserterAt(pos Iterator[T]) *Inserter[T] {
	return &Inserter[T]{l: l, pos: pos}
}

// BackInserter returns an Inserter appending at the end of l.
func (l *List[T]) BackInserter() *Inserter[T] { return l.InserterAt(l.End()) }

// Put inserts a copy of v. On failure the list is unchanged.
func (ins *Inserter[T]) Put(v T) error {
	_, err := ins.l.Insert(ins.pos, v)
	return err
}
