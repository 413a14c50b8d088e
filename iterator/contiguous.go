// SPDX-License-Identifier: MIT
// Package: lvstl/iterator
//
// contiguous.go — random-access cursor and append sink over slices.

package iterator

// Contiguous is a random-access cursor over slice storage, the analogue of a
// raw address into an array. Position and distance are index arithmetic.
//
// Two Contiguous values are only comparable when they were derived from the
// same slice; Equal compares positions.
type Contiguous[T any] struct {
	RandomAccessTag
	s []T
	i int
}

// Begin returns a cursor at s[0].
func Begin[T any](s []T) Contiguous[T] { return Contiguous[T]{s: s} }

// End returns the cursor one past the last element of s.
func End[T any](s []T) Contiguous[T] { return Contiguous[T]{s: s, i: len(s)} }

// Next returns the cursor one element forward.
func (c Contiguous[T]) Next() Contiguous[T] { c.i++; return c }

// Prev returns the cursor one element backward.
func (c Contiguous[T]) Prev() Contiguous[T] { c.i--; return c }

// Add returns the cursor moved by n elements.
func (c Contiguous[T]) Add(n int) Contiguous[T] { c.i += n; return c }

// Sub returns c's index minus other's index.
func (c Contiguous[T]) Sub(other Contiguous[T]) int { return c.i - other.i }

// Equal reports whether both cursors address the same index.
func (c Contiguous[T]) Equal(other Contiguous[T]) bool { return c.i == other.i }

// Index returns the cursor position.
func (c Contiguous[T]) Index() int { return c.i }

// Value returns the element under the cursor. Panics outside [0, len).
func (c Contiguous[T]) Value() T { return c.s[c.i] }

// Ptr returns the address of the element under the cursor.
func (c Contiguous[T]) Ptr() *T { return &c.s[c.i] }

// Set overwrites the element under the cursor.
func (c Contiguous[T]) Set(v T) { c.s[c.i] = v }

// Appender is an Output iterator that appends to a slice.
type Appender[T any] struct {
	OutputTag
	dst *[]T
}

// AppendTo returns an Appender writing to *dst.
func AppendTo[T any](dst *[]T) *Appender[T] { return &Appender[T]{dst: dst} }

// Put appends v; it never fails.
func (a *Appender[T]) Put(v T) error {
	*a.dst = append(*a.dst, v)
	return nil
}
