// SPDX-License-Identifier: MIT
// Package: lvstl/construct
//
// construct.go — in-place construction and destruction primitives.

package construct

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvstl/traits"
)

// ErrConstruct indicates that building a payload value failed.
// The payload's own error is wrapped next to it; use errors.Is for both.
var ErrConstruct = errors.New("construct: payload construction failed")

// Initializer is implemented (usually on *T) by payloads whose default state
// is not their zero value.
type Initializer interface {
	Init() error
}

// Copier is implemented by payloads whose copy is not a plain assignment,
// for example values that own a buffer or may refuse to be copied.
type Copier[T any] interface {
	Copy() (T, error)
}

// Method labels used as error context.
const (
	methodConstruct     = "Construct"
	methodConstructCopy = "ConstructCopy"
	methodConstructWith = "ConstructWith"
)

// constructErr wraps cause with the method context and ErrConstruct.
func constructErr(method string, cause error) error {
	return fmt.Errorf("%s: %w: %w", method, ErrConstruct, cause)
}

// Construct default-initializes a T at p.
//
// Implementation:
//   - Stage 1: Store the zero value.
//   - Stage 2: If *T implements Initializer, run Init.
//   - Stage 3: On failure reset p to zero and return the wrapped error.
//
// Complexity: O(1) plus the cost of Init.
func Construct[T any](p *T) error {
	var zero T
	*p = zero
	if in, ok := any(p).(Initializer); ok {
		if err := in.Init(); err != nil {
			*p = zero
			return constructErr(methodConstruct, err)
		}
	}

	return nil
}

// ConstructCopy copy-initializes a T at p from v.
//
// If T (or *T) implements Copier[T] the copy is produced by Copy; otherwise
// v is assigned. On failure p holds the zero value.
func ConstructCopy[T any](p *T, v T) error {
	var zero T
	c, ok := any(v).(Copier[T])
	if !ok {
		c, ok = any(&v).(Copier[T])
	}
	if !ok {
		*p = v
		return nil
	}

	cp, err := c.Copy()
	if err != nil {
		*p = zero
		return constructErr(methodConstructCopy, err)
	}
	*p = cp

	return nil
}

// ConstructWith builds a T at p from an arbitrary constructor.
//
// The constructor captures whatever arguments the payload needs; its result is
// moved into place without another Copy. A nil ctor falls back to Construct.
func ConstructWith[T any](p *T, ctor func() (T, error)) error {
	if ctor == nil {
		return Construct(p)
	}

	var zero T
	v, err := ctor()
	if err != nil {
		*p = zero
		return constructErr(methodConstructWith, err)
	}
	*p = v

	return nil
}

// Destroy tears down the T at p. Nil p is ignored.
//
// For trivially destructible types this returns immediately; otherwise the
// Destroyer hook is invoked on *T, or on the dynamic value when T is an
// interface type. The storage itself is left for the allocator to scrub.
func Destroy[T any](p *T) {
	if p == nil || traits.TriviallyDestructible[T]() {
		return
	}
	destroyAt(p)
}

// DestroyRange tears down every element of the half-open range s[0:len(s)].
// Complexity: O(1) for trivially destructible T, else O(len(s)).
func DestroyRange[T any](s []T) {
	if len(s) == 0 || traits.TriviallyDestructible[T]() {
		return
	}
	for i := range s {
		destroyAt(&s[i])
	}
}

func destroyAt[T any](p *T) {
	if d, ok := any(p).(traits.Destroyer); ok {
		d.Destroy()
		return
	}
	if d, ok := any(*p).(traits.Destroyer); ok {
		d.Destroy()
	}
}
