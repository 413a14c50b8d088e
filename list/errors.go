// SPDX-License-Identifier: MIT
// Package: lvstl/list
//
// errors.go — sentinel errors for the list package.
//
// Error policy:
//   • Construction failures are RETURNED: they wrap construct.ErrConstruct
//     (and the payload's own error) with method context via %w.
//   • Precondition violations PANIC with a wrapped sentinel below; they are
//     programmer errors, not recoverable conditions.
//   • Callers branch with errors.Is, never on message text.

package list

import (
	"errors"
	"fmt"
)

// ErrEmptyList is the panic value for Front/Back/PopFront/PopBack on an
// empty list.
var ErrEmptyList = errors.New("list: empty list")

// ErrEraseEnd is the panic value for Erase(End()).
var ErrEraseEnd = errors.New("list: erase of end position")

// ErrInvalidIterator is the panic value for using an iterator whose node has
// been erased (or a zero Iterator), and for dereferencing End().
var ErrInvalidIterator = errors.New("list: iterator does not reference a live element")

// ErrBadCount is returned when a negative element count is requested.
var ErrBadCount = errors.New("list: negative element count")

// Method labels used as error and log context.
const (
	methodNewN         = "NewN"
	methodNewFilled    = "NewFilled"
	methodNewFromRange = "NewFromRange"
	methodOf           = "Of"
	methodClone        = "Clone"
	methodInsert       = "Insert"
	methodInsertN      = "InsertN"
	methodInsertRange  = "InsertRange"
	methodEmplace      = "Emplace"
	methodAssign       = "Assign"
	methodResize       = "Resize"
	methodFront        = "Front"
	methodBack         = "Back"
	methodPopFront     = "PopFront"
	methodPopBack      = "PopBack"
	methodErase        = "Erase"
	methodIterator     = "Iterator"
)

// wrapErr attaches method context to err, preserving it for errors.Is.
func wrapErr(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
