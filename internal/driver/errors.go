// SPDX-License-Identifier: MIT
// Package: lvstl/internal/driver
//
// errors.go — sentinel errors for scenario loading and execution.

package driver

import "errors"

// ErrNoScenarios indicates a scenario file without scenarios.
var ErrNoScenarios = errors.New("driver: no scenarios defined")

// ErrUnknownOp indicates an op name the runner does not implement.
var ErrUnknownOp = errors.New("driver: unknown op")

// ErrMissingValue indicates an op that needs `value` but has none.
var ErrMissingValue = errors.New("driver: op requires a value")

// ErrPosition indicates an `at` index outside the current list.
var ErrPosition = errors.New("driver: position out of range")

// ErrOpPanicked wraps a list precondition violation raised by an op.
var ErrOpPanicked = errors.New("driver: op violated a list precondition")

// ErrMismatch indicates a scenario whose final sequence differs from expect.
var ErrMismatch = errors.New("driver: unexpected sequence")

// ErrLogLevel indicates an unparsable log level.
var ErrLogLevel = errors.New("driver: bad log level")

// ErrScenarioFailed summarizes a run in which at least one scenario failed.
var ErrScenarioFailed = errors.New("driver: scenario failed")
