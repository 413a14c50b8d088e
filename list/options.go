// SPDX-License-Identifier: MIT
// Package: lvstl/list
//
// options.go — functional options for list constructors.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless input (nil
//     logger); list operations themselves only panic on precondition
//     violations.
//   • Defaults: a logger that discards everything, no name.

package list

import "github.com/inconshreveable/log15"

// Option customizes a list at construction time.
type Option func(*config)

// config aggregates the knobs applied by options.
type config struct {
	logger log15.Logger
	name   string
}

// WithLogger routes lifecycle events (rollback, move, release) to lg at
// debug level and precondition violations at error level.
// Panics on nil.
func WithLogger(lg log15.Logger) Option {
	if lg == nil {
		panic("list: WithLogger(nil)")
	}
	return func(c *config) { c.logger = lg }
}

// WithName tags every log record of the list with name=<name>.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// discardLogger is shared by every list built without WithLogger.
var discardLogger = newDiscardLogger()

func newDiscardLogger() log15.Logger {
	lg := log15.New("pkg", "list")
	lg.SetHandler(log15.DiscardHandler())

	return lg
}

// newConfig applies opts in order (later overrides earlier).
func newConfig(opts []Option) config {
	c := config{logger: discardLogger}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// loggerFor derives the per-list logger from the resolved config.
func (c config) loggerFor() log15.Logger {
	if c.name == "" {
		return c.logger
	}

	return c.logger.New("list", c.name)
}
