// SPDX-License-Identifier: MIT
// Package: lvstl/internal/driver
//
// logging.go — log15 setup for the lvstl command.

package driver

import (
	"fmt"
	"io"

	"github.com/inconshreveable/log15"
)

// NewLogger builds the command logger: records at or above level go to w in
// logfmt; when file is set every record is also appended there.
// An empty level means info.
func NewLogger(w io.Writer, level, file string) (log15.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := log15.LvlFromString(level)
	if err != nil {
		return nil, fmt.Errorf("NewLogger: %q: %w", level, ErrLogLevel)
	}

	h := log15.LvlFilterHandler(lvl, log15.StreamHandler(w, log15.LogfmtFormat()))
	if file != "" {
		fh, err := log15.FileHandler(file, log15.LogfmtFormat())
		if err != nil {
			return nil, fmt.Errorf("NewLogger: %w", err)
		}
		h = log15.MultiHandler(h, fh)
	}

	lg := log15.New("service", "lvstl")
	lg.SetHandler(h)

	return lg, nil
}
