// SPDX-License-Identifier: MIT
// Package: lvstl/internal/driver
//
// config.go — YAML scenario files for the lvstl command.
//
// A file names the log settings and a list of scenarios. Each scenario seeds a
// list of ints, applies operations in order and optionally states the
// sequence it expects at the end:
//
//	logLevel: info
//	logFile: ${LVSTL_LOG}
//	scenarios:
//	  - name: push
//	    ops:
//	      - {op: push_back, value: 1}
//	      - {op: push_front, value: 0}
//	    expect: [0, 1]
//
// Environment variables are expanded before decoding.

package driver

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the decoded scenario file.
type Config struct {
	LogLevel  string     `yaml:"logLevel"`
	LogFile   string     `yaml:"logFile"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one independent run on a fresh list.
type Scenario struct {
	Name   string `yaml:"name"`
	Init   []int  `yaml:"init"`
	Ops    []Op   `yaml:"ops"`
	Expect []int  `yaml:"expect"`
}

// Op is one list operation. Which fields matter depends on Op:
//
//	push_back, push_front, remove      value
//	insert                             at, value, n (n copies; default 1)
//	insert_values                      at, values
//	erase                              at
//	resize                             n, value (fill; default zero)
//	sort                               desc
//	splice, merge                      values (the donor list), at (splice)
//	pop_front, pop_back, clear,
//	reverse, unique                    -
//
// Positions are indices into the current list; negative positions count
// from the end, so -1 is the past-the-end position.
type Op struct {
	Op     string `yaml:"op"`
	Value  *int   `yaml:"value"`
	Values []int  `yaml:"values"`
	At     int    `yaml:"at"`
	N      int    `yaml:"n"`
	Desc   bool   `yaml:"desc"`
}

// LoadConfig reads path, expands environment variables and decodes it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes an in-memory scenario file.
//
// Errors:
//   - yaml decoding errors (wrapped).
//   - ErrNoScenarios: the file declares none.
func ParseConfig(data []byte) (*Config, error) {
	content := []byte(os.ExpandEnv(string(data)))

	cfg := &Config{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("ParseConfig: %w", err)
	}
	if len(cfg.Scenarios) == 0 {
		return nil, fmt.Errorf("ParseConfig: %w", ErrNoScenarios)
	}
	for i := range cfg.Scenarios {
		if cfg.Scenarios[i].Name == "" {
			cfg.Scenarios[i].Name = fmt.Sprintf("scenario-%d", i+1)
		}
	}

	return cfg, nil
}
