// SPDX-License-Identifier: MIT
package driver_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/inconshreveable/log15"
	"github.com/katalvlaran/lvstl/allocator"
	"github.com/katalvlaran/lvstl/internal/driver"
	"github.com/katalvlaran/lvstl/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passing = `
scenarios:
  - name: filled
    init: [7, 7, 7]
    expect: [7, 7, 7]
  - name: push
    ops:
      - {op: push_back, value: 1}
      - {op: push_back, value: 2}
      - {op: push_front, value: 0}
    expect: [0, 1, 2]
  - name: erase-begin
    init: [0, 1, 2]
    ops:
      - {op: erase, at: 0}
    expect: [1, 2]
  - name: clear
    init: [5, 6]
    ops:
      - {op: clear}
    expect: []
  - name: mixed
    init: [3, 1, 2]
    ops:
      - {op: insert, at: -1, value: 9, n: 2}
      - {op: insert_values, at: 1, values: [4, 4]}
      - {op: unique}
      - {op: remove, value: 9}
      - {op: sort}
      - {op: merge, values: [0, 5]}
      - {op: splice, at: 1, values: [8]}
      - {op: pop_front}
      - {op: pop_back}
      - {op: reverse}
      - {op: resize, n: 6, value: 7}
      - {op: sort, desc: true}
      - {op: resize, n: 2}
    expect: [8, 7]
  - name: assign
    init: [1]
    ops:
      - {op: assign, values: [2, 3]}
      - {op: insert, at: 1, value: 0}
    expect: [2, 0, 3]
`

const failing = `
scenarios:
  - name: pop-empty
    ops: [{op: pop_back}]
  - name: erase-end
    init: [1]
    ops: [{op: erase, at: -1}]
  - name: wrong
    init: [1]
    expect: [2]
  - name: unknown
    ops: [{op: shuffle}]
  - name: far
    ops: [{op: erase, at: 3}]
  - name: novalue
    ops: [{op: push_back}]
  - name: fine
    init: [1]
    expect: [1]
`

// quietLogger records nothing.
func quietLogger() log15.Logger {
	lg := log15.New()
	lg.SetHandler(log15.DiscardHandler())

	return lg
}

func mustParse(t *testing.T, body string) *driver.Config {
	t.Helper()
	cfg, err := driver.ParseConfig([]byte(body))
	require.NoError(t, err)

	return cfg
}

func TestRun_Passing(t *testing.T) {
	before := allocator.Stats()
	var out bytes.Buffer
	r := driver.NewRunner(quietLogger(), &out)

	results, err := r.Run(context.Background(), mustParse(t, passing))
	require.NoError(t, err)
	require.Len(t, results, 6)

	got := map[string][]int{}
	for _, res := range results {
		require.NoError(t, res.Err, res.Scenario)
		got[res.Scenario] = res.Values
	}
	want := map[string][]int{
		"filled":      {7, 7, 7},
		"push":        {0, 1, 2},
		"erase-begin": {1, 2},
		"clear":       {},
		"mixed":       {8, 7},
		"assign":      {2, 0, 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("results mismatch (-want +got):\n%s", diff)
	}

	_, perr := uuid.Parse(results[0].RunID)
	assert.NoError(t, perr)
	assert.Equal(t, results[0].RunID, results[5].RunID, "one id per run")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "filled: 7 7 7 \t [size]: 3\tTime Cost: "), lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "\tok"), lines[0])

	assert.Zero(t, allocator.Stats().Sub(before).Live(), "every scenario list released")
}

func TestRun_Failures(t *testing.T) {
	before := allocator.Stats()
	var out bytes.Buffer
	r := driver.NewRunner(quietLogger(), &out)

	results, err := r.Run(context.Background(), mustParse(t, failing))
	assert.ErrorIs(t, err, driver.ErrScenarioFailed)
	require.Len(t, results, 7, "a failing scenario does not stop the run")

	byName := map[string]error{}
	for _, res := range results {
		byName[res.Scenario] = res.Err
	}
	assert.ErrorIs(t, byName["pop-empty"], driver.ErrOpPanicked)
	assert.ErrorIs(t, byName["pop-empty"], list.ErrEmptyList)
	assert.ErrorIs(t, byName["erase-end"], list.ErrEraseEnd)
	assert.ErrorIs(t, byName["wrong"], driver.ErrMismatch)
	assert.ErrorIs(t, byName["unknown"], driver.ErrUnknownOp)
	assert.ErrorIs(t, byName["far"], driver.ErrPosition)
	assert.ErrorIs(t, byName["novalue"], driver.ErrMissingValue)
	assert.NoError(t, byName["fine"])

	assert.Contains(t, out.String(), "FAIL: ")
	assert.Zero(t, allocator.Stats().Sub(before).Live(), "failed scenarios leak nothing")
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := driver.NewRunner(quietLogger(), &bytes.Buffer{})
	results, err := r.Run(ctx, mustParse(t, passing))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, results)
}

func TestNewRunner_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { driver.NewRunner(nil, &bytes.Buffer{}) })
	assert.Panics(t, func() { driver.NewRunner(quietLogger(), nil) })
}

func TestNewLogger(t *testing.T) {
	_, err := driver.NewLogger(&bytes.Buffer{}, "loud", "")
	assert.ErrorIs(t, err, driver.ErrLogLevel)

	var buf bytes.Buffer
	file := filepath.Join(t.TempDir(), "run.log")
	lg, err := driver.NewLogger(&buf, "warn", file)
	require.NoError(t, err)

	lg.Info("hidden")
	lg.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "service=lvstl")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=hidden", "the file receives every level")
}
