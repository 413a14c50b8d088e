// SPDX-License-Identifier: MIT
// Package: lvstl/internal/driver
//
// runner.go — executes scenarios against list.List[int].
//
// Contract:
//   • Every scenario runs on its own list, built from Init and released when
//     the scenario ends, whatever the outcome.
//   • A list precondition violation (pop on empty, erase of end) fails only
//     its scenario: the panic is recovered and reported as ErrOpPanicked.
//   • Each run gets a fresh uuid; every log record of the run carries it.

package driver

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/inconshreveable/log15"
	"github.com/katalvlaran/lvstl/iterator"
	"github.com/katalvlaran/lvstl/list"
)

// Result is the outcome of one scenario.
type Result struct {
	RunID    string
	Scenario string
	Values   []int // final sequence, front to back
	Elapsed  time.Duration
	Err      error
}

// Runner executes scenario files and prints one line per scenario.
type Runner struct {
	log log15.Logger
	out io.Writer
}

// NewRunner returns a Runner logging to lg and printing results to out.
// Panics on nil lg or out.
func NewRunner(lg log15.Logger, out io.Writer) *Runner {
	if lg == nil || out == nil {
		panic("driver: NewRunner requires a logger and a writer")
	}

	return &Runner{log: lg, out: out}
}

// Run executes every scenario of cfg in order. It stops early only when ctx
// is done.
//
// Returns:
//   - the results of the scenarios that ran.
//   - ErrScenarioFailed (wrapped) when any scenario failed, or ctx.Err().
func (r *Runner) Run(ctx context.Context, cfg *Config) ([]Result, error) {
	runID := uuid.NewString()
	lg := r.log.New("run", runID)
	lg.Info("run started", "scenarios", len(cfg.Scenarios))

	results := make([]Result, 0, len(cfg.Scenarios))
	failed := 0
	for _, sc := range cfg.Scenarios {
		if err := ctx.Err(); err != nil {
			lg.Warn("run interrupted", "done", len(results), "err", err)
			return results, fmt.Errorf("Run: %w", err)
		}

		res := r.runScenario(lg, sc)
		res.RunID = runID
		results = append(results, res)
		r.print(res)

		if res.Err != nil {
			failed++
			lg.Error("scenario failed", "scenario", sc.Name, "err", res.Err)
			continue
		}
		lg.Debug("scenario passed", "scenario", sc.Name, "size", len(res.Values), "elapsed", res.Elapsed)
	}

	lg.Info("run finished", "passed", len(results)-failed, "failed", failed)
	if failed > 0 {
		return results, fmt.Errorf("Run: %d of %d: %w", failed, len(results), ErrScenarioFailed)
	}

	return results, nil
}

// runScenario builds the seed list, applies the ops and checks Expect.
func (r *Runner) runScenario(lg log15.Logger, sc Scenario) Result {
	res := Result{Scenario: sc.Name}
	start := time.Now()

	l, err := list.NewFromRange[int](iterator.Begin(sc.Init), iterator.End(sc.Init),
		list.WithLogger(lg), list.WithName(sc.Name))
	if err != nil {
		res.Err = err
		return res
	}
	defer l.Release()

	for i, op := range sc.Ops {
		if err := apply(l, op); err != nil {
			res.Err = fmt.Errorf("op %d (%s): %w", i, op.Op, err)
			break
		}
	}
	res.Elapsed = time.Since(start)
	res.Values = l.Values()

	if res.Err == nil && sc.Expect != nil && !cmp.Equal(sc.Expect, res.Values, cmpopts.EquateEmpty()) {
		res.Err = fmt.Errorf("%w: want %v, got %v", ErrMismatch, sc.Expect, res.Values)
	}

	return res
}

// print writes one line in the form
// "<name>: v0 v1 … \t [size]: n\tTime Cost: s [s]\t<status>".
func (r *Runner) print(res Result) {
	var sb strings.Builder
	for _, v := range res.Values {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte(' ')
	}
	status := "ok"
	if res.Err != nil {
		status = "FAIL: " + res.Err.Error()
	}
	fmt.Fprintf(r.out, "%s: %s\t [size]: %d\tTime Cost: %.6f [s]\t%s\n",
		res.Scenario, sb.String(), len(res.Values), res.Elapsed.Seconds(), status)
}

// apply performs one op on l. Precondition panics are returned as errors.
func apply(l *list.List[int], op Op) (err error) {
	defer func() {
		if p := recover(); p != nil {
			if e, ok := p.(error); ok {
				err = fmt.Errorf("%w: %w", ErrOpPanicked, e)
				return
			}
			err = fmt.Errorf("%w: %v", ErrOpPanicked, p)
		}
	}()

	switch op.Op {
	case "push_back", "push_front", "remove":
		v, err := valueOf(op)
		if err != nil {
			return err
		}
		switch op.Op {
		case "push_back":
			return l.PushBack(v)
		case "push_front":
			return l.PushFront(v)
		default:
			list.Remove(l, v)
			return nil
		}
	case "pop_front":
		l.PopFront()
	case "pop_back":
		l.PopBack()
	case "insert":
		v, err := valueOf(op)
		if err != nil {
			return err
		}
		pos, err := position(l, op.At)
		if err != nil {
			return err
		}
		if op.N > 1 {
			_, err = l.InsertN(pos, op.N, v)
			return err
		}
		_, err = l.Insert(pos, v)
		return err
	case "insert_values":
		pos, err := position(l, op.At)
		if err != nil {
			return err
		}
		_, err = l.InsertValues(pos, op.Values...)
		return err
	case "erase":
		pos, err := position(l, op.At)
		if err != nil {
			return err
		}
		l.Erase(pos)
	case "assign":
		return l.AssignValues(op.Values...)
	case "clear":
		l.Clear()
	case "resize":
		if op.Value != nil {
			return l.ResizeWith(op.N, *op.Value)
		}
		return l.Resize(op.N)
	case "reverse":
		l.Reverse()
	case "sort":
		l.Sort(lessFor(op.Desc))
	case "unique":
		l.Unique(func(a, b int) bool { return a == b })
	case "splice", "merge":
		donor, err := list.Of(op.Values...)
		if err != nil {
			return err
		}
		defer donor.Release()
		if op.Op == "merge" {
			l.Merge(donor, lessFor(op.Desc))
			return nil
		}
		pos, err := position(l, op.At)
		if err != nil {
			return err
		}
		l.Splice(pos, donor)
	default:
		return fmt.Errorf("%q: %w", op.Op, ErrUnknownOp)
	}

	return nil
}

func valueOf(op Op) (int, error) {
	if op.Value == nil {
		return 0, ErrMissingValue
	}

	return *op.Value, nil
}

// position resolves an index (negative counts from the end, -1 = End()).
func position(l *list.List[int], at int) (list.Iterator[int], error) {
	n := l.Size()
	if at < 0 {
		at += n + 1
	}
	if at < 0 || at > n {
		return list.Iterator[int]{}, fmt.Errorf("at=%d size=%d: %w", at, n, ErrPosition)
	}

	return iterator.Advance(l.Begin(), at), nil
}

func lessFor(desc bool) func(a, b int) bool {
	if desc {
		return func(a, b int) bool { return a > b }
	}

	return func(a, b int) bool { return a < b }
}
