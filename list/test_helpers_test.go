// SPDX-License-Identifier: MIT
// Package list_test contains shared fixtures and assertions for list tests.
//
// Purpose:
//   - Structural invariant checks (ring walk both ways, size, empty).
//   - Payload types with failing copy/init hooks and teardown ledgers.
//   - Allocation-balance checks built on allocator.Stats.
//
// Tests in this package never call t.Parallel: allocator counters are
// process-wide and leak checks compare deltas.

package list_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/inconshreveable/log15"
	"github.com/katalvlaran/lvstl/allocator"
	"github.com/katalvlaran/lvstl/iterator"
	"github.com/katalvlaran/lvstl/list"
	"github.com/stretchr/testify/require"
)

// errTrigger is returned by fragile payloads when their trigger fires.
var errTrigger = errors.New("trigger value")

// ledger counts lifecycle events of fragile payloads.
type ledger struct {
	copies    int // successful copies
	destroyed int // Destroy calls
	failAt    int // 1-based copy attempt that fails; 0 = never
	attempts  int
}

// fragile is a payload whose copy may fail and whose teardown is observable.
type fragile struct {
	V   int
	led *ledger
}

func (f fragile) Copy() (fragile, error) {
	f.led.attempts++
	if f.led.failAt != 0 && f.led.attempts == f.led.failAt {
		return fragile{}, errTrigger
	}
	f.led.copies++

	return fragile{V: f.V, led: f.led}, nil
}

func (f *fragile) Destroy() {
	if f.led != nil {
		f.led.destroyed++
	}
}

// seeded has a non-zero default state and can refuse default construction.
type seeded struct {
	V int
}

// seededBudget limits how many seeded values may be default-constructed;
// negative means unlimited.
var seededBudget = -1

func (s *seeded) Init() error {
	if seededBudget == 0 {
		return errTrigger
	}
	if seededBudget > 0 {
		seededBudget--
	}
	s.V = -1

	return nil
}

// ints builds a list of ints or fails the test.
func ints(t *testing.T, vals ...int) *list.List[int] {
	t.Helper()
	l, err := list.Of(vals...)
	require.NoError(t, err, "Of(%v)", vals)

	return l
}

// MustSequence FAILS the test if l does not read exactly want (front to back).
func MustSequence[T any](t *testing.T, l *list.List[T], want []T, op string) {
	t.Helper()
	got := l.Values()
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("%s: sequence mismatch (-want +got):\n%s", op, diff)
	}
}

// MustRing VERIFIES the structural invariants of l.
//
// Implementation:
//   - Stage 1: Walk Next from Begin to End counting steps.
//   - Stage 2: Walk Prev from End back to Begin counting steps.
//   - Stage 3: Compare both counts, Distance(Begin, End) and Size.
//   - Stage 4: Check Empty ⇔ Begin == End ⇔ Size == 0.
func MustRing[T any](t *testing.T, l *list.List[T], op string) {
	t.Helper()
	begin, end := l.Begin(), l.End()

	forward := 0
	for it := begin; !it.Equal(end); it = it.Next() {
		forward++
		if forward > l.Size() {
			t.Fatalf("%s: forward walk exceeds Size()=%d", op, l.Size())
		}
	}
	backward := 0
	for it := end; !it.Equal(begin); it = it.Prev() {
		backward++
		if backward > l.Size() {
			t.Fatalf("%s: backward walk exceeds Size()=%d", op, l.Size())
		}
	}

	if forward != l.Size() || backward != l.Size() {
		t.Fatalf("%s: forward=%d backward=%d size=%d", op, forward, backward, l.Size())
	}
	if d := iterator.Distance(begin, end); d != l.Size() {
		t.Fatalf("%s: Distance(Begin,End)=%d size=%d", op, d, l.Size())
	}
	if l.Empty() != begin.Equal(end) || l.Empty() != (l.Size() == 0) {
		t.Fatalf("%s: Empty()=%v Begin==End:%v Size=%d", op, l.Empty(), begin.Equal(end), l.Size())
	}
}

// trackAllocs snapshots the allocator counters and registers a cleanup that
// fails the test when the blocks allocated since then are not all returned.
// Lists created inside the test must be released before it ends.
func trackAllocs(t *testing.T) {
	t.Helper()
	before := allocator.Stats()
	t.Cleanup(func() {
		if live := allocator.Stats().Sub(before).Live(); live != 0 {
			t.Errorf("allocator: %d blocks leaked", live)
		}
	})
}

// fragileValues extracts the payload numbers of a fragile list.
func fragileValues(l *list.List[fragile]) []int {
	var out []int
	for v := range l.All() {
		out = append(out, v.V)
	}

	return out
}

// recorder captures log15 records emitted by a list.
type recorder struct {
	logger  log15.Logger
	records []*log15.Record
}

func newRecorder() *recorder {
	r := &recorder{logger: log15.New()}
	r.logger.SetHandler(log15.FuncHandler(func(rec *log15.Record) error {
		r.records = append(r.records, rec)
		return nil
	}))

	return r
}
