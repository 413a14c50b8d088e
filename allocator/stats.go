package allocator

import "sync/atomic"

// Snapshot is a point-in-time copy of the allocator counters.
type Snapshot struct {
	// Allocations counts blocks handed out since process start.
	Allocations int64
	// Deallocations counts blocks returned since process start.
	Deallocations int64
}

// Live reports the number of blocks currently outstanding.
func (s Snapshot) Live() int64 { return s.Allocations - s.Deallocations }

// Sub returns the counter delta s - before; handy for leak checks around
// a single operation.
func (s Snapshot) Sub(before Snapshot) Snapshot {
	return Snapshot{
		Allocations:   s.Allocations - before.Allocations,
		Deallocations: s.Deallocations - before.Deallocations,
	}
}

var (
	allocated   atomic.Int64
	deallocated atomic.Int64
)

// Stats returns the current process-wide allocator counters.
func Stats() Snapshot {
	return Snapshot{
		Allocations:   allocated.Load(),
		Deallocations: deallocated.Load(),
	}
}

func recordAllocate(n int64)   { allocated.Add(n) }
func recordDeallocate(n int64) { deallocated.Add(n) }
