// Package allocator provides the raw storage layer used by lvstl containers.
//
// 🚀 What is allocator?
//
//	A typed, stateless storage source. Raw[T] hands out zeroed blocks that
//	are large enough to hold a T but carry no constructed object, and takes
//	them back. Object lifecycle (construct/destroy) lives in package
//	construct; keeping the two apart lets a container reserve space for a
//	node, try to build the payload, and give the space back untouched when
//	the build fails.
//
// ✨ Key features:
//   - Allocate / AllocateN for one block or n contiguous blocks (nil for n=0)
//   - Deallocate / DeallocateN, both no-ops on nil input
//   - Process-wide counters (Stats) so tests can prove that every rollback
//     path returns what it reserved
//
// ⚙️ Usage:
//
//	var a allocator.Raw[node]
//	p := a.Allocate()
//	// ... construct into *p, or on failure:
//	a.Deallocate(p)
//
// Concurrency:
//
//	Raw[T] is stateless; the counters are atomic. Callers of the storage
//	itself follow the single-owner discipline of the containers built on it.
package allocator
