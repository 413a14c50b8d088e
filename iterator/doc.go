// Package iterator defines the iterator-category lattice used by lvstl and the
// Distance/Advance algorithms that dispatch on it.
//
// 🚀 Categories
//
//	InputTag ── ForwardTag ── BidirectionalTag ── RandomAccessTag
//	OutputTag (separate, refines nothing)
//
// Each tag is a zero-size struct. An iterator type declares its category by
// embedding the tag:
//
//	type Iterator[T any] struct {
//		iterator.BidirectionalTag
//		node *node[T]
//	}
//
// The tags carry unexported marker methods, and the capability interfaces
// (Input, Forward, Bidirectional, RandomAccess, Output) require them, so only
// a type that embeds the right tag satisfies the interface. The lattice is
// therefore enforced by the compiler: a ForwardTag iterator can never be
// passed where Bidirectional is required.
//
// ✨ Algorithms
//
//	Distance(first, last)  O(1) for random-access, O(n) otherwise
//	Advance(it, n)         O(1) for random-access, O(|n|) otherwise;
//	                       n < 0 needs at least Bidirectional
//	Copy(first, last, out) copies a readable range into an Output iterator
//
// The capability check happens once per call. Callers that know their
// iterator type statically can use the typed entry points
// (DistanceRandomAccess, AdvanceBidirectional, ...) and skip it entirely.
//
// Contiguous[T] is the random-access cursor over slice storage; it plays the
// role of a raw address into an array: position and distance are plain index
// arithmetic.
package iterator
