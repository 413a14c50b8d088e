// Package lvstl is a small generic container toolkit: an explicit storage
// layer, payload lifecycle primitives, an iterator-category system and a
// circular doubly-linked list built on all three.
//
// 🚀 What is lvstl?
//
//	Four layers, each usable on its own:
//		• allocator — raw storage blocks with process-wide accounting
//		• construct — build / copy / destroy payloads in reserved storage
//		• iterator  — category tags, Distance / Advance, Copy, slice cursors
//		• list      — List[T], sentinel ring with transactional inserts
//
// ✨ Why lvstl?
//
//   - Failure-safe – a payload that fails to build never leaks a node
//   - Compile-time capabilities – a forward-only iterator cannot be walked
//     backward by the typed algorithms
//   - Relinking algorithms – splice, merge, sort and reverse move nodes, not
//     values
//
// Layout:
//
//	allocator/       — Raw[T], Stats
//	traits/          — trivially-destructible detection
//	construct/       — Construct, ConstructCopy, ConstructWith, Destroy
//	iterator/        — tags, Distance, Advance, Copy, Contiguous, Appender
//	list/            — List[T], Iterator[T], Inserter[T]
//	internal/driver/ — YAML scenario runner behind cmd/lvstl
//
// Quick ASCII example:
//
//	   ┌─────────────────────────────┐
//	   ▼                             │
//	[end] ⇄ [0] ⇄ [1] ⇄ [2] ⇄────────┘
//
//	a list holding 0 1 2; end() closes the ring.
//
//	go get github.com/katalvlaran/lvstl/list
package lvstl
