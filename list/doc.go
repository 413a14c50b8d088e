// Package list provides List[T], a generic circular doubly-linked list built
// on an explicit storage layer.
//
// 🚀 What is list?
//
//	A sequence container with O(1) insertion and removal anywhere, stable
//	iterators, and node-relinking algorithms (splice, merge, sort, reverse)
//	that never copy payloads.
//
//	        ┌──────────────────────────────────────┐
//	        ▼                                      │
//	   [sentinel] ⇄ [e0] ⇄ [e1] ⇄ … ⇄ [e(n-1)] ⇄───┘
//	      end()     begin()
//
//	One sentinel per list closes the ring and marks end(). Empty lists have
//	sentinel.next == sentinel.prev == sentinel.
//
// ✨ Key properties:
//   - Node storage comes from allocator.Raw; payloads are built with package
//     construct. Node creation is two-phase: reserve, build, and give the
//     storage back untouched if the build fails.
//   - Every failing mutation rolls back completely: single-element and batch
//     inserts, fill/copy construction, Resize and Assign all leave the list as
//     it was (or return no list at all).
//   - Size is a running count maintained at every link/unlink boundary.
//   - Erase invalidates only iterators to the erased nodes; using one panics
//     with ErrInvalidIterator instead of reading freed state.
//   - Iterator[T] embeds iterator.BidirectionalTag, so iterator.Distance and
//     iterator.Advance pick the O(n) walking paths for it at compile time.
//
// ⚙️ Usage:
//
//	l, err := list.NewFilled(3, 7)          // [7 7 7]
//	if err != nil { ... }
//	defer l.Release()
//
//	_ = l.PushBack(8)                       // [7 7 7 8]
//	it := l.Begin().Next()
//	l.Erase(it)                             // [7 7 8]
//	l.Sort(func(a, b int) bool { return a > b })
//	for v := range l.All() { fmt.Println(v) }
//
// Errors:
//
//	ErrEmptyList        – Front/Back/PopFront/PopBack on an empty list (panic)
//	ErrEraseEnd         – Erase(End()) (panic)
//	ErrInvalidIterator  – use of an erased iterator or dereference of End() (panic)
//	ErrBadCount         – negative count passed to a fill/resize operation
//	construct.ErrConstruct – wrapped into every payload construction failure
//
// Concurrency:
//
//	None. A List must be accessed by one goroutine at a time; callers that
//	share a list guard every call with their own lock.
package list
