// Package construct places payload objects into storage obtained from package
// allocator and tears them down again.
//
// Go has no constructors, so the hooks are interfaces:
//
//	Initializer  (*T).Init() error        — default construction
//	Copier[T]    T.Copy() (T, error)      — copy construction
//	traits.Destroyer  Destroy()           — teardown
//
// Types that implement none of them behave like plain values: construction
// is assignment and destruction is a verified no-op.
//
// Construction may fail; failures are returned as errors wrapping
// ErrConstruct together with the payload's own error, and the storage is left
// holding the zero value (never a half-built object). Teardown never fails.
package construct
