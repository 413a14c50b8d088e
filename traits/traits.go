// Package traits answers compile-time-style capability questions about
// payload types. lvstl only needs one: does a type need teardown?
package traits

import (
	"reflect"
	"sync"
)

// Destroyer is implemented by payload types that own something which must be
// released when the value is torn down. Destroy must not fail or panic.
type Destroyer interface {
	Destroy()
}

var (
	destroyerType = reflect.TypeOf((*Destroyer)(nil)).Elem()
	trivialCache  sync.Map // reflect.Type → bool
)

// TriviallyDestructible reports whether values of T need no teardown.
//
// A type is trivially destructible when neither T nor *T implements
// Destroyer. Interface types are never trivial because the dynamic value may
// carry a Destroy method.
//
// Complexity: O(1) amortized (answers are cached per type).
func TriviallyDestructible[T any]() bool {
	return IsTriviallyDestructible(reflect.TypeFor[T]())
}

// IsTriviallyDestructible is the type-erased form of TriviallyDestructible.
// A nil type is reported as trivial.
func IsTriviallyDestructible(t reflect.Type) bool {
	if t == nil {
		return true
	}
	if v, ok := trivialCache.Load(t); ok {
		return v.(bool)
	}

	trivial := t.Kind() != reflect.Interface &&
		!t.Implements(destroyerType) &&
		!reflect.PointerTo(t).Implements(destroyerType)
	trivialCache.Store(t, trivial)

	return trivial
}
