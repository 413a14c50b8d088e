// SPDX-License-Identifier: MIT
// Package: lvstl/iterator
//
// category.go — category tags, the Category enum and capability interfaces.

package iterator

// Category enumerates iterator capabilities. The zero value means "not an
// iterator".
type Category uint8

const (
	// CategoryNone is reported for values that embed no tag.
	CategoryNone Category = iota
	// CategoryInput: single forward step, read-once.
	CategoryInput
	// CategoryOutput: write-only.
	CategoryOutput
	// CategoryForward: refines Input; multi-pass safe.
	CategoryForward
	// CategoryBidirectional: refines Forward; can step backward.
	CategoryBidirectional
	// CategoryRandomAccess: refines Bidirectional; O(1) offset and distance.
	CategoryRandomAccess
)

var categoryNames = [...]string{
	CategoryNone:          "none",
	CategoryInput:         "input",
	CategoryOutput:        "output",
	CategoryForward:       "forward",
	CategoryBidirectional: "bidirectional",
	CategoryRandomAccess:  "random-access",
}

// String returns the lower-case category name.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// Refines reports whether c provides every capability of other.
// Every category refines itself; Output refines only Output.
func (c Category) Refines(other Category) bool {
	if c == CategoryNone || other == CategoryNone {
		return false
	}
	if c == other {
		return true
	}
	if c == CategoryOutput || other == CategoryOutput {
		return false
	}
	// Input < Forward < Bidirectional < RandomAccess share one chain.
	return c > other
}

// InputTag marks single-pass readable iterators.
type InputTag struct{}

func (InputTag) inputTag() {}

// Category returns CategoryInput.
func (InputTag) Category() Category { return CategoryInput }

// OutputTag marks write-only iterators.
type OutputTag struct{}

func (OutputTag) outputTag() {}

// Category returns CategoryOutput.
func (OutputTag) Category() Category { return CategoryOutput }

// ForwardTag marks multi-pass forward iterators.
type ForwardTag struct{ InputTag }

func (ForwardTag) forwardTag() {}

// Category returns CategoryForward.
func (ForwardTag) Category() Category { return CategoryForward }

// BidirectionalTag marks iterators that can also step backward.
type BidirectionalTag struct{ ForwardTag }

func (BidirectionalTag) bidirectionalTag() {}

// Category returns CategoryBidirectional.
func (BidirectionalTag) Category() Category { return CategoryBidirectional }

// RandomAccessTag marks iterators with O(1) offset and distance.
type RandomAccessTag struct{ BidirectionalTag }

func (RandomAccessTag) randomAccessTag() {}

// Category returns CategoryRandomAccess.
func (RandomAccessTag) Category() Category { return CategoryRandomAccess }

// Input is a single-pass cursor. Iterators are values: stepping returns the
// moved iterator and leaves the receiver unchanged.
type Input[I any] interface {
	inputTag()
	// Next returns the iterator one step forward.
	Next() I
	// Equal reports whether both iterators denote the same position.
	Equal(other I) bool
}

// Forward is a multi-pass Input.
type Forward[I any] interface {
	Input[I]
	forwardTag()
}

// Bidirectional is a Forward iterator that can step backward.
type Bidirectional[I any] interface {
	Forward[I]
	bidirectionalTag()
	// Prev returns the iterator one step backward.
	Prev() I
}

// RandomAccess is a Bidirectional iterator with constant-time jumps.
type RandomAccess[I any] interface {
	Bidirectional[I]
	randomAccessTag()
	// Add returns the iterator moved by n positions (n may be negative).
	Add(n int) I
	// Sub returns the signed distance from other to the receiver.
	Sub(other I) int
}

// Output is a write-only sink. Put may fail when writing constructs a value.
type Output[T any] interface {
	outputTag()
	Put(v T) error
}

// Reader is implemented by iterators that can be dereferenced.
type Reader[T any] interface {
	Value() T
}

type (
	inputMarker         interface{ inputTag() }
	outputMarker        interface{ outputTag() }
	forwardMarker       interface{ forwardTag() }
	bidirectionalMarker interface{ bidirectionalTag() }
	randomAccessMarker  interface{ randomAccessTag() }
)

// CategoryOf reports the strongest category embedded in the dynamic type of it.
//
// Implementation:
//   - Stage 1: Probe the marker interfaces from strongest to weakest.
//   - Stage 2: Return CategoryNone when no tag is embedded.
//
// Complexity: O(1).
func CategoryOf(it any) Category {
	switch it.(type) {
	case randomAccessMarker:
		return CategoryRandomAccess
	case bidirectionalMarker:
		return CategoryBidirectional
	case forwardMarker:
		return CategoryForward
	case inputMarker:
		return CategoryInput
	case outputMarker:
		return CategoryOutput
	default:
		return CategoryNone
	}
}
