// Package split declares the Source interface, comparators, and the
// sentinel errors shared by every source implementation.
package split

import (
	"cmp"
	"errors"
	"math"
)

// Sentinel errors for protocol operations.
var (
	// ErrNilVisit indicates a nil visit callback was passed where one is required.
	ErrNilVisit = errors.New("split: visit function is nil")

	// ErrUnsorted indicates Comparator was requested on a source that does not
	// declare Sorted. Callers must consult Characteristics first; this is a
	// call-site defect, not a recoverable condition.
	ErrUnsorted = errors.New("split: comparator requested without Sorted characteristic")

	// ErrNilIndexFunc indicates Indexed was given a nil index function.
	ErrNilIndexFunc = errors.New("split: index function is nil")

	// ErrNegativeLength indicates Indexed was given a negative length.
	ErrNegativeLength = errors.New("split: negative length")
)

// UnknownSize is the EstimateSize value for sources whose remaining count is
// unknown or unbounded. Sources declaring Sized must never return it.
const UnknownSize int64 = math.MaxInt64

// Comparator reports the order of a relative to b: negative when a sorts
// before b, zero when they are equivalent, positive when a sorts after b.
type Comparator[E any] func(a, b E) int

// NaturalOrder returns the Comparator induced by the type's own ordering.
// Sorted sources that leave their comparator nil mean exactly this ordering.
func NaturalOrder[E cmp.Ordered]() Comparator[E] {
	return cmp.Compare[E]
}

// Source is a cursor over a sequence of elements supporting one-pass
// sequential consumption and recursive range splitting.
//
// A Source is single-owner: its cursor operations are not synchronized and
// must not be invoked concurrently on the same object. TrySplit hands a
// disjoint prefix to a new Source; parent and child thereafter share no
// mutable state and may be driven by separate goroutines, provided the
// underlying element storage is immutable or safe for concurrent reads.
//
// Once an element has been yielded by TryAdvance or ForEachRemaining it is
// never yielded again by the same object. Characteristics returns the same
// value for the object's entire lifetime.
type Source[E any] interface {
	// TryAdvance visits exactly one remaining element and reports true, or
	// reports false without side effects when the source is exhausted.
	// The cursor advances past the selected element before visit runs, so
	// the element is consumed even if visit panics.
	// Returns ErrNilVisit when visit is nil.
	TryAdvance(visit func(E)) (bool, error)

	// ForEachRemaining visits every remaining element in encounter order,
	// equivalent to calling TryAdvance until it reports false.
	// Returns ErrNilVisit when visit is nil.
	ForEachRemaining(visit func(E)) error

	// TrySplit carves a strict, non-overlapping prefix of the remaining
	// elements into a new Source and shrinks the receiver to the suffix.
	// It returns nil when the remainder cannot be usefully divided
	// (conventionally, fewer than two elements remain). A non-nil result
	// always strictly reduces the receiver's remaining count, so repeated
	// splitting terminates.
	TrySplit() Source[E]

	// EstimateSize returns an upper bound on the remaining element count,
	// exact if and only if Sized is declared, UnknownSize when unbounded.
	EstimateSize() int64

	// Characteristics returns the declared guarantee set, constant for the
	// lifetime of this object.
	Characteristics() Characteristics

	// Comparator returns the ordering relation when Sorted is declared;
	// a nil comparator with a nil error means natural ordering.
	// Returns ErrUnsorted when Sorted is not declared.
	Comparator() (Comparator[E], error)
}
