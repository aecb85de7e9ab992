// Package splittest declares the producer contract, harness options, and
// error definitions for split.Source conformance checking.
package splittest

import (
	"errors"

	"github.com/stretchr/testify/assert"

	"github.com/lowasser/splitsource/split"
)

// Sentinel errors classifying conformance failures.
var (
	// ErrNilProducer is returned when a nil Producer is passed to the harness.
	ErrNilProducer = errors.New("splittest: producer is nil")

	// ErrNilSource is returned when a Producer yields a nil source.
	ErrNilSource = errors.New("splittest: producer returned a nil source")

	// ErrElementMismatch indicates a strategy's visited multiset differs from
	// the expected elements.
	ErrElementMismatch = errors.New("splittest: element multiset mismatch")

	// ErrOrderMismatch indicates a strategy's visited sequence differs from
	// the defined iteration order of an Ordered source.
	ErrOrderMismatch = errors.New("splittest: encounter order mismatch")

	// ErrNotSorted indicates a Sorted source yielded a decreasing sequence.
	ErrNotSorted = errors.New("splittest: sequence not non-decreasing")

	// ErrComparatorMissing indicates a Sorted source exposed no comparator
	// and no fallback was configured; fix with WithFallbackComparator.
	ErrComparatorMissing = errors.New("splittest: no comparator available for Sorted source")

	// ErrComparatorState indicates Comparator() misbehaved: it failed on a
	// Sorted source, or did not fail with split.ErrUnsorted on an unsorted one.
	ErrComparatorState = errors.New("splittest: comparator state contract violated")

	// ErrSizeMismatch indicates EstimateSize disagreed with the reference
	// count, or split sizes failed to sum under Subsized.
	ErrSizeMismatch = errors.New("splittest: size mismatch")

	// ErrCharacteristicConflict indicates a declared characteristic that the
	// reference collection's features contradict.
	ErrCharacteristicConflict = errors.New("splittest: characteristic conflicts with collection features")
)

// Features describes what the reference collection is known to permit.
// The harness cross-checks characteristic declarations against these.
type Features struct {
	// AllowsNull reports that the collection accepts nil elements.
	AllowsNull bool

	// SupportsAdd reports that the collection supports element addition.
	SupportsAdd bool

	// SupportsRemove reports that the collection supports element removal.
	SupportsRemove bool
}

// Producer binds the harness to a collection under test.
//
// Source must return a fresh split.Source reflecting the collection's
// contents at call time; the harness calls it once per strategy per check so
// no two decompositions ever share cursor state.
type Producer[E any] interface {
	// Source returns a new, untouched source over the current contents.
	Source() split.Source[E]

	// Elements returns the expected element multiset, in any order.
	Elements() []E

	// OrderedElements returns the expected elements in the collection's
	// defined iteration order, compared exactly when Ordered is declared.
	OrderedElements() []E

	// NumElements returns the exact element count.
	NumElements() int

	// Features reports what the collection permits.
	Features() Features
}

// SliceCollection is a reference Producer over a slice: iteration order is
// index order, the source is built with split.Slice, and Chars/Cmp/Feats are
// passed straight through. Useful as a harness fixture and as a template for
// real producers.
type SliceCollection[E any] struct {
	// Items holds the collection contents in iteration order.
	Items []E

	// Chars is the characteristic set the source declares, in addition to
	// the Ordered|Sized|Subsized that split.Slice always adds.
	Chars split.Characteristics

	// Cmp is the comparator exposed when Chars includes Sorted; nil means
	// natural ordering.
	Cmp split.Comparator[E]

	// Feats describes what the collection permits.
	Feats Features
}

// Source returns a fresh slice-backed source over Items.
func (c *SliceCollection[E]) Source() split.Source[E] {
	return split.Slice(c.Items, c.Chars, split.WithComparator(c.Cmp))
}

// Elements returns the expected multiset (a copy of Items).
func (c *SliceCollection[E]) Elements() []E {
	return append([]E(nil), c.Items...)
}

// OrderedElements returns the defined iteration order (a copy of Items).
func (c *SliceCollection[E]) OrderedElements() []E {
	return append([]E(nil), c.Items...)
}

// NumElements returns len(Items).
func (c *SliceCollection[E]) NumElements() int {
	return len(c.Items)
}

// Features reports the configured feature set.
func (c *SliceCollection[E]) Features() Features {
	return c.Feats
}

// Option configures harness behavior via functional arguments.
type Option[E any] func(*config[E])

// config holds resolved harness settings.
type config[E any] struct {
	equal    func(a, b E) bool
	fallback split.Comparator[E]
}

// newConfig applies opts over the defaults: deep-equality element comparison
// and no fallback comparator.
func newConfig[E any](opts ...Option[E]) config[E] {
	cfg := config[E]{
		equal: func(a, b E) bool { return assert.ObjectsAreEqual(a, b) },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithEqual overrides element equality for multiset and order comparison.
// A nil eq is ignored.
func WithEqual[E any](eq func(a, b E) bool) Option[E] {
	return func(cfg *config[E]) {
		if eq != nil {
			cfg.equal = eq
		}
	}
}

// WithFallbackComparator supplies the ordering used by the Sorted check when
// the source declares Sorted but exposes a nil comparator (natural ordering).
// A nil cmp is ignored.
func WithFallbackComparator[E any](cmp split.Comparator[E]) Option[E] {
	return func(cfg *config[E]) {
		if cmp != nil {
			cfg.fallback = cmp
		}
	}
}
