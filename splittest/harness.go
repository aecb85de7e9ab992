// Package splittest implements the conformance checks and the two drivers
// (Run for *testing.T, Check for error values) that execute them.
package splittest

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lowasser/splitsource/split"
)

// conformanceCheck is one row of the predicate-gated registration table:
// a named check enabled by the producer's characteristics, features, and
// size, producing nil or a failure describing the divergence.
type conformanceCheck struct {
	name    string
	enabled bool
	run     func() error
}

// buildChecks assembles the registration table for p. Characteristics are
// probed from a throwaway source; Source is called afresh inside each check
// so no two decompositions share cursor state.
func buildChecks[E any](p Producer[E], cfg config[E]) []conformanceCheck {
	chars := p.Source().Characteristics()
	feats := p.Features()
	size := p.NumElements()

	return []conformanceCheck{
		{"Elements", true,
			func() error { return checkElements(p, cfg) }},
		{"KnownOrder", chars.Has(split.Ordered),
			func() error { return checkKnownOrder(p, cfg) }},
		{"Sorted", chars.Has(split.Sorted),
			func() error { return checkSorted(p, cfg) }},
		{"ComparatorUnsorted", !chars.Has(split.Sorted),
			func() error { return checkComparatorUnsorted(p) }},
		{"EstimateSize", chars.Has(split.Sized),
			func() error { return checkEstimateSize(p, chars) }},
		{"Nullable", feats.AllowsNull && size > 0,
			func() error { return checkAbsent(chars, split.NonNull, "collection allows nil elements") }},
		{"NotImmutableAdd", feats.SupportsAdd,
			func() error { return checkAbsent(chars, split.Immutable, "collection supports add") }},
		{"NotImmutableRemove", feats.SupportsRemove,
			func() error { return checkAbsent(chars, split.Immutable, "collection supports remove") }},
	}
}

// Run executes every applicable conformance check against p as a subtest of
// t. Subtest names match the check names documented in the package comment.
func Run[E any](t *testing.T, p Producer[E], opts ...Option[E]) {
	t.Helper()
	if err := validate(p); err != nil {
		t.Fatal(err)
	}
	cfg := newConfig(opts...)
	for _, c := range buildChecks(p, cfg) {
		if !c.enabled {
			continue
		}
		t.Run(c.name, func(t *testing.T) {
			if err := c.run(); err != nil {
				t.Error(err)
			}
		})
	}
}

// Check executes every applicable conformance check against p and returns
// the failures joined, or nil when p conforms. Use errors.Is with the
// package sentinels to match a defect class.
func Check[E any](p Producer[E], opts ...Option[E]) error {
	if err := validate(p); err != nil {
		return err
	}
	cfg := newConfig(opts...)
	var errs []error
	for _, c := range buildChecks(p, cfg) {
		if !c.enabled {
			continue
		}
		if err := c.run(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
		}
	}

	return errors.Join(errs...)
}

// validate rejects nil producers and producers yielding nil sources.
func validate[E any](p Producer[E]) error {
	if p == nil {
		return ErrNilProducer
	}
	if p.Source() == nil {
		return ErrNilSource
	}

	return nil
}

// checkElements drains a fresh source under every strategy and compares the
// visited multiset against Elements(), ignoring order.
func checkElements[E any](p Producer[E], cfg config[E]) error {
	expected := p.Elements()
	for _, st := range split.Strategies() {
		got, err := split.Collect(st, p.Source())
		if err != nil {
			return fmt.Errorf("splittest: strategy %s: %w", st, err)
		}
		if !sameMultiset(expected, got, cfg.equal) {
			return fmt.Errorf("%w: strategy %s: expected %v, actual %v",
				ErrElementMismatch, st, expected, got)
		}
	}

	return nil
}

// checkKnownOrder drains a fresh source under every strategy and compares
// the visited sequence exactly against OrderedElements().
func checkKnownOrder[E any](p Producer[E], cfg config[E]) error {
	expected := p.OrderedElements()
	for _, st := range split.Strategies() {
		got, err := split.Collect(st, p.Source())
		if err != nil {
			return fmt.Errorf("splittest: strategy %s: %w", st, err)
		}
		if i := firstDivergence(expected, got, cfg.equal); i >= 0 {
			return fmt.Errorf("%w: strategy %s: diverges at index %d: expected %v, actual %v",
				ErrOrderMismatch, st, i, expected, got)
		}
	}

	return nil
}

// checkSorted verifies that every strategy visits a non-decreasing sequence
// under the source's comparator, falling back to cfg.fallback when the
// source leaves its comparator nil.
func checkSorted[E any](p Producer[E], cfg config[E]) error {
	for _, st := range split.Strategies() {
		src := p.Source()
		cmp, err := src.Comparator()
		if err != nil {
			return fmt.Errorf("%w: Comparator() failed on a Sorted source: %v", ErrComparatorState, err)
		}
		if cmp == nil {
			cmp = cfg.fallback
		}
		if cmp == nil {
			return ErrComparatorMissing
		}
		got, err := split.Collect(st, src)
		if err != nil {
			return fmt.Errorf("splittest: strategy %s: %w", st, err)
		}
		for i := 1; i < len(got); i++ {
			if cmp(got[i-1], got[i]) > 0 {
				return fmt.Errorf("%w: strategy %s: %v sorts after %v at index %d in %v",
					ErrNotSorted, st, got[i-1], got[i], i, got)
			}
		}
	}

	return nil
}

// checkComparatorUnsorted verifies that Comparator() fails with
// split.ErrUnsorted when Sorted is not declared.
func checkComparatorUnsorted[E any](p Producer[E]) error {
	_, err := p.Source().Comparator()
	if !errors.Is(err, split.ErrUnsorted) {
		return fmt.Errorf("%w: Comparator() on an unsorted source returned %v, expected split.ErrUnsorted",
			ErrComparatorState, err)
	}

	return nil
}

// checkEstimateSize verifies the exact pre-split size, and with Subsized,
// that prefix and remainder sizes sum to the pre-split size after one split.
func checkEstimateSize[E any](p Producer[E], chars split.Characteristics) error {
	src := p.Source()
	want := int64(p.NumElements())
	if got := src.EstimateSize(); got != want {
		return fmt.Errorf("%w: EstimateSize() = %d, reference count = %d", ErrSizeMismatch, got, want)
	}
	if !chars.Has(split.Subsized) {
		return nil
	}
	var prefixSize int64
	if prefix := src.TrySplit(); prefix != nil {
		prefixSize = prefix.EstimateSize()
	}
	if sum := prefixSize + src.EstimateSize(); sum != want {
		return fmt.Errorf("%w: after one split, prefix %d + remainder %d = %d, reference count = %d",
			ErrSizeMismatch, prefixSize, sum-prefixSize, sum, want)
	}

	return nil
}

// checkAbsent fails when flag is declared despite the stated feature.
func checkAbsent(chars, flag split.Characteristics, feature string) error {
	if chars.Has(flag) {
		return fmt.Errorf("%w: %s declared but %s", ErrCharacteristicConflict, flag, feature)
	}

	return nil
}

// sameMultiset reports whether got is a permutation of expected under eq.
// Quadratic matching; harness inputs are small.
func sameMultiset[E any](expected, got []E, eq func(a, b E) bool) bool {
	if len(expected) != len(got) {
		return false
	}
	used := make([]bool, len(got))
	for _, want := range expected {
		found := false
		for i, have := range got {
			if !used[i] && eq(want, have) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// firstDivergence returns the first index where the sequences differ under
// eq (length mismatches diverge at the shorter length), or -1 when equal.
func firstDivergence[E any](expected, got []E, eq func(a, b E) bool) int {
	n := len(expected)
	if len(got) < n {
		n = len(got)
	}
	for i := 0; i < n; i++ {
		if !eq(expected[i], got[i]) {
			return i
		}
	}
	if len(expected) != len(got) {
		return n
	}

	return -1
}
