package splittest_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lowasser/splitsource/split"
	"github.com/lowasser/splitsource/splittest"
)

// HarnessSuite exercises the harness against conforming producers: every
// check that applies must pass.
type HarnessSuite struct {
	suite.Suite
}

func TestHarnessSuite(t *testing.T) {
	suite.Run(t, new(HarnessSuite))
}

// TestOrderedDistinct covers the plain ordered slice collection.
func (s *HarnessSuite) TestOrderedDistinct() {
	splittest.Run[int](s.T(), &splittest.SliceCollection[int]{
		Items: []int{1, 2, 3, 4, 5},
		Chars: split.Distinct,
		Feats: splittest.Features{SupportsAdd: true, SupportsRemove: true},
	})
}

// TestSortedNaturalFallback covers a Sorted source with a nil comparator,
// resolved through the harness fallback.
func (s *HarnessSuite) TestSortedNaturalFallback() {
	splittest.Run[int](s.T(), &splittest.SliceCollection[int]{
		Items: []int{1, 1, 2, 3, 5, 8},
		Chars: split.Sorted,
	}, splittest.WithFallbackComparator(split.NaturalOrder[int]()))
}

// TestSortedExplicitComparator covers a descending collection sorted under
// its own comparator.
func (s *HarnessSuite) TestSortedExplicitComparator() {
	splittest.Run[int](s.T(), &splittest.SliceCollection[int]{
		Items: []int{9, 7, 4, 1},
		Chars: split.Sorted | split.Distinct,
		Cmp:   func(a, b int) int { return b - a },
	})
}

// TestEmptyCollection covers the zero-size edge: the Nullable gate must
// keep its check off even though nulls are allowed.
func (s *HarnessSuite) TestEmptyCollection() {
	splittest.Run[int](s.T(), &splittest.SliceCollection[int]{
		Chars: split.NonNull,
		Feats: splittest.Features{AllowsNull: true},
	})
}

// TestNilElements covers nil-able element types in a null-permissive
// collection that correctly leaves NonNull undeclared.
func (s *HarnessSuite) TestNilElements() {
	three := 3
	splittest.Run[*int](s.T(), &splittest.SliceCollection[*int]{
		Items: []*int{nil, &three, nil},
		Feats: splittest.Features{AllowsNull: true},
	})
}

// TestSingletonProducer plugs the singleton source into the harness.
func (s *HarnessSuite) TestSingletonProducer() {
	splittest.Run[string](s.T(), singletonProducer{element: "x"})
}

// singletonProducer binds the harness to a split.Singleton.
type singletonProducer struct {
	element string
}

func (p singletonProducer) Source() split.Source[string] { return split.Singleton(p.element) }
func (p singletonProducer) Elements() []string { return []string{p.element} }
func (p singletonProducer) OrderedElements() []string { return []string{p.element} }
func (p singletonProducer) NumElements() int { return 1 }
func (p singletonProducer) Features() splittest.Features { return splittest.Features{} }

// overrideProducer wraps a Producer and overrides whichever accessors are
// set, to model collections whose reference metadata disagrees with their
// source.
type overrideProducer struct {
	splittest.Producer[int]
	elements []int
	ordered  []int
	source   func() split.Source[int]
}

func (p overrideProducer) Elements() []int {
	if p.elements != nil {
		return p.elements
	}
	return p.Producer.Elements()
}

func (p overrideProducer) OrderedElements() []int {
	if p.ordered != nil {
		return p.ordered
	}
	return p.Producer.OrderedElements()
}

func (p overrideProducer) Source() split.Source[int] {
	if p.source != nil {
		return p.source()
	}
	return p.Producer.Source()
}

// sizeLiar misreports its remaining count by one.
type sizeLiar struct {
	split.Source[int]
}

func (s sizeLiar) EstimateSize() int64 { return s.Source.EstimateSize() + 1 }

// leakyComparator hands out a comparator state that violates the protocol:
// no error despite the Sorted flag being absent.
type leakyComparator struct {
	split.Source[int]
}

func (s leakyComparator) Comparator() (split.Comparator[int], error) { return nil, nil }

// replaySource emits its single element twice, the canonical re-emission
// defect the harness exists to catch.
type replaySource struct {
	emitted int
}

func (s *replaySource) TryAdvance(visit func(int)) (bool, error) {
	if visit == nil {
		return false, split.ErrNilVisit
	}
	if s.emitted >= 2 {
		return false, nil
	}
	s.emitted++
	visit(7)
	return true, nil
}

func (s *replaySource) ForEachRemaining(visit func(int)) error {
	for {
		ok, err := s.TryAdvance(visit)
		if err != nil || !ok {
			return err
		}
	}
}

func (s *replaySource) TrySplit() split.Source[int] { return nil }
func (s *replaySource) EstimateSize() int64 { return 2 }
func (s *replaySource) Characteristics() split.Characteristics { return split.Ordered }
func (s *replaySource) Comparator() (split.Comparator[int], error) {
	return nil, split.ErrUnsorted
}

type replayProducer struct{}

func (replayProducer) Source() split.Source[int] { return &replaySource{} }
func (replayProducer) Elements() []int { return []int{7} }
func (replayProducer) OrderedElements() []int { return []int{7} }
func (replayProducer) NumElements() int { return 1 }
func (replayProducer) Features() splittest.Features { return splittest.Features{} }

func conforming(items ...int) *splittest.SliceCollection[int] {
	return &splittest.SliceCollection[int]{Items: items}
}

func TestCheck_NilProducer(t *testing.T) {
	require.ErrorIs(t, splittest.Check[int](nil), splittest.ErrNilProducer)
}

func TestCheck_NilSource(t *testing.T) {
	p := overrideProducer{
		Producer: conforming(1, 2),
		source:   func() split.Source[int] { return nil },
	}
	require.ErrorIs(t, splittest.Check[int](p), splittest.ErrNilSource)
}

// TestCheck_ReEmission asserts the harness catches an element yielded twice.
func TestCheck_ReEmission(t *testing.T) {
	err := splittest.Check[int](replayProducer{})
	require.ErrorIs(t, err, splittest.ErrElementMismatch)
	require.ErrorContains(t, err, "BulkDrain", "failure must name the diverging strategy")
}

func TestCheck_ElementMismatch(t *testing.T) {
	p := overrideProducer{
		Producer: conforming(1, 2, 3),
		elements: []int{1, 2, 4},
		ordered:  []int{1, 2, 4},
	}
	require.ErrorIs(t, splittest.Check[int](p), splittest.ErrElementMismatch)
}

// TestCheck_OrderMismatch uses a producer whose multiset matches but whose
// declared iteration order does not: only the order check may fail.
func TestCheck_OrderMismatch(t *testing.T) {
	p := overrideProducer{
		Producer: conforming(1, 2, 3),
		ordered:  []int{3, 2, 1},
	}
	err := splittest.Check[int](p)
	require.ErrorIs(t, err, splittest.ErrOrderMismatch)
	require.NotErrorIs(t, err, splittest.ErrElementMismatch)
}

func TestCheck_NotSorted(t *testing.T) {
	err := splittest.Check[int](&splittest.SliceCollection[int]{
		Items: []int{3, 1, 2},
		Chars: split.Sorted,
	}, splittest.WithFallbackComparator(split.NaturalOrder[int]()))
	require.ErrorIs(t, err, splittest.ErrNotSorted)
}

func TestCheck_ComparatorMissing(t *testing.T) {
	err := splittest.Check[int](&splittest.SliceCollection[int]{
		Items: []int{1, 2},
		Chars: split.Sorted,
	})
	require.ErrorIs(t, err, splittest.ErrComparatorMissing)
}

// TestCheck_ComparatorState asserts that a comparator handed out without
// the Sorted flag is reported as a contract violation.
func TestCheck_ComparatorState(t *testing.T) {
	p := overrideProducer{
		Producer: conforming(1, 2, 3),
		source: func() split.Source[int] {
			return leakyComparator{split.Slice([]int{1, 2, 3}, 0)}
		},
	}
	require.ErrorIs(t, splittest.Check[int](p), splittest.ErrComparatorState)
}

func TestCheck_SizeMismatch(t *testing.T) {
	p := overrideProducer{
		Producer: conforming(1, 2, 3),
		source: func() split.Source[int] {
			return sizeLiar{split.Slice([]int{1, 2, 3}, 0)}
		},
	}
	require.ErrorIs(t, splittest.Check[int](p), splittest.ErrSizeMismatch)
}

// TestCheck_CharacteristicConflicts covers all three feature cross-checks.
func TestCheck_CharacteristicConflicts(t *testing.T) {
	err := splittest.Check[int](&splittest.SliceCollection[int]{
		Items: []int{1},
		Chars: split.NonNull,
		Feats: splittest.Features{AllowsNull: true},
	})
	require.ErrorIs(t, err, splittest.ErrCharacteristicConflict)
	require.ErrorContains(t, err, "NonNull")

	err = splittest.Check[int](&splittest.SliceCollection[int]{
		Items: []int{1},
		Chars: split.Immutable,
		Feats: splittest.Features{SupportsAdd: true},
	})
	require.ErrorIs(t, err, splittest.ErrCharacteristicConflict)

	err = splittest.Check[int](&splittest.SliceCollection[int]{
		Items: []int{1},
		Chars: split.Immutable,
		Feats: splittest.Features{SupportsRemove: true},
	})
	require.ErrorIs(t, err, splittest.ErrCharacteristicConflict)
}

// TestCheck_UnorderedGating proves the order check stays off for sources
// that do not declare Ordered, even when the declared order disagrees.
func TestCheck_UnorderedGating(t *testing.T) {
	p := overrideProducer{
		Producer: conforming(1, 2, 3),
		ordered:  []int{3, 2, 1},
		source: func() split.Source[int] {
			src, err := split.Indexed(3, func(i int) int { return i + 1 }, 0)
			require.NoError(t, err)
			return src
		},
	}
	require.NoError(t, splittest.Check[int](p))
}

// TestCheck_WithEqual verifies custom element equality reaches the multiset
// and order comparisons.
func TestCheck_WithEqual(t *testing.T) {
	p := overrideProducer{
		Producer: conforming(1, 2, 3),
		elements: []int{101, 102, 103},
		ordered:  []int{101, 102, 103},
	}
	mod100 := func(a, b int) bool { return a%100 == b%100 }
	require.Error(t, splittest.Check[int](p))
	require.NoError(t, splittest.Check[int](p, splittest.WithEqual(mod100)))
}
