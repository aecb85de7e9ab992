// Package splittest is the conformance harness for split.Source
// implementations: it drains a producer's source under every decomposition
// strategy and asserts that all strategies converge on the reference
// collection's expected elements, order, size, and declared characteristics.
//
// 🚀 What
//
//   - Producer[E] — the contract a collection under test exposes: a fresh
//     source per call, the expected element multiset, the defined iteration
//     order, the exact count, and a small Features set (null-permissiveness,
//     add/remove support).
//   - Run — registers one subtest per applicable check on a *testing.T.
//   - Check — the same checks as plain error values, joined; useful for
//     asserting that a defective source is detected.
//   - SliceCollection — a reference Producer over a Go slice, handy both as
//     a self-test fixture and as a template for real producers.
//
// ✨ Why
//
//	TrySplit has no directly observable contract: the only specification of a
//	correct split is that every way of decomposing the source converges on
//	the same result as no splitting at all. This harness is that
//	specification, executable. Characteristic declarations are likewise
//	unenforced guarantees, so the harness cross-checks them against what the
//	reference collection is known to permit.
//
// Checks and their gates
//
//   - Elements            — always: per-strategy multiset equals Elements().
//   - KnownOrder          — Ordered: per-strategy sequence equals OrderedElements().
//   - Sorted              — Sorted: per-strategy sequence non-decreasing under
//     the source comparator, or the WithFallbackComparator option when the
//     source leaves its comparator nil (natural ordering).
//   - ComparatorUnsorted  — not Sorted: Comparator() must fail with split.ErrUnsorted.
//   - EstimateSize        — Sized: exact count before splitting; with Subsized,
//     prefix + remainder sizes sum to the pre-split size.
//   - Nullable            — AllowsNull and non-empty: NonNull must not be declared.
//   - NotImmutableAdd     — SupportsAdd: Immutable must not be declared.
//   - NotImmutableRemove  — SupportsRemove: Immutable must not be declared.
//
// Every check drains a fresh source; strategies never share an instance, so
// one strategy's consumption cannot mask another's defect.
//
// Usage
//
//	func TestMySetSource(t *testing.T) {
//	    splittest.Run(t, &splittest.SliceCollection[int]{
//	        Items: []int{1, 2, 3},
//	        Chars: split.Distinct | split.Sorted,
//	        Feats: splittest.Features{SupportsAdd: true},
//	    }, splittest.WithFallbackComparator(split.NaturalOrder[int]()))
//	}
//
// Failures name the diverging strategy and carry expected versus actual
// sequences (or the numeric size mismatch), wrapped around the package
// sentinel errors so defect classes can be matched with errors.Is.
package splittest
