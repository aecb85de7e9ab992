// Package split defines the splittable traversal protocol: a Source[E] cursor
// that yields each remaining element exactly once and can carve off disjoint
// prefix ranges for independent consumption, together with the built-in
// Singleton, Indexed, and Slice sources and the fixed set of decomposition
// strategies used to drain any source.
//
// 🚀 What
//
//   - Source[E] — the protocol: TryAdvance / ForEachRemaining advance a cursor,
//     TrySplit detaches a strict prefix as a new source, EstimateSize bounds
//     the remainder, Characteristics declares producer guarantees, Comparator
//     exposes the sort order when Sorted is declared.
//   - Characteristics — a bit set of independent, producer-asserted flags
//     (Ordered, Sorted, Sized, Subsized, Distinct, NonNull, Immutable,
//     Concurrent). Declared once, constant for the source's lifetime.
//   - Singleton — at most one element, indivisible.
//   - Indexed — an index→element function over [0, length), split by midpoint.
//   - Slice — Indexed over a Go slice, always Ordered.
//   - Strategy — BulkDrain, StepAdvance, MaximumSplit; Drain and Collect
//     dispatch over the closed set.
//
// ✨ Why
//
//   - Parallel consumers need disjoint work ranges without locks: after
//     TrySplit, parent and child share no mutable state.
//   - Downstream code relies on declared characteristics without re-checking;
//     the splittest package verifies declarations against a reference.
//
// Ownership
//
//	A source is single-owner and single-threaded for its own cursor; TrySplit
//	transfers ownership of a prefix range to the returned sibling. No two live
//	sources ever claim overlapping unconsumed ranges of the same underlying
//	elements.
//
// Always-advance rule
//
//	On the built-in sources the cursor moves past an element before the visit
//	callback runs, so a panicking visit can never replay or retry an element.
//
// Errors
//
//   - ErrNilVisit        — TryAdvance/ForEachRemaining given a nil callback.
//   - ErrUnsorted        — Comparator requested without the Sorted flag;
//     a contract violation at the call site, not a recoverable condition.
//   - ErrNilIndexFunc    — Indexed given a nil index function.
//   - ErrNegativeLength  — Indexed given a negative length.
//   - ErrNilSource       — Drain/Collect given a nil source.
//   - ErrUnknownStrategy — Drain/Collect given a strategy outside the set.
//
// Complexity (n = remaining elements)
//
//   - TryAdvance: O(1). ForEachRemaining: O(n).
//   - TrySplit: O(1), no recursion. Repeated splitting of an Indexed range of
//     length n terminates after at most ⌈log₂ n⌉ levels per branch.
//
// See splittest for the conformance harness that exercises all of the above.
package split
