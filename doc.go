// Package splitsource is an in-memory toolkit for splittable traversal:
// cursors that can be consumed sequentially or decomposed recursively into
// disjoint sub-ranges, plus the conformance harness that keeps every
// implementation honest.
//
// 🚀 What is splitsource?
//
//	A small, focused library that brings together:
//		• Characteristics: producer-declared guarantees (ordering, sortedness,
//		  exact size, distinctness, non-nullability, immutability)
//		• Source[E]: the traversal protocol — TryAdvance, ForEachRemaining,
//		  TrySplit, EstimateSize, Characteristics, Comparator
//		• Built-in sources: Singleton (one element), Indexed (index→element
//		  function over an integer range), Slice (Indexed over a Go slice)
//		• Decomposition strategies: bulk drain, step advance, maximum split
//		• Conformance harness: cross-checks every strategy against a reference
//		  collection's expected elements, order, size, and features
//		• Fold tester: validates sequential vs. merge-associative fold orders
//
// ✨ Why choose splitsource?
//
//   - Contract-first – splitting has no direct observable contract except
//     "all decompositions converge"; the harness is that contract, executable
//   - Single-owner discipline – no internal locks; split children own disjoint
//     ranges and may be driven concurrently with no coordination
//   - Pure Go – generics, no cgo, testify as the only dependency
//   - Extensible – any producer-defined Source plugs into the same harness
//
// Everything is organized under three packages:
//
//	split/     — Characteristics, Source[E], Singleton/Indexed/Slice, strategies
//	splittest/ — the conformance harness and a reference slice-backed producer
//	foldtest/  — three-function fold tester (sequential vs. merge orderings)
//
// Quick sketch:
//
//	    [0──────8)          one Indexed source over eight elements
//	    [0──4)[4──8)        after TrySplit: two owners, disjoint ranges
//
//	Repeated splitting yields a balanced binary tree of leaf ranges whose
//	union, drained left to right, is exactly the original sequence.
//
//	go get github.com/lowasser/splitsource
package splitsource
