// Package foldtest validates three-function folds: given a fold described by
// New (fresh accumulator), Add (accumulate one input), Merge (combine two
// accumulators), and Finish (produce the result), it verifies that every
// fixed combining order yields the same result.
//
// 🚀 What
//
//   - Fold[T, A, R] — the fold under test, four plain functions.
//   - Scheme — the closed set of combining orders: Sequential (one
//     accumulator, inputs added in turn), MergeLeft (one accumulator per
//     input, merged left-to-right), MergeRight (merged right-to-left).
//   - Tester — ExpectFolds for *testing.T use, Verify for error-style use.
//
// ✨ Why
//
//	A fold consumed through split decomposition may have its inputs
//	accumulated in any grouping, so Merge must be associative with New as
//	identity. Like the splittest harness, the only executable specification
//	of that contract is "every combining order converges" — this package is
//	that specification.
//
// Usage
//
//	sum, _ := foldtest.New(foldtest.Fold[int, int, int]{
//	    New:    func() int { return 0 },
//	    Add:    func(a, v int) int { return a + v },
//	    Merge:  func(a, b int) int { return a + b },
//	    Finish: func(a int) int { return a },
//	})
//	sum.ExpectFolds(t, 10, 1, 4, 3, 2)
//
// Result equivalence defaults to deep equality; override it with WithEquiv
// when R compares structurally (e.g. unordered containers).
package foldtest
