// Package foldtest implements the fold conformance tester: every combining
// scheme applied to the same inputs must produce equivalent results.
package foldtest

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ErrIncompleteFold indicates a Fold with one or more nil functions.
var ErrIncompleteFold = errors.New("foldtest: fold has nil functions")

// Fold describes the fold under test. All four functions are required.
// Add and Merge return the resulting accumulator, which may or may not be
// the one passed in; the tester never reuses an accumulator after passing
// it to Add or Merge.
//
// The contract being verified: Merge is associative, New() is its identity,
// and Finish over any grouping of the inputs yields equivalent results.
type Fold[T, A, R any] struct {
	// New returns a fresh, empty accumulator.
	New func() A

	// Add folds one input into the accumulator.
	Add func(acc A, input T) A

	// Merge combines two accumulators, left-to-right.
	Merge func(left, right A) A

	// Finish converts the final accumulator into the result.
	Finish func(acc A) R
}

// Scheme selects one of the fixed combining orders. The set is closed;
// accumulate dispatches over it with a single switch.
type Scheme int

const (
	// Sequential uses one accumulator and adds every input into it in turn.
	Sequential Scheme = iota

	// MergeLeft gives each input its own accumulator and merges them
	// left-associatively: ((new ⊕ a₁) ⊕ a₂) ⊕ a₃.
	MergeLeft

	// MergeRight gives each input its own accumulator and merges them
	// right-associatively: a₁ ⊕ (a₂ ⊕ (a₃ ⊕ new)).
	MergeRight
)

// Schemes returns every combining scheme, in declaration order.
func Schemes() []Scheme {
	return []Scheme{Sequential, MergeLeft, MergeRight}
}

// String names the scheme for diagnostics.
func (s Scheme) String() string {
	switch s {
	case Sequential:
		return "Sequential"
	case MergeLeft:
		return "MergeLeft"
	case MergeRight:
		return "MergeRight"
	default:
		return "Scheme(?)"
	}
}

// accumulate folds inputs under the given scheme.
func accumulate[T, A, R any](s Scheme, f Fold[T, A, R], inputs []T) A {
	switch s {
	case MergeLeft:
		acc := f.New()
		for _, in := range inputs {
			acc = f.Merge(acc, f.Add(f.New(), in))
		}
		return acc
	case MergeRight:
		acc := f.New()
		for i := len(inputs) - 1; i >= 0; i-- {
			acc = f.Merge(f.Add(f.New(), inputs[i]), acc)
		}
		return acc
	default: // Sequential
		acc := f.New()
		for _, in := range inputs {
			acc = f.Add(acc, in)
		}
		return acc
	}
}

// Tester verifies a Fold across every combining scheme.
type Tester[T, A, R any] struct {
	fold  Fold[T, A, R]
	equiv func(a, b R) bool
}

// New builds a Tester for f, with result equivalence defaulting to deep
// equality. Returns ErrIncompleteFold when any of f's functions is nil.
func New[T, A, R any](f Fold[T, A, R]) (*Tester[T, A, R], error) {
	if f.New == nil || f.Add == nil || f.Merge == nil || f.Finish == nil {
		return nil, ErrIncompleteFold
	}

	return &Tester[T, A, R]{
		fold:  f,
		equiv: func(a, b R) bool { return assert.ObjectsAreEqual(a, b) },
	}, nil
}

// WithEquiv overrides result equivalence and returns the Tester for
// chaining. A nil eq is ignored.
func (tt *Tester[T, A, R]) WithEquiv(eq func(a, b R) bool) *Tester[T, A, R] {
	if eq != nil {
		tt.equiv = eq
	}

	return tt
}

// Verify folds inputs under every scheme and returns the failures joined,
// or nil when every scheme produces a result equivalent to expected.
func (tt *Tester[T, A, R]) Verify(expected R, inputs ...T) error {
	var errs []error
	for _, s := range Schemes() {
		got := tt.fold.Finish(accumulate(s, tt.fold, inputs))
		if !tt.equiv(expected, got) {
			errs = append(errs, fmt.Errorf("foldtest: scheme %s: expected %v, actual %v", s, expected, got))
		}
	}

	return errors.Join(errs...)
}

// ExpectFolds asserts on t that every scheme folds inputs to expected.
// It returns the Tester so expectations can be chained.
func (tt *Tester[T, A, R]) ExpectFolds(t *testing.T, expected R, inputs ...T) *Tester[T, A, R] {
	t.Helper()
	if err := tt.Verify(expected, inputs...); err != nil {
		t.Error(err)
	}

	return tt
}
