// Package split defines the fixed decomposition strategies used to drain a
// Source. All strategies must converge on the same observable result for a
// conforming source; the splittest package asserts exactly that.
package split

import "errors"

// Sentinel errors for strategy dispatch.
var (
	// ErrNilSource indicates Drain or Collect was given a nil source.
	ErrNilSource = errors.New("split: source is nil")

	// ErrUnknownStrategy indicates a Strategy value outside the declared set.
	ErrUnknownStrategy = errors.New("split: unknown decomposition strategy")
)

// Strategy selects one of the fixed ways to decompose and drain a Source.
// The set is closed; Drain dispatches over it with a single switch.
type Strategy int

const (
	// BulkDrain consumes the untouched source with one ForEachRemaining call.
	BulkDrain Strategy = iota

	// StepAdvance consumes the source one TryAdvance call at a time.
	StepAdvance

	// MaximumSplit recursively splits until TrySplit returns nil, draining
	// every split-off prefix depth-first before the shrunk remainder —
	// left-to-right for index-based sources.
	MaximumSplit
)

// Strategies returns every decomposition strategy, in declaration order.
func Strategies() []Strategy {
	return []Strategy{BulkDrain, StepAdvance, MaximumSplit}
}

// String names the strategy for diagnostics.
func (s Strategy) String() string {
	switch s {
	case BulkDrain:
		return "BulkDrain"
	case StepAdvance:
		return "StepAdvance"
	case MaximumSplit:
		return "MaximumSplit"
	default:
		return "Strategy(?)"
	}
}

// Drain consumes every remaining element of src with visit, decomposing the
// source according to strategy. Returns ErrNilSource, ErrNilVisit, or
// ErrUnknownStrategy on invalid input.
//
// Complexity: O(n) visits for n remaining elements under every strategy;
// MaximumSplit adds O(n) TrySplit calls across the split tree.
func Drain[E any](strategy Strategy, src Source[E], visit func(E)) error {
	if src == nil {
		return ErrNilSource
	}
	if visit == nil {
		return ErrNilVisit
	}

	switch strategy {
	case BulkDrain:
		return src.ForEachRemaining(visit)
	case StepAdvance:
		for {
			ok, err := src.TryAdvance(visit)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
	case MaximumSplit:
		return drainMaxSplit(src, visit)
	default:
		return ErrUnknownStrategy
	}
}

// drainMaxSplit recurses into every split-off prefix before draining the
// remainder, visiting prefixes ahead of the parent's own suffix.
func drainMaxSplit[E any](src Source[E], visit func(E)) error {
	for prefix := src.TrySplit(); prefix != nil; prefix = src.TrySplit() {
		if err := drainMaxSplit(prefix, visit); err != nil {
			return err
		}
	}

	return src.ForEachRemaining(visit)
}

// Collect drains src under strategy and returns the visited elements in
// visit order.
func Collect[E any](strategy Strategy, src Source[E]) ([]E, error) {
	var out []E
	if err := Drain(strategy, src, func(e E) { out = append(out, e) }); err != nil {
		return nil, err
	}

	return out, nil
}
