// Package split provides characteristic flags declared by traversal sources.
package split

import "strings"

// Characteristics is a bit set of guarantees a source declares about its
// remaining elements. Flags are independent: no flag implies another.
// Subsized is meaningful only alongside Sized, but that is a producer
// obligation — the set never derives one flag from another, and the
// splittest harness checks declarations rather than trusting them.
//
// A source's characteristics are fixed for its lifetime; TrySplit creates
// new sources, it never changes the parent's declaration.
type Characteristics uint32

const (
	// Ordered declares that elements have a defined encounter order which
	// every consumption path (including split-off prefixes) observes.
	Ordered Characteristics = 1 << iota

	// Sorted declares that the encounter order is non-decreasing under the
	// source's Comparator (or natural ordering when the comparator is nil).
	Sorted

	// Sized declares that EstimateSize is the exact remaining count.
	Sized

	// Subsized declares that every source returned by TrySplit is itself
	// Sized, so prefix and remainder sizes sum to the pre-split size.
	Subsized

	// Distinct declares that no two remaining elements are equal.
	Distinct

	// NonNull declares that no remaining element is nil. The declaration
	// must hold for every instance of the source type, not merely the
	// elements a particular instance happens to hold.
	NonNull

	// Immutable declares that the underlying elements cannot be added to,
	// removed, or replaced while the source is live.
	Immutable

	// Concurrent declares that the underlying elements may be safely
	// modified concurrently by other owners without affecting traversal.
	Concurrent
)

// characteristicNames drives String, in flag-bit order.
var characteristicNames = []struct {
	flag Characteristics
	name string
}{
	{Ordered, "Ordered"},
	{Sorted, "Sorted"},
	{Sized, "Sized"},
	{Subsized, "Subsized"},
	{Distinct, "Distinct"},
	{NonNull, "NonNull"},
	{Immutable, "Immutable"},
	{Concurrent, "Concurrent"},
}

// Has reports whether every flag in flags is present in c.
func (c Characteristics) Has(flags Characteristics) bool {
	return c&flags == flags
}

// String renders the set as "Ordered|Sized|Subsized", or "none" when empty.
// Unknown bits are ignored.
func (c Characteristics) String() string {
	if c == 0 {
		return "none"
	}
	var names []string
	for _, cn := range characteristicNames {
		if c.Has(cn.flag) {
			names = append(names, cn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}

	return strings.Join(names, "|")
}
