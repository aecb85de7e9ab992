// Package split provides the Indexed source: a splittable cursor over a
// contiguous integer range mapped to elements by an index function.
package split

// IndexFunc maps an index in [0, length) to its element. It must be pure
// with respect to traversal: the same index always yields the same element
// while any source over it is live.
type IndexFunc[E any] func(i int) E

// IndexedOption configures an Indexed source via functional arguments.
type IndexedOption[E any] func(*indexedSource[E])

// WithComparator stores the ordering relation exposed by Comparator when the
// Sorted characteristic is declared. A nil comparator is ignored; Sorted with
// no stored comparator means natural ordering. The comparator has no effect
// unless Sorted is declared.
func WithComparator[E any](cmp Comparator[E]) IndexedOption[E] {
	return func(s *indexedSource[E]) {
		if cmp != nil {
			s.cmp = cmp
		}
	}
}

// indexedSource traverses [offset, length) through fn. offset is the only
// mutable field; it increases monotonically toward length. Splitting detaches
// [offset, mid) into a sibling and raises offset to mid.
type indexedSource[E any] struct {
	offset int
	length int
	fn     IndexFunc[E]
	cmp    Comparator[E]
	chars  Characteristics
}

// Indexed returns a Source over fn applied to each index in [0, length).
//
// Sized and Subsized are always added to chars: an index range knows its
// exact remaining count and splits into ranges that do too. Declare Ordered
// in chars when index order is the encounter order consumers may rely on,
// and Sorted (plus WithComparator) when that order is non-decreasing.
//
// Returns ErrNilIndexFunc or ErrNegativeLength on invalid input.
func Indexed[E any](length int, fn IndexFunc[E], chars Characteristics, opts ...IndexedOption[E]) (Source[E], error) {
	if fn == nil {
		return nil, ErrNilIndexFunc
	}
	if length < 0 {
		return nil, ErrNegativeLength
	}

	return newIndexed(0, length, fn, chars, opts...), nil
}

// Slice returns a Source over the elements of elems, in index order.
// Ordered, Sized, and Subsized are always added to chars. The slice header
// is captured at call time; the backing array must not be mutated while the
// source (or any split-off sibling) is live unless Concurrent holds.
func Slice[E any](elems []E, chars Characteristics, opts ...IndexedOption[E]) Source[E] {
	return newIndexed(0, len(elems), func(i int) E { return elems[i] }, chars|Ordered, opts...)
}

// newIndexed builds a source over [offset, length); callers guarantee
// 0 <= offset <= length and fn != nil.
func newIndexed[E any](offset, length int, fn IndexFunc[E], chars Characteristics, opts ...IndexedOption[E]) *indexedSource[E] {
	s := &indexedSource[E]{
		offset: offset,
		length: length,
		fn:     fn,
		chars:  chars | Sized | Subsized,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// TryAdvance visits fn(offset) and reports true when an element remains.
// The offset is incremented before the visit runs, so a panicking visit
// still consumes its element.
func (s *indexedSource[E]) TryAdvance(visit func(E)) (bool, error) {
	if visit == nil {
		return false, ErrNilVisit
	}
	if s.offset >= s.length {
		return false, nil
	}
	i := s.offset
	s.offset++
	visit(s.fn(i))

	return true, nil
}

// ForEachRemaining visits every remaining element in index order, advancing
// past each element before its visit runs.
func (s *indexedSource[E]) ForEachRemaining(visit func(E)) error {
	if visit == nil {
		return ErrNilVisit
	}
	for s.offset < s.length {
		i := s.offset
		s.offset++
		visit(s.fn(i))
	}

	return nil
}

// TrySplit detaches [offset, mid) as a new source and keeps [mid, length),
// where mid is the floor midpoint of the remaining range. Returns nil when
// fewer than two elements remain. Recursive application yields a balanced
// binary tree of disjoint leaf ranges covering the original range exactly.
func (s *indexedSource[E]) TrySplit() Source[E] {
	// Unsigned averaging: immune to overflow on offset+length.
	mid := int(uint(s.offset+s.length) >> 1)
	if s.offset >= mid {
		return nil
	}
	prefix := newIndexed(s.offset, mid, s.fn, s.chars)
	prefix.cmp = s.cmp
	s.offset = mid

	return prefix
}

// EstimateSize is the exact remaining count, length-offset.
func (s *indexedSource[E]) EstimateSize() int64 {
	return int64(s.length - s.offset)
}

// Characteristics reports the declared set, including the unconditional
// Sized and Subsized flags.
func (s *indexedSource[E]) Characteristics() Characteristics {
	return s.chars
}

// Comparator returns the stored comparator when Sorted is declared (nil
// meaning natural ordering), or ErrUnsorted otherwise.
func (s *indexedSource[E]) Comparator() (Comparator[E], error) {
	if !s.chars.Has(Sorted) {
		return nil, ErrUnsorted
	}

	return s.cmp, nil
}
