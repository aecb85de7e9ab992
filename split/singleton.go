package split

// singletonSource holds at most one element. Consumption is permanent and
// releases the element reference; a singleton never splits.
type singletonSource[E any] struct {
	element  E
	consumed bool
}

// Singleton returns a Source over exactly one element.
//
// Characteristics are fixed at Distinct|Immutable|Ordered|Sized|Subsized.
// NonNull is deliberately absent: the declaration must hold for every value
// the type permits, and E may be a nil-able kind even when this particular
// element is not nil.
func Singleton[E any](element E) Source[E] {
	return &singletonSource[E]{element: element}
}

// TryAdvance visits the element on the first call and reports true; every
// later call reports false with no side effects.
func (s *singletonSource[E]) TryAdvance(visit func(E)) (bool, error) {
	if visit == nil {
		return false, ErrNilVisit
	}
	if s.consumed {
		return false, nil
	}
	e := s.element
	// Release the element and consume before visiting: the reference is
	// never needed again, and a panicking visit must not replay it.
	var zero E
	s.element = zero
	s.consumed = true
	visit(e)

	return true, nil
}

// ForEachRemaining drains the at-most-one remaining element.
func (s *singletonSource[E]) ForEachRemaining(visit func(E)) error {
	_, err := s.TryAdvance(visit)
	return err
}

// TrySplit always returns nil: a single element is indivisible.
func (s *singletonSource[E]) TrySplit() Source[E] {
	return nil
}

// EstimateSize is 1 while unconsumed, 0 after.
func (s *singletonSource[E]) EstimateSize() int64 {
	if s.consumed {
		return 0
	}

	return 1
}

// Characteristics reports the fixed singleton guarantee set.
func (s *singletonSource[E]) Characteristics() Characteristics {
	return Distinct | Immutable | Ordered | Sized | Subsized
}

// Comparator always fails: singletons do not declare Sorted.
func (s *singletonSource[E]) Comparator() (Comparator[E], error) {
	return nil, ErrUnsorted
}
