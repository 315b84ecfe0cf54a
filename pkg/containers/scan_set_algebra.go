package containers

import (
	"github.com/pingcap/errors"

	derror "github.com/hanfei1991/collections/pkg/errors"
)

// The mutating operations below drain other before touching s, so a
// failing iterator leaves s unchanged.

// UnionWith adds every element of other.
func (s *ScanSet[T]) UnionWith(other Enumerable[T]) error {
	if s.isSelf(other) {
		return nil
	}
	elems, err := s.drain(other)
	if err != nil {
		return err
	}
	for _, el := range elems {
		s.Add(el)
	}
	return nil
}

// IntersectWith keeps only the elements that are also in other. The
// surviving elements take the values and the order in which other
// yields them.
func (s *ScanSet[T]) IntersectWith(other Enumerable[T]) error {
	if s.isSelf(other) {
		return nil
	}
	elems, err := s.drain(other)
	if err != nil {
		return err
	}
	if s.count == 0 {
		return nil
	}
	kept := make([]T, len(s.storage))
	n := 0
	for _, el := range elems {
		if s.Remove(el) {
			kept[n] = el
			n++
		}
	}
	s.storage = kept
	s.count = n
	s.version++
	return nil
}

// ExceptWith removes every element of other.
func (s *ScanSet[T]) ExceptWith(other Enumerable[T]) error {
	elems, err := s.drain(other)
	if err != nil {
		return err
	}
	if s.count == 0 {
		return nil
	}
	for _, el := range elems {
		s.Remove(el)
	}
	return nil
}

// SymmetricExceptWith keeps the elements that are in exactly one of s and
// other.
//
// NOTE: when s is empty, other is first unioned in and the symmetric pass
// then runs over that same content, which leaves s empty again.
func (s *ScanSet[T]) SymmetricExceptWith(other Enumerable[T]) error {
	if isNilEnumerable(other) {
		return derror.ErrNullInput.GenWithStackByArgs("other")
	}
	if s.isSelf(other) {
		s.Clear()
		return nil
	}
	set, ok := other.(*ScanSet[T])
	if !ok || !sameComparer(s.cmp, set.cmp) {
		var err error
		set, err = s.dedup(other)
		if err != nil {
			return err
		}
	}
	if s.count == 0 {
		if err := s.UnionWith(set); err != nil {
			return err
		}
	}
	for i := 0; i < set.count; i++ {
		el := set.storage[i]
		if !s.Remove(el) {
			s.Add(el)
		}
	}
	return nil
}

// IsSubsetOf reports whether every element of s is in other.
func (s *ScanSet[T]) IsSubsetOf(other Enumerable[T]) (bool, error) {
	set, err := s.dedup(other)
	if err != nil {
		return false, err
	}
	matches := 0
	for i := 0; i < set.count; i++ {
		if s.Contains(set.storage[i]) {
			matches++
		}
	}
	return matches == s.count, nil
}

// IsSupersetOf reports whether every element of other is in s.
func (s *ScanSet[T]) IsSupersetOf(other Enumerable[T]) (bool, error) {
	if isNilEnumerable(other) {
		return false, derror.ErrNullInput.GenWithStackByArgs("other")
	}
	it := other.Iter()
	for it.Next() {
		if !s.Contains(it.Value()) {
			return false, nil
		}
	}
	if err := it.Err(); err != nil {
		return false, errors.Trace(err)
	}
	return true, nil
}

// IsProperSupersetOf reports whether s contains every element of other
// and at least one more.
func (s *ScanSet[T]) IsProperSupersetOf(other Enumerable[T]) (bool, error) {
	set, err := s.dedup(other)
	if err != nil {
		return false, err
	}
	matches := 0
	for i := 0; i < set.count; i++ {
		if !s.Contains(set.storage[i]) {
			return false, nil
		}
		matches++
	}
	return matches < s.count, nil
}

// IsProperSubsetOf reports whether every element of s is in other and
// other has at least one element s lacks.
func (s *ScanSet[T]) IsProperSubsetOf(other Enumerable[T]) (bool, error) {
	set, err := s.dedup(other)
	if err != nil {
		return false, err
	}
	matches := 0
	missing := false
	for i := 0; i < set.count; i++ {
		if s.Contains(set.storage[i]) {
			matches++
		} else {
			missing = true
		}
	}
	return matches == s.count && missing, nil
}

// Overlaps reports whether s and other share at least one element.
func (s *ScanSet[T]) Overlaps(other Enumerable[T]) (bool, error) {
	if isNilEnumerable(other) {
		return false, derror.ErrNullInput.GenWithStackByArgs("other")
	}
	it := other.Iter()
	for it.Next() {
		if s.Contains(it.Value()) {
			return true, nil
		}
	}
	return false, errors.Trace(it.Err())
}

// SetEquals reports whether s and other hold the same elements,
// ignoring duplicates in other.
func (s *ScanSet[T]) SetEquals(other Enumerable[T]) (bool, error) {
	set, err := s.dedup(other)
	if err != nil {
		return false, err
	}
	matches := 0
	for i := 0; i < set.count; i++ {
		if !s.Contains(set.storage[i]) {
			return false, nil
		}
		matches++
	}
	return matches == s.count, nil
}

// Union returns a new set holding the elements of first and second.
// A nil cmp keeps the comparer of first.
func Union[T any](first *ScanSet[T], second Enumerable[T], cmp Comparer[T]) (*ScanSet[T], error) {
	return combine(first, second, cmp, (*ScanSet[T]).UnionWith)
}

// Intersect returns a new set holding the elements of first that are
// also in second.
func Intersect[T any](first *ScanSet[T], second Enumerable[T], cmp Comparer[T]) (*ScanSet[T], error) {
	return combine(first, second, cmp, (*ScanSet[T]).IntersectWith)
}

// Except returns a new set holding the elements of first that are not in
// second.
func Except[T any](first *ScanSet[T], second Enumerable[T], cmp Comparer[T]) (*ScanSet[T], error) {
	return combine(first, second, cmp, (*ScanSet[T]).ExceptWith)
}

// SymmetricExcept returns a new set holding the elements that are in
// exactly one of first and second.
func SymmetricExcept[T any](first *ScanSet[T], second Enumerable[T], cmp Comparer[T]) (*ScanSet[T], error) {
	return combine(first, second, cmp, (*ScanSet[T]).SymmetricExceptWith)
}

func combine[T any](
	first *ScanSet[T],
	second Enumerable[T],
	cmp Comparer[T],
	op func(*ScanSet[T], Enumerable[T]) error,
) (*ScanSet[T], error) {
	if first == nil {
		return nil, derror.ErrNullInput.GenWithStackByArgs("first")
	}
	if isNilEnumerable(second) {
		return nil, derror.ErrNullInput.GenWithStackByArgs("second")
	}
	var (
		result *ScanSet[T]
		err    error
	)
	if cmp == nil {
		result = first.Clone()
	} else {
		result, err = NewScanSetFrom[T](first, cmp, len(first.storage))
		if err != nil {
			return nil, err
		}
	}
	if err := op(result, second); err != nil {
		return nil, err
	}
	return result, nil
}

// isSelf reports whether other is s itself.
func (s *ScanSet[T]) isSelf(other Enumerable[T]) bool {
	o, ok := other.(*ScanSet[T])
	return ok && o == s
}

func (s *ScanSet[T]) drain(other Enumerable[T]) ([]T, error) {
	if isNilEnumerable(other) {
		return nil, derror.ErrNullInput.GenWithStackByArgs("other")
	}
	elems, err := Collect(other)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return elems, nil
}

// dedup builds a set of the distinct elements of other under the
// comparer of s.
func (s *ScanSet[T]) dedup(other Enumerable[T]) (*ScanSet[T], error) {
	if isNilEnumerable(other) {
		return nil, derror.ErrNullInput.GenWithStackByArgs("other")
	}
	capacity := len(s.storage)
	return NewScanSetFrom[T](other, s.cmp, capacity)
}
