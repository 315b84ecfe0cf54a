package containers

import (
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"

	derror "github.com/hanfei1991/collections/pkg/errors"
)

// ScanSet is a set of unique elements kept in a plain array. Membership
// is decided by a linear scan through the Comparer, so operations are O(n)
// and elements need neither hashing nor ordering.
//
// ScanSet is not safe for concurrent use.
type ScanSet[T any] struct {
	storage []T
	count   int
	cmp     Comparer[T]

	version uint64
}

// NewScanSet creates an empty set. A nil cmp selects NaturalComparer.
func NewScanSet[T any](capacity int, cmp Comparer[T]) (*ScanSet[T], error) {
	if capacity <= 0 {
		return nil, derror.ErrInvalidArgument.GenWithStackByArgs("capacity must be positive")
	}
	if cmp == nil {
		cmp = NaturalComparer[T]()
	}
	return &ScanSet[T]{
		storage: make([]T, capacity),
		cmp:     cmp,
	}, nil
}

// NewScanSetFrom creates a set holding the distinct elements of elements,
// in first-seen order.
func NewScanSetFrom[T any](elements Enumerable[T], cmp Comparer[T], capacity int) (*ScanSet[T], error) {
	if isNilEnumerable(elements) {
		return nil, derror.ErrNullInput.GenWithStackByArgs("elements")
	}
	s, err := NewScanSet[T](capacity, cmp)
	if err != nil {
		return nil, err
	}
	if err := s.UnionWith(elements); err != nil {
		return nil, errors.Trace(err)
	}
	return s, nil
}

// Len returns the number of elements.
func (s *ScanSet[T]) Len() int {
	return s.count
}

// Cap returns the size of the backing array.
func (s *ScanSet[T]) Cap() int {
	return len(s.storage)
}

// Comparer returns the equality used by the set.
func (s *ScanSet[T]) Comparer() Comparer[T] {
	return s.cmp
}

// Add inserts item unless an equal element is present. It reports
// whether the set changed.
func (s *ScanSet[T]) Add(item T) bool {
	if s.Contains(item) {
		return false
	}
	if s.count == len(s.storage) {
		s.grow(len(s.storage) * 2)
	}
	s.storage[s.count] = item
	s.count++
	s.version++
	return true
}

// Remove deletes the element equal to item, shifting the following
// elements left. It reports whether an element was removed.
func (s *ScanSet[T]) Remove(item T) bool {
	pos := s.indexOf(item)
	if pos < 0 {
		return false
	}
	copy(s.storage[pos:s.count], s.storage[pos+1:s.count])
	s.count--
	s.storage[s.count] = *new(T)
	s.version++
	return true
}

// Contains reports whether an element equal to item is in the set.
func (s *ScanSet[T]) Contains(item T) bool {
	return s.indexOf(item) >= 0
}

// Clear removes all elements. The backing array keeps its size.
func (s *ScanSet[T]) Clear() {
	if s.count == 0 {
		return
	}
	clear(s.storage[:s.count])
	s.count = 0
	s.version++
}

// CopyTo copies the elements in storage order into dst starting at index.
func (s *ScanSet[T]) CopyTo(dst []T, index int) error {
	if dst == nil {
		return derror.ErrNullInput.GenWithStackByArgs("destination")
	}
	if index < 0 || index >= len(dst) {
		return derror.ErrIndexOutOfRange.GenWithStackByArgs(index, len(dst))
	}
	if len(dst)-index < s.count {
		return derror.ErrInsufficientCapacity.GenWithStackByArgs(len(dst)-index, s.count)
	}
	copy(dst[index:], s.storage[:s.count])
	return nil
}

// Clone returns an independent copy sharing the comparer.
func (s *ScanSet[T]) Clone() *ScanSet[T] {
	storage := make([]T, len(s.storage))
	copy(storage, s.storage[:s.count])
	return &ScanSet[T]{
		storage: storage,
		count:   s.count,
		cmp:     s.cmp,
	}
}

// Iter returns an iterator in storage order. The iterator fails as soon
// as the membership of the set changes.
func (s *ScanSet[T]) Iter() Iterator[T] {
	return newVersionedIterator(
		func() uint64 { return s.version },
		func(i int) (T, bool) {
			if i >= s.count {
				var zero T
				return zero, false
			}
			return s.storage[i], true
		})
}

func (s *ScanSet[T]) indexOf(item T) int {
	for i := 0; i < s.count; i++ {
		if s.cmp.Equal(item, s.storage[i]) {
			return i
		}
	}
	return -1
}

func (s *ScanSet[T]) grow(capacity int) {
	storage := make([]T, capacity)
	copy(storage, s.storage[:s.count])
	log.Debug("scan set grows",
		zap.Int("old-capacity", len(s.storage)),
		zap.Int("new-capacity", capacity))
	s.storage = storage
}
