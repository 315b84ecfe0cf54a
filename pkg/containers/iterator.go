package containers

import (
	"github.com/pingcap/errors"

	derror "github.com/hanfei1991/collections/pkg/errors"
)

// Iterator walks a finite sequence of elements.
//
// Next advances to the following element and reports whether there is one.
// When Next returns false, Err distinguishes a normal end of the sequence
// (nil) from a failed step, e.g. ErrConcurrentModification when the
// underlying container changed after the iterator was created.
//
// Iterators cannot be rewound. Calling Iter again on the source starts a
// fresh walk that snapshots the current version.
type Iterator[T any] interface {
	Next() bool
	Value() T
	Err() error
}

// Enumerable is implemented by anything that can hand out an Iterator.
type Enumerable[T any] interface {
	Iter() Iterator[T]
}

// Slice adapts a plain slice to Enumerable. A nil Slice is an empty
// sequence, not an absent one.
type Slice[T any] []T

// Iter implements Enumerable.
func (s Slice[T]) Iter() Iterator[T] {
	return &sliceIterator[T]{elems: s, pos: -1}
}

type sliceIterator[T any] struct {
	elems []T
	pos   int
}

func (it *sliceIterator[T]) Next() bool {
	if it.pos+1 >= len(it.elems) {
		it.pos = len(it.elems)
		return false
	}
	it.pos++
	return true
}

func (it *sliceIterator[T]) Value() T {
	if it.pos < 0 || it.pos >= len(it.elems) {
		var zero T
		return zero
	}
	return it.elems[it.pos]
}

func (it *sliceIterator[T]) Err() error {
	return nil
}

// versionedIterator is shared by the containers in this package. It
// snapshots the owner's version and refuses to advance once it moved.
type versionedIterator[T any] struct {
	version  func() uint64
	snapshot uint64
	// at returns the i-th live element, ok is false past the end.
	at  func(i int) (T, bool)
	idx int
	cur T
	err error
}

func newVersionedIterator[T any](version func() uint64, at func(int) (T, bool)) *versionedIterator[T] {
	return &versionedIterator[T]{
		version:  version,
		snapshot: version(),
		at:       at,
		idx:      -1,
	}
}

func (it *versionedIterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.version() != it.snapshot {
		it.err = derror.ErrConcurrentModification.GenWithStackByArgs()
		it.cur = *new(T)
		return false
	}
	v, ok := it.at(it.idx + 1)
	if !ok {
		it.cur = *new(T)
		return false
	}
	it.idx++
	it.cur = v
	return true
}

func (it *versionedIterator[T]) Value() T {
	return it.cur
}

func (it *versionedIterator[T]) Err() error {
	return it.err
}

// ForEach calls fn for every element of e, stopping at the first error
// returned either by fn or by the iterator.
func ForEach[T any](e Enumerable[T], fn func(T) error) error {
	if isNilEnumerable(e) {
		return derror.ErrNullInput.GenWithStackByArgs("sequence")
	}
	it := e.Iter()
	for it.Next() {
		if err := fn(it.Value()); err != nil {
			return errors.Trace(err)
		}
	}
	return errors.Trace(it.Err())
}

// Collect drains e into a new slice.
func Collect[T any](e Enumerable[T]) ([]T, error) {
	var out []T
	if err := ForEach(e, func(v T) error {
		out = append(out, v)
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// isNilEnumerable reports whether e is absent, including typed nil
// pointers to the containers of this package.
func isNilEnumerable[T any](e Enumerable[T]) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *RingQueue[T]:
		return v == nil
	case *ScanSet[T]:
		return v == nil
	}
	return false
}
