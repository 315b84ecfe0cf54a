package containers

import (
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"

	derror "github.com/hanfei1991/collections/pkg/errors"
)

// DefaultCapacity is the initial capacity used when callers have no
// better estimate.
const DefaultCapacity = 50

// RingQueue is a growable FIFO queue backed by a circular buffer.
// It is not safe for concurrent use, see SyncQueue for that.
type RingQueue[T any] struct {
	storage []T
	// front is the slot of the oldest element, back the slot for the
	// next push. Both wrap around len(storage).
	front int
	back  int
	count int

	version uint64
}

// NewRingQueue creates an empty queue able to hold capacity elements
// before it needs to grow.
func NewRingQueue[T any](capacity int) (*RingQueue[T], error) {
	if capacity <= 0 {
		return nil, derror.ErrInvalidArgument.GenWithStackByArgs("capacity must be positive")
	}
	return &RingQueue[T]{
		storage: make([]T, capacity),
	}, nil
}

// NewRingQueueFrom creates a queue and pushes every element of elements
// in iteration order.
func NewRingQueueFrom[T any](elements Enumerable[T], capacity int) (*RingQueue[T], error) {
	q, err := NewRingQueue[T](capacity)
	if err != nil {
		return nil, err
	}
	if isNilEnumerable(elements) {
		return nil, derror.ErrNullInput.GenWithStackByArgs("elements")
	}
	if err := ForEach(elements, func(v T) error {
		q.Push(v)
		return nil
	}); err != nil {
		return nil, errors.Trace(err)
	}
	return q, nil
}

// Len returns the number of queued elements.
func (q *RingQueue[T]) Len() int {
	return q.count
}

// Cap returns the current size of the backing store.
func (q *RingQueue[T]) Cap() int {
	return len(q.storage)
}

// Empty reports whether the queue holds no element.
func (q *RingQueue[T]) Empty() bool {
	return q.count == 0
}

// Push appends item at the back. It takes O(1) unless the backing store
// is full, in which case the store is doubled first.
func (q *RingQueue[T]) Push(item T) {
	q.version++
	if q.count == len(q.storage) {
		q.grow(len(q.storage) * 2)
	}
	q.storage[q.back] = item
	q.back++
	if q.back == len(q.storage) {
		q.back = 0
	}
	q.count++
}

// Front returns the oldest element without removing it.
func (q *RingQueue[T]) Front() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, derror.ErrEmptyContainer.GenWithStackByArgs("queue")
	}
	return q.storage[q.front], nil
}

// Pop removes and returns the oldest element.
func (q *RingQueue[T]) Pop() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, derror.ErrEmptyContainer.GenWithStackByArgs("queue")
	}
	q.version++
	item := q.storage[q.front]
	// drop the reference so the element can be collected
	q.storage[q.front] = *new(T)
	q.front++
	if q.front == len(q.storage) {
		q.front = 0
	}
	q.count--
	return item, nil
}

// CopyTo copies the queued elements, oldest first, into dst starting at
// index.
func (q *RingQueue[T]) CopyTo(dst []T, index int) error {
	if dst == nil {
		return derror.ErrNullInput.GenWithStackByArgs("destination")
	}
	if index < 0 || index >= len(dst) {
		return derror.ErrIndexOutOfRange.GenWithStackByArgs(index, len(dst))
	}
	if len(dst)-index < q.count {
		return derror.ErrInsufficientCapacity.GenWithStackByArgs(len(dst)-index, q.count)
	}
	q.linearize(dst[index:])
	return nil
}

// Iter returns an iterator from the oldest to the newest element. The
// iterator fails as soon as the queue is pushed or popped.
func (q *RingQueue[T]) Iter() Iterator[T] {
	return newVersionedIterator(
		func() uint64 { return q.version },
		func(i int) (T, bool) {
			if i >= q.count {
				var zero T
				return zero, false
			}
			return q.storage[(q.front+i)%len(q.storage)], true
		})
}

// linearize copies the live elements in logical order to the head of dst,
// splitting the copy at the physical end of the ring.
func (q *RingQueue[T]) linearize(dst []T) {
	head := len(q.storage) - q.front
	if head > q.count {
		head = q.count
	}
	copy(dst, q.storage[q.front:q.front+head])
	copy(dst[head:], q.storage[:q.count-head])
}

func (q *RingQueue[T]) grow(capacity int) {
	storage := make([]T, capacity)
	q.linearize(storage)
	log.Debug("ring queue grows",
		zap.Int("old-capacity", len(q.storage)),
		zap.Int("new-capacity", capacity),
		zap.Int("count", q.count))
	q.storage = storage
	q.front = 0
	q.back = q.count
	if q.back == capacity {
		q.back = 0
	}
}
