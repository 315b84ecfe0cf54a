package containers

import (
	"sync"
)

// Queue is a FIFO queue that may be shared between goroutines.
// Pop and Peek report false instead of failing on an empty queue.
type Queue[T any] interface {
	Add(elem T)
	Pop() (T, bool)
	Peek() (T, bool)
	Size() int
}

// SyncQueue is a thread-safe Queue backed by a RingQueue.
//
// C receives a signal after elements are added. Signals are coalesced, so
// a consumer woken by C must drain the queue with Pop until it reports
// false.
type SyncQueue[T any] struct {
	mu sync.Mutex
	q  *RingQueue[T]

	C chan struct{}
}

var _ Queue[int] = (*SyncQueue[int])(nil)

// NewSyncQueue creates an empty SyncQueue.
func NewSyncQueue[T any]() *SyncQueue[T] {
	return &SyncQueue[T]{
		q: &RingQueue[T]{storage: make([]T, DefaultCapacity)},
		C: make(chan struct{}, 1),
	}
}

// Add implements Queue.
func (q *SyncQueue[T]) Add(elem T) {
	q.mu.Lock()
	q.q.Push(elem)
	q.mu.Unlock()

	select {
	case q.C <- struct{}{}:
	default:
	}
}

// Pop implements Queue.
func (q *SyncQueue[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.q.Empty() {
		var zero T
		return zero, false
	}
	elem, _ := q.q.Pop()
	return elem, true
}

// Peek implements Queue.
func (q *SyncQueue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.q.Empty() {
		var zero T
		return zero, false
	}
	elem, _ := q.q.Front()
	return elem, true
}

// Size implements Queue.
func (q *SyncQueue[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.q.Len()
}

// Snapshot returns the queued elements, oldest first.
func (q *SyncQueue[T]) Snapshot() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]T, q.q.Len())
	q.q.linearize(out)
	return out
}
