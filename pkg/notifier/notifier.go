package notifier

import (
	"context"
	"sync"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/hanfei1991/collections/pkg/containers"
)

const receiverBufferSize = 16

// Notifier is the sending endpoint of a single-producer-multiple-consumer
// notification mechanism. Events are delivered to every live receiver in
// the order they were notified.
type Notifier[T any] struct {
	mu sync.Mutex
	// receivers are compared by identity
	receivers *containers.ScanSet[*Receiver[T]]
	nextID    atomic.Int64

	queue *containers.SyncQueue[T]

	closeCh       chan struct{}
	synchronizeCh chan struct{}
	closeOnce     sync.Once
}

// Receiver is the receiving endpoint of a single-producer-multiple-consumer
// notification mechanism.
type Receiver[T any] struct {
	id int64
	C  chan T

	closeOnce sync.Once
	closed    atomic.Bool

	notifier *Notifier[T]
}

// NewNotifier creates a new Notifier.
func NewNotifier[T any]() *Notifier[T] {
	receivers, err := containers.NewScanSet[*Receiver[T]](containers.DefaultCapacity, nil)
	if err != nil {
		log.Panic("create receiver set failed", zap.Error(err))
	}
	ret := &Notifier[T]{
		receivers:     receivers,
		queue:         containers.NewSyncQueue[T](),
		closeCh:       make(chan struct{}),
		synchronizeCh: make(chan struct{}),
	}

	go ret.run()
	return ret
}

// NewReceiver creates a new Receiver associated with the Notifier.
func (n *Notifier[T]) NewReceiver() *Receiver[T] {
	receiver := &Receiver[T]{
		id:       n.nextID.Add(1),
		C:        make(chan T, receiverBufferSize),
		notifier: n,
	}

	n.mu.Lock()
	n.receivers.Add(receiver)
	n.mu.Unlock()
	return receiver
}

// Notify sends a new notification event.
func (n *Notifier[T]) Notify(event T) {
	n.queue.Add(event)
}

// Close closes the notifier and every receiver still registered.
func (n *Notifier[T]) Close() {
	n.closeOnce.Do(func() {
		close(n.closeCh)
		<-n.synchronizeCh

		for _, receiver := range n.snapshotReceivers() {
			receiver.close()
		}
		log.Debug("notifier closed")
	})
}

// Flush waits until all pending notifications have been taken off the
// queue.
func (n *Notifier[T]) Flush(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return errors.Trace(ctx.Err())
		case <-n.synchronizeCh:
		}

		if n.queue.Size() == 0 {
			return nil
		}
	}
}

func (n *Notifier[T]) numReceivers() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.receivers.Len()
}

func (n *Notifier[T]) removeReceiver(r *Receiver[T]) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.receivers.Remove(r)
}

// snapshotReceivers copies the receiver set so that delivery does not
// hold the lock, and receivers may come and go meanwhile.
func (n *Notifier[T]) snapshotReceivers() []*Receiver[T] {
	n.mu.Lock()
	defer n.mu.Unlock()

	ret := make([]*Receiver[T], n.receivers.Len())
	if len(ret) == 0 {
		return ret
	}
	if err := n.receivers.CopyTo(ret, 0); err != nil {
		log.Panic("copy receivers failed", zap.Error(err))
	}
	return ret
}

func (n *Notifier[T]) run() {
	defer close(n.synchronizeCh)

	for {
		select {
		case <-n.closeCh:
			return
		case n.synchronizeCh <- struct{}{}:
			// no-op here. Just a synchronization barrier.
		case <-n.queue.C:
			for {
				event, ok := n.queue.Pop()
				if !ok {
					break
				}
				if !n.deliver(event) {
					return
				}
			}
		}
	}
}

// deliver sends event to every open receiver. It returns false if the
// notifier was closed meanwhile.
func (n *Notifier[T]) deliver(event T) bool {
	for _, receiver := range n.snapshotReceivers() {
		if receiver.closed.Load() {
			continue
		}
		select {
		case <-n.closeCh:
			return false
		case receiver.C <- event:
		}
	}
	return true
}

func (r *Receiver[T]) close() {
	r.closed.Store(true)
	r.closeOnce.Do(func() {
		close(r.C)
	})
}

// Close closes the receiver. Events still buffered in C are dropped.
func (r *Receiver[T]) Close() {
	r.closed.Store(true)
	r.notifier.removeReceiver(r)
	// Wait for an in-flight delivery to notice the closed flag. Pending
	// events are drained so that the delivery cannot block on a full C.
	for {
		select {
		case <-r.C:
		case <-r.notifier.synchronizeCh:
			r.close()
			return
		case <-r.notifier.closeCh:
			r.close()
			return
		}
	}
}
