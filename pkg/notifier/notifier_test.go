package notifier

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNotifierBasics(t *testing.T) {
	n := NewNotifier[int]()
	defer n.Close()

	const (
		numReceivers = 10
		numEvents    = 100000
		finEv        = math.MaxInt
	)

	receivers := make([]*Receiver[int], 0, numReceivers)
	for i := 0; i < numReceivers; i++ {
		receivers = append(receivers, n.NewReceiver())
	}

	var g errgroup.Group
	for _, r := range receivers {
		r := r
		g.Go(func() error {
			defer r.Close()

			var lastEv int
			for ev := range r.C {
				if ev == finEv {
					return nil
				}
				if lastEv != 0 {
					require.Equal(t, lastEv+1, ev)
				}
				lastEv = ev
			}
			return nil
		})
	}

	for i := 1; i <= numEvents; i++ {
		n.Notify(i)
	}

	n.Notify(finEv)
	err := n.Flush(context.Background())
	require.NoError(t, err)

	require.NoError(t, g.Wait())
}

func TestNotifierReceiverClose(t *testing.T) {
	n := NewNotifier[string]()
	defer n.Close()

	kept := n.NewReceiver()
	dropped := n.NewReceiver()
	require.Equal(t, 2, n.numReceivers())

	// nobody reads from dropped, Close must not wait for it to drain
	n.Notify("a")
	dropped.Close()
	require.Equal(t, 1, n.numReceivers())
	_, ok := <-dropped.C
	for ok {
		_, ok = <-dropped.C
	}

	n.Notify("b")
	require.NoError(t, n.Flush(context.Background()))

	var got []string
	for len(got) < 2 {
		select {
		case ev := <-kept.C:
			got = append(got, ev)
		case <-time.After(10 * time.Second):
			t.Fatal("timeout waiting for events")
		}
	}
	require.Equal(t, []string{"a", "b"}, got)

	kept.Close()
	require.Equal(t, 0, n.numReceivers())
}

func TestNotifierCloseClosesReceivers(t *testing.T) {
	n := NewNotifier[int]()
	r := n.NewReceiver()
	n.Close()
	// closing twice is fine
	n.Close()

	_, ok := <-r.C
	require.False(t, ok)
	r.Close()
}

func TestNotifierFlushCanceled(t *testing.T) {
	n := NewNotifier[int]()
	defer n.Close()

	// a receiver nobody reads from blocks delivery once its buffer is full
	r := n.NewReceiver()
	for i := 0; i < 2*receiverBufferSize; i++ {
		n.Notify(i)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	err := n.Flush(ctx)
	require.Error(t, err)
	require.Equal(t, context.DeadlineExceeded, errors.Cause(err))

	r.Close()
}
