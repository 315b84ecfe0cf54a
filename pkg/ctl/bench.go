package ctl

import (
	"fmt"

	"github.com/gavv/monotime"
	"github.com/google/uuid"
	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hanfei1991/collections/pkg/config"
	"github.com/hanfei1991/collections/pkg/containers"
)

func newBenchCmd(cfg *config.Config) *cobra.Command {
	var queueItems, setItems int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time ring queue and scan set operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := containers.NewRingQueue[int](cfg.Queue.Capacity)
			if err != nil {
				return err
			}
			start := monotime.Now()
			for i := 0; i < queueItems; i++ {
				q.Push(i)
			}
			for !q.Empty() {
				if _, err := q.Pop(); err != nil {
					return err
				}
			}
			queueElapsed := monotime.Since(start)

			ids := make([]string, 0, setItems)
			for i := 0; i < setItems; i++ {
				ids = append(ids, uuid.New().String())
			}
			s, err := containers.NewScanSet[string](cfg.Set.Capacity, nil)
			if err != nil {
				return err
			}
			start = monotime.Now()
			for _, id := range ids {
				s.Add(id)
			}
			setElapsed := monotime.Since(start)

			log.Info("bench finished",
				zap.Int("queue-items", queueItems),
				zap.Duration("queue-elapsed", queueElapsed),
				zap.Int("set-items", s.Len()),
				zap.Duration("set-elapsed", setElapsed))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ring queue: %d push/pop in %s (capacity grew to %d)\n", queueItems, queueElapsed, q.Cap())
			fmt.Fprintf(out, "scan set: %d adds in %s\n", s.Len(), setElapsed)
			return nil
		},
	}
	cmd.Flags().IntVar(&queueItems, "queue-items", 100000, "number of items pushed to the queue")
	cmd.Flags().IntVar(&setItems, "set-items", 1000, "number of uuids added to the set")
	return cmd
}
