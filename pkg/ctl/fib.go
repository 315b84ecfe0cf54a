package ctl

import (
	"fmt"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hanfei1991/collections/pkg/config"
	"github.com/hanfei1991/collections/pkg/containers"
	"github.com/hanfei1991/collections/pkg/fibonacci"
)

// errStopSequence ends a ForEach early once enough values were taken.
var errStopSequence = errors.New("stop sequence")

func newFibCmd(cfg *config.Config) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "fib",
		Short: "Print Fibonacci numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := containers.NewRingQueue[int64](cfg.Queue.Capacity)
			if err != nil {
				return err
			}
			err = containers.ForEach(fibonacci.Sequence(), func(v int64) error {
				if count > 0 && q.Len() >= count {
					return errStopSequence
				}
				q.Push(v)
				return nil
			})
			if err != nil && errors.Cause(err) != errStopSequence {
				return err
			}
			log.Debug("fibonacci numbers buffered",
				zap.Int("count", q.Len()),
				zap.Int("queue-capacity", q.Cap()))

			out := cmd.OutOrStdout()
			for !q.Empty() {
				v, err := q.Pop()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "how many numbers to print, 0 prints all of them")
	return cmd
}
