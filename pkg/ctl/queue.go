package ctl

import (
	"fmt"
	"strings"

	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hanfei1991/collections/pkg/config"
	"github.com/hanfei1991/collections/pkg/containers"
)

func newQueueCmd(cfg *config.Config) *cobra.Command {
	var pops int
	cmd := &cobra.Command{
		Use:   "queue [items...]",
		Short: "Push items to a ring queue, pop some of them and print the rest",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := containers.NewRingQueueFrom[string](containers.Slice[string](args), cfg.Queue.Capacity)
			if err != nil {
				return err
			}
			popped := make([]string, 0, pops)
			for i := 0; i < pops; i++ {
				v, err := q.Pop()
				if err != nil {
					return err
				}
				popped = append(popped, v)
			}

			rest := make([]string, q.Len())
			if q.Len() > 0 {
				if err := q.CopyTo(rest, 0); err != nil {
					return err
				}
			}
			log.Debug("queue command done",
				zap.Strings("popped", popped),
				zap.Int("remaining", q.Len()),
				zap.Int("capacity", q.Cap()))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "popped: %s\n", strings.Join(popped, " "))
			fmt.Fprintf(out, "queue: %s\n", strings.Join(rest, " "))
			return nil
		},
	}
	cmd.Flags().IntVarP(&pops, "pop", "p", 0, "number of items to pop")
	return cmd
}
