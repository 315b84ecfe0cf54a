package ctl

import (
	"github.com/spf13/cobra"

	"github.com/hanfei1991/collections/pkg/config"
	"github.com/hanfei1991/collections/pkg/logutil"
)

// NewRootCmd creates the containerctl command tree.
func NewRootCmd() *cobra.Command {
	cfg := config.NewConfig()
	cmd := &cobra.Command{
		Use:           "containerctl",
		Short:         "Play with ring queues and scan sets from the shell",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Load(cmd.Root().PersistentFlags()); err != nil {
				return err
			}
			return logutil.InitLogger(cfg)
		},
	}
	cfg.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newFibCmd(cfg),
		newQueueCmd(cfg),
		newSetCmd(cfg),
		newBenchCmd(cfg),
	)
	return cmd
}
