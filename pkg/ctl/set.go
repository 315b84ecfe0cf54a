package ctl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hanfei1991/collections/pkg/config"
	"github.com/hanfei1991/collections/pkg/containers"
	derror "github.com/hanfei1991/collections/pkg/errors"
)

type (
	setCombinator func(*containers.ScanSet[string], containers.Enumerable[string], containers.Comparer[string]) (*containers.ScanSet[string], error)
	setPredicate  func(*containers.ScanSet[string], containers.Enumerable[string]) (bool, error)
)

var (
	setCombinators = map[string]setCombinator{
		"union":            containers.Union[string],
		"intersect":        containers.Intersect[string],
		"except":           containers.Except[string],
		"symmetric-except": containers.SymmetricExcept[string],
	}
	setPredicates = map[string]setPredicate{
		"subset":          (*containers.ScanSet[string]).IsSubsetOf,
		"superset":        (*containers.ScanSet[string]).IsSupersetOf,
		"proper-subset":   (*containers.ScanSet[string]).IsProperSubsetOf,
		"proper-superset": (*containers.ScanSet[string]).IsProperSupersetOf,
		"overlaps":        (*containers.ScanSet[string]).Overlaps,
		"equals":          (*containers.ScanSet[string]).SetEquals,
	}
)

func newSetCmd(cfg *config.Config) *cobra.Command {
	var (
		left, right []string
		ignoreCase  bool
	)
	cmd := &cobra.Command{
		Use:   "set <operation>",
		Short: "Apply a set operation to --left and --right",
		Long: `Apply a set operation to the set built from --left and the sequence --right.

Operations returning a set: union, intersect, except, symmetric-except.
Operations returning a boolean: subset, superset, proper-subset,
proper-superset, overlaps, equals.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cmp containers.Comparer[string]
			if ignoreCase {
				cmp = containers.EqualFunc[string](strings.EqualFold)
			}
			first, err := containers.NewScanSetFrom[string](containers.Slice[string](left), cmp, cfg.Set.Capacity)
			if err != nil {
				return err
			}
			second := containers.Slice[string](right)

			op := args[0]
			out := cmd.OutOrStdout()
			if combine, ok := setCombinators[op]; ok {
				result, err := combine(first, second, nil)
				if err != nil {
					return err
				}
				elems, err := containers.Collect[string](result)
				if err != nil {
					return err
				}
				log.Debug("set operation done", zap.String("operation", op), zap.Int("size", result.Len()))
				fmt.Fprintf(out, "{%s}\n", strings.Join(elems, ","))
				return nil
			}
			if pred, ok := setPredicates[op]; ok {
				ok, err := pred(first, second)
				if err != nil {
					return err
				}
				log.Debug("set predicate done", zap.String("operation", op), zap.Bool("result", ok))
				fmt.Fprintln(out, strconv.FormatBool(ok))
				return nil
			}
			return derror.ErrUnknownSetOperation.GenWithStackByArgs(op)
		},
	}
	cmd.Flags().StringSliceVar(&left, "left", nil, "elements of the left set")
	cmd.Flags().StringSliceVar(&right, "right", nil, "elements of the right sequence, duplicates are kept")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "compare elements case-insensitively")
	return cmd
}
