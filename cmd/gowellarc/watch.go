package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/philipparndt/gowellarc/internal/logging"
	"github.com/philipparndt/gowellarc/pkg/watcher"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var solver solverFlags
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch <case-file>",
		Short: "Re-solve a case file whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFrom(ctx)
			opts := &requestOptions{casePath: args[0], solver: solver}

			var mu sync.Mutex
			resolve := func() {
				mu.Lock()
				defer mu.Unlock()

				out := cmd.OutOrStdout()
				c, err := opts.load(cmd)
				if err != nil {
					logger.Error(ctx, "failed to load case", logging.String("path", args[0]), logging.Any("error", err))
					return
				}
				if err := report(ctx, out, c); err != nil {
					logger.Warn(ctx, "case has no valid solution", logging.String("path", args[0]), logging.Any("error", err))
				}
				fmt.Fprintln(out)
			}

			fw, err := watcher.NewFileWatcher(debounce, logger)
			if err != nil {
				return err
			}
			defer fw.Close()

			if err := fw.Watch([]string{args[0]}, func(string) { resolve() }); err != nil {
				return err
			}

			resolve()
			logger.Info(ctx, "watching case file", logging.String("path", args[0]))

			if err := fw.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	solver.register(cmd.Flags())
	cmd.Flags().DurationVar(&debounce, "debounce", 200*time.Millisecond, "wait this long after a change before solving")
	return cmd
}
