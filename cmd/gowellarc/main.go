package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/philipparndt/gowellarc/internal/logging"
	"github.com/philipparndt/gowellarc/version"
	"github.com/spf13/cobra"
)

// errInvalidSolution makes the process exit with code 2
var errInvalidSolution = errors.New("no valid solution")

type rootOptions struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "gowellarc",
		Short: "Solve S-shaped well path curves between two stations",
		Long: `gowellarc connects two well path stations, each with a position and a
direction, by an arc, a straight tangent section and a second arc. It
searches the control points so that both arcs match their target radii.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd)
			cmd.SetContext(logging.ContextWithLogger(cmd.Context(), logger))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error (env LOG_LEVEL)")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json (env LOG_FORMAT)")

	rootCmd.AddCommand(
		newSolveCmd(),
		newBuildCmd(),
		newSampleCmd(),
		newWatchCmd(),
	)
	return rootCmd
}

// logger prefers explicit flags over the environment
func (o *rootOptions) logger(cmd *cobra.Command) logging.Logger {
	flags := cmd.Flags()
	if flags.Changed("log-level") || flags.Changed("log-format") {
		return logging.New(logging.Config{Level: o.logLevel, Format: o.logFormat, Output: cmd.ErrOrStderr()})
	}
	return logging.NewFromEnv(o.logLevel, o.logFormat)
}

func loggerFrom(ctx context.Context) logging.Logger {
	if logger := logging.LoggerFromContext(ctx); logger != nil {
		return logger
	}
	return logging.Noop()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	stop()
	if errors.Is(err, errInvalidSolution) {
		os.Exit(2)
	}
	os.Exit(1)
}
