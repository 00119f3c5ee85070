package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/waypath/dijkstra"
)

// rootFlags holds flags shared by every subcommand.
type rootFlags struct {
	verbose bool
	logger  *slog.Logger
}

// NewRootCommand builds the waypath command tree.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "waypath",
		Short: "Shortest routes on small weighted directed graphs",
		Long: `waypath computes the cheapest route between two vertices of a directed
graph with non-negative integer weights, using Dijkstra's algorithm.

Edges are given on the command line as from:to:weight.

Examples:
  # Cheapest route from 123 to 503
  waypath route -e 123:122:1 -e 122:504:5 -e 504:503:4 -e 123:503:20 --from 123 --to 503

  # Replay the built-in six-station network
  waypath demo`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if flags.verbose {
				level = slog.LevelDebug
			}
			flags.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
		},
	}

	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log every settled vertex")

	root.AddCommand(newRouteCommand(flags))
	root.AddCommand(newDemoCommand(flags))

	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// settleLogger returns a hook that logs settled vertices at debug level.
func (f *rootFlags) settleLogger() dijkstra.Option {
	logger := f.logger
	if logger == nil {
		logger = slog.Default()
	}

	return dijkstra.WithOnSettle(func(id string, dist int64) {
		logger.Debug("settled", "vertex", id, "distance", dijkstra.FormatDistance(dist))
	})
}
