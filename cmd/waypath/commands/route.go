package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/waypath/dijkstra"
)

type routeFlags struct {
	edges        []string
	vertices     []string
	from         string
	to           string
	undirected   bool
	maxDistance  int64
	infThreshold int64
}

func newRouteCommand(root *rootFlags) *cobra.Command {
	flags := &routeFlags{}

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Print the cheapest route between two vertices",
		Long: `Build a graph from --edge flags and print the cheapest route from --from
to --to as "a -> b -> c : distance". An unreachable destination prints
"c : unreachable" and is not an error.

Example:
  waypath route -e A:B:1 -e B:C:2 -e A:C:5 --from A --to C`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(cmd, root, flags)
		},
	}

	cmd.Flags().StringArrayVarP(&flags.edges, "edge", "e", nil, "directed edge from:to:weight (repeatable)")
	cmd.Flags().StringArrayVar(&flags.vertices, "vertex", nil, "isolated vertex (repeatable)")
	cmd.Flags().StringVar(&flags.from, "from", "", "source vertex")
	cmd.Flags().StringVar(&flags.to, "to", "", "destination vertex")
	cmd.Flags().BoolVar(&flags.undirected, "undirected", false, "add every edge in both directions")
	cmd.Flags().Int64Var(&flags.maxDistance, "max-distance", -1, "do not explore beyond this distance (-1 = no limit)")
	cmd.Flags().Int64Var(&flags.infThreshold, "inf-threshold", 0, "treat edges with weight >= this as closed (0 = none)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runRoute(cmd *cobra.Command, root *rootFlags, flags *routeFlags) error {
	g, err := buildGraph(flags.edges, flags.undirected)
	if err != nil {
		return err
	}
	for _, v := range flags.vertices {
		if err = g.AddVertex(v); err != nil {
			return fmt.Errorf("add vertex %q: %w", v, err)
		}
	}
	root.logger.Debug("graph built", "vertices", g.VertexCount(), "edges", g.EdgeCount())

	opts := []dijkstra.Option{root.settleLogger()}
	if flags.maxDistance >= 0 {
		opts = append(opts, dijkstra.WithMaxDistance(flags.maxDistance))
	}
	if flags.infThreshold > 0 {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(flags.infThreshold))
	}

	res, err := dijkstra.ShortestPath(g, flags.from, flags.to, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res)

	return nil
}
