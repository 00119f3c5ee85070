package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/waypath/dijkstra"
)

// stationEdges is the built-in six-station network.
var stationEdges = []string{
	"123:122:1", "123:304:2",
	"122:504:5", "122:123:1",
	"304:303:5", "304:123:2",
	"504:503:4", "504:122:5",
	"303:503:9", "303:304:5",
	"503:303:9", "503:504:4",
}

// stationQueries are the routes printed by the demo, in order.
var stationQueries = [][2]string{
	{"123", "503"},
	{"122", "303"},
	{"123", "503"},
	{"123", "503"},
	{"304", "503"},
}

func newDemoCommand(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print routes on the built-in six-station network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGraph(stationEdges, false)
			if err != nil {
				return err
			}
			run, err := dijkstra.NewRun(g, root.settleLogger())
			if err != nil {
				return err
			}
			for _, q := range stationQueries {
				run.Reset()
				res, err := run.Compute(q[0], q[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), res)
			}

			return nil
		},
	}
}
