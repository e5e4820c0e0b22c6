package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avelyra/grafo/core"
	"github.com/avelyra/grafo/dijkstra"
	"github.com/avelyra/grafo/edgelist"
)

var pathDirected bool

var pathCmd = &cobra.Command{
	Use:   "path <edge-list> <start> <end>",
	Short: "Find the shortest path between two vertices",
	Long: `Load a graph from an edge-list file and print the cheapest route from
start to end, computed with Dijkstra's algorithm. Edge weights must be
non-negative.`,
	Args: cobra.ExactArgs(3),
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)
	pathCmd.Flags().BoolVar(&pathDirected, "directed", false, "treat edges as directed")
}

func runPath(cmd *cobra.Command, args []string) error {
	g := core.NewGraph(core.WithDirected(pathDirected))
	if err := edgelist.Load(args[0], g); err != nil {
		return fmt.Errorf("failed to load graph: %w", err)
	}

	start, end := args[1], args[2]
	p, err := dijkstra.ShortestPath(g, start, end)
	if errors.Is(err, dijkstra.ErrNoPath) {
		fmt.Fprintf(cmd.OutOrStdout(), "No path exists between %s and %s.\n", start, end)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Shortest path from %s to %s: %s (cost %d)\n",
		start, end, strings.Join(p.Vertices, " -> "), p.Cost)

	return nil
}
