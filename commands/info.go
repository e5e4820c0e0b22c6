package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelyra/grafo/core"
	"github.com/avelyra/grafo/edgelist"
	"github.com/avelyra/grafo/euler"
)

var infoDirected bool

var infoCmd = &cobra.Command{
	Use:   "info <edge-list>",
	Short: "Show order, size and Eulerian classification of a graph",
	Long: `Load a graph from an edge-list file (one "source target weight" line
per edge) and print its vertex count, edge count, adjacency structure,
and Eulerian classification.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoDirected, "directed", false, "treat edges as directed")
}

func runInfo(cmd *cobra.Command, args []string) error {
	g := core.NewGraph(core.WithDirected(infoDirected))
	if err := edgelist.Load(args[0], g); err != nil {
		return fmt.Errorf("failed to load graph: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Order (vertices): %d\n", g.Order())
	fmt.Fprintf(out, "Size (edges):     %d\n", g.Size())
	fmt.Fprintf(out, "Classification:   %s\n", euler.Classify(g))
	fmt.Fprint(out, g)

	return nil
}
