// Package commands implements the grafo command-line interface: one-shot
// graph queries over edge-list files, document export, and an
// interactive shell owning a single in-memory graph.
package commands

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "grafo",
	Short: "Build and inspect weighted graphs",
	Long: `grafo builds weighted graphs (directed or undirected) from edge-list
files or interactively, and answers basic graph queries: order and
size, degrees, adjacency, Eulerian classification, and single-source
shortest paths via Dijkstra's algorithm.`,
	SilenceUsage: true,
}

// Execute runs the root command and returns its error, if any.
func Execute() error {
	return rootCmd.Execute()
}
