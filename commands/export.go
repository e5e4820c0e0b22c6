package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avelyra/grafo/core"
	"github.com/avelyra/grafo/edgelist"
	"github.com/avelyra/grafo/graphspec"
)

var (
	exportFormat   string
	exportOutput   string
	exportDirected bool
)

var exportCmd = &cobra.Command{
	Use:   "export <graph-file>",
	Short: "Export a graph to a visualization format",
	Long: `Export a graph to Mermaid or JSON. The input is a YAML graph document
(.yaml/.yml) or an edge-list text file.

Examples:
  grafo export graph.yaml
  grafo export edges.txt --format json
  grafo export graph.yaml --format mermaid --output graph.md`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", "mermaid", "Output format: mermaid, json")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "Output file (default: stdout)")
	exportCmd.Flags().BoolVar(&exportDirected, "directed", false, "treat edge-list input as directed")
}

// loadExportSpec loads the input as a YAML document or, for any other
// extension, as an edge-list captured back into a Spec.
func loadExportSpec(path string) (*graphspec.Spec, error) {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return graphspec.LoadSpec(path)
	}

	g := core.NewGraph(core.WithDirected(exportDirected))
	if err := edgelist.Load(path, g); err != nil {
		return nil, fmt.Errorf("failed to load graph: %w", err)
	}

	return graphspec.FromGraph(g, ""), nil
}

func runExport(cmd *cobra.Command, args []string) error {
	spec, err := loadExportSpec(args[0])
	if err != nil {
		return err
	}

	var output []byte
	switch exportFormat {
	case "mermaid":
		output = []byte(spec.ToMermaid())
	case "json":
		output, err = spec.ToJSON()
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format: %s (use 'mermaid' or 'json')", exportFormat)
	}

	if exportOutput != "" {
		if err := os.WriteFile(exportOutput, output, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Graph exported to %s\n", exportOutput)

		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), string(output))

	return nil
}
