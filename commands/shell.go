package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avelyra/grafo/core"
	"github.com/avelyra/grafo/dijkstra"
	"github.com/avelyra/grafo/edgelist"
	"github.com/avelyra/grafo/euler"
)

var shellDirected bool

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive graph session",
	Long: `Open an interactive session owning a single in-memory graph. Commands
mutate or query that graph one at a time; type "help" for the list.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
	shellCmd.Flags().BoolVar(&shellDirected, "directed", false, "start with a directed graph")
}

func runShell(cmd *cobra.Command, _ []string) error {
	g := core.NewGraph(core.WithDirected(shellDirected))
	// Prompt only when a human is typing; piped scripts get clean output.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	return shellLoop(g, cmd.InOrStdin(), cmd.OutOrStdout(), interactive)
}

const shellHelp = `Commands:
  add-vertex <id>              add a vertex
  add-edge <from> <to> [w]     add an edge (weight defaults to 1)
  load <path>                  import an edge-list file
  show                         print the adjacency structure
  info                         print order and size
  adjacent <v>                 list neighbors of a vertex
  degree <v>                   print the degree of a vertex
  connected <v1> <v2>          check whether v1 has an edge to v2
  euler                        Eulerian classification
  path <start> <end>           shortest path via Dijkstra
  directed <on|off>            toggle directedness for new edges
  help                         this text
  quit                         leave the shell`

// shellLoop dispatches one command per input line against g until the
// input drains or the user quits. Command failures are reported to out
// and the session continues; only input read failures abort the loop.
func shellLoop(g *core.Graph, in io.Reader, out io.Writer, interactive bool) error {
	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, "grafo> ")
		}
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			break
		}
		if err := shellDispatch(g, out, fields[0], fields[1:]); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("shell: read failed: %w", err)
	}

	return nil
}

var errShellUsage = errors.New("wrong arguments, type \"help\" for usage")

func shellDispatch(g *core.Graph, out io.Writer, name string, args []string) error {
	switch name {
	case "help":
		fmt.Fprintln(out, shellHelp)

	case "add-vertex":
		if len(args) != 1 {
			return errShellUsage
		}
		g.AddVertex(args[0])
		fmt.Fprintf(out, "added vertex %s\n", args[0])

	case "add-edge":
		if len(args) != 2 && len(args) != 3 {
			return errShellUsage
		}
		weight := core.DefaultEdgeWeight
		if len(args) == 3 {
			w, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("bad weight %q: %w", args[2], err)
			}
			weight = w
		}
		g.AddEdge(args[0], args[1], weight)
		fmt.Fprintf(out, "added edge %s -> %s (weight %d)\n", args[0], args[1], weight)

	case "load":
		if len(args) != 1 {
			return errShellUsage
		}
		if err := edgelist.Load(args[0], g); err != nil {
			return err
		}
		fmt.Fprintf(out, "loaded %s\n", args[0])

	case "show":
		fmt.Fprint(out, g)

	case "info":
		fmt.Fprintf(out, "order=%d size=%d\n", g.Order(), g.Size())

	case "adjacent":
		if len(args) != 1 {
			return errShellUsage
		}
		fmt.Fprintf(out, "adjacent to %s: %s\n", args[0], strings.Join(g.AdjacentVertices(args[0]), ", "))

	case "degree":
		if len(args) != 1 {
			return errShellUsage
		}
		if g.Directed() {
			fmt.Fprintf(out, "degree of %s: in=%d out=%d\n", args[0], g.InDegree(args[0]), g.Degree(args[0]))
		} else {
			fmt.Fprintf(out, "degree of %s: %d\n", args[0], g.Degree(args[0]))
		}

	case "connected":
		if len(args) != 2 {
			return errShellUsage
		}
		if g.AreAdjacent(args[0], args[1]) {
			fmt.Fprintf(out, "%s and %s are adjacent\n", args[0], args[1])
		} else {
			fmt.Fprintf(out, "%s and %s are not adjacent\n", args[0], args[1])
		}

	case "euler":
		fmt.Fprintf(out, "the graph is %s\n", euler.Classify(g))

	case "path":
		if len(args) != 2 {
			return errShellUsage
		}
		p, err := dijkstra.ShortestPath(g, args[0], args[1])
		if errors.Is(err, dijkstra.ErrNoPath) {
			fmt.Fprintf(out, "no path exists between %s and %s\n", args[0], args[1])
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "shortest path: %s (cost %d)\n", strings.Join(p.Vertices, " -> "), p.Cost)

	case "directed":
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			return errShellUsage
		}
		g.SetDirected(args[0] == "on")
		fmt.Fprintf(out, "directed=%v (existing edges are unchanged)\n", g.Directed())

	default:
		return fmt.Errorf("unknown command %q, type \"help\" for usage", name)
	}

	return nil
}
