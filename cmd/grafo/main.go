// grafo - build and inspect weighted graphs from the command line.
package main

import (
	"os"

	"github.com/avelyra/grafo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
