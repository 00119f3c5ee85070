// waypath is a CLI for computing shortest routes on small directed graphs
// given entirely on the command line.
//
// Usage:
//
//	waypath route --edge 123:122:1 --edge 122:504:5 --edge 504:503:4 --from 123 --to 503
//	waypath demo
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/waypath/cmd/waypath/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
