// Command junction is a demo harness for the intersection controller. It
// wires the controller to a configurable store and publishers and exposes
// the controller operations as subcommands.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
