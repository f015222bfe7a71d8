// Command evoglot builds constructed languages from CUE definitions,
// applies sound change rules and manages lexicons.
package main

import (
	"fmt"
	"os"

	"github.com/evoglot/evoglot/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
