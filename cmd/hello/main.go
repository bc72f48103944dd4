// Command hello writes "Hello World!" for every line read from stdin.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/hello/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
