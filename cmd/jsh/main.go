package main

import (
	"fmt"
	"os"

	"github.com/jeffs/conf/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		if !cli.IsSilent(err) {
			fmt.Fprintf(os.Stderr, "jsh: %v\n", err)
		}
		os.Exit(int(cli.MapExitCode(err)))
	}
}
