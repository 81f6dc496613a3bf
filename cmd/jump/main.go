package main

import (
	"fmt"
	"os"

	"github.com/jeffs/conf/internal/cli"
)

func main() {
	if err := cli.NewJumpCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "jump: %v\n", err)
		os.Exit(1)
	}
}
