package main

import (
	"os"

	"github.com/wavenote/speechsubs/internal/adapters/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
