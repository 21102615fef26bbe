package main

import (
	"os"

	"github.com/qdastamp/qdastamp/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
