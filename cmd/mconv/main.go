// Package main provides the CLI for the mconv fact file converter.
package main

import (
	"fmt"
	"os"

	"github.com/wikikg-labs/mconv/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
