// Package main is the entry point for the presencectl CLI.
package main

import (
	"os"

	"github.com/runger/presence/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
