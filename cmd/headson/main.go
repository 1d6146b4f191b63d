// Package main is the entry point for the headson CLI tool.
package main

import (
	"os"

	"github.com/headsonhq/headson/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
