// Package main provides the shipquote CLI entry point.
package main

import (
	"os"

	"github.com/mesh-intelligence/shipquote/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
