// Command bursa is the ambient-stack CLI wrapping the bursa/parser
// package: it reads a .bursa file, runs parser.Parse, and formats the
// result or its diagnostics. It implements none of the semantic
// validation, balance computation, or editor surface spec.md scopes out
// of the parser itself.
package main

import (
	"os"

	"github.com/weiliddat/bursa/cmd/bursa/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
