// Command trimdoc trims whitespace from every string in a JSON or YAML
// document.
//
//	trimdoc [--format json|yaml] [--drop-empty] [file]
//
// With no file, or "-", the document is read from stdin. The result is
// written to stdout in the input format.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("trimdoc failed", "error", err)
		os.Exit(1)
	}
}
