package main

import (
	"fmt"
	"os"

	"github.com/plugsmith-labs/plugsmith/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		// The root command silences Cobra's own error printing.
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
