package main

import (
	"fmt"
	"os"

	"github.com/musicinmybrain/uv/internal/ui"
)

// Set via -ldflags at build time.
var version = "dev"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err))
		os.Exit(1)
	}
}
