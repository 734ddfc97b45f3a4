package main

import (
	"fmt"

	"github.com/musicinmybrain/uv/internal/workspace"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate uv.toml or pyproject.toml files against the option schema",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	f := workspace.Finder{Logger: logger}
	out := cmd.OutOrStdout()

	failed := 0
	for _, path := range args {
		opts, err := f.LoadFile(path)
		switch {
		case err != nil:
			failed++
			_, _ = fmt.Fprintf(out, "%s: FAILED\n  %v\n", path, err)
		case opts == nil:
			_, _ = fmt.Fprintf(out, "%s: no [tool.uv] table\n", path)
		default:
			_, _ = fmt.Fprintf(out, "%s: OK\n", path)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(args))
	}
	return nil
}
