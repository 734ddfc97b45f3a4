package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "uvws",
		Short:         "Locate and inspect uv workspace configuration",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newFindCmd(),
		newCheckCmd(),
	)

	return cmd
}

// newLogger builds the stderr logger selected by --log-level.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	name, _ := cmd.Flags().GetString("log-level")
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", name, err)
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})), nil
}
