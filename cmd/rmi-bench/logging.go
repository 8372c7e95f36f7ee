package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func logLevel(cmd *cobra.Command) slog.Level {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
