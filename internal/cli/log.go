package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// newLogger builds the slog logger for a command run. Diagnostics go to
// stderr so JSON output on stdout stays parseable; --verbose lowers the
// level to debug, which is where the builder reports registrations.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
}
