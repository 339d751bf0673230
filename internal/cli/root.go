package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ang-cai/dinner/pkg/buildinfo"
)

// Execute runs the dinner CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (plan, edges,
// render), configures logging based on the --verbose flag, and executes the
// command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext is [Execute] with a caller-provided context, so the binary
// can cancel in-flight work on SIGINT/SIGTERM.
func ExecuteContext(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "dinner",
		Short:        "Dinner plans the largest invite list that seats no feuding pair",
		Long:         `Dinner computes the largest set of guests that can share a table when some pairs dislike each other - a maximum independent set over the dislike graph. Guest lists are plain JSON or TOML files.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPlanCmd())
	root.AddCommand(newEdgesCmd())
	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(ctx)
}

// defaultCacheDir resolves the cache directory: DINNER_CACHE_DIR if set,
// otherwise <user-cache>/dinner.
func defaultCacheDir() string {
	if dir := os.Getenv("DINNER_CACHE_DIR"); dir != "" {
		return dir
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return ".dinner-cache"
	}
	return base + string(os.PathSeparator) + "dinner"
}
