package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/buildinfo"
)

// Execute runs the visuals CLI and returns an error if any command fails.
//
// The root command wires the generate, breaking and schedule subcommands,
// configures logging based on the --verbose flag, and executes the command
// tree under ctx so an interrupt cancels in-flight work.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "visuals",
		Short:        "Generate branded race graphics for the league",
		Long:         `visuals renders the league's social-media graphics: results boards, lineups, race presentations, fastest-lap cards, pole banners and breaking-news pages, plus the overlay schedule for the starting-grid highlight video.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newBreakingCmd())
	root.AddCommand(newScheduleCmd())

	return root.ExecuteContext(ctx)
}
