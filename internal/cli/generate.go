package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/league"
	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/visuals"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	resourceOpts
	season     string // season TOML file
	output     string // output file override
	visualType string // visual type override
}

// newGenerateCmd creates the generate command: it resolves an event file
// against the season and renders the requested visual.
func newGenerateCmd() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [event-file]",
		Short: "Render one visual from an event file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.visualType != "" {
				if err := validateVisualType(opts.visualType); err != nil {
					return err
				}
			}
			return runGenerate(cmd, args[0], &opts)
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&opts.season, "season", "season.toml", "season TOML file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (overrides the event file)")
	cmd.Flags().StringVarP(&opts.visualType, "type", "t", "", "visual type (overrides the event file)")

	return cmd
}

// validateVisualType fails fast on a type the dispatcher does not know,
// listing the valid ones.
func validateVisualType(s string) error {
	for _, t := range visuals.ValidTypes() {
		if s == string(t) {
			return nil
		}
	}
	names := make([]string, 0, len(visuals.ValidTypes()))
	for _, t := range visuals.ValidTypes() {
		names = append(names, string(t))
	}
	return fmt.Errorf("invalid type %q: valid types are %s", s, strings.Join(names, ", "))
}

func runGenerate(cmd *cobra.Command, eventPath string, opts *generateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	res, err := opts.build()
	if err != nil {
		return err
	}

	logger.Debug("loading season", "file", opts.season)
	season, err := league.LoadSeason(opts.season)
	if err != nil {
		return err
	}

	logger.Debug("loading event", "file", eventPath)
	cfg, err := visuals.LoadEvent(eventPath, season)
	if err != nil {
		return err
	}
	if opts.visualType != "" {
		cfg.Type = visuals.Type(opts.visualType)
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}

	spinner := newRenderSpinner(ctx, string(cfg.Type))
	spinner.Start()
	prog := newProgress(logger)
	path, err := visuals.Render(res, cfg)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Rendering %s failed", cfg.Type))
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %s", cfg.Type))

	printSuccess("Generated %s visual", StyleHighlight.Render(string(cfg.Type)))
	printFile(path)
	return nil
}
