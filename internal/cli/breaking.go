package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/league"
	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/visuals"
)

// breakingOpts holds the command-line flags for the breaking command.
type breakingOpts struct {
	resourceOpts
	season  string
	team    string // team whose breaking colors and logo to use
	bg      string // background color, ignored when a team is set
	fg      string // foreground color, ignored when a team is set
	picture string // asset-relative path of the middle picture
	output  string
}

// newBreakingCmd creates the breaking command for one-off news banners.
func newBreakingCmd() *cobra.Command {
	opts := breakingOpts{
		bg:      "255,255,255",
		fg:      "0,0,0",
		picture: "circuits/photos/belgium.png",
	}

	cmd := &cobra.Command{
		Use:   "breaking [main] [second]",
		Short: "Render a breaking-news banner",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			second := ""
			if len(args) > 1 {
				second = args[1]
			}
			return runBreaking(cmd, args[0], second, &opts)
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&opts.season, "season", "season.toml", "season TOML file (for team colors)")
	cmd.Flags().StringVarP(&opts.team, "team", "t", "", "concerned team")
	cmd.Flags().StringVarP(&opts.bg, "background", "b", opts.bg, "background color (ignored with --team)")
	cmd.Flags().StringVarP(&opts.fg, "foreground", "f", opts.fg, "foreground color (ignored with --team)")
	cmd.Flags().StringVarP(&opts.picture, "input", "i", opts.picture, "asset-relative picture path")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")

	return cmd
}

func runBreaking(cmd *cobra.Command, main, second string, opts *breakingOpts) error {
	logger := loggerFromContext(cmd.Context())

	res, err := opts.build()
	if err != nil {
		return err
	}

	bg, err := league.ParseColor(opts.bg)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}
	fg, err := league.ParseColor(opts.fg)
	if err != nil {
		return fmt.Errorf("foreground: %w", err)
	}

	banner := &visuals.Breaking{
		Main:    main,
		Second:  second,
		Bg:      bg.NRGBA,
		Fg:      fg.NRGBA,
		Picture: opts.picture,
		Output:  opts.output,
	}
	if opts.team != "" {
		if cmd.Flags().Changed("background") || cmd.Flags().Changed("foreground") {
			printWarning("--background and --foreground are ignored with --team")
		}
		season, err := league.LoadSeason(opts.season)
		if err != nil {
			return err
		}
		team := season.Team(opts.team)
		if team == nil {
			return fmt.Errorf("unknown team %q", opts.team)
		}
		banner.Team = team
	}

	prog := newProgress(logger)
	path, err := banner.Render(res)
	if err != nil {
		return err
	}
	prog.done("Rendered breaking banner")

	printSuccess("Generated breaking banner")
	printFile(path)
	return nil
}
