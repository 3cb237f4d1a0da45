package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/encode"
	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/league"
	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/visuals"
)

// scheduleOpts holds the command-line flags for the schedule command.
type scheduleOpts struct {
	resourceOpts
	season string
}

// newScheduleCmd creates the schedule command: it prints when each grid row
// and pilot shot appears in the highlight video.
func newScheduleCmd() *cobra.Command {
	var opts scheduleOpts

	cmd := &cobra.Command{
		Use:   "schedule [event-file]",
		Short: "Print the grid-sequence overlay schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchedule(cmd, args[0], &opts)
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&opts.season, "season", "season.toml", "season TOML file")

	return cmd
}

func runSchedule(cmd *cobra.Command, eventPath string, opts *scheduleOpts) error {
	res, err := opts.build()
	if err != nil {
		return err
	}
	season, err := league.LoadSeason(opts.season)
	if err != nil {
		return err
	}
	cfg, err := visuals.LoadEvent(eventPath, season)
	if err != nil {
		return err
	}

	overlays, err := encode.Schedule(res, cfg)
	if err != nil {
		return err
	}

	printInfo("Overlay schedule (%d entries)", len(overlays))
	printKeyValue("Grid window", fmt.Sprintf("%.2fs %s %.2fs", encode.GridStart.Seconds(), iconArrow, encode.GridEnd.Seconds()))
	printKeyValue("Row time", fmt.Sprintf("%.2fs", encode.RowDuration.Seconds()))
	for _, o := range overlays {
		window := fmt.Sprintf("%7.2fs %s %6.2fs", o.Start.Seconds(), iconArrow, (o.Start + o.Duration).Seconds())
		detail := fmt.Sprintf("at (%d,%d)", o.Position.X, o.Position.Y)
		if o.Height > 0 {
			detail += fmt.Sprintf(" height %d, fade %.2fs/%.2fs", o.Height, o.FadeIn.Seconds(), o.FadeOut.Seconds())
		}
		fmt.Println("  " + StyleDim.Render(window) + "  " + StyleValue.Render(o.Asset) + "  " + StyleDim.Render(detail))
	}
	printNewline()
	printNextStep("Composite with", "ffmpeg / your editor of choice using the timings above")
	return nil
}
