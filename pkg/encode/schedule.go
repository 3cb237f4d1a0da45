// Package encode computes the overlay schedule for the starting-grid
// highlight video: which image appears where, when, and for how long, ready
// to be fed to a compositing tool.
package encode

import (
	"fmt"
	"image"
	"time"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/league"
	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/visuals"
)

// Timing of the grid sequence inside the base video. The grid window is
// split evenly across the ten rows; within a row the right-hand pilot
// appears slightly after the left one.
const (
	GridStart  = 33950 * time.Millisecond
	GridEnd    = 66750 * time.Millisecond
	Rows       = 10
	PilotDelay = 300 * time.Millisecond
	FadeIn     = 500 * time.Millisecond
	FadeOut    = 350 * time.Millisecond
)

// PilotHeight is the height celebration shots are scaled to; the row plate
// keeps its native size.
const PilotHeight = 800

// Compositing anchors.
var (
	RowPosition        = image.Pt(100, 200)
	LeftPilotPosition  = image.Pt(320, 160)
	RightPilotPosition = image.Pt(1030, 160)
)

// RowDuration is the screen time of one grid row.
const RowDuration = (GridEnd - GridStart) / Rows

// Overlay is one scheduled image: an asset-relative path, where to place
// it, when it appears and for how long. A zero Height keeps the asset's
// native size.
type Overlay struct {
	Asset    string
	Position image.Point
	Height   int

	Start    time.Duration
	Duration time.Duration
	FadeIn   time.Duration
	FadeOut  time.Duration
}

// RowStart is when the numbered grid row (1-based) comes on screen.
func RowStart(row int) time.Duration {
	return GridStart + time.Duration(row-1)*RowDuration
}

// Schedule lays the ranking out over the grid sequence: two pilots per row,
// rows one after another across the grid window. Empty ranking names leave
// their grid slot empty.
func Schedule(res league.Resources, cfg *visuals.Config) ([]Overlay, error) {
	if cfg.Race == nil {
		return nil, fmt.Errorf("schedule: a race is required")
	}
	if len(cfg.Ranking) == 0 {
		return nil, fmt.Errorf("schedule: empty ranking")
	}
	if len(cfg.Ranking) > 2*Rows {
		return nil, fmt.Errorf("schedule: %d pilots exceed the %d grid slots", len(cfg.Ranking), 2*Rows)
	}

	var overlays []Overlay
	for i := 0; i < len(cfg.Ranking); i += 2 {
		row := i/2 + 1
		start := RowStart(row)
		overlays = append(overlays, Overlay{
			Asset:    res.Assets.GridRow(row),
			Position: RowPosition,
			Start:    start,
			Duration: RowDuration,
		})

		left, err := pilotOverlay(res, cfg, cfg.Ranking[i].Name, LeftPilotPosition, start)
		if err != nil {
			return nil, err
		}
		if left != nil {
			overlays = append(overlays, *left)
		}
		if i+1 < len(cfg.Ranking) {
			right, err := pilotOverlay(res, cfg, cfg.Ranking[i+1].Name, RightPilotPosition, start+PilotDelay)
			if err != nil {
				return nil, err
			}
			if right != nil {
				overlays = append(overlays, *right)
			}
		}
	}
	return overlays, nil
}

func pilotOverlay(res league.Resources, cfg *visuals.Config, name string, pos image.Point, start time.Duration) (*Overlay, error) {
	if name == "" {
		return nil, nil
	}
	pilot := cfg.Race.Pilot(name)
	photo, err := res.Assets.CelebrationPhoto(pilot.Name, pilot.Team.Name)
	if err != nil {
		return nil, fmt.Errorf("schedule: pilot %s: %w", name, err)
	}
	return &Overlay{
		Asset:    photo,
		Position: pos,
		Height:   PilotHeight,
		Start:    start,
		Duration: RowDuration - PilotDelay,
		FadeIn:   FadeIn,
		FadeOut:  FadeOut,
	}, nil
}
