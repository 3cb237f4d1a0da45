// Package visuals implements the branded-graphics generators: one layout
// routine per visual type, all consuming the same Config and
// producing a single raster file.
//
// Each generator is a single-pass transform: build the base canvas, paint
// the type-specific content, persist. Nothing is written to disk until every
// content step has succeeded.
package visuals

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/league"
)

// Type selects which generator produces a graphic.
type Type string

const (
	Results       Type = "results"
	Details       Type = "details"
	Fastest       Type = "fastest"
	Lineup        Type = "lineup"
	Presentation  Type = "presentation"
	Pole          Type = "pole"
	TeamsRanking  Type = "teams-ranking"
	PilotsRanking Type = "pilots-ranking"
	Numbers       Type = "numbers"
)

// ErrUnknownType reports a dispatch miss; the full error lists the valid
// visual types.
var ErrUnknownType = errors.New("unknown visual type")

// ValidTypes enumerates the dispatchable visual types in stable order.
func ValidTypes() []Type {
	types := make([]Type, 0, len(generators))
	for t := range generators {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// RankingRow is one row of the ranking table attached to a config: the
// sheet's display name plus the ancillary columns the active visual needs.
type RankingRow struct {
	Name string `toml:"name"`
	// Split is the gap-to-leader or status text.
	Split string `toml:"split"`
	// Tyres is the ordered tyre-compound code sequence.
	Tyres string `toml:"tyres"`
	// Time is the personal fastest lap, "M:SS.mmm" or the no-time sentinel.
	Time string `toml:"time"`
	// Total is the cumulative points column of the standings sheets.
	Total string `toml:"total"`
}

// FastestLap is the race's fastest-lap record.
type FastestLap struct {
	Pilot *league.Pilot
	Lap   string
	Time  string
}

// Config is the single input to every generator. It is produced by an
// external reader (spreadsheet, fixture file or test) and read-only here.
type Config struct {
	Type   Type
	Output string

	Pilots map[string]*league.Pilot
	Teams  []*league.Team
	Race   *league.Race

	Description   string
	Ranking       []RankingRow
	QualifRanking []*league.Pilot
	FastestLap    *FastestLap

	RankingTitle    string
	RankingSubtitle string
}

// OutputPath returns the configured output path, defaulting to a file named
// after the visual type.
func (c *Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return fmt.Sprintf("./%s.png", c.Type)
}

// Generator renders one visual type onto a fresh canvas and returns the
// written file path.
type Generator interface {
	Generate(res league.Resources, cfg *Config) (string, error)
}

var generators = map[Type]Generator{
	Results:       &resultsGenerator{},
	Details:       &detailsGenerator{},
	Fastest:       &fastestGenerator{},
	Lineup:        &lineupGenerator{},
	Presentation:  &presentationGenerator{},
	Pole:          &poleGenerator{},
	TeamsRanking:  &standingsGenerator{teams: true},
	PilotsRanking: &standingsGenerator{},
	Numbers:       &numbersGenerator{},
}

// Render dispatches the config to the generator registered for its visual
// type. An unrecognized type fails fast with the set of valid types.
func Render(res league.Resources, cfg *Config) (string, error) {
	gen, ok := generators[cfg.Type]
	if !ok {
		names := make([]string, 0, len(generators))
		for _, t := range ValidTypes() {
			names = append(names, string(t))
		}
		return "", fmt.Errorf("%w %q: valid types are %s",
			ErrUnknownType, cfg.Type, strings.Join(names, ", "))
	}
	return gen.Generate(res, cfg)
}
