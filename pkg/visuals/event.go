package visuals

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/league"
)

// eventFile is the TOML document describing one event's visuals: the race
// header, the ranking rows pulled off the results sheet and the one-off
// driver swaps.
type eventFile struct {
	Type   string `toml:"type"`
	Output string `toml:"output"`

	Round   int    `toml:"round"`
	Laps    int    `toml:"laps"`
	Day     string `toml:"day"`
	Month   string `toml:"month"`
	Hour    string `toml:"hour"`
	Format  string `toml:"format"`
	Circuit string `toml:"circuit"`

	Description     string `toml:"description"`
	RankingTitle    string `toml:"ranking_title"`
	RankingSubtitle string `toml:"ranking_subtitle"`

	// Swaps maps a stand-in driver's sheet name to the roster pilot they
	// replace for this race.
	Swaps map[string]string `toml:"swaps"`

	FastestLap struct {
		Pilot string `toml:"pilot"`
		Lap   string `toml:"lap"`
		Time  string `toml:"time"`
	} `toml:"fastest_lap"`

	Ranking       []RankingRow `toml:"ranking"`
	QualifRanking []string     `toml:"qualif_ranking"`
}

// racelessTypes are the visuals that work off the season alone.
var racelessTypes = map[Type]bool{
	TeamsRanking:  true,
	PilotsRanking: true,
	Numbers:       true,
}

// LoadEvent decodes an event TOML file and resolves it against the season
// into a ready-to-render config.
func LoadEvent(path string, season *league.Season) (*Config, error) {
	var file eventFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("decode event %s: %w", path, err)
	}
	return buildConfig(&file, season)
}

func buildConfig(file *eventFile, season *league.Season) (*Config, error) {
	cfg := &Config{
		Type:            Type(file.Type),
		Output:          file.Output,
		Pilots:          season.Pilots,
		Teams:           season.Teams,
		Description:     file.Description,
		Ranking:         file.Ranking,
		RankingTitle:    file.RankingTitle,
		RankingSubtitle: file.RankingSubtitle,
	}

	if racelessTypes[cfg.Type] {
		return cfg, nil
	}

	circuit := season.CircuitByName(file.Circuit)
	if circuit == nil {
		return nil, fmt.Errorf("event: unknown circuit %q", file.Circuit)
	}
	race := &league.Race{
		Round:       file.Round,
		Laps:        file.Laps,
		Day:         file.Day,
		Month:       file.Month,
		Hour:        file.Hour,
		Format:      file.Format,
		Circuit:     circuit,
		Pilots:      season.Pilots,
		Roster:      season.Roster,
		Teams:       season.Teams,
		DefaultTeam: season.DefaultTeam,
	}
	if len(file.Swaps) > 0 {
		race.Swappings = make(map[string]*league.Pilot, len(file.Swaps))
		for standIn, replaced := range file.Swaps {
			pilot, ok := season.Pilots[replaced]
			if !ok {
				return nil, fmt.Errorf("event: swap %q replaces unknown pilot %q", standIn, replaced)
			}
			race.Swappings[standIn] = pilot
		}
	}
	cfg.Race = race

	if file.FastestLap.Pilot != "" {
		cfg.FastestLap = &FastestLap{
			Pilot: race.Pilot(file.FastestLap.Pilot),
			Lap:   file.FastestLap.Lap,
			Time:  file.FastestLap.Time,
		}
	}
	for _, name := range file.QualifRanking {
		cfg.QualifRanking = append(cfg.QualifRanking, race.Pilot(name))
	}
	return cfg, nil
}
