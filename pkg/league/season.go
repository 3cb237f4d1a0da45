package league

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Season is the static data of one competitive season: the team list, the
// calendar circuits and the pilot roster, as declared in a TOML document.
type Season struct {
	Teams    []*Team
	Circuits []*Circuit
	Pilots   map[string]*Pilot
	Roster   []string

	// DefaultTeam backs synthetic pilots for unresolvable result rows.
	DefaultTeam *Team
	// ReservistTeam is attached to roster rows marked as reservists.
	ReservistTeam *Team

	teamsByName    map[string]*Team
	circuitsByName map[string]*Circuit
}

type seasonFile struct {
	DefaultTeam   string       `toml:"default_team"`
	ReservistTeam string       `toml:"reservist_team"`
	Teams         []*Team      `toml:"teams"`
	Circuits      []*Circuit   `toml:"circuits"`
	Pilots        []pilotEntry `toml:"pilots"`
}

type pilotEntry struct {
	Name   string `toml:"name"`
	Team   string `toml:"team"`
	Number string `toml:"number"`
	Title  string `toml:"title"`
}

// LoadSeason decodes a season TOML file. Pilot rows must reference a
// declared team; circuits and teams are indexed by their display name and
// name respectively.
func LoadSeason(path string) (*Season, error) {
	var file seasonFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("decode season %s: %w", path, err)
	}
	return buildSeason(&file)
}

func buildSeason(file *seasonFile) (*Season, error) {
	s := &Season{
		Teams:          file.Teams,
		Circuits:       file.Circuits,
		Pilots:         make(map[string]*Pilot, len(file.Pilots)),
		teamsByName:    make(map[string]*Team, len(file.Teams)),
		circuitsByName: make(map[string]*Circuit, len(file.Circuits)),
	}
	for _, t := range file.Teams {
		if t.Name == "" {
			return nil, fmt.Errorf("season: team without a name")
		}
		s.teamsByName[t.Name] = t
	}
	for _, c := range file.Circuits {
		s.circuitsByName[c.Name] = c
	}
	for _, entry := range file.Pilots {
		team := s.teamsByName[entry.Team]
		if team == nil {
			return nil, fmt.Errorf("season: pilot %q references unknown team %q", entry.Name, entry.Team)
		}
		number := entry.Number
		if number == "" {
			number = DefaultNumber
		}
		s.Pilots[entry.Name] = &Pilot{Name: entry.Name, Team: team, Number: number, Title: entry.Title}
		s.Roster = append(s.Roster, entry.Name)
	}
	if file.DefaultTeam != "" {
		s.DefaultTeam = s.teamsByName[file.DefaultTeam]
		if s.DefaultTeam == nil {
			return nil, fmt.Errorf("season: unknown default team %q", file.DefaultTeam)
		}
	}
	if file.ReservistTeam != "" {
		s.ReservistTeam = s.teamsByName[file.ReservistTeam]
		if s.ReservistTeam == nil {
			return nil, fmt.Errorf("season: unknown reservist team %q", file.ReservistTeam)
		}
	}
	return s, nil
}

// Team looks a team up by name; nil when absent.
func (s *Season) Team(name string) *Team { return s.teamsByName[name] }

// CircuitByName looks a circuit up by display name; nil when absent.
func (s *Season) CircuitByName(name string) *Circuit { return s.circuitsByName[name] }
