package league

import (
	"os"
	"path/filepath"
	"testing"
)

const seasonTOML = `
default_team = "Reservists"

[[teams]]
name = "Ferrari"
title = "Ferrari"
subtitle = "Scuderia"
main_color = "#FFFFFF"
secondary_color = "#FF0000"
box_color = "#FF0000"

[teams.breaking]
fg = "255,255,255"
bg = "220,0,0"
line = "255,255,0"

[[teams]]
name = "Reservists"
title = "Reservists"

[[circuits]]
id = "belgium"
name = "Spa-Francorchamps"
lap_length = 5.412
best_lap = "1:44.903 (HAMILTON, 2020)"

[[pilots]]
name = "LECLERC"
team = "Ferrari"
number = "16"

[[pilots]]
name = "SAINZ"
team = "Ferrari"
`

func writeSeason(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "season.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write season: %v", err)
	}
	return path
}

func TestLoadSeason(t *testing.T) {
	s, err := LoadSeason(writeSeason(t, seasonTOML))
	if err != nil {
		t.Fatalf("LoadSeason: %v", err)
	}

	if len(s.Teams) != 2 {
		t.Fatalf("teams = %d, want 2", len(s.Teams))
	}
	ferrari := s.Team("Ferrari")
	if ferrari == nil {
		t.Fatal("Team(Ferrari) = nil")
	}
	if ferrari.Secondary != RGB(255, 0, 0) {
		t.Errorf("secondary color = %+v", ferrari.Secondary)
	}
	if ferrari.Breaking.Bg != RGB(220, 0, 0) {
		t.Errorf("breaking bg = %+v", ferrari.Breaking.Bg)
	}

	leclerc := s.Pilots["LECLERC"]
	if leclerc == nil || leclerc.Team != ferrari {
		t.Fatalf("LECLERC = %+v", leclerc)
	}
	if sainz := s.Pilots["SAINZ"]; sainz.Number != DefaultNumber {
		t.Errorf("number without explicit value = %q, want %q", sainz.Number, DefaultNumber)
	}
	if len(s.Roster) != 2 || s.Roster[0] != "LECLERC" {
		t.Errorf("roster = %v, want declaration order", s.Roster)
	}

	if c := s.CircuitByName("Spa-Francorchamps"); c == nil || c.ID != "belgium" {
		t.Errorf("circuit = %+v", c)
	}
	if s.DefaultTeam == nil || s.DefaultTeam.Name != "Reservists" {
		t.Errorf("default team = %+v", s.DefaultTeam)
	}
}

func TestLoadSeasonUnknownPilotTeam(t *testing.T) {
	body := `
[[teams]]
name = "Ferrari"

[[pilots]]
name = "LECLERC"
team = "McLaren"
`
	if _, err := LoadSeason(writeSeason(t, body)); err == nil {
		t.Fatal("pilot with unknown team accepted, want error")
	}
}

func TestLoadSeasonUnknownDefaultTeam(t *testing.T) {
	body := `
default_team = "Ghost"

[[teams]]
name = "Ferrari"
`
	if _, err := LoadSeason(writeSeason(t, body)); err == nil {
		t.Fatal("unknown default team accepted, want error")
	}
}

func TestLoadSeasonMissingFile(t *testing.T) {
	if _, err := LoadSeason(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("missing file accepted, want error")
	}
}
