package visuals

import (
	"testing"
	"time"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/league"
)

func TestParseLapTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"1:44.903", time.Minute + 44*time.Second + 903*time.Millisecond},
		{"0:59.001", 59*time.Second + time.Millisecond},
		{"2:05.000", 2*time.Minute + 5*time.Second},
		{NoTimeLabel, 5*time.Minute + 59*time.Second + 999*time.Millisecond},
	}
	for _, tt := range tests {
		got, err := ParseLapTime(tt.in)
		if err != nil {
			t.Errorf("ParseLapTime(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLapTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseLapTimeInvalid(t *testing.T) {
	for _, in := range []string{"", "1:44", "44.903", "x:44.903", "1:xx.903", "1:44.xxx"} {
		if _, err := ParseLapTime(in); err == nil {
			t.Errorf("ParseLapTime(%q) succeeded, want error", in)
		}
	}
}

func TestRankByTime(t *testing.T) {
	race := testRace()
	cfg := &Config{
		Race: race,
		Ranking: []RankingRow{
			{Name: "GASLY", Time: "1:46.120"},
			{Name: "LECLERC", Time: "1:44.903"},
			{Name: "SAINZ", Time: NoTimeLabel},
		},
	}

	entries, err := (&fastestGenerator{}).rankByTime(cfg)
	if err != nil {
		t.Fatalf("rankByTime: %v", err)
	}
	got := []string{entries[0].pilot.Name, entries[1].pilot.Name, entries[2].pilot.Name}
	want := []string{"LECLERC", "GASLY", "SAINZ"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if entries[2].label != NoTimeLabel {
		t.Errorf("no-time label = %q, want placeholder kept verbatim", entries[2].label)
	}
}

func TestRankByTimeSheetOrderBreaksTies(t *testing.T) {
	race := testRace()
	cfg := &Config{
		Race: race,
		Ranking: []RankingRow{
			{Name: "SAINZ", Time: NoTimeLabel},
			{Name: "LECLERC", Time: "1:44.903"},
			{Name: "GASLY", Time: NoTimeLabel},
		},
	}

	entries, err := (&fastestGenerator{}).rankByTime(cfg)
	if err != nil {
		t.Fatalf("rankByTime: %v", err)
	}
	if entries[1].pilot.Name != "SAINZ" || entries[2].pilot.Name != "GASLY" {
		t.Errorf("tied no-time rows reordered: %s, %s", entries[1].pilot.Name, entries[2].pilot.Name)
	}
}

func TestRankByTimeNeedsThreeRows(t *testing.T) {
	cfg := &Config{
		Race:    testRace(),
		Ranking: []RankingRow{{Name: "LECLERC", Time: "1:44.903"}},
	}
	if _, err := (&fastestGenerator{}).rankByTime(cfg); err == nil {
		t.Fatal("two-row sheet accepted, want error")
	}
}

// testRace builds a minimal three-pilot race shared by the ordering tests.
func testRace() *league.Race {
	ferrari := &league.Team{Name: "Ferrari", Title: "Ferrari"}
	alpine := &league.Team{Name: "Alpine", Title: "Alpine"}
	return &league.Race{
		Round:   1,
		Laps:    44,
		Circuit: &league.Circuit{Name: "Spa-Francorchamps", ID: "belgium", LapLength: 7.004},
		Pilots: map[string]*league.Pilot{
			"LECLERC": {Name: "LECLERC", Team: ferrari, Number: "16"},
			"SAINZ":   {Name: "SAINZ", Team: ferrari, Number: "55"},
			"GASLY":   {Name: "GASLY", Team: alpine, Number: "10"},
		},
		Roster: []string{"LECLERC", "SAINZ", "GASLY"},
		Teams:  []*league.Team{ferrari, alpine},
	}
}
