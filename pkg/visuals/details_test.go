package visuals

import (
	"testing"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/league"
)

func TestDetailsFastestLapTeamResolvedThroughRoster(t *testing.T) {
	res := testResources(t)
	cfg := testConfig(t, Details)
	cfg.Ranking = testResultsRanking()
	// A record built by hand may carry a pilot without a team attached; the
	// strip resolves the team through the roster instead.
	cfg.FastestLap = &FastestLap{
		Pilot: &league.Pilot{Name: "SAINZ"},
		Lap:   "Tour 40/44",
		Time:  "1:45.903",
	}

	if _, err := Render(res, cfg); err != nil {
		t.Fatalf("Render: %v", err)
	}
}
