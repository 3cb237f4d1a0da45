package visuals

import (
	"bytes"
	"image"
	"os"
	"testing"
)

func testResultsRanking() []RankingRow {
	return []RankingRow{
		{Name: "LECLERC", Split: "1:24:30.101", Tyres: "SM"},
		{Name: "SAINZ", Split: "5.460", Tyres: "S"},
		{Name: "GASLY", Split: "NT", Tyres: "MH"},
	}
}

func renderResultsBoard(t *testing.T, withRecord bool) *image.NRGBA {
	t.Helper()
	res := testResources(t)
	cfg := testConfig(t, Results)
	cfg.Ranking = testResultsRanking()
	if withRecord {
		cfg.FastestLap = &FastestLap{
			Pilot: cfg.Race.Pilot("SAINZ"),
			Lap:   "Tour 40/44",
			Time:  "1:45.903",
		}
	}
	numberFace, err := res.Fonts.Regular(32)
	if err != nil {
		t.Fatalf("Regular: %v", err)
	}
	nameFace, err := res.Fonts.Bold(30)
	if err != nil {
		t.Fatalf("Bold: %v", err)
	}
	board, err := (&resultsGenerator{}).rankingBoard(res, cfg, 1000, 300, numberFace, nameFace)
	if err != nil {
		t.Fatalf("rankingBoard: %v", err)
	}
	return board
}

func TestResultsBoardColumnGeometry(t *testing.T) {
	board := renderResultsBoard(t, false)

	const boardWidth = 1000
	colWidth := (boardWidth - (rowPaddingLeft + rowPaddingBetween + rowPaddingRight)) / 2
	secondColLeft := rowPaddingLeft + colWidth + rowPaddingBetween

	// The position badge fills the leading rowHeight square of every row, so
	// its corner pixel tells whether a row was pasted at a given spot.
	tests := []struct {
		name   string
		x, y   int
		opaque bool
	}{
		{"first row heads the left column", rowPaddingLeft + 2, 2, true},
		{"right column starts one hop down", secondColLeft + 2, 2, false},
		{"second row heads the right column", secondColLeft + 2, rowHop + 2, true},
		{"left column gap between rows", rowPaddingLeft + 2, rowHeight + 2, false},
		{"third row sits two hops down", rowPaddingLeft + 2, 2*rowHop + 2, true},
	}
	for _, tt := range tests {
		a := board.NRGBAAt(tt.x, tt.y).A
		if tt.opaque && a != 255 {
			t.Errorf("%s: alpha at (%d,%d) = %d, want 255", tt.name, tt.x, tt.y, a)
		}
		if !tt.opaque && a != 0 {
			t.Errorf("%s: alpha at (%d,%d) = %d, want 0", tt.name, tt.x, tt.y, a)
		}
	}
}

func TestResultsBoardHighlightsFastestLap(t *testing.T) {
	plain := renderResultsBoard(t, false)
	flagged := renderResultsBoard(t, true)

	const boardWidth = 1000
	colWidth := (boardWidth - (rowPaddingLeft + rowPaddingBetween + rowPaddingRight)) / 2
	secondColLeft := rowPaddingLeft + colWidth + rowPaddingBetween

	// SAINZ is the second entry, so the tint belongs to the right column's
	// first row. Sample the backdrop between the position badge and the pilot
	// strip where nothing overdraws it.
	x, y := secondColLeft+62, rowHop+30
	if got := plain.NRGBAAt(x, y); got.R > 50 || got.B > 50 {
		t.Errorf("unflagged row tinted at (%d,%d): %v", x, y, got)
	}
	if got := flagged.NRGBAAt(x, y); got.R < 100 || got.B < 100 {
		t.Errorf("fastest-lap row not tinted at (%d,%d): %v", x, y, got)
	}
	if got := flagged.NRGBAAt(rowPaddingLeft+62, 30); got.R > 50 || got.B > 50 {
		t.Errorf("winner row tinted at (%d,%d): %v", rowPaddingLeft+62, 30, got)
	}
}

func TestGenerateResultsFastestLapChangesOutput(t *testing.T) {
	res := testResources(t)
	render := func(t *testing.T, withRecord bool) []byte {
		cfg := testConfig(t, Results)
		cfg.Ranking = testResultsRanking()
		if withRecord {
			cfg.FastestLap = &FastestLap{
				Pilot: cfg.Race.Pilot("SAINZ"),
				Lap:   "Tour 40/44",
				Time:  "1:45.903",
			}
		}
		path, err := Render(res, cfg)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read output: %v", err)
		}
		return data
	}

	if bytes.Equal(render(t, false), render(t, true)) {
		t.Fatal("results board renders identically with and without a fastest-lap record")
	}
}
