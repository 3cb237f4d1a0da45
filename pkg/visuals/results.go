package visuals

import (
	"fmt"
	"image"

	"golang.org/x/image/font"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/layout"
	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/league"
)

// Row geometry shared by the results and details boards. Successive rows
// alternate between the two columns and each one starts rowHop below the
// previous, so the rows of one column are spaced two hops apart.
const (
	resultTitleHeight = 180
	rowHop            = 38
	rowHeight         = 60
	rowPaddingLeft    = 20
	rowPaddingBetween = 40
	rowPaddingRight   = 40
)

type resultsGenerator struct{}

func (g *resultsGenerator) Generate(res league.Resources, cfg *Config) (string, error) {
	canvas, err := baseCanvas(res)
	if err != nil {
		return "", err
	}
	width, height := canvas.Rect.Dx(), canvas.Rect.Dy()

	title, err := titleBanner(res, cfg, width, resultTitleHeight)
	if err != nil {
		return "", err
	}
	layout.Paste(canvas, title, layout.At(0, 0))

	dateFace, err := res.Fonts.Regular(38)
	if err != nil {
		return "", err
	}
	circuitFace, err := res.Fonts.Regular(56)
	if err != nil {
		return "", err
	}
	smallFace, err := res.Fonts.Regular(32)
	if err != nil {
		return "", err
	}
	pilotFace, err := res.Fonts.Bold(30)
	if err != nil {
		return "", err
	}

	const raceTitleHeight = 80
	rightWidth := width / 3
	leftWidth := width - rightWidth
	leftHeight := height - resultTitleHeight - raceTitleHeight

	raceTitle, err := cfg.Race.DateBanner(res, leftWidth, leftHeight, dateFace, circuitFace)
	if err != nil {
		return "", err
	}
	layout.Paste(canvas, raceTitle, layout.At(0, resultTitleHeight+48))

	info, err := cfg.Race.InfoPanel(res, rightWidth, height-resultTitleHeight, smallFace)
	if err != nil {
		return "", err
	}
	layout.Paste(canvas, info, layout.At(2*width/3, resultTitleHeight+20))

	board, err := g.rankingBoard(res, cfg, leftWidth, leftHeight, smallFace, pilotFace)
	if err != nil {
		return "", err
	}
	layout.Paste(canvas, board, layout.At(0, resultTitleHeight+raceTitleHeight+80))

	path := cfg.OutputPath()
	if err := save(path, canvas); err != nil {
		return "", err
	}
	return path, nil
}

// rankingBoard lays the classified pilots out in two alternating columns,
// tinting the row whose pilot holds the fastest lap.
func (g *resultsGenerator) rankingBoard(res league.Resources, cfg *Config, width, height int, numberFace, nameFace font.Face) (*image.NRGBA, error) {
	img := layout.Transparent(width, height)
	colWidth := (width - (rowPaddingLeft + rowPaddingBetween + rowPaddingRight)) / 2
	secondColLeft := rowPaddingLeft + colWidth + rowPaddingBetween

	fastestName := ""
	if cfg.FastestLap != nil && cfg.FastestLap.Pilot != nil {
		fastestName = cfg.FastestLap.Pilot.Name
	}

	top := 0
	for i, entry := range cfg.Ranking {
		pilot := cfg.Race.Pilot(entry.Name)
		hasFastestLap := fastestName != "" && pilot.Name == fastestName
		row, err := pilot.RankingRow(res, i+1, colWidth, rowHeight, numberFace, nameFace, hasFastestLap)
		if err != nil {
			return nil, fmt.Errorf("results row %d: %w", i+1, err)
		}
		left := rowPaddingLeft
		if i%2 == 1 {
			left = secondColLeft
		}
		layout.Paste(img, row, layout.At(left, top))
		top += rowHop
	}
	return img, nil
}
