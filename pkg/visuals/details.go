package visuals

import (
	"fmt"
	"image"
	"image/color"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/layout"
	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/league"
)

// Purple used for the fastest-lap callouts across the boards.
var fastestPurple = color.NRGBA{180, 60, 220, 255}

type detailsGenerator struct{}

func (g *detailsGenerator) Generate(res league.Resources, cfg *Config) (string, error) {
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

	const hPadding = 20
	available := width - 2*hPadding
	contentTop := resultTitleHeight + 20
	raceTitleWidth := 3*available/10 - hPadding
	const stripHeight = 90

	dateFace, err := res.Fonts.Regular(30)
	if err != nil {
		return "", err
	}
	circuitFace, err := res.Fonts.Regular(50)
	if err != nil {
		return "", err
	}
	raceTitle, err := cfg.Race.SimpleTitle(res, raceTitleWidth, stripHeight, dateFace, circuitFace)
	if err != nil {
		return "", err
	}
	layout.Paste(canvas, raceTitle, layout.At(15, contentTop))

	strip, err := g.fastestLapStrip(res, cfg, 7*available/10-hPadding, stripHeight)
	if err != nil {
		return "", err
	}
	layout.Paste(canvas, strip, layout.At(raceTitleWidth, contentTop))

	boardTop := contentTop + stripHeight + 30
	board, err := g.rankingBoard(res, cfg, width, height-boardTop)
	if err != nil {
		return "", err
	}
	layout.Paste(canvas, board, layout.At(0, boardTop))

	path := cfg.OutputPath()
	if err := save(path, canvas); err != nil {
		return "", err
	}
	return path, nil
}

// fastestLapStrip is the horizontal banner naming the fastest lap of the
// race: badge, label on a black box, then pilot, lap, time and team logo on
// a dark fading background.
func (g *detailsGenerator) fastestLapStrip(res league.Resources, cfg *Config, width, height int) (*image.NRGBA, error) {
	if cfg.FastestLap == nil || cfg.FastestLap.Pilot == nil {
		return nil, fmt.Errorf("details: fastest lap data is required")
	}
	img := layout.Transparent(width, height)

	badge, err := res.Assets.Open(res.Assets.FastestLapBadge())
	if err != nil {
		return nil, fmt.Errorf("fastest lap strip: %w", err)
	}
	badgeImg := layout.Resize(badge, height, height, true)
	layout.Paste(img, badgeImg, layout.At(0, 0))

	labelFace, err := res.Fonts.Bold(40)
	if err != nil {
		return nil, err
	}
	const labelPadding = 60
	labelWidth, _ := layout.TextSize("FASTEST LAP", labelFace)
	boxLeft := badgeImg.Rect.Dx()
	boxWidth := labelWidth + 2*labelPadding
	layout.Paste(img, layout.Fill(boxWidth, height, color.Black), layout.At(boxLeft, 0))
	layout.Paste(img, layout.Text("FASTEST LAP", fastestPurple, labelFace), layout.AtLeft(boxLeft+labelPadding))

	bgLeft := boxLeft + boxWidth
	bg := layout.Fill(width-bgLeft, height, color.NRGBA{20, 20, 20, 255})
	layout.Gradient(bg, layout.LeftToRight)
	layout.Paste(img, bg, layout.At(bgLeft, 0))

	pilotFace, err := res.Fonts.Bold(45)
	if err != nil {
		return nil, err
	}
	lapFace, err := res.Fonts.Regular(25)
	if err != nil {
		return nil, err
	}
	timeFace, err := res.Fonts.Bold(60)
	if err != nil {
		return nil, err
	}

	fl := cfg.FastestLap
	pilotImg := layout.Text(fl.Pilot.Name, white, pilotFace)
	lapImg := layout.Text("Lap "+fl.Lap, white, lapFace)

	// Pilot name with the lap number right aligned underneath.
	const textLeft = 20
	const gap = 10
	pairLeft := bgLeft + textLeft
	pairHeight := pilotImg.Rect.Dy() + gap + lapImg.Rect.Dy()
	pilotTop := (height - pairHeight) / 2
	layout.Paste(img, pilotImg, layout.At(pairLeft, pilotTop))
	layout.Paste(img, lapImg, layout.At(pairLeft+pilotImg.Rect.Dx()-lapImg.Rect.Dx(), pilotTop+pilotImg.Rect.Dy()+gap))

	pairWidth := pilotImg.Rect.Dx()
	if lapImg.Rect.Dx() > pairWidth {
		pairWidth = lapImg.Rect.Dx()
	}
	timeImg := layout.Text(fl.Time, white, timeFace)
	timeLeft := pairLeft + pairWidth + 40
	layout.Paste(img, timeImg, layout.AtLeft(timeLeft))

	team := fl.Pilot.Team
	if team == nil {
		team = cfg.Race.Pilot(fl.Pilot.Name).Team
	}
	logo, err := res.Assets.Open(res.Assets.TeamLogo(team.Name, false))
	if err != nil {
		return nil, fmt.Errorf("fastest lap strip: %w", err)
	}
	layout.Paste(img, layout.Resize(logo, height, height, true), layout.At(timeLeft+timeImg.Rect.Dx()+40, 0))
	return img, nil
}

// rankingBoard lays the full classification out in two alternating columns,
// right aligning every gap column on the widest one.
func (g *detailsGenerator) rankingBoard(res league.Resources, cfg *Config, width, height int) (*image.NRGBA, error) {
	img := layout.Transparent(width, height)
	colWidth := (width - (rowPaddingLeft + rowPaddingBetween + rowPaddingRight)) / 2
	secondColLeft := rowPaddingLeft + colWidth + rowPaddingBetween

	splitFace, err := res.Fonts.Regular(32)
	if err != nil {
		return nil, err
	}
	largestSplit := 0
	for _, entry := range cfg.Ranking {
		if w, _ := layout.TextSize(entry.Split, splitFace); w > largestSplit {
			largestSplit = w
		}
	}

	top := 0
	for i, entry := range cfg.Ranking {
		result := league.PilotResult{
			Pilot:    cfg.Race.Pilot(entry.Name),
			Position: i + 1,
			Split:    entry.Split,
			Tyres:    entry.Tyres,
		}
		row, err := result.DetailsRow(res, colWidth, rowHeight, largestSplit)
		if err != nil {
			return nil, fmt.Errorf("details row %d: %w", i+1, err)
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
