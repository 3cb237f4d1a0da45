package visuals

import (
	"fmt"
	"image"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/layout"
	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/league"
)

type lineupGenerator struct{}

func (g *lineupGenerator) Generate(res league.Resources, cfg *Config) (string, error) {
	if len(cfg.Teams) == 0 {
		return "", fmt.Errorf("lineup: no teams configured")
	}
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

	const paddingH = 100
	stripsTop := resultTitleHeight + 30
	strips, err := g.teamStrips(res, cfg, width-2*paddingH, height-stripsTop)
	if err != nil {
		return "", err
	}
	layout.Paste(canvas, strips, layout.At(paddingH, stripsTop))

	path := cfg.OutputPath()
	if err := save(path, canvas); err != nil {
		return "", err
	}
	return path, nil
}

// teamStrips stacks one lineup strip per team, the available height split
// ten ways regardless of how many teams are entered.
func (g *lineupGenerator) teamStrips(res league.Resources, cfg *Config, width, height int) (*image.NRGBA, error) {
	const paddingBottom = 20
	const lineHop = 5
	stackHeight := height - paddingBottom
	lineHeight := stackHeight/10 - lineHop

	img := layout.Transparent(width, stackHeight)
	top := 0
	for _, team := range cfg.Teams {
		strip, err := team.LineupStrip(res, width, lineHeight, cfg.Race.TeamPilots(team))
		if err != nil {
			return nil, fmt.Errorf("lineup strip %s: %w", team.Name, err)
		}
		layout.Paste(img, strip, layout.At(0, top))
		top += lineHeight + lineHop
	}
	return img, nil
}
