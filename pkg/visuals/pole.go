package visuals

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/layout"
	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/league"
)

type poleGenerator struct{}

func (g *poleGenerator) Generate(res league.Resources, cfg *Config) (string, error) {
	if len(cfg.QualifRanking) < 3 {
		return "", fmt.Errorf("pole: need the qualifying top 3, got %d pilots", len(cfg.QualifRanking))
	}
	poleman := cfg.QualifRanking[0]
	colors := poleman.Team.PoleColors()

	// The pole banner replaces the shared backdrop with a plain canvas in
	// the poleman's team color, sized like the pole background asset.
	bg, err := res.Assets.Open(res.Assets.PoleBackground())
	if err != nil {
		return "", fmt.Errorf("pole: %w", err)
	}
	width, height := bg.Bounds().Dx(), bg.Bounds().Dy()
	canvas := layout.Fill(width, height, colors.Bg.NRGBA)

	layout.Pinstripes(canvas, colors.Line.NRGBA, 10, 2)

	repeatFace, err := res.Fonts.Black(200)
	if err != nil {
		return "", err
	}
	name := strings.ToUpper(poleman.Name)
	layout.Paste(canvas, layout.RepeatText(width, height, name, color.NRGBA{0, 0, 0, 177}, repeatFace, 40, 20), layout.At(0, 0))

	logo, err := res.Assets.Open(res.Assets.BrandLogo(true))
	if err != nil {
		return "", fmt.Errorf("pole: %w", err)
	}
	layout.Paste(canvas, layout.Resize(logo, width/5, height/5, true), layout.At(30, 30))

	photoPath, err := res.Assets.CelebrationPhoto(poleman.Name, poleman.Team.Name)
	if err != nil {
		return "", fmt.Errorf("pole: %w", err)
	}
	photo, err := res.Assets.Open(photoPath)
	if err != nil {
		return "", fmt.Errorf("pole: %w", err)
	}
	layout.Paste(canvas, layout.Resize(photo, width, height, true))

	veil := layout.Fill(width, height/2, colors.Line.NRGBA)
	layout.Gradient(veil, layout.DownToUp)
	layout.Paste(canvas, veil, layout.AtTop(height/2))

	poleFace, err := res.Fonts.Black(360)
	if err != nil {
		return "", err
	}
	poleTxt := layout.RotatedText("POLE", color.NRGBA{255, 255, 255, 0}, poleFace, 15, colors.Fg.NRGBA, 15)
	layout.Paste(canvas, poleTxt, layout.AtTop(363*height/1000))

	podium, err := g.podiumLine(res, cfg, colors.Fg.NRGBA)
	if err != nil {
		return "", err
	}
	layout.Paste(canvas, podium, layout.AtTop(height-60))

	path := cfg.OutputPath()
	if err := save(path, canvas); err != nil {
		return "", err
	}
	return path, nil
}

// podiumLine is the single "1ST A / 2ND B / 3RD C" footer, ordinal suffixes
// rendered smaller than the names.
func (g *poleGenerator) podiumLine(res league.Resources, cfg *Config, fg color.NRGBA) (*image.NRGBA, error) {
	face, err := res.Fonts.Black(24)
	if err != nil {
		return nil, err
	}
	suffixFace, err := res.Fonts.Black(16)
	if err != nil {
		return nil, err
	}

	const separator = "  /  "
	full := fmt.Sprintf("1st %s%s2nd %s%s3rd %s",
		cfg.QualifRanking[0].Name, separator, cfg.QualifRanking[1].Name, separator, cfg.QualifRanking[2].Name)
	fullWidth, fullHeight := layout.TextSize(strings.ToUpper(full), face)
	img := layout.Transparent(fullWidth, fullHeight)

	left := 0
	for i, pilot := range cfg.QualifRanking[:3] {
		ordinal := layout.OrdinalLabel(i+1, fg, face, suffixFace, 0, nil)
		box := layout.Paste(img, ordinal, layout.AtLeft(left))

		name := strings.ToUpper(pilot.Name)
		if i < 2 {
			name += separator
		}
		box = layout.Paste(img, layout.Text(name, fg, face), layout.AtLeft(box.Right))
		left = box.Right
	}
	return img, nil
}
