package visuals

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/layout"
	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/league"
)

type presentationGenerator struct{}

func (g *presentationGenerator) Generate(res league.Resources, cfg *Config) (string, error) {
	// The presentation keeps the raw background and lightens its left half
	// instead of using the metal overlay.
	bg, err := res.Assets.Open(res.Assets.Background())
	if err != nil {
		return "", fmt.Errorf("presentation: %w", err)
	}
	canvas := imaging.Clone(bg)
	width, height := canvas.Rect.Dx(), canvas.Rect.Dy()

	veil := layout.Fill(width, height, color.NRGBA{150, 150, 150, 255})
	layout.AlphaRamp(veil, layout.LeftToRight, 128, 255)
	layout.Paste(canvas, veil, layout.At(0, 0))

	title, err := titleBanner(res, cfg, width, resultTitleHeight)
	if err != nil {
		return "", err
	}
	layout.Paste(canvas, title, layout.At(0, 0))

	rightWidth := 35 * width / 100
	paddingBetween := 5 * width / 100
	leftWidth := width - rightWidth - paddingBetween

	left, err := g.leftContent(res, cfg, leftWidth, height-resultTitleHeight)
	if err != nil {
		return "", err
	}
	layout.Paste(canvas, left, layout.At(0, resultTitleHeight))

	rightTop := resultTitleHeight + 100
	infoFace, err := res.Fonts.Regular(34)
	if err != nil {
		return "", err
	}
	info, err := cfg.Race.PlainInfoPanel(res, rightWidth, height-rightTop, infoFace)
	if err != nil {
		return "", err
	}
	layout.Paste(canvas, info, layout.At(width-rightWidth, rightTop))

	path := cfg.OutputPath()
	if err := save(path, canvas); err != nil {
		return "", err
	}
	return path, nil
}

// leftContent draws the date block with its red accent lines, the circuit
// name, the rounded circuit photo with the start-hour tag and the event
// description.
func (g *presentationGenerator) leftContent(res league.Resources, cfg *Config, width, height int) (*image.NRGBA, error) {
	race := cfg.Race
	img := layout.Transparent(width, height)

	textFace, err := res.Fonts.Regular(32)
	if err != nil {
		return nil, err
	}
	hourFace, err := res.Fonts.Bold(40)
	if err != nil {
		return nil, err
	}
	dayFace, err := res.Fonts.Regular(50)
	if err != nil {
		return nil, err
	}
	monthFace, err := res.Fonts.Regular(60)
	if err != nil {
		return nil, err
	}
	titleFace, err := res.Fonts.Bold(80)
	if err != nil {
		return nil, err
	}

	darkText := color.NRGBA{50, 50, 50, 255}
	lightText := color.NRGBA{210, 210, 210, 255}

	const (
		paddingH  = 75
		paddingV  = 20
		dateGap   = 20
		lineWidth = 5
		titleSize = 80
	)
	dayLabel := race.Day + "."
	_, dayHeight := layout.TextSize(dayLabel, dayFace)
	monthWidth, monthHeight := layout.TextSize(race.Month, monthFace)

	dateBottom := lineWidth + paddingV + dayHeight + dateGap + monthHeight + paddingV
	dateBoxWidth := monthWidth + 2*paddingH
	dayRight := paddingH + monthWidth
	monthLeft := (dateBoxWidth - monthWidth) / 2

	headerBg := layout.Fill(width, dateBottom, color.NRGBA{100, 100, 100, 255})
	layout.Gradient(headerBg, layout.LeftToRight)
	layout.Paste(img, headerBg, layout.At(0, 0))

	layout.Line(img, 0, 0, float64(dayRight), 0, highlight, lineWidth)

	dayImg := layout.Text(dayLabel, lightText, dayFace)
	layout.Paste(img, dayImg, layout.At((dateBoxWidth-dayImg.Rect.Dx())/2, paddingV))
	layout.Paste(img, layout.Text(race.Month, darkText, monthFace),
		layout.At(monthLeft, paddingV+dayHeight+dateGap))

	layout.Line(img, float64(dayRight), 0, float64(dateBoxWidth), float64(dateBottom), highlight, lineWidth)
	hLineRight := width - paddingH
	layout.Line(img, float64(dateBoxWidth-1), float64(dateBottom), float64(hLineRight), float64(dateBottom), highlight, lineWidth)

	nameTop := (dateBottom-titleSize)/2 - 3
	layout.Paste(img, layout.Text(race.Circuit.Name, darkText, titleFace), layout.At(dateBoxWidth+40, nameTop))

	flag, err := res.Assets.Open(res.Assets.CircuitFlag(race.Circuit.ID))
	if err != nil {
		return nil, fmt.Errorf("presentation: %w", err)
	}
	flagImg := layout.Resize(flag, 200, 200, true)
	layout.Paste(img, flagImg, layout.At(hLineRight-flagImg.Rect.Dx(), dateBottom-flagImg.Rect.Dy()))

	photoTop := dateBottom + 20
	photo, err := res.Assets.Open(res.Assets.CircuitPhoto(race.Circuit.ID))
	if err != nil {
		return nil, fmt.Errorf("presentation: %w", err)
	}
	photoImg := layout.Resize(photo, width-monthLeft, height-photoTop, true)
	layout.PasteRounded(img, photoImg, monthLeft, photoTop, 50)

	// Start hour chip over the photo's lower left corner.
	const hourPadH = 40
	const hourPadV = 20
	hourWidth, hourHeight := layout.TextSize(race.Hour, hourFace)
	hourTop := photoTop + photoImg.Rect.Dy() - hourHeight - 2*hourPadV
	chip := layout.Fill(hourWidth+2*hourPadH, hourHeight+2*hourPadV, color.NRGBA{0, 0, 0, 255})
	layout.Gradient(chip, layout.LeftToRight)
	layout.Paste(img, chip, layout.At(monthLeft, hourTop))
	layout.Line(img, float64(monthLeft+4), float64(hourTop), float64(monthLeft+4),
		float64(hourTop+chip.Rect.Dy()-1), color.NRGBA{32, 167, 215, 255}, 10)
	layout.Paste(img, layout.Text(race.Hour, lightText, hourFace), layout.At(monthLeft+hourPadH, hourTop+hourPadV))

	top := hourTop + hourPadV + 70
	for _, line := range wrapText(cfg.Description, 62) {
		layout.Paste(img, layout.Text(line, white, textFace), layout.At(monthLeft, top))
		top += 40
	}
	return img, nil
}

// wrapText greedily wraps words so no line exceeds limit characters.
func wrapText(s string, limit int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > limit {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
