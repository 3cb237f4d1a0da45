package visuals

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/layout"
	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/league"
)

var (
	white     = color.NRGBA{255, 255, 255, 255}
	highlight = color.NRGBA{255, 0, 0, 255}
)

// titleBanner composes the full-width header strip shared by the race
// visuals: branded background, league logo centered in the left third, game
// logo right aligned and a type-specific centerpiece in the middle third.
func titleBanner(res league.Resources, cfg *Config, width, height int) (*image.NRGBA, error) {
	banner := layout.Transparent(width, height)

	bg, err := res.Assets.Open(res.Assets.TitleBackground())
	if err != nil {
		return nil, fmt.Errorf("title banner: %w", err)
	}
	layout.Paste(banner, layout.Resize(bg, width, height, true), layout.At(0, 0))

	brand, err := res.Assets.Open(res.Assets.BrandLogo(false))
	if err != nil {
		return nil, fmt.Errorf("title banner: %w", err)
	}
	brandImg := layout.Resize(brand, width/3, height, true)
	layout.Paste(banner, brandImg, layout.AtLeft((width/3-brandImg.Rect.Dx())/2))

	center, err := titleCenter(res, cfg, width/3, height)
	if err != nil {
		return nil, err
	}
	centerLeft := (width - center.Rect.Dx()) / 2
	switch cfg.Type {
	case Lineup, Presentation:
		layout.Paste(banner, center, layout.At(centerLeft, height/3))
	default:
		layout.Paste(banner, center, layout.AtLeft(centerLeft))
	}

	// The presentation visual sits on a light backdrop, so it takes the
	// dark variant of the game logo.
	game, err := res.Assets.Open(res.Assets.GameLogo(cfg.Type == Presentation))
	if err != nil {
		return nil, fmt.Errorf("title banner: %w", err)
	}
	gameImg := layout.Resize(game, width/4, height, true)
	layout.Paste(banner, gameImg, layout.AtLeft(width-gameImg.Rect.Dx()-40))
	return banner, nil
}

// titleCenter builds the middle element of the header. Results and details
// use the pre-rendered round numeral asset; the other race visuals compose
// text with the round number picked out in the highlight color.
func titleCenter(res league.Resources, cfg *Config, width, height int) (*image.NRGBA, error) {
	round := strconv.Itoa(cfg.Race.Round)
	switch cfg.Type {
	case Results, Details:
		numeral, err := res.Assets.Open(res.Assets.RoundNumber(cfg.Race.Round))
		if err != nil {
			return nil, fmt.Errorf("title banner: %w", err)
		}
		return layout.Resize(numeral, width, height, true), nil
	case Lineup:
		// A two-digit round gets a slightly smaller face so the line still
		// fits the middle cell.
		size, padRight := 68.0, 60
		if len(round) > 1 {
			size, padRight = 64.0, 90
		}
		face, err := res.Fonts.Bold(size)
		if err != nil {
			return nil, fmt.Errorf("title banner: %w", err)
		}
		img := layout.Transparent(width, height)
		layout.Paste(img, layout.Text("LINE UP - RACE", white, face), layout.At(0, 0))
		layout.Paste(img, layout.Text(round, highlight, face), layout.At(width-padRight, 0))
		return img, nil
	case Presentation:
		face, err := res.Fonts.Bold(68)
		if err != nil {
			return nil, fmt.Errorf("title banner: %w", err)
		}
		race := layout.Text("RACE", white, face)
		num := layout.Text(round, highlight, face)
		img := layout.Transparent(race.Rect.Dx()+20+num.Rect.Dx(), race.Rect.Dy())
		layout.Paste(img, race, layout.At(0, 0))
		layout.Paste(img, num, layout.At(race.Rect.Dx()+20, 0))
		return img, nil
	default:
		face, err := res.Fonts.Bold(64)
		if err != nil {
			return nil, fmt.Errorf("title banner: %w", err)
		}
		pre := layout.Text("FASTEST LAP - RACE ", white, face)
		num := layout.Text(round, highlight, face)
		img := layout.Transparent(pre.Rect.Dx()+num.Rect.Dx(), pre.Rect.Dy())
		layout.Paste(img, pre, layout.AtLeft(0))
		layout.Paste(img, num, layout.AtLeft(pre.Rect.Dx()))
		return img, nil
	}
}
