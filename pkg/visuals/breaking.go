package visuals

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/layout"
	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/league"
)

// Breaking is the standalone breaking-news banner: a colored page with the
// league logo and "BREAKING" on top, a corner-cut picture in the middle and
// two right-aligned message lines at the bottom. Attaching a team overrides
// the colors with the team's breaking set and stamps its logo on the
// picture.
type Breaking struct {
	Main   string
	Second string
	Team   *league.Team
	Bg     color.NRGBA
	Fg     color.NRGBA
	// Picture is the asset-relative path of the middle photograph.
	Picture string
	Output  string
}

const (
	breakingTopHeight    = 155
	breakingBottomHeight = 215
	breakingTopGap       = 30
	breakingBottomGap    = 45
)

// Render paints and saves the banner, returning the written path.
func (b *Breaking) Render(res league.Resources) (string, error) {
	if b.Main == "" {
		return "", fmt.Errorf("breaking: main headline is required")
	}
	bg, fg := b.Bg, b.Fg
	if b.Team != nil {
		bg = b.Team.Breaking.Bg.NRGBA
		fg = b.Team.Breaking.Fg.NRGBA
	}

	// The breaking background asset only fixes the canvas dimensions.
	ref, err := res.Assets.Open(res.Assets.BreakingBackground())
	if err != nil {
		return "", fmt.Errorf("breaking: %w", err)
	}
	width, height := ref.Bounds().Dx(), ref.Bounds().Dy()
	canvas := layout.Fill(width, height, bg)

	top, err := b.topBand(res, fg, width, breakingTopHeight)
	if err != nil {
		return "", err
	}
	topBox := layout.Paste(canvas, top, layout.At(0, 0))

	middleHeight := height - breakingTopHeight - breakingBottomHeight - breakingTopGap - breakingBottomGap
	middle, err := b.middleBand(res, width, middleHeight)
	if err != nil {
		return "", err
	}
	middleBox := layout.Paste(canvas, middle, layout.At(0, topBox.Bottom+breakingTopGap))

	bottom, err := b.bottomBand(res, fg, width, breakingBottomHeight)
	if err != nil {
		return "", err
	}
	layout.Paste(canvas, bottom, layout.At(0, middleBox.Bottom+breakingBottomGap))

	path := b.Output
	if path == "" {
		path = "breaking.png"
	}
	if err := save(path, canvas); err != nil {
		return "", err
	}
	return path, nil
}

func (b *Breaking) topBand(res league.Resources, fg color.NRGBA, width, height int) (*image.NRGBA, error) {
	img := layout.Transparent(width, height)

	logo, err := res.Assets.Open(res.Assets.BrandLogo(true))
	if err != nil {
		return nil, fmt.Errorf("breaking: %w", err)
	}
	logoImg := layout.Resize(logo, 15*width/100, height, true)
	box := layout.Paste(img, logoImg, layout.AtLeft(25))

	face, err := res.Fonts.Black(131)
	if err != nil {
		return nil, err
	}
	layout.Paste(img, layout.Text("BREAKING", fg, face), layout.AtLeft(box.Right+40))
	return img, nil
}

func (b *Breaking) middleBand(res league.Resources, width, height int) (*image.NRGBA, error) {
	img := layout.Transparent(width, height)

	picture, err := res.Assets.Open(b.Picture)
	if err != nil {
		return nil, fmt.Errorf("breaking: %w", err)
	}
	layout.Paste(img, picture, layout.At(0, 0))
	layout.CutCorners(img, 185, 385)

	if b.Team != nil {
		logo, err := res.Assets.Open(res.Assets.TeamLogo(b.Team.Name, false))
		if err != nil {
			return nil, fmt.Errorf("breaking: %w", err)
		}
		logoImg := layout.Resize(logo, 175, 175, true)
		layout.Paste(img, logoImg, layout.At(width-logoImg.Rect.Dx()-30, height-logoImg.Rect.Dy()))
	}
	return img, nil
}

func (b *Breaking) bottomBand(res league.Resources, fg color.NRGBA, width, height int) (*image.NRGBA, error) {
	img := layout.Transparent(width, height)
	const rightPadding = 45

	mainFace, err := res.Fonts.Black(84)
	if err != nil {
		return nil, err
	}
	mainImg := layout.Text(strings.ToUpper(b.Main), fg, mainFace)
	mainBox := layout.Paste(img, mainImg, layout.At(width-mainImg.Rect.Dx()-rightPadding, 0))

	if b.Second != "" {
		secondFace, err := res.Fonts.Regular(50)
		if err != nil {
			return nil, err
		}
		secondImg := layout.Text(strings.ToUpper(b.Second), fg, secondFace)
		layout.Paste(img, secondImg, layout.At(width-secondImg.Rect.Dx()-rightPadding, mainBox.Bottom+25))
	}
	return img, nil
}
