package league

import (
	"image"
	"image/color"

	"golang.org/x/image/font"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/layout"
)

// DefaultNumber is the placeholder car number for pilots without one,
// reservists included.
const DefaultNumber = "Re"

// Pilot is one driver of the roster. Name doubles as the roster key and the
// celebration-photo asset key. Team is nil only for synthetic stand-ins
// before a fallback team is attached.
type Pilot struct {
	Name   string `toml:"name"`
	Team   *Team  `toml:"-"`
	Number string `toml:"number"`
	Title  string `toml:"title"`
}

// Badge renders the pilot's stroked car number, name and right-aligned team
// logo into a transparent strip of the given size. The number stroke uses
// the team main color over the secondary fill; one-digit numbers shift right
// so the digits line up with two-digit ones.
func (p *Pilot) Badge(res Resources, width, height int, numberFace, nameFace font.Face) (*image.NRGBA, error) {
	img := layout.Transparent(width, height)

	posLeft := 12
	if len(p.Number) == 2 {
		posLeft = 2
	}
	number := layout.TextStroke(p.Number, p.Team.Secondary, numberFace, 3, p.Team.Main)
	layout.Paste(img, number, layout.At(posLeft, 14))

	layout.Paste(img, layout.Text(p.Name, white, nameFace), layout.At(70, 14))

	logo, err := res.Assets.Open(res.Assets.TeamLogo(p.Team.Name, false))
	if err != nil {
		return nil, err
	}
	const padding = 4
	logoImg := layout.Resize(logo, height-padding, height-padding, true)
	layout.Paste(img, logoImg,
		layout.At(width-logoImg.Bounds().Dx()-padding, padding/2))
	return img, nil
}

// RankingRow renders one row of a ranking list: a gradient backdrop (solid
// purple tint when the row holds the fastest lap), the pre-rendered position
// badge, the pilot badge, and the fastest-lap icon when flagged.
func (p *Pilot) RankingRow(res Resources, position, width, height int, numberFace, nameFace font.Face, hasFastestLap bool) (*image.NRGBA, error) {
	img := layout.Transparent(width, height)

	bgColor := color.NRGBA{A: 255}
	if hasFastestLap {
		bgColor = color.NRGBA{R: 180, G: 60, B: 220, A: 255}
	}
	bg := layout.Fill(width, height, bgColor)
	layout.Gradient(bg, layout.LeftToRight)
	layout.Paste(img, bg, layout.At(5, 0))

	badgeBox := height
	badge, err := res.Assets.Open(res.Assets.PositionBadge(position))
	if err != nil {
		return nil, err
	}
	layout.Paste(img, layout.Resize(badge, badgeBox, height, true), layout.At(0, 0))

	pilotImg, err := p.Badge(res, width-(badgeBox+15), height, numberFace, nameFace)
	if err != nil {
		return nil, err
	}
	layout.Paste(img, pilotImg, layout.At(badgeBox+15, 0))

	if hasFastestLap {
		icon, err := res.Assets.Open(res.Assets.FastestLapBadge())
		if err != nil {
			return nil, err
		}
		iconImg := layout.Resize(icon, height, height, true)
		layout.Paste(img, iconImg, layout.At(width-iconImg.Bounds().Dx()*2, 0))
	}
	return img, nil
}
