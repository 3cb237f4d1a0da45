package league

import (
	"image"
	"image/color"
	"strings"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/layout"
)

// ColorSet is a foreground/background/accent-line triple used by the
// breaking-news and pole banners.
type ColorSet struct {
	Fg   Color `toml:"fg"`
	Bg   Color `toml:"bg"`
	Line Color `toml:"line"`
}

// IsZero reports whether no color of the set was configured.
func (s ColorSet) IsZero() bool { return s.Fg.IsZero() && s.Bg.IsZero() && s.Line.IsZero() }

// Team is one constructor of the grid. Name doubles as the asset key for the
// team's logo files and must match an on-disk directory entry.
type Team struct {
	Name     string `toml:"name"`
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`

	// Standard rendering colors: number stroke, number fill, accent box.
	Main      Color `toml:"main_color"`
	Secondary Color `toml:"secondary_color"`
	Box       Color `toml:"box_color"`

	// Context overrides for the banner compositors.
	Breaking ColorSet `toml:"breaking"`
	Pole     ColorSet `toml:"pole"`
}

// PoleColors returns the pole-banner color set, falling back to the breaking
// colors when no pole-specific set is configured.
func (t *Team) PoleColors() ColorSet {
	if t.Pole.IsZero() {
		return t.Breaking
	}
	return t.Pole
}

// LineupStrip renders one team row of the lineup sheet: the box-color accent
// bar, title and subtitle, the team logo at the end of the first third, and
// one number/name cell per pilot in the remaining thirds.
func (t *Team) LineupStrip(res Resources, width, height int, pilots []*Pilot) (*image.NRGBA, error) {
	const (
		fontSize       = 28
		lineSeparation = fontSize + 4
		boxWidth       = 10
		boxHeight      = fontSize + lineSeparation
	)
	img := layout.Transparent(width, height)

	bg := layout.Fill(width, boxHeight, color.Black)
	layout.Gradient(bg, layout.RightToLeft)
	layout.Paste(img, bg, layout.At(0, 0))

	bigFace, err := res.Fonts.Regular(fontSize + 10)
	if err != nil {
		return nil, err
	}
	titleFace, err := res.Fonts.Bold(fontSize)
	if err != nil {
		return nil, err
	}
	smallFace, err := res.Fonts.Regular(fontSize - 8)
	if err != nil {
		return nil, err
	}

	layout.FillRect(img, image.Rect(0, 0, boxWidth, boxHeight), t.Box)

	const paddingTop = 4
	paddingAfterBox := boxWidth + 20
	layout.Paste(img, layout.Text(strings.ToUpper(t.Title), white, titleFace),
		layout.At(paddingAfterBox, paddingTop))
	layout.Paste(img, layout.Text(t.Subtitle, white, smallFace),
		layout.At(paddingAfterBox, paddingTop+lineSeparation))

	logo, err := res.Assets.Open(res.Assets.TeamLogo(t.Name, false))
	if err != nil {
		return nil, err
	}
	const logoPadding = 4
	logoImg := layout.Resize(logo, boxHeight-logoPadding, boxHeight-logoPadding, true)
	layout.Paste(img, logoImg, layout.At(width/3-logoImg.Bounds().Dx()-10, 0))

	left := width/3 + 20
	for _, pilot := range pilots {
		posLeft := left
		if len(pilot.Number) != 2 {
			posLeft += 10
		}
		number := layout.TextStroke(pilot.Number, t.Secondary, bigFace, 2, t.Main)
		layout.Paste(img, number, layout.At(posLeft, 12))
		layout.Paste(img, layout.Text(pilot.Name, white, bigFace), layout.At(left+70, 12))
		left = 2*width/3 + 40
	}
	return img, nil
}
