package league

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"golang.org/x/image/font"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/layout"
)

// UnknownPilotName is the display name substituted for a results row whose
// pilot resolves neither through the roster nor the swap table.
const UnknownPilotName = "Unknown"

// fallbackTeam backs synthetic pilots when the season configures no default.
var fallbackTeam = &Team{
	Name:      "RedBull",
	Title:     "Unknown",
	Subtitle:  "Team",
	Main:      RGB(0, 0, 0),
	Secondary: RGB(0, 0, 0),
	Box:       RGB(0, 0, 0),
}

// Race carries everything one event's visuals need: the round header, the
// circuit, the roster, the team list and the swap table for one-off
// substitute drivers.
type Race struct {
	Round  int
	Laps   int
	Day    string
	Month  string
	Hour   string
	Format string

	Circuit *Circuit
	Pilots  map[string]*Pilot
	// Roster preserves the declaration order of the pilot names so listing
	// visuals render deterministically.
	Roster []string
	Teams  []*Team

	// Swappings maps a stand-in driver's results-sheet display name to the
	// roster pilot they replace for this race.
	Swappings map[string]*Pilot

	// DefaultTeam backs synthetic pilots for unresolvable names; nil falls
	// back to the package default.
	DefaultTeam *Team
}

// TotalLength is the race distance in kilometers.
func (r *Race) TotalLength() float64 {
	return float64(r.Laps) * r.Circuit.LapLength
}

// TotalLengthLabel formats the race distance to exactly three decimals.
func (r *Race) TotalLengthLabel() string {
	return fmt.Sprintf("%.3f", r.TotalLength())
}

// Pilot resolves a results-sheet name to a renderable pilot: roster first,
// swap table second, and as a last resort a synthetic Unknown pilot on the
// default team. It never returns nil.
func (r *Race) Pilot(name string) *Pilot {
	if p, ok := r.Pilots[name]; ok {
		return p
	}
	if replaced, ok := r.Swappings[name]; ok && replaced != nil {
		return &Pilot{Name: name, Team: replaced.Team, Number: DefaultNumber}
	}
	team := r.DefaultTeam
	if team == nil {
		team = fallbackTeam
	}
	return &Pilot{Name: UnknownPilotName, Team: team, Number: DefaultNumber}
}

// TeamPilots returns the team's roster pilots in roster order, substituting
// any pilot found in the swap table's value position with a synthetic pilot
// bearing the stand-in's name on the same team.
func (r *Race) TeamPilots(team *Team) []*Pilot {
	var out []*Pilot
	for _, name := range r.rosterNames() {
		p := r.Pilots[name]
		if p == nil || p.Team != team {
			continue
		}
		out = append(out, r.swapped(p, team))
	}
	return out
}

// rosterNames returns the roster in declaration order, falling back to a
// sorted listing when no explicit order was recorded.
func (r *Race) rosterNames() []string {
	if len(r.Roster) > 0 {
		return r.Roster
	}
	names := make([]string, 0, len(r.Pilots))
	for name := range r.Pilots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Race) swapped(p *Pilot, team *Team) *Pilot {
	for standIn, replaced := range r.Swappings {
		if replaced == p {
			return &Pilot{Name: standIn, Team: team, Number: DefaultNumber}
		}
	}
	return p
}

// DateBanner renders the race day, month, circuit name and flag over the
// date background asset at its fixed offsets. Used as the left block of the
// results board.
func (r *Race) DateBanner(res Resources, width, height int, face, bigFace font.Face) (*image.NRGBA, error) {
	img := layout.Transparent(width, height)

	bg, err := res.Assets.Open(res.Assets.DateBackground())
	if err != nil {
		return nil, err
	}
	bgImg := layout.Resize(bg, 3*width/4, height, true)
	layout.Paste(img, bgImg, layout.At(0, 0))

	const left, top = 20, 0
	layout.Paste(img, layout.Text(r.Day+".", white, face), layout.At(left, top+15))
	layout.Paste(img, layout.Text(r.Month, grey, face), layout.At(left+80, top+15))
	layout.Paste(img, layout.Text(r.Circuit.Name, white, bigFace), layout.At(left+250, top+5))

	flag, err := res.Assets.Open(res.Assets.CircuitFlag(r.Circuit.ID))
	if err != nil {
		return nil, err
	}
	flagImg := layout.Resize(flag, 100, 100, true)
	layout.Paste(img, flagImg,
		layout.At(bgImg.Bounds().Dx()-flagImg.Bounds().Dx()-10, top-2))
	return img, nil
}

// SimpleTitle renders the compact date + circuit title strip used by the
// details visual: day, month and the circuit title image concatenated and
// vertically centered.
func (r *Race) SimpleTitle(res Resources, width, height int, dateFace, circuitFace font.Face) (*image.NRGBA, error) {
	img := layout.Transparent(width, height)

	day := layout.Text(r.Day+".", white, dateFace)
	month := layout.Text(r.Month, grey, dateFace)

	const dayLeft = 10
	dayBox := layout.Paste(img, day, layout.AtLeft(dayLeft))
	monthBox := layout.Paste(img, month, layout.AtLeft(dayBox.Right+10))

	circuit, err := r.Circuit.TitleImage(res, height, circuitFace)
	if err != nil {
		return nil, err
	}
	layout.Paste(img, circuit, layout.AtLeft(monthBox.Right+20))
	return img, nil
}

// infoLabels paints the two label/value columns shared by both information
// panels: lap length, lap count, total distance and best-ever lap.
func (r *Race) infoLabels(img *image.NRGBA, top int, face font.Face, compact bool) {
	titleColor := color.NRGBA{A: 255}
	spacing := 50
	if compact {
		spacing = 25
	}
	put := func(s string, c color.Color, left, at int) {
		layout.Paste(img, layout.Text(s, c, face), layout.At(left, top+at))
	}
	put("Longueur", titleColor, 50, spacing)
	put("Nombre de tours", titleColor, 350, spacing)
	put(fmt.Sprintf("%v Km", r.Circuit.LapLength), white, 50, spacing+50)
	put(fmt.Sprintf("%d tours", r.Laps), white, 350, spacing+50)
	put("Distance totale", titleColor, 50, spacing+125)
	put(r.TotalLengthLabel()+" Km", white, 50, spacing+175)
	put("Meilleur temps", titleColor, 50, spacing+250)
	put(r.Circuit.BestLap, white, 50, spacing+300)
}

// cornerAccents paints the red corner asset plus its two accent bars at the
// top-left of the panel body.
func (r *Race) cornerAccents(res Resources, img *image.NRGBA, top, width, barLength int) error {
	corner, err := res.Assets.Open(res.Assets.RedCorner())
	if err != nil {
		return err
	}
	box := layout.Paste(img, corner, layout.At(0, top))
	red := color.NRGBA{R: 255, A: 255}
	layout.FillRect(img, image.Rect(0, box.Bottom, 10, box.Bottom+barLength), red)
	layout.FillRect(img, image.Rect(box.Right-2, top, width, top+10), red)
	return nil
}

// InfoPanel renders the full circuit information sidebar: the circuit photo
// fading downwards, the gradient panel body with corner accents, the
// label/value columns and the circuit map anchored bottom-right.
func (r *Race) InfoPanel(res Resources, width, height int, face font.Face) (*image.NRGBA, error) {
	img := layout.Transparent(width, height)

	photo, err := res.Assets.Open(res.Assets.CircuitPhoto(r.Circuit.ID))
	if err != nil {
		return nil, err
	}
	photoImg := layout.Resize(photo, width, height, true)
	layout.AlphaRamp(photoImg, layout.UpToDown, 128, 255)
	layout.Paste(img, photoImg, layout.At(0, 0))

	bgTop := 3 * photoImg.Bounds().Dy() / 4
	bg := layout.Fill(width, height, color.NRGBA{R: 120, G: 120, B: 120, A: 255})
	layout.AlphaRamp(bg, layout.RightToLeft, 128, 255)
	layout.Paste(img, bg, layout.At(0, bgTop))

	if err := r.cornerAccents(res, img, bgTop, width, 300); err != nil {
		return nil, err
	}
	r.infoLabels(img, bgTop, face, true)

	cmap, err := res.Assets.Open(res.Assets.CircuitMap(r.Circuit.ID))
	if err != nil {
		return nil, err
	}
	mapImg := layout.Resize(cmap, 625, height, true)
	layout.Paste(img, mapImg,
		layout.At(width-mapImg.Bounds().Dx(), height-mapImg.Bounds().Dy()))
	return img, nil
}

// PlainInfoPanel is InfoPanel without the photo header, used where the
// surrounding visual already shows the circuit.
func (r *Race) PlainInfoPanel(res Resources, width, height int, face font.Face) (*image.NRGBA, error) {
	img := layout.Transparent(width, height)

	bg := layout.Fill(width, height, color.NRGBA{R: 80, G: 80, B: 80, A: 255})
	layout.Gradient(bg, layout.RightToLeft)
	layout.Paste(img, bg, layout.At(0, 0))

	if err := r.cornerAccents(res, img, 0, width, 325); err != nil {
		return nil, err
	}
	r.infoLabels(img, 0, face, false)

	cmap, err := res.Assets.Open(res.Assets.CircuitMap(r.Circuit.ID))
	if err != nil {
		return nil, err
	}
	mapImg := layout.Resize(cmap, width, height/2, true)
	layout.Paste(img, mapImg,
		layout.At(width-mapImg.Bounds().Dx(), height-mapImg.Bounds().Dy()))
	return img, nil
}

var grey = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
