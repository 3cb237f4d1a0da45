package visuals

import (
	"fmt"
	"image"
	"sort"

	"golang.org/x/image/font"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/layout"
	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/league"
)

// numbersGenerator renders the car-number board: one card per pilot, grouped
// by team, no race attached.
type numbersGenerator struct{}

func (g *numbersGenerator) Generate(res league.Resources, cfg *Config) (string, error) {
	pilots := g.orderedPilots(cfg)
	if len(pilots) == 0 {
		return "", fmt.Errorf("numbers: no pilots configured")
	}
	canvas, err := baseCanvas(res)
	if err != nil {
		return "", err
	}
	width, height := canvas.Rect.Dx(), canvas.Rect.Dy()

	headerFace, err := res.Fonts.Black(90)
	if err != nil {
		return "", err
	}
	title := cfg.RankingTitle
	if title == "" {
		title = "NUMEROS"
	}
	titleImg := layout.Text(title, white, headerFace)
	const headerHeight = 160
	layout.Paste(canvas, titleImg, layout.At((width-titleImg.Rect.Dx())/2, (headerHeight-titleImg.Rect.Dy())/2))

	const cols = 4
	const margin = 40
	const gap = 20
	rows := (len(pilots) + cols - 1) / cols
	cellWidth := (width - 2*margin - (cols-1)*gap) / cols
	cellHeight := (height - headerHeight - margin - (rows-1)*gap) / rows

	numberFace, err := res.Fonts.Bold(90)
	if err != nil {
		return "", err
	}
	nameFace, err := res.Fonts.Regular(28)
	if err != nil {
		return "", err
	}

	for i, pilot := range pilots {
		card, err := g.card(res, pilot, cellWidth, cellHeight, numberFace, nameFace)
		if err != nil {
			return "", err
		}
		left := margin + (i%cols)*(cellWidth+gap)
		top := headerHeight + (i/cols)*(cellHeight+gap)
		layout.Paste(canvas, card, layout.At(left, top))
	}

	path := cfg.OutputPath()
	if err := save(path, canvas); err != nil {
		return "", err
	}
	return path, nil
}

// card is one pilot's tile: team-tinted backdrop, the stroked car number and
// the pilot's name, with the team logo tucked in the corner.
func (g *numbersGenerator) card(res league.Resources, pilot *league.Pilot, width, height int, numberFace, nameFace font.Face) (*image.NRGBA, error) {
	team := pilot.Team
	card := layout.Fill(width, height, team.Secondary.NRGBA)
	layout.Gradient(card, layout.UpToDown)
	layout.FillRect(card, image.Rect(0, 0, width, 8), team.Box.NRGBA)

	number := layout.TextStroke(pilot.Number, team.Secondary, numberFace, 3, team.Main)
	layout.Paste(card, number, layout.At(20, 20))

	name := layout.Text(pilot.Name, white, nameFace)
	layout.Paste(card, name, layout.At(20, height-name.Rect.Dy()-15))

	logo, err := res.Assets.Open(res.Assets.TeamLogo(team.Name, true))
	if err != nil {
		return nil, fmt.Errorf("numbers card %s: %w", pilot.Name, err)
	}
	logoImg := layout.Resize(logo, height/3, height/3, true)
	layout.Paste(card, logoImg, layout.At(width-logoImg.Rect.Dx()-15, 15))
	return card, nil
}

// orderedPilots flattens the pilot table grouped by the configured team
// order, names sorted inside each team.
func (g *numbersGenerator) orderedPilots(cfg *Config) []*league.Pilot {
	var out []*league.Pilot
	seen := make(map[string]bool)
	for _, team := range cfg.Teams {
		var members []*league.Pilot
		for _, p := range cfg.Pilots {
			if p.Team == team {
				members = append(members, p)
			}
		}
		sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })
		for _, p := range members {
			out = append(out, p)
			seen[p.Name] = true
		}
	}
	var rest []*league.Pilot
	for _, p := range cfg.Pilots {
		if !seen[p.Name] {
			rest = append(rest, p)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].Name < rest[j].Name })
	return append(out, rest...)
}
