package visuals

import (
	"fmt"
	"image"

	"golang.org/x/image/font"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/layout"
	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/league"
)

// standingsGenerator renders the season standings boards. With teams set it
// ranks teams by their points total, otherwise individual pilots.
type standingsGenerator struct {
	teams bool
}

func (g *standingsGenerator) Generate(res league.Resources, cfg *Config) (string, error) {
	if len(cfg.Ranking) == 0 {
		return "", fmt.Errorf("standings: empty ranking")
	}
	canvas, err := baseCanvas(res)
	if err != nil {
		return "", err
	}
	width, height := canvas.Rect.Dx(), canvas.Rect.Dy()

	header, err := g.header(res, cfg, width, resultTitleHeight)
	if err != nil {
		return "", err
	}
	layout.Paste(canvas, header, layout.At(0, 0))

	boardTop := resultTitleHeight + 40
	var board *image.NRGBA
	if g.teams {
		board, err = g.teamBoard(res, cfg, width-2*rowPaddingLeft, height-boardTop)
	} else {
		board, err = g.pilotBoard(res, cfg, width, height-boardTop)
	}
	if err != nil {
		return "", err
	}
	layout.Paste(canvas, board, layout.At(rowPaddingLeft, boardTop))

	path := cfg.OutputPath()
	if err := save(path, canvas); err != nil {
		return "", err
	}
	return path, nil
}

// header mirrors the race title banner but carries the standings title text
// instead of a round number.
func (g *standingsGenerator) header(res league.Resources, cfg *Config, width, height int) (*image.NRGBA, error) {
	banner := layout.Transparent(width, height)

	bg, err := res.Assets.Open(res.Assets.TitleBackground())
	if err != nil {
		return nil, fmt.Errorf("standings header: %w", err)
	}
	layout.Paste(banner, layout.Resize(bg, width, height, true), layout.At(0, 0))

	brand, err := res.Assets.Open(res.Assets.BrandLogo(false))
	if err != nil {
		return nil, fmt.Errorf("standings header: %w", err)
	}
	brandImg := layout.Resize(brand, width/3, height, true)
	layout.Paste(banner, brandImg, layout.AtLeft((width/3-brandImg.Rect.Dx())/2))

	title := cfg.RankingTitle
	if title == "" {
		title = "CLASSEMENT PILOTES"
		if g.teams {
			title = "CLASSEMENT EQUIPES"
		}
	}
	titleFace, err := res.Fonts.Bold(64)
	if err != nil {
		return nil, err
	}
	titleImg := layout.Text(title, white, titleFace)

	if cfg.RankingSubtitle == "" {
		layout.Paste(banner, titleImg, layout.AtLeft((width-titleImg.Rect.Dx())/2))
		return banner, nil
	}
	subFace, err := res.Fonts.Regular(36)
	if err != nil {
		return nil, err
	}
	subImg := layout.Text(cfg.RankingSubtitle, white, subFace)
	blockHeight := titleImg.Rect.Dy() + 10 + subImg.Rect.Dy()
	top := (height - blockHeight) / 2
	layout.Paste(banner, titleImg, layout.At((width-titleImg.Rect.Dx())/2, top))
	layout.Paste(banner, subImg, layout.At((width-subImg.Rect.Dx())/2, top+titleImg.Rect.Dy()+10))
	return banner, nil
}

// pilotBoard lays the ranked pilots out in the usual two alternating
// columns, the points total right aligned in each row.
func (g *standingsGenerator) pilotBoard(res league.Resources, cfg *Config, width, height int) (*image.NRGBA, error) {
	img := layout.Transparent(width, height)
	colWidth := (width - (rowPaddingLeft + rowPaddingBetween + rowPaddingRight)) / 2
	secondColLeft := rowPaddingLeft + colWidth + rowPaddingBetween

	numberFace, err := res.Fonts.Regular(32)
	if err != nil {
		return nil, err
	}
	nameFace, err := res.Fonts.Bold(30)
	if err != nil {
		return nil, err
	}
	totalFace, err := res.Fonts.Bold(32)
	if err != nil {
		return nil, err
	}

	top := 0
	for i, entry := range cfg.Ranking {
		pilot := g.pilot(cfg, entry.Name)
		row, err := pilot.RankingRow(res, i+1, colWidth, rowHeight, numberFace, nameFace, false)
		if err != nil {
			return nil, fmt.Errorf("standings row %d: %w", i+1, err)
		}
		if entry.Total != "" {
			total := layout.Text(entry.Total, white, totalFace)
			layout.Paste(row, total, layout.AtLeft(colWidth-total.Rect.Dx()-30))
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

// teamBoard stacks one full-width strip per ranked team: position, logo,
// team title and the points total.
func (g *standingsGenerator) teamBoard(res league.Resources, cfg *Config, width, height int) (*image.NRGBA, error) {
	img := layout.Transparent(width, height)
	const lineHop = 5
	lineHeight := height/10 - lineHop

	titleFace, err := res.Fonts.Bold(40)
	if err != nil {
		return nil, err
	}
	totalFace, err := res.Fonts.Bold(44)
	if err != nil {
		return nil, err
	}

	top := 0
	for i, entry := range cfg.Ranking {
		team := g.team(cfg, entry.Name)
		if team == nil {
			return nil, fmt.Errorf("standings: unknown team %q", entry.Name)
		}
		row, err := g.teamRow(res, team, i+1, entry.Total, width, lineHeight, titleFace, totalFace)
		if err != nil {
			return nil, err
		}
		layout.Paste(img, row, layout.At(0, top))
		top += lineHeight + lineHop
	}
	return img, nil
}

func (g *standingsGenerator) teamRow(res league.Resources, team *league.Team, position int, total string,
	width, height int, titleFace, totalFace font.Face) (*image.NRGBA, error) {
	row := layout.Fill(width, height, team.Secondary.NRGBA)
	layout.Gradient(row, layout.RightToLeft)
	layout.FillRect(row, image.Rect(0, 0, 10, height), team.Box.NRGBA)

	badge, err := res.Assets.Open(res.Assets.PositionBadge(position))
	if err != nil {
		return nil, fmt.Errorf("standings row %d: %w", position, err)
	}
	badgeImg := layout.Resize(badge, height, height, true)
	layout.Paste(row, badgeImg, layout.AtLeft(20))

	logo, err := res.Assets.Open(res.Assets.TeamLogo(team.Name, true))
	if err != nil {
		return nil, fmt.Errorf("standings row %d: %w", position, err)
	}
	logoImg := layout.Resize(logo, height-10, height-10, true)
	logoLeft := 20 + badgeImg.Rect.Dx() + 25
	layout.Paste(row, logoImg, layout.AtLeft(logoLeft))

	layout.Paste(row, layout.Text(team.Title, team.Main.NRGBA, titleFace), layout.AtLeft(logoLeft+logoImg.Rect.Dx()+30))

	if total != "" {
		totalImg := layout.Text(total, team.Main.NRGBA, totalFace)
		layout.Paste(row, totalImg, layout.AtLeft(width-totalImg.Rect.Dx()-40))
	}
	return row, nil
}

// pilot resolves a standings name against the race roster when a race is
// attached, else against the configured pilot table.
func (g *standingsGenerator) pilot(cfg *Config, name string) *league.Pilot {
	if cfg.Race != nil {
		return cfg.Race.Pilot(name)
	}
	if p, ok := cfg.Pilots[name]; ok {
		return p
	}
	team := &league.Team{Name: "Unknown", Title: "Unknown"}
	if len(cfg.Teams) > 0 {
		team = cfg.Teams[0]
	}
	return &league.Pilot{Name: name, Number: league.DefaultNumber, Team: team}
}

func (g *standingsGenerator) team(cfg *Config, name string) *league.Team {
	for _, t := range cfg.Teams {
		if t.Name == name || t.Title == name {
			return t
		}
	}
	return nil
}
