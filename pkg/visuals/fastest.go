package visuals

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/layout"
	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/league"
)

// NoTimeLabel is the sheet placeholder for a pilot without a clean lap. It
// sorts after every real lap time.
const NoTimeLabel = "--:--.---"

// noTime is the value the placeholder stands for when ordering laps.
const noTime = 5*time.Minute + 59*time.Second + 999*time.Millisecond

// ParseLapTime converts a "M:SS.mmm" lap time to a duration. The no-time
// placeholder maps to a sentinel that outlasts any real lap.
func ParseLapTime(s string) (time.Duration, error) {
	if s == NoTimeLabel {
		return noTime, nil
	}
	rest, millis, ok := strings.Cut(s, ".")
	if !ok {
		return 0, fmt.Errorf("lap time %q: missing milliseconds", s)
	}
	mins, secs, ok := strings.Cut(rest, ":")
	if !ok {
		return 0, fmt.Errorf("lap time %q: missing minutes", s)
	}
	m, err := strconv.Atoi(mins)
	if err != nil {
		return 0, fmt.Errorf("lap time %q: %w", s, err)
	}
	sec, err := strconv.Atoi(secs)
	if err != nil {
		return 0, fmt.Errorf("lap time %q: %w", s, err)
	}
	ms, err := strconv.Atoi(millis)
	if err != nil {
		return 0, fmt.Errorf("lap time %q: %w", s, err)
	}
	return time.Duration(m)*time.Minute + time.Duration(sec)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}

type fastestGenerator struct{}

type fastestEntry struct {
	pilot *league.Pilot
	label string
	t     time.Duration
}

func (g *fastestGenerator) Generate(res league.Resources, cfg *Config) (string, error) {
	entries, err := g.rankByTime(cfg)
	if err != nil {
		return "", err
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

	const hPadding = 60
	const vPadding = 40
	firstTop := resultTitleHeight + vPadding
	contentWidth := width - 3*hPadding
	contentHeight := height - firstTop
	firstHeight := contentHeight / 2

	raceWidth := contentWidth / 4
	racePanel, err := g.racePanel(res, cfg.Race, raceWidth, firstHeight)
	if err != nil {
		return "", err
	}
	layout.Paste(canvas, racePanel, layout.At(hPadding, firstTop))

	firstCard, err := g.lapCard(res, 1, contentWidth-raceWidth, firstHeight, entries[0])
	if err != nil {
		return "", err
	}
	layout.Paste(canvas, firstCard, layout.At(hPadding+raceWidth+hPadding, firstTop))

	lowerTop := firstTop + firstHeight + vPadding
	lowerHeight := contentHeight - firstHeight - vPadding
	lowerWidth := (width - 3*hPadding) / 2
	for i, left := range []int{hPadding, hPadding + lowerWidth + hPadding} {
		card, err := g.lapCard(res, i+2, lowerWidth, lowerHeight, entries[i+1])
		if err != nil {
			return "", err
		}
		layout.Paste(canvas, card, layout.At(left, lowerTop))
	}

	path := cfg.OutputPath()
	if err := save(path, canvas); err != nil {
		return "", err
	}
	return path, nil
}

// rankByTime orders the sheet rows by personal fastest lap, no-time rows
// last, race-ranking order breaking ties.
func (g *fastestGenerator) rankByTime(cfg *Config) ([]fastestEntry, error) {
	if len(cfg.Ranking) < 3 {
		return nil, fmt.Errorf("fastest: need at least 3 ranked pilots, got %d", len(cfg.Ranking))
	}
	entries := make([]fastestEntry, 0, len(cfg.Ranking))
	for _, row := range cfg.Ranking {
		t, err := ParseLapTime(row.Time)
		if err != nil {
			return nil, fmt.Errorf("fastest: %w", err)
		}
		entries = append(entries, fastestEntry{
			pilot: cfg.Race.Pilot(row.Name),
			label: row.Time,
			t:     t,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].t < entries[j].t })
	return entries, nil
}

// racePanel summarizes the circuit on the upper left: name plus flag,
// lap length and track map on a fading backdrop.
func (g *fastestGenerator) racePanel(res league.Resources, race *league.Race, width, height int) (*image.NRGBA, error) {
	img := layout.Fill(width, height, color.NRGBA{})
	layout.Gradient(img, layout.LeftToRight)

	nameFace, err := res.Fonts.Regular(60)
	if err != nil {
		return nil, err
	}
	nameImg := layout.Text(race.Circuit.Name, white, nameFace)

	flag, err := res.Assets.Open(res.Assets.CircuitFlag(race.Circuit.ID))
	if err != nil {
		return nil, fmt.Errorf("race panel: %w", err)
	}
	flagImg := layout.Resize(flag, width-nameImg.Rect.Dx(), nameImg.Rect.Dy(), true)

	const nameTop = 20
	const gap = 10
	nameLeft := (width - (nameImg.Rect.Dx() + flagImg.Rect.Dx() + gap)) / 2
	layout.Paste(img, nameImg, layout.At(nameLeft, nameTop))
	flagTop := nameTop + (nameImg.Rect.Dy()-flagImg.Rect.Dy())/2
	layout.Paste(img, flagImg, layout.At(nameLeft+nameImg.Rect.Dx()+gap, flagTop))

	lengthFace, err := res.Fonts.Regular(36)
	if err != nil {
		return nil, err
	}
	length := layout.Text(fmt.Sprintf("Longueur: %v KM", race.Circuit.LapLength), color.NRGBA{180, 180, 180, 255}, lengthFace)
	lengthTop := nameTop + nameImg.Rect.Dy() + 20
	layout.Paste(img, length, layout.At((width-length.Rect.Dx())/2, lengthTop))

	trackMap, err := res.Assets.Open(res.Assets.CircuitMap(race.Circuit.ID))
	if err != nil {
		return nil, fmt.Errorf("race panel: %w", err)
	}
	mapTop := lengthTop + length.Rect.Dy() + 20
	layout.Paste(img, layout.Resize(trackMap, width, height-mapTop, true), layout.At(20, mapTop))
	return img, nil
}

// lapCard renders one podium spot of the fastest-lap standings. The winning
// card doubles the face sizes and carries the bonus-point note.
func (g *fastestGenerator) lapCard(res league.Resources, position, width, height int, entry fastestEntry) (*image.NRGBA, error) {
	baseSize := 100.0
	if position == 1 {
		baseSize = 200
	}
	img := layout.Fill(width, height, color.NRGBA{})
	layout.Gradient(img, layout.RightToLeft)

	posImg, err := g.positionLabel(res, position, baseSize)
	if err != nil {
		return nil, err
	}
	layout.Paste(img, posImg, layout.At(0, 0))

	txtImg, err := g.lapText(res, position, entry, baseSize)
	if err != nil {
		return nil, err
	}
	layout.Paste(img, txtImg, layout.At(0, height-txtImg.Rect.Dy()-20))

	teamLeft := txtImg.Rect.Dx() + 40
	teamImg, err := g.teamPortrait(res, entry.pilot, position, width-teamLeft, height)
	if err != nil {
		return nil, err
	}
	layout.Paste(img, teamImg, layout.At(teamLeft, 0))

	if position == 1 {
		realWidth := posImg.Rect.Dx()
		if txtImg.Rect.Dx() > realWidth {
			realWidth = txtImg.Rect.Dx()
		}
		realWidth += teamImg.Rect.Dx()
		if realWidth < width {
			return imaging.Crop(img, image.Rect(0, 0, realWidth, height)), nil
		}
	}
	return img, nil
}

// positionLabel is the big outlined "1ST" style ordinal.
func (g *fastestGenerator) positionLabel(res league.Resources, position int, size float64) (*image.NRGBA, error) {
	face, err := res.Fonts.Bold(size)
	if err != nil {
		return nil, err
	}
	suffixFace, err := res.Fonts.Bold(size / 2)
	if err != nil {
		return nil, err
	}
	return layout.OrdinalLabel(position, color.NRGBA{}, face, suffixFace, 4, white), nil
}

// lapText stacks pilot name and lap time, with the bonus-point note on top
// for the winner.
func (g *fastestGenerator) lapText(res league.Resources, position int, entry fastestEntry, baseSize float64) (*image.NRGBA, error) {
	face, err := res.Fonts.Bold(baseSize / 3)
	if err != nil {
		return nil, err
	}
	smallFace, err := res.Fonts.Regular(baseSize/3 - 10)
	if err != nil {
		return nil, err
	}

	pilotImg := layout.Text(entry.pilot.Name, white, face)
	timeImg := layout.Text(entry.label, white, face)

	const gap = 10
	width := pilotImg.Rect.Dx()
	if timeImg.Rect.Dx() > width {
		width = timeImg.Rect.Dx()
	}
	height := pilotImg.Rect.Dy() + gap + timeImg.Rect.Dy()

	var bonusImg *image.NRGBA
	if position == 1 {
		bonusImg = layout.Text("+1 point", color.NRGBA{200, 200, 0, 255}, smallFace)
		height += bonusImg.Rect.Dy() + gap
		if bonusImg.Rect.Dx() > width {
			width = bonusImg.Rect.Dx()
		}
	}

	img := layout.Transparent(width, height)
	top := 0
	if bonusImg != nil {
		layout.Paste(img, bonusImg, layout.At(0, 0))
		top = bonusImg.Rect.Dy() + gap
	}
	layout.Paste(img, pilotImg, layout.At(0, top))
	layout.Paste(img, timeImg, layout.At(0, top+pilotImg.Rect.Dy()+gap))
	return img, nil
}

// teamPortrait anchors the pilot-pair photo to the bottom right of its box
// with the team name stamped over its lower edge.
func (g *fastestGenerator) teamPortrait(res league.Resources, pilot *league.Pilot, position, maxWidth, maxHeight int) (*image.NRGBA, error) {
	team := pilot.Team
	photo, err := res.Assets.Open(res.Assets.TeamPilotPhoto(team.Name))
	if err != nil {
		return nil, fmt.Errorf("team portrait: %w", err)
	}
	portrait := layout.Resize(photo, maxWidth, maxHeight, true)

	img := layout.Transparent(portrait.Rect.Dx(), maxHeight)
	layout.Paste(img, portrait, layout.At(0, maxHeight-portrait.Rect.Dy()))

	size := 30.0
	if position == 1 {
		size = 50
	}
	nameFace, err := res.Fonts.Bold(size)
	if err != nil {
		return nil, err
	}
	label := g.teamLabel(team, portrait.Rect.Dx(), nameFace)
	layout.Paste(img, label, layout.At(img.Rect.Dx()-label.Rect.Dx(), maxHeight-label.Rect.Dy()))
	return img, nil
}

func (g *fastestGenerator) teamLabel(team *league.Team, width int, face font.Face) *image.NRGBA {
	txt := layout.Text(team.Title, white, face)
	if txt.Rect.Dx() <= width {
		return txt
	}
	return imaging.Crop(txt, image.Rect(0, 0, width, txt.Rect.Dy()))
}
