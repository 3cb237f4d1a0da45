// Package assets resolves the fixed on-disk asset layout the visuals are
// composed from: team logos, circuit flags/maps/photos, position badges,
// tyre-compound icons, decorative backgrounds and the brand logos.
//
// Every lookup is keyed by an entity identifier (team name, circuit id,
// tyre code). A missing file is a fatal render error, surfaced as
// ErrMissing; the pipeline never substitutes placeholder art.
package assets

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
)

// ErrMissing reports a required asset file that does not exist.
var ErrMissing = errors.New("asset not found")

// Library locates assets under a single root directory.
type Library struct {
	root string
}

// NewLibrary returns a library rooted at dir, defaulting to "assets".
func NewLibrary(dir string) Library {
	if dir == "" {
		dir = "assets"
	}
	return Library{root: dir}
}

// Root returns the library's root directory.
func (l Library) Root() string { return l.root }

// Open loads the image at the given library-relative path. A nonexistent
// file yields an error wrapping ErrMissing.
func (l Library) Open(rel string) (image.Image, error) {
	path := filepath.Join(l.root, filepath.FromSlash(rel))
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissing, path)
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open asset %s: %w", path, err)
	}
	return img, nil
}

// First returns the first candidate path that exists on disk, relative to
// the library root. When none exists it returns an error wrapping ErrMissing
// that lists every candidate tried.
func (l Library) First(candidates ...string) (string, error) {
	for _, rel := range candidates {
		if _, err := os.Stat(filepath.Join(l.root, filepath.FromSlash(rel))); err == nil {
			return rel, nil
		}
	}
	return "", fmt.Errorf("%w: none of %v", ErrMissing, candidates)
}

// Abs returns the absolute on-disk path for a library-relative path.
func (l Library) Abs(rel string) string {
	return filepath.Join(l.root, filepath.FromSlash(rel))
}

// Background is the full-canvas base background.
func (l Library) Background() string { return "bg.png" }

// MetalTexture is the semi-transparent overlay composited over the base.
func (l Library) MetalTexture() string { return "bgmetal.png" }

// TitleBackground is the banner strip behind the shared top title.
func (l Library) TitleBackground() string { return "results/bgtop.png" }

// DateBackground is the backdrop of the race date/title block.
func (l Library) DateBackground() string { return "results/bgdate.png" }

// RedCorner is the corner accent of the circuit information panel.
func (l Library) RedCorner() string { return "results/redcorner.png" }

// PoleBackground sizes the pole banner canvas.
func (l Library) PoleBackground() string { return "pole/bg.png" }

// BreakingBackground sizes the breaking-news canvas.
func (l Library) BreakingBackground() string { return "breaking/bg.png" }

// BrandLogo is the league logo; the borderless variant is used on banners
// with their own framing.
func (l Library) BrandLogo(noBorder bool) string {
	if noBorder {
		return "fbrt_no_border.png"
	}
	return "fbrt.png"
}

// GameLogo is the right-aligned secondary logo; the black variant is used on
// light backgrounds.
func (l Library) GameLogo(black bool) string {
	if black {
		return "f122_black.png"
	}
	return "f122.png"
}

// FastestLapBadge is the fastest-lap highlight icon.
func (l Library) FastestLapBadge() string { return "fastest_lap.png" }

// TeamLogo returns the logo path for a team name; white selects the
// white-on-transparent variant.
func (l Library) TeamLogo(team string, white bool) string {
	if white {
		return "teams/white/" + team + ".png"
	}
	return "teams/" + team + ".png"
}

// TeamPilotPhoto is the promotional team/pilot photograph used on the
// fastest-lap podium cards.
func (l Library) TeamPilotPhoto(team string) string { return "team_pilots/" + team + ".png" }

// CircuitFlag returns the national flag for a circuit id.
func (l Library) CircuitFlag(id string) string { return "circuits/flags/" + id + ".png" }

// CircuitMap returns the track outline for a circuit id.
func (l Library) CircuitMap(id string) string { return "circuits/maps/" + id + ".png" }

// CircuitPhoto returns the scenery photograph for a circuit id.
func (l Library) CircuitPhoto(id string) string { return "circuits/photos/" + id + ".png" }

// PositionBadge returns the pre-rendered numeral asset for a finishing
// position (1-based).
func (l Library) PositionBadge(position int) string {
	return "results/positions/" + strconv.Itoa(position) + ".png"
}

// RoundNumber is the pre-rendered "Race N" title for results visuals.
func (l Library) RoundNumber(round int) string {
	return "race_numbers/Race" + strconv.Itoa(round) + ".png"
}

// TyreIcon returns the tyre-compound icon for a single compound code.
func (l Library) TyreIcon(code string) string { return "tyres/" + code + ".png" }

// GridRow is the pre-rendered row overlay for the highlight clip.
func (l Library) GridRow(row int) string {
	return "grid/rows/" + strconv.Itoa(row) + ".png"
}

// CelebrationPhoto resolves a pilot's celebratory photograph through the
// ordered fallback chain: pilot-specific shot first, then the team
// celebration shot, then the generic one. The chain is resolved once per
// render; an empty chain is the fatal missing-asset case.
func (l Library) CelebrationPhoto(pilot, team string) (string, error) {
	return l.First(
		"pilots/"+pilot+".png",
		"pilots/"+team+".png",
		"pilots/default.png",
	)
}
