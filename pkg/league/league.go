// Package league holds the racing-league domain model (circuits, teams,
// pilots, races and per-row results) together with the per-entity drawing
// helpers the visual generators place on their canvases.
//
// Entities are value objects constructed once per render from the season
// data; nothing here outlives a single generate call.
package league

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/assets"
	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/fonts"
)

// Resources bundles the asset library and font registry the drawing helpers
// need. It is threaded explicitly through every render call.
type Resources struct {
	Assets assets.Library
	Fonts  *fonts.Registry
}

// Color is an RGBA color decodable from TOML as either a "#RRGGBB[AA]" hex
// string or an "R,G,B[,A]" component list.
type Color struct {
	color.NRGBA
}

// RGB builds an opaque color from components.
func RGB(r, g, b uint8) Color {
	return Color{color.NRGBA{R: r, G: g, B: b, A: 255}}
}

// IsZero reports whether the color was never set.
func (c Color) IsZero() bool { return c.NRGBA == color.NRGBA{} }

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses "#RRGGBB", "#RRGGBBAA" or "R,G,B[,A]" into a color.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hexDigits := s[1:]
		if len(hexDigits) != 6 && len(hexDigits) != 8 {
			return Color{}, fmt.Errorf("invalid hex color %q", s)
		}
		v, err := strconv.ParseUint(hexDigits, 16, 64)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		c := Color{color.NRGBA{A: 255}}
		if len(hexDigits) == 8 {
			c.A = uint8(v)
			v >>= 8
		}
		c.B = uint8(v)
		c.G = uint8(v >> 8)
		c.R = uint8(v >> 16)
		return c, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("invalid color %q: want R,G,B or R,G,B,A", s)
	}
	vals := make([]uint8, 4)
	vals[3] = 255
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return Color{}, fmt.Errorf("invalid color component %q in %q", p, s)
		}
		vals[i] = uint8(n)
	}
	return Color{color.NRGBA{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}}, nil
}

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
