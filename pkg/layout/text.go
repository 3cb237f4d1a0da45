package layout

import (
	"image"
	"image/color"
	"strconv"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// TextSize measures the tight bounding box of s rendered with the given
// face. An empty string measures as a zero box.
func TextSize(s string, face font.Face) (width, height int) {
	if s == "" {
		return 0, 0
	}
	bounds, _ := font.BoundString(face, s)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

// Text rasterizes s into a tightly-cropped transparent-background image.
func Text(s string, c color.Color, face font.Face) *image.NRGBA {
	return TextStroke(s, c, face, 0, nil)
}

// TextStroke rasterizes s with an outline stroke of the given width and
// color. With strokeWidth 0 it renders plain text. The returned image is
// sized to the stroked bounding box with a transparent background.
func TextStroke(s string, c color.Color, face font.Face, strokeWidth int, strokeColor color.Color) *image.NRGBA {
	if s == "" {
		return Transparent(0, 0)
	}
	bounds, _ := font.BoundString(face, s)
	w := (bounds.Max.X - bounds.Min.X).Ceil() + 2*strokeWidth
	h := (bounds.Max.Y - bounds.Min.Y).Ceil() + 2*strokeWidth
	img := Transparent(w, h)
	dot := fixed.Point26_6{
		X: -bounds.Min.X + fixed.I(strokeWidth),
		Y: -bounds.Min.Y + fixed.I(strokeWidth),
	}
	if strokeWidth > 0 && strokeColor != nil {
		stamp := font.Drawer{Dst: img, Src: image.NewUniform(strokeColor), Face: face}
		for dy := -strokeWidth; dy <= strokeWidth; dy++ {
			for dx := -strokeWidth; dx <= strokeWidth; dx++ {
				if dx*dx+dy*dy > strokeWidth*strokeWidth {
					continue
				}
				stamp.Dot = fixed.Point26_6{X: dot.X + fixed.I(dx), Y: dot.Y + fixed.I(dy)}
				stamp.DrawString(s)
			}
		}
	}
	d := font.Drawer{Dst: img, Src: image.NewUniform(c), Face: face, Dot: dot}
	d.DrawString(s)
	return img
}

// AutoFitFontSize searches for the largest integer font size whose rendered
// text still fits within the given box. The search direction depends on
// whether the starting size already fits; convergence relies on text bounds
// growing monotonically with font size. newFace builds a face for a candidate
// size.
func AutoFitFontSize(s string, boxWidth, boxHeight int, newFace func(size float64) (font.Face, error), start int) (int, error) {
	if start < 1 {
		start = 1
	}
	fits := func(size int) (bool, error) {
		face, err := newFace(float64(size))
		if err != nil {
			return false, err
		}
		w, h := TextSize(s, face)
		return w <= boxWidth && h <= boxHeight, nil
	}
	ok, err := fits(start)
	if err != nil {
		return 0, err
	}
	size := start
	if ok {
		for {
			ok, err = fits(size + 1)
			if err != nil {
				return 0, err
			}
			if !ok {
				return size, nil
			}
			size++
		}
	}
	for size > 1 {
		size--
		ok, err = fits(size)
		if err != nil {
			return 0, err
		}
		if ok {
			return size, nil
		}
	}
	return 1, nil
}

// OrdinalSuffix returns the English ordinal suffix for a position using the
// last-digit rule: 1→ST, 2→ND, 3→RD, anything else→TH. 11, 12 and 13 follow
// the same last-digit rule.
func OrdinalSuffix(position int) string {
	switch position % 10 {
	case 1:
		return "ST"
	case 2:
		return "ND"
	case 3:
		return "RD"
	default:
		return "TH"
	}
}

// OrdinalLabel renders a position number next to its ordinal suffix, both
// outlined with the same stroke, concatenated left to right with no gap. The
// suffix is rendered with suffixFace, conventionally a smaller face of the
// same family.
func OrdinalLabel(position int, fill color.Color, face, suffixFace font.Face, strokeWidth int, strokeColor color.Color) *image.NRGBA {
	num := TextStroke(strconv.Itoa(position), fill, face, strokeWidth, strokeColor)
	ext := TextStroke(OrdinalSuffix(position), fill, suffixFace, strokeWidth, strokeColor)
	w := num.Bounds().Dx() + ext.Bounds().Dx()
	h := num.Bounds().Dy()
	if eh := ext.Bounds().Dy(); eh > h {
		h = eh
	}
	img := Transparent(w, h)
	Paste(img, num, At(0, 0))
	Paste(img, ext, At(num.Bounds().Dx(), 0))
	return img
}

// RepeatText tiles s across a transparent canvas of the given size at a fixed
// diagonal cadence: rows advance by the stamp height plus gapY, and odd rows
// are shifted by half a stamp width so the tiles interlock.
func RepeatText(width, height int, s string, c color.Color, face font.Face, gapX, gapY int) *image.NRGBA {
	img := Transparent(width, height)
	stamp := Text(s, c, face)
	sw, sh := stamp.Bounds().Dx(), stamp.Bounds().Dy()
	if sw == 0 || sh == 0 {
		return img
	}
	row := 0
	for top := -sh; top < height; top += sh + gapY {
		left := -sw
		if row%2 == 1 {
			left += sw / 2
		}
		for ; left < width; left += sw + gapX {
			Paste(img, stamp, At(left, top))
		}
		row++
	}
	return img
}

// RotatedText renders s with an optional stroke, rotates it by the given
// angle in degrees (counter-clockwise), and returns the rotated image on a
// transparent background.
func RotatedText(s string, c color.Color, face font.Face, strokeWidth int, strokeColor color.Color, angle float64) *image.NRGBA {
	txt := TextStroke(s, c, face, strokeWidth, strokeColor)
	return imaging.Rotate(txt, angle, color.NRGBA{})
}

