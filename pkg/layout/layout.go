// Package layout provides the raster composition primitives the visual
// generators are built from: alpha gradients, rounded-corner masks,
// aspect-preserving resize, text measurement and rasterization, anchored
// pasting with returned bounding boxes, auto-fit font sizing, and the
// watermark-style text stamps.
//
// All functions operate on plain image buffers. The canonical canvas type is
// *image.NRGBA; helpers that compose onto an existing canvas mutate it in
// place and return the painted region so callers can chain layout math.
package layout

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// Box is the rectangle a paste operation covered, in destination coordinates.
type Box struct {
	Left, Top, Right, Bottom int
}

// Width returns the horizontal extent of the box.
func (b Box) Width() int { return b.Right - b.Left }

// Height returns the vertical extent of the box.
func (b Box) Height() int { return b.Bottom - b.Top }

// Direction names the axis along which a gradient fades, from the opaque
// edge to the transparent one.
type Direction int

const (
	UpToDown Direction = iota
	DownToUp
	LeftToRight
	RightToLeft
)

// Gradient replaces the alpha channel of img with a linear ramp along the
// given direction: fully opaque at the named start edge, fully transparent at
// the opposite edge. The image is mutated in place.
func Gradient(img *image.NRGBA, dir Direction) {
	AlphaRamp(img, dir, 0, 255)
}

// AlphaRamp is Gradient with a custom alpha span: the transparent end of the
// ramp gets min instead of 0 and the opaque end gets max instead of 255.
func AlphaRamp(img *image.NRGBA, dir Direction, min, max uint8) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var a int
			switch dir {
			case UpToDown:
				a = ramp(h-1-y, h, min, max)
			case DownToUp:
				a = ramp(y, h, min, max)
			case LeftToRight:
				a = ramp(w-1-x, w, min, max)
			case RightToLeft:
				a = ramp(x, w, min, max)
			}
			img.Pix[img.PixOffset(b.Min.X+x, b.Min.Y+y)+3] = uint8(a)
		}
	}
}

// ramp maps position i in [0,n) to an alpha value in [min,max], max at i=n-1.
func ramp(i, n int, min, max uint8) int {
	if n <= 1 {
		return int(max)
	}
	return int(min) + i*int(max-min)/(n-1)
}

// SetAlpha sets a uniform alpha over the whole image, preserving color.
func SetAlpha(img *image.NRGBA, a uint8) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y) : img.PixOffset(b.Max.X-1, y)+4]
		for i := 3; i < len(row); i += 4 {
			row[i] = a
		}
	}
}

// Resize scales img to fit within the given box. With keepRatio it follows
// thumbnail semantics: the aspect ratio is preserved and the image is only
// ever scaled down, never enlarged. Without keepRatio the image is stretched
// to exactly the target dimensions.
func Resize(img image.Image, width, height int, keepRatio bool) *image.NRGBA {
	if keepRatio {
		return imaging.Fit(img, width, height, imaging.Lanczos)
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

type pasteSpec struct {
	left, top       int
	hasLeft, hasTop bool
	opaque          bool
}

// PasteOption adjusts how Paste anchors and composites the source image.
type PasteOption func(*pasteSpec)

// At anchors the source at the given origin.
func At(left, top int) PasteOption {
	return func(s *pasteSpec) {
		s.left, s.top = left, top
		s.hasLeft, s.hasTop = true, true
	}
}

// AtLeft fixes the horizontal origin and centers the source vertically.
func AtLeft(left int) PasteOption {
	return func(s *pasteSpec) { s.left, s.hasLeft = left, true }
}

// AtTop fixes the vertical origin and centers the source horizontally.
func AtTop(top int) PasteOption {
	return func(s *pasteSpec) { s.top, s.hasTop = top, true }
}

// Opaque composites the source without consulting its alpha channel,
// replacing destination pixels outright.
func Opaque() PasteOption {
	return func(s *pasteSpec) { s.opaque = true }
}

// Paste composites src onto dst and returns the covered box. Omitted axes are
// centered within the destination. A source larger than the destination is
// clipped at composite time.
func Paste(dst draw.Image, src image.Image, opts ...PasteOption) Box {
	var spec pasteSpec
	for _, opt := range opts {
		opt(&spec)
	}
	db, sb := dst.Bounds(), src.Bounds()
	if !spec.hasLeft {
		spec.left = (db.Dx() - sb.Dx()) / 2
	}
	if !spec.hasTop {
		spec.top = (db.Dy() - sb.Dy()) / 2
	}
	at := image.Pt(db.Min.X+spec.left, db.Min.Y+spec.top)
	rect := image.Rectangle{Min: at, Max: at.Add(sb.Size())}
	op := draw.Over
	if spec.opaque {
		op = draw.Src
	}
	draw.Draw(dst, rect, src, sb.Min, op)
	return Box{
		Left:   spec.left,
		Top:    spec.top,
		Right:  spec.left + sb.Dx(),
		Bottom: spec.top + sb.Dy(),
	}
}

// Fill returns a solid-color image of the given size.
func Fill(width, height int, c color.Color) *image.NRGBA {
	return imaging.New(width, height, c)
}

// Transparent returns a fully transparent canvas of the given size.
func Transparent(width, height int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}
