package layout

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
)

// RoundedMask produces an alpha mask of the given size with rounded corners
// of the given pixel radius.
func RoundedMask(width, height, radius int) *image.Alpha {
	ctx := gg.NewContext(width, height)
	ctx.DrawRoundedRectangle(0, 0, float64(width), float64(height), float64(radius))
	ctx.SetRGB(1, 1, 1)
	ctx.Fill()
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	src := ctx.Image()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			_, _, _, a := src.At(x, y).RGBA()
			mask.SetAlpha(x, y, color.Alpha{A: uint8(a >> 8)})
		}
	}
	return mask
}

// PasteRounded composites src onto dst at the given origin through a
// rounded-corner mask of the given radius, and returns the covered box.
func PasteRounded(dst draw.Image, src image.Image, left, top, radius int) Box {
	sb := src.Bounds()
	mask := RoundedMask(sb.Dx(), sb.Dy(), radius)
	at := image.Pt(dst.Bounds().Min.X+left, dst.Bounds().Min.Y+top)
	rect := image.Rectangle{Min: at, Max: at.Add(sb.Size())}
	draw.DrawMask(dst, rect, src, sb.Min, mask, mask.Bounds().Min, draw.Over)
	return Box{Left: left, Top: top, Right: left + sb.Dx(), Bottom: top + sb.Dy()}
}

// FillRect paints a solid rectangle onto dst.
func FillRect(dst draw.Image, rect image.Rectangle, c color.Color) {
	draw.Draw(dst, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Line draws a straight line of the given width between two points.
func Line(dst *image.NRGBA, x1, y1, x2, y2 float64, c color.Color, width float64) {
	ctx := gg.NewContextForImage(dst)
	ctx.SetColor(c)
	ctx.SetLineWidth(width)
	ctx.DrawLine(x1, y1, x2, y2)
	ctx.Stroke()
	Paste(dst, ctx.Image(), At(0, 0), Opaque())
}

// Pinstripes covers dst with thin diagonal lines of the given color, spaced
// gap pixels apart.
func Pinstripes(dst *image.NRGBA, c color.Color, gap, lineWidth int) {
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	ctx := gg.NewContextForImage(dst)
	ctx.SetColor(c)
	ctx.SetLineWidth(float64(lineWidth))
	for x := -h; x < w; x += float64(gap) {
		ctx.DrawLine(x, 0, x+h, h)
		ctx.Stroke()
	}
	Paste(dst, ctx.Image(), At(0, 0), Opaque())
}

// CutCorners punches transparent triangles into two opposite corners of dst:
// upperSize at the top-left, lowerSize at the bottom-right. Used by the
// breaking-news picture band.
func CutCorners(dst *image.NRGBA, upperSize, lowerSize int) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	for dy := 0; dy < upperSize; dy++ {
		for dx := 0; dx < upperSize-dy; dx++ {
			clearPixel(dst, b.Min.X+dx, b.Min.Y+dy)
		}
	}
	for dy := 0; dy < lowerSize; dy++ {
		for dx := 0; dx < lowerSize-dy; dx++ {
			clearPixel(dst, b.Min.X+w-1-dx, b.Min.Y+h-1-dy)
		}
	}
}

func clearPixel(img *image.NRGBA, x, y int) {
	off := img.PixOffset(x, y)
	img.Pix[off], img.Pix[off+1], img.Pix[off+2], img.Pix[off+3] = 0, 0, 0, 0
}
