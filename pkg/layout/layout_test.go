package layout

import (
	"image"
	"image/color"
	"testing"
)

func TestResizeKeepRatioNeverUpscales(t *testing.T) {
	src := Fill(100, 50, color.White)

	got := Resize(src, 400, 400, true)
	if got.Rect.Dx() != 100 || got.Rect.Dy() != 50 {
		t.Errorf("Resize upscaled to %dx%d, want original 100x50", got.Rect.Dx(), got.Rect.Dy())
	}
}

func TestResizeKeepRatioDownscales(t *testing.T) {
	src := Fill(100, 50, color.White)

	got := Resize(src, 50, 50, true)
	if got.Rect.Dx() != 50 || got.Rect.Dy() != 25 {
		t.Errorf("Resize = %dx%d, want 50x25", got.Rect.Dx(), got.Rect.Dy())
	}
}

func TestResizeStretch(t *testing.T) {
	src := Fill(100, 50, color.White)

	got := Resize(src, 30, 70, false)
	if got.Rect.Dx() != 30 || got.Rect.Dy() != 70 {
		t.Errorf("Resize = %dx%d, want 30x70", got.Rect.Dx(), got.Rect.Dy())
	}
}

func TestPasteCentersOmittedAxes(t *testing.T) {
	dst := Fill(100, 100, color.Black)
	src := Fill(20, 10, color.White)

	box := Paste(dst, src)
	want := Box{Left: 40, Top: 45, Right: 60, Bottom: 55}
	if box != want {
		t.Errorf("Paste box = %+v, want %+v", box, want)
	}
}

func TestPasteAtLeftCentersVertically(t *testing.T) {
	dst := Fill(100, 100, color.Black)
	src := Fill(20, 10, color.White)

	box := Paste(dst, src, AtLeft(5))
	if box.Left != 5 || box.Top != 45 {
		t.Errorf("Paste box = %+v, want left 5 top 45", box)
	}
}

func TestPasteOverBlendsAlpha(t *testing.T) {
	dst := Fill(10, 10, color.NRGBA{0, 0, 255, 255})
	src := Fill(10, 10, color.NRGBA{255, 0, 0, 255})
	SetAlpha(src, 0)

	Paste(dst, src, At(0, 0))
	if got := dst.NRGBAAt(5, 5); got.B != 255 {
		t.Errorf("fully transparent paste changed pixel to %+v", got)
	}
}

func TestSetAlpha(t *testing.T) {
	img := Fill(4, 4, color.NRGBA{10, 20, 30, 255})
	SetAlpha(img, 150)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if a := img.NRGBAAt(x, y).A; a != 150 {
				t.Fatalf("alpha at (%d,%d) = %d, want 150", x, y, a)
			}
		}
	}
}

func TestGradientEndpoints(t *testing.T) {
	tests := []struct {
		name         string
		dir          Direction
		opaque, fade image.Point
	}{
		{"up to down", UpToDown, image.Pt(5, 0), image.Pt(5, 9)},
		{"down to up", DownToUp, image.Pt(5, 9), image.Pt(5, 0)},
		{"left to right", LeftToRight, image.Pt(0, 5), image.Pt(9, 5)},
		{"right to left", RightToLeft, image.Pt(9, 5), image.Pt(0, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := Fill(10, 10, color.NRGBA{255, 255, 255, 255})
			Gradient(img, tt.dir)
			if a := img.NRGBAAt(tt.opaque.X, tt.opaque.Y).A; a != 255 {
				t.Errorf("opaque edge alpha = %d, want 255", a)
			}
			if a := img.NRGBAAt(tt.fade.X, tt.fade.Y).A; a > 30 {
				t.Errorf("transparent edge alpha = %d, want near 0", a)
			}
		})
	}
}

func TestAlphaRampBounds(t *testing.T) {
	img := Fill(10, 1, color.NRGBA{255, 255, 255, 255})
	AlphaRamp(img, LeftToRight, 128, 255)

	if a := img.NRGBAAt(0, 0).A; a != 255 {
		t.Errorf("start alpha = %d, want 255", a)
	}
	if a := img.NRGBAAt(9, 0).A; a < 128 || a > 145 {
		t.Errorf("end alpha = %d, want near 128", a)
	}
}

func TestBoxDimensions(t *testing.T) {
	b := Box{Left: 10, Top: 20, Right: 110, Bottom: 50}
	if b.Width() != 100 {
		t.Errorf("Width() = %d, want 100", b.Width())
	}
	if b.Height() != 30 {
		t.Errorf("Height() = %d, want 30", b.Height())
	}
}
