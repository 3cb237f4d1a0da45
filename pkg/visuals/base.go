package visuals

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/layout"
	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/league"
)

// metalAlpha is the uniform transparency applied to the texture overlay.
const metalAlpha = 150

// saveQuality is passed to the encoder for lossy formats.
const saveQuality = 95

// baseCanvas builds the shared backdrop: the league background with the
// metal texture stretched over it at reduced opacity. The background asset
// fixes the canvas dimensions for every visual.
func baseCanvas(res league.Resources) (*image.NRGBA, error) {
	bg, err := res.Assets.Open(res.Assets.Background())
	if err != nil {
		return nil, fmt.Errorf("base canvas: %w", err)
	}
	canvas := imaging.Clone(bg)

	metal, err := res.Assets.Open(res.Assets.MetalTexture())
	if err != nil {
		return nil, fmt.Errorf("base canvas: %w", err)
	}
	overlay := imaging.Resize(metal, canvas.Rect.Dx(), canvas.Rect.Dy(), imaging.Lanczos)
	layout.SetAlpha(overlay, metalAlpha)
	layout.Paste(canvas, overlay, layout.At(0, 0))
	return canvas, nil
}

// save persists the finished canvas. It is only called once all content has
// been painted, so a failed generation never leaves a partial file behind.
func save(path string, img image.Image) error {
	if err := imaging.Save(img, path, imaging.JPEGQuality(saveQuality)); err != nil {
		return fmt.Errorf("save visual: %w", err)
	}
	return nil
}
