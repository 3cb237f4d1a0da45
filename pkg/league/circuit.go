package league

import (
	"image"

	"golang.org/x/image/font"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/layout"
)

// Circuit is one venue of the calendar. ID keys the flag/map/photo assets;
// BestLap is free text and rendered verbatim.
type Circuit struct {
	ID        string  `toml:"id"`
	Name      string  `toml:"name"`
	LapLength float64 `toml:"lap_length"`
	BestLap   string  `toml:"best_lap"`
}

// TitleImage renders the circuit name next to its national flag, vertically
// centered within the given height, horizontally concatenated with a fixed
// padding. The returned image is sized to its content.
func (c *Circuit) TitleImage(res Resources, height int, face font.Face) (*image.NRGBA, error) {
	textWidth, textHeight := layout.TextSize(c.Name, face)
	textTop := (height - textHeight) / 2

	flag, err := res.Assets.Open(res.Assets.CircuitFlag(c.ID))
	if err != nil {
		return nil, err
	}
	flagImg := layout.Resize(flag, height, height, true)

	const paddingBetween = 30
	width := textWidth + flagImg.Bounds().Dx() + paddingBetween
	img := layout.Transparent(width, height)
	layout.Paste(img, layout.Text(c.Name, white, face), layout.At(0, textTop))
	layout.Paste(img, flagImg, layout.At(textWidth+paddingBetween, textTop))
	return img, nil
}
