package league

import (
	"image"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/layout"
)

// PilotResult is one row of a ranking sheet projected onto a pilot: the
// finishing position, the gap-or-status text and the tyre compounds used.
type PilotResult struct {
	Pilot    *Pilot
	Position int
	Split    string
	// Tyres is the ordered sequence of single-letter compound codes.
	Tyres string
}

// SplitLabel returns the gap text as rendered: the winner and the special
// NT/DSQ statuses verbatim, everyone else with a leading +.
func (pr *PilotResult) SplitLabel() string {
	if pr.Position == 1 || pr.Split == "NT" || pr.Split == "DSQ" {
		return pr.Split
	}
	return "+" + pr.Split
}

// DetailsRow renders the pilot's ranking row extended with the gap time and
// the tyre-compound icons. Gap columns are right-aligned across rows by
// padding against largestSplitWidth, the widest gap text of the sheet.
// Compound icons overlap by a fixed negative padding so they interlock.
func (pr *PilotResult) DetailsRow(res Resources, width, height, largestSplitWidth int) (*image.NRGBA, error) {
	smallFace, err := res.Fonts.Regular(32)
	if err != nil {
		return nil, err
	}
	nameFace, err := res.Fonts.Bold(30)
	if err != nil {
		return nil, err
	}

	img, err := pr.Pilot.RankingRow(res, pr.Position, width, height, smallFace, nameFace, false)
	if err != nil {
		return nil, err
	}

	split := pr.SplitLabel()
	splitWidth, splitHeight := layout.TextSize(split, smallFace)
	const pilotRight = 460
	splitLeft := pilotRight + (largestSplitWidth - splitWidth)
	layout.Paste(img, layout.Text(split, white, smallFace),
		layout.At(splitLeft, (height-splitHeight)/2))

	const tyreOverlap = 12
	left := splitLeft + splitWidth + 20
	for _, code := range pr.Tyres {
		tyre, err := res.Assets.Open(res.Assets.TyreIcon(string(code)))
		if err != nil {
			return nil, err
		}
		tyreImg := layout.Resize(tyre, height, height, true)
		layout.Paste(img, tyreImg, layout.At(left, 0))
		left += tyreImg.Bounds().Dx() - tyreOverlap
	}
	return img, nil
}
