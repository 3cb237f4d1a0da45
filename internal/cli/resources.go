package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/assets"
	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/fonts"
	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/league"
)

// resourceOpts holds the flags locating the asset library and the brand
// fonts, shared by every rendering command.
type resourceOpts struct {
	assetsDir   string
	fontRegular string
	fontBold    string
	fontBlack   string
}

func (o *resourceOpts) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.assetsDir, "assets", "assets", "asset library directory")
	cmd.Flags().StringVar(&o.fontRegular, "font-regular", "", "regular font file (built-in fallback when unset)")
	cmd.Flags().StringVar(&o.fontBold, "font-bold", "", "bold font file")
	cmd.Flags().StringVar(&o.fontBlack, "font-black", "", "black font file")
}

// build resolves the flags into the resource bundle the generators consume.
// Without font flags the built-in faces are used, which keeps the tool
// usable on machines without the brand fonts installed.
func (o *resourceOpts) build() (league.Resources, error) {
	res := league.Resources{Assets: assets.NewLibrary(o.assetsDir)}
	if o.fontRegular == "" && o.fontBold == "" && o.fontBlack == "" {
		res.Fonts = fonts.Builtin()
		return res, nil
	}
	if o.fontRegular == "" || o.fontBold == "" || o.fontBlack == "" {
		return league.Resources{}, fmt.Errorf("either all of --font-regular, --font-bold and --font-black must be set, or none")
	}
	reg, err := fonts.Load(o.fontRegular, o.fontBold, o.fontBlack)
	if err != nil {
		return league.Resources{}, err
	}
	res.Fonts = reg
	return res, nil
}
