package cli

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestResourceOptsBuildDefaultsToBuiltinFonts(t *testing.T) {
	opts := resourceOpts{assetsDir: "assets"}

	res, err := opts.build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if res.Fonts == nil {
		t.Fatal("no font registry")
	}
	if res.Assets.Root() != "assets" {
		t.Errorf("asset root = %q", res.Assets.Root())
	}
}

func TestResourceOptsBuildRejectsPartialFontFlags(t *testing.T) {
	opts := resourceOpts{fontRegular: "formula.ttf"}
	if _, err := opts.build(); err == nil {
		t.Fatal("partial font flags accepted, want error")
	}
}

func TestResourceOptsBuildLoadsFontFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "font.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	opts := resourceOpts{fontRegular: path, fontBold: path, fontBlack: path}

	res, err := opts.build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, err := res.Fonts.Bold(40); err != nil {
		t.Errorf("Bold face: %v", err)
	}
}
