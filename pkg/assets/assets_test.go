package assets

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestNewLibraryDefaultsRoot(t *testing.T) {
	if got := NewLibrary("").Root(); got != "assets" {
		t.Errorf("Root() = %q, want %q", got, "assets")
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "teams", "Ferrari.png"))
	lib := NewLibrary(dir)

	img, err := lib.Open(lib.TeamLogo("Ferrari", false))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("width = %d, want 8", img.Bounds().Dx())
	}
}

func TestOpenMissing(t *testing.T) {
	lib := NewLibrary(t.TempDir())

	_, err := lib.Open("teams/Nowhere.png")
	if !errors.Is(err, ErrMissing) {
		t.Fatalf("err = %v, want ErrMissing", err)
	}
}

func TestCelebrationPhotoFallbackChain(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "pilots", "default.png"))
	writePNG(t, filepath.Join(dir, "pilots", "Ferrari.png"))
	lib := NewLibrary(dir)

	got, err := lib.CelebrationPhoto("LECLERC", "Ferrari")
	if err != nil {
		t.Fatalf("CelebrationPhoto: %v", err)
	}
	if got != "pilots/Ferrari.png" {
		t.Errorf("chain picked %q, want team photo", got)
	}

	writePNG(t, filepath.Join(dir, "pilots", "LECLERC.png"))
	got, err = lib.CelebrationPhoto("LECLERC", "Ferrari")
	if err != nil {
		t.Fatalf("CelebrationPhoto: %v", err)
	}
	if got != "pilots/LECLERC.png" {
		t.Errorf("chain picked %q, want pilot photo", got)
	}
}

func TestCelebrationPhotoMissing(t *testing.T) {
	lib := NewLibrary(t.TempDir())

	_, err := lib.CelebrationPhoto("NOBODY", "NoTeam")
	if !errors.Is(err, ErrMissing) {
		t.Fatalf("err = %v, want ErrMissing", err)
	}
}

func TestPathConventions(t *testing.T) {
	lib := NewLibrary("assets")
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"team logo", lib.TeamLogo("Alpine", false), "teams/Alpine.png"},
		{"team logo white", lib.TeamLogo("Alpine", true), "teams/white/Alpine.png"},
		{"circuit flag", lib.CircuitFlag("belgium"), "circuits/flags/belgium.png"},
		{"circuit map", lib.CircuitMap("belgium"), "circuits/maps/belgium.png"},
		{"position badge", lib.PositionBadge(7), "results/positions/7.png"},
		{"round number", lib.RoundNumber(3), "race_numbers/Race3.png"},
		{"tyre icon", lib.TyreIcon("S"), "tyres/S.png"},
		{"grid row", lib.GridRow(4), "grid/rows/4.png"},
		{"brand logo", lib.BrandLogo(false), "fbrt.png"},
		{"brand logo borderless", lib.BrandLogo(true), "fbrt_no_border.png"},
		{"game logo black", lib.GameLogo(true), "f122_black.png"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}
