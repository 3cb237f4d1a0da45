package league

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#FF0000", color.NRGBA{255, 0, 0, 255}},
		{"#00ff00", color.NRGBA{0, 255, 0, 255}},
		{"#11223344", color.NRGBA{0x11, 0x22, 0x33, 0x44}},
		{"255,255,255", color.NRGBA{255, 255, 255, 255}},
		{"32, 167, 215", color.NRGBA{32, 167, 215, 255}},
		{"0,0,0,177", color.NRGBA{0, 0, 0, 177}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got.NRGBA != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got.NRGBA, tt.want)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#FFF", "#GGHHII", "1,2", "1,2,3,4,5", "256,0,0", "red"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) succeeded, want error", in)
		}
	}
}

func TestColorUnmarshalText(t *testing.T) {
	var c Color
	if err := c.UnmarshalText([]byte("#0A0B0C")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if c.NRGBA != (color.NRGBA{0x0A, 0x0B, 0x0C, 255}) {
		t.Errorf("got %+v", c.NRGBA)
	}
}

func TestColorIsZero(t *testing.T) {
	var zero Color
	if !zero.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if RGB(0, 0, 0).IsZero() {
		t.Error("opaque black is a configured color, not zero")
	}
}
