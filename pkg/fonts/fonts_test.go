package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestBuiltinProvidesAllWeights(t *testing.T) {
	r := Builtin()
	for _, w := range []Weight{Regular, Bold, Black} {
		face, err := r.Face(w, 32)
		if err != nil {
			t.Fatalf("Face(%s, 32): %v", w, err)
		}
		if face == nil {
			t.Fatalf("Face(%s, 32) returned nil", w)
		}
	}
}

func TestWeightString(t *testing.T) {
	tests := []struct {
		w    Weight
		want string
	}{
		{Regular, "regular"},
		{Bold, "bold"},
		{Black, "black"},
		{Weight(9), "weight(9)"},
	}
	for _, tt := range tests {
		if got := tt.w.String(); got != tt.want {
			t.Errorf("Weight(%d).String() = %q, want %q", int(tt.w), got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}

	r, err := Load(path, path, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := r.Bold(40); err != nil {
		t.Errorf("Bold(40): %v", err)
	}
}

func TestLoadMissingFont(t *testing.T) {
	if _, err := Load("no-such-font-family.ttf", "x.ttf", "y.ttf"); err == nil {
		t.Fatal("Load with missing fonts succeeded, want error")
	}
}

func TestLoadUnparseableFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path, path, path); err == nil {
		t.Fatal("Load with garbage font data succeeded, want error")
	}
}

func TestFaceShorthands(t *testing.T) {
	r := Builtin()
	if _, err := r.Regular(30); err != nil {
		t.Errorf("Regular: %v", err)
	}
	if _, err := r.Black(120); err != nil {
		t.Errorf("Black: %v", err)
	}
}
