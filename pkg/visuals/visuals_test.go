package visuals

import (
	"errors"
	"strings"
	"testing"

	"github.com/xavierdubuc/f1echamp-visuals-generator/pkg/league"
)

func TestRenderUnknownType(t *testing.T) {
	_, err := Render(league.Resources{}, &Config{Type: "poster"})
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("err = %v, want ErrUnknownType", err)
	}
	for _, want := range []string{"poster", "results", "pole", "numbers"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestValidTypesSortedAndComplete(t *testing.T) {
	types := ValidTypes()
	if len(types) != len(generators) {
		t.Fatalf("len = %d, want %d", len(types), len(generators))
	}
	for i := 1; i < len(types); i++ {
		if types[i-1] >= types[i] {
			t.Fatalf("types %v not sorted", types)
		}
	}
	for _, typ := range types {
		if generators[typ] == nil {
			t.Errorf("type %q has no generator", typ)
		}
	}
}

func TestOutputPath(t *testing.T) {
	cfg := &Config{Type: Lineup}
	if got := cfg.OutputPath(); got != "./lineup.png" {
		t.Errorf("default OutputPath() = %q", got)
	}

	cfg.Output = "/tmp/out/race3.png"
	if got := cfg.OutputPath(); got != "/tmp/out/race3.png" {
		t.Errorf("explicit OutputPath() = %q", got)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  []string
	}{
		{"short line untouched", "sprint race", 62, []string{"sprint race"}},
		{"empty", "", 62, nil},
		{"wraps at word boundary", "one two three four", 9, []string{"one two", "three", "four"}},
		{"oversized word kept whole", "abcdefghij bc", 4, []string{"abcdefghij", "bc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.in, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("wrapText = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("wrapText = %q, want %q", got, tt.want)
				}
			}
		})
	}
}
