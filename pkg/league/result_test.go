package league

import "testing"

func TestSplitLabel(t *testing.T) {
	tests := []struct {
		name     string
		position int
		split    string
		want     string
	}{
		{"winner keeps time verbatim", 1, "1:44.903", "1:44.903"},
		{"gap gets plus prefix", 2, "5.460", "+5.460"},
		{"midfield gap", 12, "1:02.150", "+1:02.150"},
		{"not classified", 17, "NT", "NT"},
		{"disqualified", 20, "DSQ", "DSQ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := &PilotResult{Position: tt.position, Split: tt.split}
			if got := pr.SplitLabel(); got != tt.want {
				t.Errorf("SplitLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
