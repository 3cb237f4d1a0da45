package league

import "testing"

func TestPoleColorsFallsBackToBreaking(t *testing.T) {
	team := &Team{
		Name:     "Alpine",
		Breaking: ColorSet{Fg: RGB(255, 255, 255), Bg: RGB(0, 0, 200), Line: RGB(255, 0, 255)},
	}

	got := team.PoleColors()
	if got != team.Breaking {
		t.Errorf("PoleColors() = %+v, want breaking set", got)
	}
}

func TestPoleColorsPrefersPoleSet(t *testing.T) {
	team := &Team{
		Name:     "Alpine",
		Breaking: ColorSet{Bg: RGB(0, 0, 200)},
		Pole:     ColorSet{Fg: RGB(1, 2, 3), Bg: RGB(4, 5, 6), Line: RGB(7, 8, 9)},
	}

	if got := team.PoleColors(); got != team.Pole {
		t.Errorf("PoleColors() = %+v, want pole set", got)
	}
}

func TestColorSetIsZero(t *testing.T) {
	if !(ColorSet{}).IsZero() {
		t.Error("empty set should be zero")
	}
	if (ColorSet{Line: RGB(1, 1, 1)}).IsZero() {
		t.Error("set with a line color is configured")
	}
}
