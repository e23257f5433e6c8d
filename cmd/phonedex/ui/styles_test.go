package ui

import "testing"

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("PHONEDEX_DARK_MODE", "1")
	dark := DetectTheme()
	if !dark.IsDark {
		t.Fatalf("expected dark theme when PHONEDEX_DARK_MODE=1")
	}

	t.Setenv("PHONEDEX_DARK_MODE", "")
	light := DetectTheme()
	if light.IsDark {
		t.Fatalf("expected light theme when PHONEDEX_DARK_MODE is unset")
	}
}

func TestDetectThemeFromColorFGBG(t *testing.T) {
	t.Setenv("PHONEDEX_DARK_MODE", "")
	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Fatalf("background index 0 should read as dark")
	}

	t.Setenv("COLORFGBG", "0;15")
	if DetectTheme().IsDark {
		t.Fatalf("background index 15 should read as light")
	}
}

func TestPriceTier(t *testing.T) {
	if PriceTier(9999) != TierBudget {
		t.Error("sub-20k price should map to the budget tier")
	}
	if PriceTier(34999) != TierMid {
		t.Error("mid-range price should map to the mid tier")
	}
	if PriceTier(129999) != TierPremium {
		t.Error("flagship price should map to the premium tier")
	}
}
