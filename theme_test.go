package pycheat

import "testing"

func TestThemeByName(t *testing.T) {
	expected := []string{
		"default",
		"gruvbox",
		"dracula",
		"nord",
		"monokai-vibrant",
		"solarized-dark",
		"tokyo-night",
		"github-light",
		"xterm256",
		"boring",
	}
	for _, name := range expected {
		if _, ok := ThemeByName(name); !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
	}

	available := AvailableThemes()
	if len(available) != len(expected) {
		t.Fatalf("expected %d themes, got %d: %v", len(expected), len(available), available)
	}
	for i := 1; i < len(available); i++ {
		if available[i-1] >= available[i] {
			t.Fatalf("expected sorted theme names, got %v", available)
		}
	}
}

func TestThemeByNameNormalizes(t *testing.T) {
	th, ok := ThemeByName("  Dracula ")
	if !ok || th.Name() != "dracula" {
		t.Fatalf("expected dracula, got %v (ok=%v)", th, ok)
	}
	th, ok = ThemeByName("")
	if !ok || th.Name() != "default" {
		t.Fatalf("expected default for empty name, got %v", th)
	}
	if _, ok := ThemeByName("no-such-theme"); ok {
		t.Fatalf("expected unknown theme to be rejected")
	}
}

func TestStylesForKindLeavesLayoutUnstyled(t *testing.T) {
	styles := DefaultTheme().Styles()
	for _, kind := range []TokenKind{TokenWhitespace, TokenOther} {
		if got := styles.ForKind(kind); got.Prefix != "" {
			t.Fatalf("expected %s to be unstyled, got %q", kind, got.Prefix)
		}
	}
	for _, kind := range []TokenKind{TokenKeyword, TokenIdentifier, TokenString, TokenComment, TokenNumber, TokenOperator} {
		if styles.ForKind(kind).Prefix == "" {
			t.Fatalf("expected %s to carry a style", kind)
		}
	}
}

func TestBoringThemeHasNoStyles(t *testing.T) {
	if (BoringTheme().Styles() != Styles{}) {
		t.Fatalf("expected boring theme to be empty")
	}
}
