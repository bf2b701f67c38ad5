package pycheat

import (
	"sort"
	"strings"

	"pkt.systems/pycheat/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the styles used by the renderer: one per token kind plus the
// structural styles for headers and errors.
type Styles struct {
	Keyword    Style
	Identifier Style
	String     Style
	Comment    Style
	Number     Style
	Operator   Style
	Title      Style
	Entry      Style
	Error      Style
}

// ForKind returns the style for a token kind. Whitespace and Other are never
// styled.
func (s Styles) ForKind(kind TokenKind) Style {
	switch kind {
	case TokenKeyword:
		return s.Keyword
	case TokenIdentifier:
		return s.Identifier
	case TokenString:
		return s.String
	case TokenComment:
		return s.Comment
	case TokenNumber:
		return s.Number
	case TokenOperator:
		return s.Operator
	}
	return Style{}
}

// Theme provides named styles for highlighting.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

// BoringTheme returns a theme that emits no escape sequences at all.
func BoringTheme() Theme {
	return theme{name: "boring"}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Keyword:    style(palette.Bold, p.Keyword),
		Identifier: style(p.Identifier),
		String:     style(p.String),
		Comment:    style(palette.Italic, p.Comment),
		Number:     style(p.Number),
		Operator:   style(p.Operator),
		Title:      style(palette.Bold, palette.Underline, p.Title),
		Entry:      style(p.Entry),
		Error:      style(palette.Bold, p.Error),
	}
}

var builtinThemes = map[string]Theme{
	"default":         theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"gruvbox":         theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteDoomGruvbox)},
	"dracula":         theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDoomDracula)},
	"nord":            theme{name: "nord", styles: stylesFromPalette(palette.PaletteDoomNord)},
	"monokai-vibrant": theme{name: "monokai-vibrant", styles: stylesFromPalette(palette.PaletteMonokaiVibrant)},
	"solarized-dark":  theme{name: "solarized-dark", styles: stylesFromPalette(palette.PaletteSolarizedDark)},
	"tokyo-night":     theme{name: "tokyo-night", styles: stylesFromPalette(palette.PaletteTokyoNight)},
	"github-light":    theme{name: "github-light", styles: stylesFromPalette(palette.PaletteGithubLight)},
	"xterm256":        theme{name: "xterm256", styles: stylesFromPalette(palette.PaletteXterm256)},
	"boring":          BoringTheme(),
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
