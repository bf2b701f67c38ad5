// Package palette holds the ANSI color palettes behind the built-in themes.
package palette

import "strconv"

const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Dim       = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
)

// Palette assigns a foreground sequence to every lexical and structural role.
// Empty fields mean "leave the terminal default".
type Palette struct {
	Keyword    string
	Identifier string
	String     string
	Comment    string
	Number     string
	Operator   string
	Title      string
	Entry      string
	Error      string
}

// FG returns a 24-bit foreground sequence for a #rrggbb color.
// Malformed input yields the empty sequence.
func FG(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return ""
	}
	return "\x1b[38;2;" + strconv.Itoa(r) + ";" + strconv.Itoa(g) + ";" + strconv.Itoa(b) + "m"
}

// FG256 returns an xterm-256 foreground sequence.
func FG256(n uint8) string {
	return "\x1b[38;5;" + strconv.Itoa(int(n)) + "m"
}

func parseHex(hex string) (int, int, int, bool) {
	if len(hex) == 7 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

// PaletteDefault uses the basic 16-color set so it works on any terminal.
var PaletteDefault = Palette{
	Keyword:    "\x1b[35m",
	Identifier: "\x1b[37m",
	String:     "\x1b[32m",
	Comment:    "\x1b[90m",
	Number:     "\x1b[33m",
	Operator:   "\x1b[36m",
	Title:      "\x1b[34m",
	Entry:      "\x1b[36m",
	Error:      "\x1b[31m",
}

var PaletteDoomGruvbox = Palette{
	Keyword:    FG("#fb4934"),
	Identifier: FG("#ebdbb2"),
	String:     FG("#b8bb26"),
	Comment:    FG("#928374"),
	Number:     FG("#d3869b"),
	Operator:   FG("#fe8019"),
	Title:      FG("#fabd2f"),
	Entry:      FG("#83a598"),
	Error:      FG("#fb4934"),
}

var PaletteDoomDracula = Palette{
	Keyword:    FG("#ff79c6"),
	Identifier: FG("#f8f8f2"),
	String:     FG("#f1fa8c"),
	Comment:    FG("#6272a4"),
	Number:     FG("#bd93f9"),
	Operator:   FG("#ff79c6"),
	Title:      FG("#8be9fd"),
	Entry:      FG("#50fa7b"),
	Error:      FG("#ff5555"),
}

var PaletteDoomNord = Palette{
	Keyword:    FG("#81a1c1"),
	Identifier: FG("#d8dee9"),
	String:     FG("#a3be8c"),
	Comment:    FG("#616e88"),
	Number:     FG("#b48ead"),
	Operator:   FG("#81a1c1"),
	Title:      FG("#88c0d0"),
	Entry:      FG("#8fbcbb"),
	Error:      FG("#bf616a"),
}

var PaletteMonokaiVibrant = Palette{
	Keyword:    FG("#f92672"),
	Identifier: FG("#f8f8f2"),
	String:     FG("#e6db74"),
	Comment:    FG("#75715e"),
	Number:     FG("#ae81ff"),
	Operator:   FG("#f92672"),
	Title:      FG("#a6e22e"),
	Entry:      FG("#66d9ef"),
	Error:      FG("#f92672"),
}

var PaletteSolarizedDark = Palette{
	Keyword:    FG("#859900"),
	Identifier: FG("#839496"),
	String:     FG("#2aa198"),
	Comment:    FG("#586e75"),
	Number:     FG("#d33682"),
	Operator:   FG("#cb4b16"),
	Title:      FG("#268bd2"),
	Entry:      FG("#b58900"),
	Error:      FG("#dc322f"),
}

var PaletteTokyoNight = Palette{
	Keyword:    FG("#bb9af7"),
	Identifier: FG("#c0caf5"),
	String:     FG("#9ece6a"),
	Comment:    FG("#565f89"),
	Number:     FG("#ff9e64"),
	Operator:   FG("#89ddff"),
	Title:      FG("#7aa2f7"),
	Entry:      FG("#7dcfff"),
	Error:      FG("#f7768e"),
}

var PaletteGithubLight = Palette{
	Keyword:    FG("#cf222e"),
	Identifier: FG("#24292f"),
	String:     FG("#0a3069"),
	Comment:    FG("#6e7781"),
	Number:     FG("#0550ae"),
	Operator:   FG("#cf222e"),
	Title:      FG("#8250df"),
	Entry:      FG("#116329"),
	Error:      FG("#a40e26"),
}

// PaletteXterm256 targets terminals without truecolor support.
var PaletteXterm256 = Palette{
	Keyword:    FG256(170),
	Identifier: FG256(252),
	String:     FG256(114),
	Comment:    FG256(243),
	Number:     FG256(179),
	Operator:   FG256(81),
	Title:      FG256(75),
	Entry:      FG256(80),
	Error:      FG256(203),
}
