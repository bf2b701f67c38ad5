// Package pycheat renders Python cheat sheets to ANSI for terminal display.
//
// A sheet is a Python source file split into numbered sections by banner
// comments:
//
//	# -----------------------------
//	# 1. NUMBERS AND MATH
//	# -----------------------------
//
// ParseSheet finds those sections, Tokenize scans text into classified tokens
// and a Renderer styles the tokens with a Theme. Viewer ties the three
// together over the embedded Basics, Intermediate and Advanced sheets.
//
// Example:
//
//	v := pycheat.NewViewer(pycheat.WithTheme(pycheat.DefaultTheme()))
//	out, err := v.Section("Basics", "2")
//	if err != nil {
//		fmt.Fprintln(os.Stderr, v.FormatError(err))
//		os.Exit(1)
//	}
//	fmt.Print(out)
//
// Highlighting never drops or adds visible characters: with escape sequences
// removed, the output equals the input byte for byte.
package pycheat
