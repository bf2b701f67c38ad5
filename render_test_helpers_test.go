package pycheat

import (
	"regexp"
	"slices"
	"strings"
	"testing"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}

func collect(src string) []Token {
	return slices.Collect(Tokenize(src))
}

func joinTokens(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Text)
	}
	return b.String()
}

func mustParse(t *testing.T, name, src string) *CheatSheet {
	t.Helper()
	sheet, err := ParseSheet(name, src)
	if err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	return sheet
}
