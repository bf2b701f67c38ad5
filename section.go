package pycheat

import (
	"strconv"
	"strings"
)

const (
	delimiterMarker = "# ----"
	headerMarker    = "# "
)

// Section is one titled, delimiter-bounded block of a sheet.
type Section struct {
	Title string
	// Content is the exact source text of the block, delimiter lines and
	// line breaks included.
	Content string
}

// CheatSheet is the ordered list of sections parsed from one document.
type CheatSheet struct {
	Name     string
	Sections []Section
}

// Len returns the number of sections.
func (c *CheatSheet) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Sections)
}

type lineSpan struct {
	start int // offset of the first byte
	text  string
}

// ParseSheet splits document into sections. A section starts at a delimiter
// line that is followed by a "# <n>. <title>" header (n a positive integer)
// and a second delimiter line. Text before the first section is dropped and
// candidates with malformed headers are skipped. A document without sections
// yields an empty CheatSheet.
func ParseSheet(name, document string) (*CheatSheet, error) {
	lines := splitLines(document)
	sheet := &CheatSheet{Name: name}

	var starts []int
	var titles []string
	for i := 0; i+2 < len(lines); i++ {
		if !isDelimiter(lines[i].text) || !isDelimiter(lines[i+2].text) {
			continue
		}
		title, ok := parseHeader(lines[i+1].text)
		if !ok {
			continue
		}
		starts = append(starts, lines[i].start)
		titles = append(titles, title)
		// The closing delimiter belongs to this section.
		i += 2
	}

	sheet.Sections = make([]Section, len(starts))
	for k, from := range starts {
		to := len(document)
		if k+1 < len(starts) {
			to = starts[k+1]
		}
		sheet.Sections[k] = Section{Title: titles[k], Content: document[from:to]}
	}
	return sheet, nil
}

// splitLines returns every line of s with its starting offset. Line text
// excludes the terminator ("\n" or "\r\n").
func splitLines(s string) []lineSpan {
	var lines []lineSpan
	for start := 0; start < len(s); {
		end := strings.IndexByte(s[start:], '\n')
		next := len(s)
		if end < 0 {
			end = len(s)
		} else {
			end += start
			next = end + 1
		}
		lines = append(lines, lineSpan{start: start, text: strings.TrimSuffix(s[start:end], "\r")})
		start = next
	}
	return lines
}

func isDelimiter(line string) bool {
	return strings.HasPrefix(line, delimiterMarker)
}

// parseHeader extracts the title of a "# <n>. <title>" line. The declared
// number only gates validity; scan order decides section numbering.
func parseHeader(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, headerMarker)
	if !ok {
		return "", false
	}
	num, title, ok := strings.Cut(rest, ". ")
	if !ok {
		return "", false
	}
	n, err := strconv.ParseUint(num, 10, 32)
	if err != nil || n == 0 {
		return "", false
	}
	return strings.TrimRight(title, " \t"), true
}
