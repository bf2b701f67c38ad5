package pycheat

import (
	"errors"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	branchPrefix = "├── "
	lastPrefix   = "└── "
	ellipsis     = "…"
)

// Viewer answers the three requests a caller can make of a set of sheets:
// the section listing, a whole highlighted sheet, or one highlighted section.
type Viewer struct {
	renderer *Renderer
	docs     []Document
	width    int
}

// NewViewer returns a Viewer over the embedded sheets unless WithDocuments
// says otherwise.
func NewViewer(opts ...ViewerOption) *Viewer {
	cfg := viewerConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	docs := cfg.documents
	if docs == nil {
		docs = BuiltinSheets()
	}
	return &Viewer{
		renderer: NewRenderer(cfg.theme),
		docs:     docs,
		width:    cfg.width,
	}
}

// Names returns the document names in display order.
func (v *Viewer) Names() []string {
	names := make([]string, len(v.docs))
	for i, d := range v.docs {
		names[i] = d.Name
	}
	return names
}

func (v *Viewer) lookup(name string) (Document, error) {
	for _, d := range v.docs {
		if d.Name == name {
			return d, nil
		}
	}
	return Document{}, &Error{Kind: ErrUnknownSheet, Sheet: name}
}

// Parse returns the sections of the named sheet.
func (v *Viewer) Parse(name string) (*CheatSheet, error) {
	doc, err := v.lookup(name)
	if err != nil {
		return nil, err
	}
	return ParseSheet(doc.Name, doc.Source)
}

// Sheet returns the whole named sheet, highlighted.
func (v *Viewer) Sheet(name string) (string, error) {
	doc, err := v.lookup(name)
	if err != nil {
		return "", err
	}
	return v.renderer.Highlight(doc.Source), nil
}

// Section returns one highlighted section of the named sheet. index is the
// 1-based section number as typed by the user.
func (v *Viewer) Section(name, index string) (string, error) {
	sheet, err := v.Parse(name)
	if err != nil {
		return "", err
	}
	sec, err := selectSection(sheet, index)
	if err != nil {
		return "", err
	}
	return v.renderer.Highlight(sec.Content), nil
}

func selectSection(sheet *CheatSheet, index string) (Section, error) {
	n, err := strconv.ParseUint(index, 10, 0)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return Section{}, &Error{Kind: ErrSectionOutOfRange, Sheet: sheet.Name, Input: index, Sections: sheet.Len()}
		}
		return Section{}, &Error{Kind: ErrInvalidSectionIndex, Sheet: sheet.Name, Input: index}
	}
	if n == 0 || n > uint64(sheet.Len()) {
		return Section{}, &Error{Kind: ErrSectionOutOfRange, Sheet: sheet.Name, Input: index, Sections: sheet.Len()}
	}
	return sheet.Sections[n-1], nil
}

// Listing returns the section tree of every document.
func (v *Viewer) Listing() string {
	var b strings.Builder
	for _, d := range v.docs {
		sheet, err := ParseSheet(d.Name, d.Source)
		if err != nil {
			continue
		}
		v.writeListing(&b, sheet)
	}
	return b.String()
}

// SheetListing returns the section tree of the named document.
func (v *Viewer) SheetListing(name string) (string, error) {
	sheet, err := v.Parse(name)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	v.writeListing(&b, sheet)
	return b.String(), nil
}

func (v *Viewer) writeListing(b *strings.Builder, sheet *CheatSheet) {
	b.WriteByte('\n')
	b.WriteString(v.renderer.FormatHeader(v.fit("", sheet.Name), true))
	b.WriteByte('\n')
	for i, sec := range sheet.Sections {
		prefix := branchPrefix
		if i == len(sheet.Sections)-1 {
			prefix = lastPrefix
		}
		prefix += strconv.Itoa(i+1) + ". "
		b.WriteString(v.renderer.FormatHeader(v.fit(prefix, sec.Title), false))
		b.WriteByte('\n')
	}
}

// fit clips text so prefix+text stays within the viewer width.
func (v *Viewer) fit(prefix, text string) string {
	if v.width <= 0 {
		return prefix + text
	}
	budget := v.width - runewidth.StringWidth(prefix)
	if runewidth.StringWidth(text) <= budget {
		return prefix + text
	}
	if budget < 1 {
		budget = 1
	}
	return prefix + truncate.StringWithTail(text, uint(budget), ellipsis)
}

// FormatError renders err as a single styled line for the error stream.
func (v *Viewer) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return v.renderer.FormatError("Error: " + err.Error())
}
