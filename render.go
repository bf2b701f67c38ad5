package pycheat

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"pkt.systems/pycheat/internal/palette"
)

// Renderer turns token streams into ANSI-styled text using a Theme.
type Renderer struct {
	styles Styles
}

// NewRenderer returns a Renderer for theme. A nil theme selects DefaultTheme.
func NewRenderer(theme Theme) *Renderer {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Renderer{styles: theme.Styles()}
}

// Render styles every token and returns the result. Each styled span is
// followed by a reset so styles never bleed into the next token.
func (r *Renderer) Render(tokens iter.Seq[Token]) string {
	var b strings.Builder
	for tok := range tokens {
		r.writeToken(&b, tok)
	}
	return b.String()
}

// RenderTo writes the styled tokens to w, stopping at the first write error.
func (r *Renderer) RenderTo(w io.Writer, tokens iter.Seq[Token]) error {
	if w == nil {
		return fmt.Errorf("render: writer is nil")
	}
	var b strings.Builder
	for tok := range tokens {
		r.writeToken(&b, tok)
		if b.Len() < 4096 {
			continue
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		b.Reset()
	}
	if b.Len() > 0 {
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// Highlight tokenizes src and renders it.
func (r *Renderer) Highlight(src string) string {
	return r.Render(Tokenize(src))
}

func (r *Renderer) writeToken(b *strings.Builder, tok Token) {
	writeStyled(b, r.styles.ForKind(tok.Kind), tok.Text)
}

// FormatHeader styles a structural line: the sheet title when emphasized, a
// listing entry otherwise.
func (r *Renderer) FormatHeader(text string, emphasized bool) string {
	st := r.styles.Entry
	if emphasized {
		st = r.styles.Title
	}
	var b strings.Builder
	writeStyled(&b, st, text)
	return b.String()
}

// FormatError styles a user-facing error message.
func (r *Renderer) FormatError(text string) string {
	var b strings.Builder
	writeStyled(&b, r.styles.Error, text)
	return b.String()
}

func writeStyled(b *strings.Builder, st Style, text string) {
	if st.Prefix == "" || text == "" {
		b.WriteString(text)
		return
	}
	b.WriteString(st.Prefix)
	b.WriteString(text)
	b.WriteString(palette.Reset)
}
