package pycheat

// ViewerOption configures a Viewer.
type ViewerOption func(*viewerConfig)

type viewerConfig struct {
	theme     Theme
	width     int
	documents []Document
}

// WithTheme selects the theme used for highlighting, headers and errors.
func WithTheme(theme Theme) ViewerOption {
	return func(cfg *viewerConfig) {
		cfg.theme = theme
	}
}

// WithWidth clips listing lines to width display cells. Zero disables clipping.
func WithWidth(width int) ViewerOption {
	return func(cfg *viewerConfig) {
		cfg.width = width
	}
}

// WithDocuments replaces the embedded sheets with docs.
func WithDocuments(docs ...Document) ViewerOption {
	return func(cfg *viewerConfig) {
		cfg.documents = append([]Document(nil), docs...)
	}
}
