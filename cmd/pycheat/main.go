package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/pycheat"
	"pkt.systems/pycheat/internal/config"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("pkt.systems/pycheat")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	themeName   string
	listThemes  bool
	colorMode   string
	boring      bool
	width       int
	filePath    string
	listOnly    bool
	configPath  string
	showVersion bool
}

func run(argv []string, stdout, stderr io.Writer) int {
	var opts options
	flags := pflag.NewFlagSet("pycheat", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.themeName, "theme", "t", "default", "Theme name")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.StringVar(&opts.colorMode, "color", config.ColorAuto, "Color output: auto|always|never")
	flags.BoolVarP(&opts.boring, "boring", "b", false, "Generate non-ANSI output")
	flags.IntVarP(&opts.width, "width", "w", 0, "Clip listing lines to this width (0 uses terminal width if available)")
	flags.StringVarP(&opts.filePath, "file", "f", "", "View a Python file from disk instead of an embedded sheet")
	flags.BoolVarP(&opts.listOnly, "list", "l", false, "List the sections of the selected sheet")
	flags.StringVar(&opts.configPath, "config", "", "Settings file (default $"+config.EnvPath+" or the user config dir)")
	flags.BoolVar(&opts.showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: pycheat [flags] [sheet [section]]\n")
		fmt.Fprintf(stderr, "       pycheat [flags] --file path [section]\n")
		fmt.Fprintln(stderr, "\nWithout arguments the sections of every sheet are listed.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if opts.listThemes {
		printThemes(stdout)
		return 0
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}
	if !flags.Changed("theme") {
		opts.themeName = cfg.Theme
	}
	if !flags.Changed("color") {
		opts.colorMode = cfg.Color
	}
	if !flags.Changed("width") {
		opts.width = cfg.Width
	}

	theme, ok := pycheat.ThemeByName(opts.themeName)
	if !ok {
		fmt.Fprintf(stderr, "unknown theme %q\n\n", opts.themeName)
		printThemes(stderr)
		return 2
	}
	mode, err := config.ParseColor(opts.colorMode)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --color %q: %v\n", opts.colorMode, err)
		return 2
	}
	if opts.boring {
		mode = config.ColorNever
	}

	viewerOpts := []pycheat.ViewerOption{
		pycheat.WithTheme(themeFor(theme, mode, stdout)),
		pycheat.WithWidth(resolveWidth(opts.width, stdout)),
	}
	errViewer := pycheat.NewViewer(pycheat.WithTheme(themeFor(theme, mode, stderr)))

	args := flags.Args()
	sheetName := ""
	if opts.filePath != "" {
		doc, err := pycheat.LoadDocument(normalizePath(opts.filePath))
		if err != nil {
			fmt.Fprintln(stderr, errViewer.FormatError(err))
			return 1
		}
		viewerOpts = append(viewerOpts, pycheat.WithDocuments(doc))
		sheetName = doc.Name
	} else if len(args) > 0 {
		sheetName, args = args[0], args[1:]
	}
	if len(args) > 1 {
		flags.Usage()
		return 1
	}
	viewer := pycheat.NewViewer(viewerOpts...)

	out, err := dispatch(viewer, sheetName, args, opts.listOnly)
	if err != nil {
		fmt.Fprintln(stderr, errViewer.FormatError(err))
		return 1
	}
	if _, err := io.WriteString(stdout, out); err != nil {
		fmt.Fprintf(stderr, "write: %v\n", err)
		return 1
	}
	return 0
}

// dispatch picks the view: the full listing, one sheet's listing, a whole
// sheet, or a single section.
func dispatch(v *pycheat.Viewer, sheet string, args []string, listOnly bool) (string, error) {
	switch {
	case sheet == "":
		return v.Listing(), nil
	case len(args) == 1:
		return v.Section(sheet, args[0])
	case listOnly:
		return v.SheetListing(sheet)
	}
	out, err := v.Sheet(sheet)
	if err != nil {
		return "", err
	}
	return out + "\n", nil
}

func loadConfig(explicit string) (*config.Config, error) {
	if explicit != "" {
		return config.Load(normalizePath(explicit))
	}
	return config.LoadOrDefault(config.DefaultPath())
}

func themeFor(theme pycheat.Theme, mode string, w io.Writer) pycheat.Theme {
	if colorEnabled(mode, w) {
		return theme
	}
	return pycheat.BoringTheme()
}

func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(w)
}

func printThemes(w io.Writer) {
	for _, name := range pycheat.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	if !isTerminal(w) {
		return 0
	}
	return terminalWidth(w.(*os.File), 0)
}

func terminalWidth(f *os.File, fallback int) int {
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		return w
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
