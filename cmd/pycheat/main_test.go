package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const demoSheet = `# demo
# ----
# 1. DEMO
# ----
x = 1  # one
`

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// isolate points the settings lookup at a file that does not exist.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("PYCHEAT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("NO_COLOR", "")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRunListsAllSheets(t *testing.T) {
	isolate(t)
	code, out, errOut := runCLI(t)
	if code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	for _, want := range []string{
		"\nBasics\n├── 1. NUMBERS AND MATH\n",
		"└── 12. COMPREHENSIONS\n",
		"\nIntermediate\n",
		"\nAdvanced\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("listing missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected plain output when not writing to a terminal")
	}
}

func TestRunSection(t *testing.T) {
	isolate(t)
	code, out, errOut := runCLI(t, "Basics", "1")
	if code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	if !strings.HasPrefix(out, "# -") || !strings.Contains(out, "# 1. NUMBERS AND MATH") {
		t.Fatalf("unexpected section output:\n%s", out)
	}
	if strings.Contains(out, "# 2. ") {
		t.Fatalf("section 1 leaked into section 2:\n%s", out)
	}
}

func TestRunWholeSheet(t *testing.T) {
	isolate(t)
	code, out, _ := runCLI(t, "Advanced")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out, "METACLASSES") || !strings.Contains(out, "ADVANCED MEMORY MANAGEMENT") {
		t.Fatalf("expected every section of the sheet")
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("expected trailing newline")
	}
}

func TestRunErrors(t *testing.T) {
	isolate(t)
	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{name: "zero", args: []string{"Basics", "0"}, code: 1, want: "Error: invalid section number 0"},
		{name: "past end", args: []string{"Basics", "13"}, code: 1, want: "has 12 sections"},
		{name: "not a number", args: []string{"Basics", "two"}, code: 1, want: "section number must be a positive integer"},
		{name: "unknown sheet", args: []string{"Nope"}, code: 1, want: `could not find sheet "Nope"`},
		{name: "unknown sheet with section", args: []string{"Nope", "1"}, code: 1, want: "could not find sheet"},
		{name: "too many args", args: []string{"Basics", "1", "2"}, code: 1, want: "Usage:"},
		{name: "unknown theme", args: []string{"--theme", "neon"}, code: 2, want: `unknown theme "neon"`},
		{name: "bad color", args: []string{"--color", "sometimes"}, code: 2, want: "invalid --color"},
		{name: "unknown flag", args: []string{"--nope"}, code: 2, want: "unknown flag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tt.args...)
			if code != tt.code {
				t.Fatalf("exit %d, want %d (stderr %q)", code, tt.code, errOut)
			}
			if out != "" {
				t.Fatalf("expected nothing on stdout, got %q", out)
			}
			if !strings.Contains(errOut, tt.want) {
				t.Fatalf("stderr %q missing %q", errOut, tt.want)
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	isolate(t)
	code, _, errOut := runCLI(t, "--help")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(errOut, "--list-themes") {
		t.Fatalf("usage missing flags: %q", errOut)
	}
}

func TestRunColorAlways(t *testing.T) {
	isolate(t)
	code, out, _ := runCLI(t, "--color=always", "Basics", "1")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected ANSI sequences with --color=always")
	}

	_, out, _ = runCLI(t, "--color=always", "--boring", "Basics", "1")
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("--boring must win over --color=always")
	}
}

func TestRunColorAlwaysStylesErrors(t *testing.T) {
	isolate(t)
	_, _, errOut := runCLI(t, "--color=always", "Nope")
	if !strings.HasPrefix(errOut, "\x1b[") || !strings.Contains(errOut, "Error: could not find sheet") {
		t.Fatalf("expected styled error line, got %q", errOut)
	}
}

func TestRunListThemes(t *testing.T) {
	isolate(t)
	code, out, _ := runCLI(t, "--list-themes")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 themes, got %v", lines)
	}
	if !strings.Contains(out, "boring\n") || !strings.Contains(out, "default\n") {
		t.Fatalf("theme list missing entries: %q", out)
	}
}

func TestRunVersion(t *testing.T) {
	isolate(t)
	code, out, _ := runCLI(t, "--version")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.HasPrefix(out, "pkt.systems/pycheat") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestRunWidthClipsListing(t *testing.T) {
	isolate(t)
	code, out, _ := runCLI(t, "--width", "16", "Basics", "--list")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out, "├── 1. NUMBERS …\n") {
		t.Fatalf("expected clipped entry, got:\n%s", out)
	}
}

func TestRunSheetListing(t *testing.T) {
	isolate(t)
	code, out, _ := runCLI(t, "-l", "Intermediate")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if strings.Contains(out, "Basics") {
		t.Fatalf("expected only the selected sheet:\n%s", out)
	}
	if !strings.Contains(out, "└── 10. MAGIC METHODS\n") {
		t.Fatalf("listing missing last entry:\n%s", out)
	}
}

func TestRunFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, "demo.py", demoSheet)

	code, out, errOut := runCLI(t, "--file", path, "1")
	if code != 0 {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
	if out != "# ----\n# 1. DEMO\n# ----\nx = 1  # one\n" {
		t.Fatalf("unexpected section %q", out)
	}

	code, out, _ = runCLI(t, "--file", path, "--list")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if out != "\ndemo\n└── 1. DEMO\n" {
		t.Fatalf("unexpected listing %q", out)
	}

	code, _, errOut = runCLI(t, "--file", path, "2")
	if code != 1 || !strings.Contains(errOut, `sheet "demo" has 1 sections`) {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
}

func TestRunFileRejectsBinary(t *testing.T) {
	isolate(t)
	path := writeFile(t, "blob.py", "x\x00y")
	code, _, errOut := runCLI(t, "-f", path)
	if code != 1 || !strings.Contains(errOut, "binary input detected") {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
}

func TestRunConfigDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", "theme: nord\ncolor: always\nwidth: 16\n")
	t.Setenv("PYCHEAT_CONFIG", path)
	t.Setenv("NO_COLOR", "")

	code, out, _ := runCLI(t, "Basics", "1")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out, "\x1b[38;2;") {
		t.Fatalf("expected truecolor output from the configured theme")
	}

	_, out, _ = runCLI(t, "--color", "never", "Basics", "1")
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("flag must override config color")
	}

	_, out, _ = runCLI(t, "--color", "never", "-l", "Basics")
	if !strings.Contains(out, "├── 1. NUMBERS …\n") {
		t.Fatalf("expected configured width to clip, got:\n%s", out)
	}
}

func TestRunExplicitConfigErrors(t *testing.T) {
	isolate(t)
	code, _, errOut := runCLI(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	if code != 1 || !strings.Contains(errOut, "load config") {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}

	bad := writeFile(t, "bad.yaml", "color: sometimes\n")
	code, _, errOut = runCLI(t, "--config", bad)
	if code != 1 || !strings.Contains(errOut, "invalid color mode") {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
}

func TestNormalizePathExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if got := normalizePath("~/x.py"); got != filepath.Join(home, "x.py") {
		t.Fatalf("normalizePath: got %q", got)
	}
}
