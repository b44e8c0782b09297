package lesson

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// Theme is one selectable syntax-highlighting theme. Name is what the
// user types; Style is the chroma style it maps to.
type Theme struct {
	Name        string
	Style       string
	Description string
}

// themes is the fixed set offered at theme selection.
var themes = []Theme{
	{"monokai", "monokai", "Dark theme with vibrant colors (like Sublime Text)"},
	{"one-dark", "onedark", "Atom-inspired dark theme with subtle colors"},
	{"solarized-dark", "solarized-dark", "Popular dark theme with carefully chosen colors"},
	{"solarized-light", "solarized-light", "Light version of the Solarized theme"},
	{"dracula", "dracula", "Dark theme with modern colors"},
	{"gruvbox-dark", "gruvbox", "Retro groove dark theme"},
	{"gruvbox-light", "gruvbox-light", "Retro groove light theme"},
	{"nord", "nord", "Arctic-inspired dark theme"},
	{"vs", "vs", "Light theme inspired by Visual Studio"},
	{"zenburn", "zenburn", "Low contrast dark theme easy on the eyes"},
}

// DefaultTheme is used when the user declines to pick one.
const DefaultTheme = "monokai"

// Themes returns the selectable themes in display order.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// LookupTheme resolves a theme by name, case-insensitively and ignoring
// surrounding whitespace.
func LookupTheme(name string) (Theme, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Highlight writes source to w with python syntax highlighting in this
// theme. Highlighting problems degrade to plain text, never to an error
// surfaced mid-lesson.
func (t Theme) Highlight(w io.Writer, source string) {
	source = dedent(source)
	if err := quick.Highlight(w, source, "python", "terminal256", t.Style); err != nil {
		fmt.Fprintln(w, source)
	}
	fmt.Fprintln(w)
}

// dedent strips the common leading whitespace from every line while
// preserving relative indentation.
func dedent(code string) string {
	lines := strings.Split(strings.Trim(code, "\n"), "\n")
	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if minIndent < 0 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent <= 0 {
		return strings.Join(lines, "\n")
	}
	for i, line := range lines {
		if len(line) >= minIndent {
			lines[i] = line[minIndent:]
		}
	}
	return strings.Join(lines, "\n")
}
