package lesson

import (
	"bufio"
	"context"
	"io"
)

// Console is the terminal session a lesson talks through. One Console
// is shared across every lesson run in a session, so the chosen theme
// survives from one lesson to the next.
type Console struct {
	in    *bufio.Scanner
	out   io.Writer
	theme Theme
	// themeSet flips once; after that the theme is read-only
	themeSet bool
}

// Out returns the console's output writer.
func (c *Console) Out() io.Writer { return c.out }

// ReadLine reads one line of input. Returns ok=false on EOF or a read
// error; callers must treat that as an answer, never as a fatal error.
func (c *Console) ReadLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// Theme returns the selected theme, or the default before selection.
func (c *Console) Theme() Theme {
	if c.themeSet {
		return c.theme
	}
	t, _ := LookupTheme(DefaultTheme)
	return t
}

// SetTheme records the theme choice. Only the first call wins; the
// selection is read-only for the remainder of the session.
func (c *Console) SetTheme(t Theme) {
	if c.themeSet {
		return
	}
	c.theme = t
	c.themeSet = true
}

// ThemeChosen reports whether a theme has been selected this session.
func (c *Console) ThemeChosen() bool { return c.themeSet }

// ConsoleProvider acquires Consoles for the fixture manager. Lessons
// use suite scope so one Console spans the whole interactive session.
type ConsoleProvider struct {
	In  io.Reader
	Out io.Writer
}

// Acquire creates a Console over the provider's streams.
func (p *ConsoleProvider) Acquire(ctx context.Context) (*Console, error) {
	return &Console{in: bufio.NewScanner(p.In), out: p.Out}, nil
}

// Release is a no-op; the Console owns no OS resources. It exists so
// the scoped-release contract holds if a real terminal handle is ever
// attached here.
func (p *ConsoleProvider) Release(ctx context.Context, c *Console) error {
	return nil
}
