package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/cli"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/config"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/fixture"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/lesson"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/ui"
)

// LessonCommand handles the lesson command and the interactive targets
// of the run command.
type LessonCommand struct {
	config *config.Config
}

// NewLessonCommand creates a new LessonCommand
func NewLessonCommand(cfg *config.Config) *LessonCommand {
	return &LessonCommand{config: cfg}
}

// Execute runs the command
func (lc *LessonCommand) Execute(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	return lc.runLessons(name)
}

// runLessons drives the interactive engine. With a name it runs that
// lesson once; without one it loops over a lesson menu until the user
// leaves. The console (and with it the chosen theme) is a suite-scoped
// resource shared by every lesson in the session.
func (lc *LessonCommand) runLessons(name string) error {
	if name != "" {
		if _, ok := lesson.Lookup(name); !ok {
			return cli.NewUsageError(fmt.Errorf("lesson %q not found. Available lessons: %s", name, strings.Join(lessonNames(), ", ")))
		}
	}
	if theme := lc.config.Flags.Theme; theme != "" {
		if _, ok := lesson.LookupTheme(theme); !ok {
			return cli.NewUsageError(fmt.Errorf("theme %q not found", theme))
		}
	}

	ctx := context.Background()
	consoles := fixture.NewManager[*lesson.Console](&lesson.ConsoleProvider{In: os.Stdin, Out: os.Stdout})
	defer consoles.CloseSuite(ctx)

	return consoles.With(ctx, fixture.PerSuite, func(console *lesson.Console) error {
		if theme := lc.config.GetTheme(); theme != config.DefaultTheme || lc.config.Flags.Theme != "" {
			// Explicit flag or env choice skips the selection prompt
			if t, ok := lesson.LookupTheme(theme); ok {
				console.SetTheme(t)
			}
		}

		if name != "" {
			l, _ := lesson.Lookup(name)
			return lc.runOne(l, console)
		}

		for {
			l, ok := lc.chooseLesson(console)
			if !ok {
				return nil
			}
			if err := lc.runOne(l, console); err != nil {
				return err
			}
		}
	})
}

func (lc *LessonCommand) runOne(l lesson.Lesson, console *lesson.Console) error {
	session := lesson.NewSession(l, console)
	session.SetProgress(ui.NewLessonProgress(len(l.Steps)))
	return session.Run()
}

// chooseLesson shows the lesson menu and reads a selection by number or
// name. Returns ok=false when the user is done (quit, empty, or EOF).
func (lc *LessonCommand) chooseLesson(console *lesson.Console) (lesson.Lesson, bool) {
	catalog := lesson.Lessons()

	out := console.Out()
	color.New(color.Bold).Fprintln(out, "\nInteractive lessons:")
	for i, l := range catalog {
		fmt.Fprintf(out, "  %d. %s (%s, %d steps)\n", i+1, l.Title, l.Name, len(l.Steps))
	}
	color.New(color.FgYellow).Fprint(out, "\nPick a lesson by number or name (or press Enter to quit): ")

	line, ok := console.ReadLine()
	choice := strings.ToLower(strings.TrimSpace(line))
	if !ok || choice == "" || choice == "quit" || choice == "q" || choice == "exit" {
		return lesson.Lesson{}, false
	}

	if n, err := strconv.Atoi(choice); err == nil {
		if n >= 1 && n <= len(catalog) {
			return catalog[n-1], true
		}
	} else if l, found := lesson.Lookup(choice); found {
		return l, true
	}

	color.New(color.FgRed).Fprintf(out, "Unknown lesson %q\n", choice)
	return lc.chooseLesson(console)
}

func lessonNames() []string {
	catalog := lesson.Lessons()
	names := make([]string, len(catalog))
	for i, l := range catalog {
		names[i] = l.Name
	}
	return names
}
