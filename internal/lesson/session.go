package lesson

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// State is the lesson engine's current position in its state machine.
type State int

const (
	StateThemeSelection State = iota
	StatePresenting
	StateQuestioning
	StateFeedback
	StateSummary
)

// Progress receives step-completion updates during a lesson.
type Progress interface {
	Update(correct, incorrect int)
	Finish()
}

// Session runs one lesson against a console. The flow is a fixed state
// machine: ThemeSelection → (Presenting → Questioning → Feedback)* →
// Summary. Every input path resolves into a state transition; nothing a
// user types can abort a session.
type Session struct {
	lesson   Lesson
	console  *Console
	progress Progress

	correct int
	asked   int
}

// NewSession creates a session for one lesson
func NewSession(l Lesson, console *Console) *Session {
	return &Session{lesson: l, console: console}
}

// SetProgress sets the progress indicator for the session
func (s *Session) SetProgress(p Progress) {
	s.progress = p
}

// Score returns correct and total asked counts.
func (s *Session) Score() (correct, total int) {
	return s.correct, s.asked
}

// Run drives the state machine to completion. Always returns nil for
// user-input anomalies; those downgrade to incorrect answers.
func (s *Session) Run() error {
	state := StateThemeSelection
	if s.console.ThemeChosen() {
		// Theme persists across lessons within a session
		state = StatePresenting
	}
	step := 0
	var answer string

	for {
		switch state {
		case StateThemeSelection:
			s.selectTheme()
			state = StatePresenting

		case StatePresenting:
			s.present(s.lesson.Steps[step])
			state = StateQuestioning

		case StateQuestioning:
			answer = s.ask(s.lesson.Steps[step])
			state = StateFeedback

		case StateFeedback:
			s.feedback(s.lesson.Steps[step], answer)
			if step == len(s.lesson.Steps)-1 {
				state = StateSummary
			} else {
				step++
				state = StatePresenting
			}

		case StateSummary:
			s.summary()
			return nil
		}
	}
}

func (s *Session) selectTheme() {
	out := s.console.out
	color.New(color.Bold).Fprintln(out, "\nAvailable Themes:")
	for _, t := range Themes() {
		marker := "  "
		if t.Name == DefaultTheme {
			marker = "→ "
		}
		fmt.Fprintf(out, "%s%s: %s\n", marker, t.Name, t.Description)
	}

	for {
		color.New(color.FgYellow).Fprintf(out, "\nEnter theme name (press Enter for %s): ", DefaultTheme)
		line, ok := s.console.ReadLine()
		name := strings.ToLower(strings.TrimSpace(line))
		if !ok || name == "" {
			// EOF or no preference: fall back to the default
			t, _ := LookupTheme(DefaultTheme)
			s.console.SetTheme(t)
			return
		}
		if t, found := LookupTheme(name); found {
			s.console.SetTheme(t)
			color.New(color.FgGreen).Fprintf(out, "\n✅ Theme changed to %s!\n", t.Name)
			return
		}
		color.New(color.FgRed).Fprintln(out, "\n❌ Invalid theme name. Please choose from the list.")
	}
}

func (s *Session) present(step Step) {
	out := s.console.out
	color.New(color.FgYellow, color.Bold).Fprintf(out, "\n=== %s: %s ===\n", s.lesson.Title, step.Title)
	if step.Intro != "" {
		color.New(color.FgBlue).Fprintln(out, step.Intro)
	}
	if step.Code != "" {
		fmt.Fprintln(out)
		s.console.Theme().Highlight(out, step.Code)
	}
}

func (s *Session) ask(step Step) string {
	color.New(color.FgYellow).Fprintf(s.console.out, "\n%s ", step.Question)
	line, _ := s.console.ReadLine()
	// EOF and empty lines fall through as an (incorrect) answer
	return line
}

func (s *Session) feedback(step Step, answer string) {
	out := s.console.out
	s.asked++
	if MatchAnswer(answer, step.Answers) {
		s.correct++
		color.New(color.FgGreen).Fprintf(out, "\n✅ Correct! %s\n", step.Explanation)
	} else {
		color.New(color.FgRed).Fprintf(out, "\n❌ Not quite. %s\n", step.Explanation)
	}
	if s.progress != nil {
		s.progress.Update(s.correct, s.asked-s.correct)
	}
}

func (s *Session) summary() {
	out := s.console.out
	if s.progress != nil {
		s.progress.Finish()
	}
	color.New(color.FgYellow, color.Bold).Fprintf(out, "\n=== %s: Summary ===\n", s.lesson.Title)
	scoreColor := color.New(color.FgGreen)
	if s.correct < s.asked {
		scoreColor = color.New(color.FgYellow)
	}
	scoreColor.Fprintf(out, "You scored %d/%d\n", s.correct, s.asked)

	if len(s.lesson.Takeaways) > 0 {
		color.New(color.Bold).Fprintln(out, "\nKey takeaways:")
		for _, t := range s.lesson.Takeaways {
			fmt.Fprintf(out, "  • %s\n", t)
		}
	}
}

// MatchAnswer reports whether answer matches any accepted answer,
// ignoring case and surrounding whitespace.
func MatchAnswer(answer string, accepted []string) bool {
	normalized := strings.ToLower(strings.TrimSpace(answer))
	if normalized == "" {
		return false
	}
	for _, a := range accepted {
		if normalized == strings.ToLower(strings.TrimSpace(a)) {
			return true
		}
	}
	return false
}
