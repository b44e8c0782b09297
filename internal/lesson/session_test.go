package lesson

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func newTestConsole(t *testing.T, input string) (*Console, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	provider := &ConsoleProvider{In: strings.NewReader(input), Out: &out}
	console, err := provider.Acquire(context.Background())
	if err != nil {
		t.Fatalf("acquire console: %v", err)
	}
	return console, &out
}

func singleStepLesson() Lesson {
	return Lesson{
		Name:  "mini",
		Title: "Mini Lesson",
		Steps: []Step{
			{
				Title:       "Functions",
				Question:    "What keyword defines a function?",
				Answers:     []string{"def"},
				Explanation: "The def keyword defines functions.",
			},
		},
		Takeaways: []string{"def defines functions"},
	}
}

func TestSession_CorrectAnswerCaseInsensitive(t *testing.T) {
	// Empty first line accepts the default theme, then "DEF" answers
	console, out := newTestConsole(t, "\nDEF\n")

	session := NewSession(singleStepLesson(), console)
	if err := session.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	correct, total := session.Score()
	if correct != 1 || total != 1 {
		t.Errorf("expected score 1/1, got %d/%d", correct, total)
	}
	if !strings.Contains(out.String(), "Correct!") {
		t.Error("expected correct feedback in output")
	}
	if !strings.Contains(out.String(), "You scored 1/1") {
		t.Errorf("expected summary score in output, got:\n%s", out.String())
	}
}

func TestSession_ExactlyOneFeedbackPerStep(t *testing.T) {
	lesson := Lesson{
		Name:  "three",
		Title: "Three Steps",
		Steps: []Step{
			{Question: "q1", Answers: []string{"a1"}, Explanation: "e1"},
			{Question: "q2", Answers: []string{"a2"}, Explanation: "e2"},
			{Question: "q3", Answers: []string{"a3"}, Explanation: "e3"},
		},
	}

	// Theme, one right answer, one wrong, one empty
	console, out := newTestConsole(t, "monokai\na1\nwrong\n\n")

	session := NewSession(lesson, console)
	if err := session.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	correct, total := session.Score()
	if total != 3 {
		t.Errorf("expected 3 feedback transitions, got %d", total)
	}
	if correct != 1 {
		t.Errorf("expected 1 correct, got %d", correct)
	}
	if !strings.Contains(out.String(), "You scored 1/3") {
		t.Error("expected summary with final score")
	}
}

func TestSession_EOFIsNeverFatal(t *testing.T) {
	// Input ends right after theme selection; every question sees EOF
	console, _ := newTestConsole(t, "monokai\n")

	lesson := Lesson{
		Name:  "two",
		Title: "Two Steps",
		Steps: []Step{
			{Question: "q1", Answers: []string{"a1"}, Explanation: "e1"},
			{Question: "q2", Answers: []string{"a2"}, Explanation: "e2"},
		},
	}

	session := NewSession(lesson, console)
	if err := session.Run(); err != nil {
		t.Fatalf("EOF must not abort the session: %v", err)
	}

	correct, total := session.Score()
	if total != 2 || correct != 0 {
		t.Errorf("expected score 0/2, got %d/%d", correct, total)
	}
}

func TestSession_ThemePersistsAcrossLessons(t *testing.T) {
	console, out := newTestConsole(t, "dracula\ndef\ndef\n")

	first := NewSession(singleStepLesson(), console)
	if err := first.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if console.Theme().Name != "dracula" {
		t.Fatalf("expected dracula theme, got %s", console.Theme().Name)
	}

	promptCount := strings.Count(out.String(), "Available Themes:")
	if promptCount != 1 {
		t.Fatalf("expected exactly one theme prompt, got %d", promptCount)
	}

	second := NewSession(singleStepLesson(), console)
	if err := second.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Count(out.String(), "Available Themes:") != 1 {
		t.Error("second lesson must not re-prompt for a theme")
	}
	if console.Theme().Name != "dracula" {
		t.Errorf("theme changed between lessons: %s", console.Theme().Name)
	}
}

func TestSession_InvalidThemeReprompts(t *testing.T) {
	console, out := newTestConsole(t, "bogus-theme\nnord\ndef\n")

	session := NewSession(singleStepLesson(), console)
	if err := session.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "Invalid theme name") {
		t.Error("expected invalid-theme feedback")
	}
	if console.Theme().Name != "nord" {
		t.Errorf("expected nord after re-prompt, got %s", console.Theme().Name)
	}
}

func TestMatchAnswer(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		accepted []string
		expected bool
	}{
		{"exact match", "def", []string{"def"}, true},
		{"uppercase input", "DEF", []string{"def"}, true},
		{"surrounding whitespace", "  Yes  ", []string{"yes"}, true},
		{"alternate accepted answer", "newline", []string{`\n`, "n", "newline"}, true},
		{"wrong answer", "lambda", []string{"def"}, false},
		{"empty answer is incorrect", "", []string{"def"}, false},
		{"whitespace-only answer is incorrect", "   ", []string{"def"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchAnswer(tt.answer, tt.accepted); got != tt.expected {
				t.Errorf("MatchAnswer(%q) = %v, want %v", tt.answer, got, tt.expected)
			}
		})
	}
}
