package domain

// TargetKind says what a resolved target runs: a pytest path or an
// interactive lesson.
type TargetKind int

const (
	// KindTests runs the external test framework against a path.
	KindTests TargetKind = iota
	// KindLesson runs the interactive lesson engine.
	KindLesson
)

// Target is a resolved CLI target alias.
type Target struct {
	Name   string     // Alias as typed by the user (e.g. "basics")
	Kind   TargetKind // Tests or lesson
	Path   string     // Test path relative to the project root (KindTests)
	Lesson string     // Lesson name (KindLesson); empty means the lesson menu
}

// RunRequest is one CLI invocation of the run command. It is built once
// from argv and never mutated afterwards.
type RunRequest struct {
	Target Target
	Headed bool // Visible browser window
	Debug  bool // Slow single-step-friendly execution
}
