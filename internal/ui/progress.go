package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// LessonProgress renders a progress bar across a lesson's steps.
type LessonProgress struct {
	bar *progressbar.ProgressBar
}

// NewLessonProgress creates a progress bar for a lesson with count steps
func NewLessonProgress(count int) *LessonProgress {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(
			color.CyanString("Lesson progress: ")+
				color.GreenString("[correct: 0")+
				" | "+
				color.RedString("missed: 0]"),
		),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &LessonProgress{bar: bar}
}

// Update updates the bar with correct and missed answer counts
func (p *LessonProgress) Update(correct, missed int) {
	p.bar.Set(correct + missed)
	p.bar.Describe(
		color.CyanString("Lesson progress: ") +
			color.GreenString("[correct: %d", correct) +
			" | " +
			color.RedString("missed: %d]", missed),
	)
}

// Finish completes the bar
func (p *LessonProgress) Finish() {
	p.bar.Finish()
}
