package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/bdd"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/config"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/domain"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/storage"
)

// FailureViewer displays test failures in an interactive TUI
type FailureViewer struct {
	config   *config.Config
	storage  storage.Storage
	registry *bdd.Registry
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(cfg *config.Config, st storage.Storage, registry *bdd.Registry) *FailureViewer {
	return &FailureViewer{
		config:   cfg,
		storage:  st,
		registry: registry,
	}
}

// View displays the last run's failures interactively. Resolved marks
// are written back through storage so they survive between viewer runs.
func (fv *FailureViewer) View(results *domain.RunOutput) error {
	if len(results.Details) == 0 {
		color.Green("✓ No test failures in the last run!")
		return nil
	}

	resolved := make(map[int]bool)
	for i, failure := range results.Details {
		if failure.Resolved {
			resolved[i] = true
		}
	}

	saveResolved := func() error {
		for i := range results.Details {
			results.Details[i].Resolved = resolved[i]
		}
		return fv.storage.SaveOutput(results)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	itemText := func(index int) string {
		failure := results.Details[index]
		name := failure.TestName
		if name == "" {
			name = fmt.Sprintf("Failure %d", index+1)
		}
		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, name)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, name)
	}

	for i := range results.Details {
		list.AddItem(itemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 4, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	countUnresolved := func() int {
		count := 0
		for i := range results.Details {
			if !resolved[i] {
				count++
			}
		}
		return count
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Test Failures (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] mark resolved, [yellow]q[white]/Ctrl+C exit ",
			len(results.Details), countUnresolved(),
		))
	}
	updateHeader()

	footerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf("[gray]resolved marks saved to %s[white]", fv.config.GetOutputPath()))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(results.Details) {
			return
		}
		failure := results.Details[index]
		statsView.SetText(fv.formatFailureStats(failure, index+1))
		detailsView.SetText(fv.formatFailureDetails(failure))
	}

	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		updateDetails()
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'r', 'R':
			index := list.GetCurrentItem()
			if index >= 0 && index < len(results.Details) {
				resolved[index] = !resolved[index]
				list.SetItemText(index, itemText(index), "")
				updateHeader()
				// Persist immediately so a Ctrl+C loses nothing
				_ = saveResolved()
			}
			return nil
		case 'q':
			app.Stop()
			return nil
		}
		return event
	})

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true).
		AddItem(footerView, 1, 0, false)

	updateDetails()

	if err := app.SetRoot(layout, true).Run(); err != nil {
		return fmt.Errorf("results viewer: %w", err)
	}
	return saveResolved()
}

func (fv *FailureViewer) formatFailureStats(failure domain.CaseFailure, position int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[yellow]#%d[white] %s\n", position, failure.NodeID)
	fmt.Fprintf(&b, "[gray]%s[white]\n", failure.FilePath)
	if fv.registry != nil {
		if d, ok := fv.registry.Lookup("", failure.TestName); ok && d.CaseDesc != "" {
			fmt.Fprintf(&b, "[blue]it %q[white]\n", d.CaseDesc)
		}
	}
	return b.String()
}

func (fv *FailureViewer) formatFailureDetails(failure domain.CaseFailure) string {
	var b strings.Builder
	if failure.Message != "" {
		fmt.Fprintf(&b, "[red]%s[white]\n\n", failure.Message)
	}
	if failure.ErrorDetails != "" {
		fmt.Fprintf(&b, "%s\n", tview.Escape(failure.ErrorDetails))
	}
	if len(failure.StackTrace) > 0 {
		fmt.Fprint(&b, "\n[yellow]Locations:[white]\n")
		for _, loc := range failure.StackTrace {
			fmt.Fprintf(&b, "  %s\n", loc)
		}
	}
	if b.Len() == 0 {
		fmt.Fprint(&b, "[gray]No details captured for this failure.[white]")
	}
	return b.String()
}
