package ui

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/bdd"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/config"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/discovery"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	parser *discovery.Parser
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, parser *discovery.Parser) *Formatter {
	return &Formatter{
		config: cfg,
		parser: parser,
	}
}

// PrintRunStats displays a summary table for one run.
func (f *Formatter) PrintRunStats(output *domain.RunOutput) {
	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                    Test Execution Statistics                  ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Target")
	color.White("%-27s │\n", meta.Target)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Test Path")
	color.White("%-27s │\n", truncate(meta.TestPath, 27))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Test Cases")
	color.Green("%-27d │\n", meta.PassedTestCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Test Cases")
	color.Red("%-27d │\n", meta.FailedTestCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Mode")
	color.White("%-27s │\n", modeLabel(meta.Headed, meta.Debug))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", fmt.Sprintf("%.2fs", meta.DurationSeconds))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedTestCases == 0 && meta.ExitCode == 0 {
		color.Green("✓ All tests passed!")
	} else {
		color.Red("✗ %d test case failure(s), exit code %d", meta.FailedTestCases, meta.ExitCode)
		if len(output.Details) > 0 {
			fmt.Println()
			color.Yellow("Run `learn results` to inspect failures interactively.")
		}
	}
}

func modeLabel(headed, debug bool) string {
	switch {
	case headed && debug:
		return "headed, debug"
	case headed:
		return "headed"
	case debug:
		return "headless, debug"
	}
	return "headless"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "…" + s[len(s)-max+1:]
}

// PrintTestList prints discovered test files, optionally with their test
// cases. Case descriptions come from the registry when present.
func (f *Formatter) PrintTestList(tests []string, showTestCases bool, registry *bdd.Registry) error {
	if !showTestCases {
		color.Green("Found %d test file(s):\n", len(tests))
		for i, test := range tests {
			relPath, err := filepath.Rel(f.config.ProjectPath, test)
			if err != nil {
				relPath = test
			}
			if i == len(tests)-1 {
				color.Cyan("└── %s", relPath)
			} else {
				color.Cyan("├── %s", relPath)
			}
		}
		return nil
	}

	color.Green("Found %d test file(s) with test cases:\n", len(tests))

	for i, test := range tests {
		cases, err := f.parser.FindTestCases(test)
		if err != nil {
			color.Red("Error reading test file %s: %v", test, err)
			continue
		}

		relPath, err := filepath.Rel(f.config.ProjectPath, test)
		if err != nil {
			relPath = test
		}

		isLastFile := i == len(tests)-1
		if isLastFile {
			color.Cyan("└── %s", relPath)
		} else {
			color.Cyan("├── %s", relPath)
		}

		filePrefix := "│   "
		if isLastFile {
			filePrefix = "    "
		}

		if len(cases) == 0 {
			fmt.Printf("%s└── %s\n", filePrefix, color.RedString("(no test cases found)"))
		} else {
			for j, testCase := range cases {
				branch := "├── "
				if j == len(cases)-1 {
					branch = "└── "
				}
				label := color.YellowString(testCase.Name)
				if registry != nil {
					if d, ok := registry.Lookup(testCase.Suite, testCase.Name); ok && d.CaseDesc != "" {
						label += " " + color.WhiteString("it %q", d.CaseDesc)
					}
				}
				fmt.Printf("%s%s%s\n", filePrefix, branch, label)
			}
		}

		if i < len(tests)-1 {
			fmt.Println()
		}
	}

	return nil
}

// PrintTargets prints the fixed target aliases with the flag table; used
// by help output.
func (f *Formatter) PrintTargets(names []string) {
	color.New(color.Bold).Println("\nAvailable targets:")
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	color.New(color.Bold).Println("\nOptions:")
	fmt.Println("  --headed    Run with a visible browser window")
	fmt.Println("  --debug     Run in debug mode (slow)")
}
