package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/bdd"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/config"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/discovery"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/targets"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config      *config.Config
	scanner     *discovery.Scanner
	filter      *discovery.Filter
	caseParser  *discovery.Parser
	formatter   *ui.Formatter
	descriptors *bdd.Registry
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	caseParser *discovery.Parser,
	formatter *ui.Formatter,
	descriptors *bdd.Registry,
) *ListCommand {
	return &ListCommand{
		config:      cfg,
		scanner:     scanner,
		filter:      filter,
		caseParser:  caseParser,
		formatter:   formatter,
		descriptors: descriptors,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	if showTargets, _ := cmd.Flags().GetBool("targets"); showTargets {
		lc.formatter.PrintTargets(targets.Names())
		return nil
	}

	tests, err := lc.scanner.Scan(lc.config.GetTestPath())
	if err != nil {
		return err
	}

	tests = lc.filter.FilterByName(tests, lc.config.Flags.NameFilter)

	if len(tests) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	if lc.config.Flags.TestCases {
		registerDescriptors(lc.descriptors, lc.caseParser, tests)
	}

	return lc.formatter.PrintTestList(tests, lc.config.Flags.TestCases, lc.descriptors)
}

// registerDescriptors attaches describe/it metadata found in the test
// files to the descriptor registry. Registration is metadata only and
// never fails; unreadable files simply contribute nothing.
func registerDescriptors(registry *bdd.Registry, caseParser *discovery.Parser, tests []string) {
	for _, test := range tests {
		cases, err := caseParser.FindTestCases(test)
		if err != nil {
			continue
		}
		for _, c := range cases {
			registry.Describe(c.Suite, c.SuiteDesc).It(c.Name, c.Desc)
		}
	}
}
