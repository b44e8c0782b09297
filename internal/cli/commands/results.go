package commands

import (
	"github.com/spf13/cobra"

	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/bdd"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/config"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/discovery"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/storage"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/ui"
)

// ResultsCommand handles the results command
type ResultsCommand struct {
	config      *config.Config
	scanner     *discovery.Scanner
	caseParser  *discovery.Parser
	storage     storage.Storage
	descriptors *bdd.Registry
	viewer      *ui.FailureViewer
}

// NewResultsCommand creates a new ResultsCommand
func NewResultsCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	caseParser *discovery.Parser,
	st storage.Storage,
	descriptors *bdd.Registry,
	viewer *ui.FailureViewer,
) *ResultsCommand {
	return &ResultsCommand{
		config:      cfg,
		scanner:     scanner,
		caseParser:  caseParser,
		storage:     st,
		descriptors: descriptors,
		viewer:      viewer,
	}
}

// Execute runs the command
func (rc *ResultsCommand) Execute(cmd *cobra.Command, args []string) error {
	results, err := rc.storage.Load()
	if err != nil {
		return err
	}

	// Description lookups in the viewer want the describe/it metadata
	if tests, err := rc.scanner.Scan(rc.config.GetTestPath()); err == nil {
		registerDescriptors(rc.descriptors, rc.caseParser, tests)
	}

	return rc.viewer.View(results)
}
