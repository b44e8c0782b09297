package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/bdd"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/cli"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/config"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/discovery"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/execution"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/parser"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/storage"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/targets"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	List    *ListCommand
	Results *ResultsCommand
	Lesson  *LessonCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	caseParser := discovery.NewParser()
	registry := targets.NewRegistry(cfg, scanner, filter)
	runner := execution.NewRunner(cfg)
	pytestParser := parser.NewPytestParser()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, caseParser)
	descriptors := bdd.NewRegistry()
	viewer := ui.NewFailureViewer(cfg, jsonStorage, descriptors)

	lessonCmd := NewLessonCommand(cfg)
	return &Commands{
		Run:     NewRunCommand(cfg, registry, runner, pytestParser, jsonStorage, formatter, lessonCmd),
		List:    NewListCommand(cfg, scanner, filter, caseParser, formatter, descriptors),
		Results: NewResultsCommand(cfg, scanner, caseParser, jsonStorage, descriptors, viewer),
		Lesson:  lessonCmd,
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run <target>",
		Short: "Run a test target or start an interactive lesson",
		Long: "Resolve a target alias and invoke pytest against its path, or start the\n" +
			"interactive lesson engine for interactive targets.\n\n" +
			"Targets:\n  " + strings.Join(targets.Names(), "\n  ") +
			"\n\nAny exact test file stem (e.g. login_scope) is also a valid target.",
		RunE:         c.Run.Execute,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	runCmd.Flags().BoolVar(&flags.Headed, "headed", false, "Run with a visible browser window")
	runCmd.Flags().BoolVar(&flags.Debug, "debug", false, "Run in debug mode (slow, single-step-friendly)")
	runCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where test detection should start")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered tests or target aliases",
		Long:  "Scan and list test files without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g. '*oop*')")
	listCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where test detection should start")
	listCmd.Flags().BoolVarP(&flags.TestCases, "cases", "c", false, "List test cases with their describe/it descriptions")
	listCmd.Flags().Bool("targets", false, "List target aliases instead of test files")
	rootCmd.AddCommand(listCmd)

	// Results command
	resultsCmd := &cobra.Command{
		Use:   "results",
		Short: "View the last run's failures interactively",
		Long:  "Display failures from the last test run in an interactive viewer",
		RunE:  c.Results.Execute,
	}
	rootCmd.AddCommand(resultsCmd)

	// Lesson command
	lessonCmd := &cobra.Command{
		Use:   "lesson [name]",
		Short: "Start an interactive lesson",
		Long:  "Start the interactive lesson engine, optionally jumping straight into a named lesson",
		RunE:  c.Lesson.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	lessonCmd.Flags().StringVar(&flags.Theme, "theme", "", "Syntax highlighting theme (skips the theme prompt)")
	rootCmd.AddCommand(lessonCmd)
}
