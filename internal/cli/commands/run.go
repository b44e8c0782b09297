package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/cli"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/config"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/domain"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/execution"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/parser"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/storage"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/targets"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	registry  *targets.Registry
	runner    *execution.Runner
	parser    *parser.PytestParser
	storage   storage.Storage
	formatter *ui.Formatter
	lessons   *LessonCommand
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	registry *targets.Registry,
	runner *execution.Runner,
	pytestParser *parser.PytestParser,
	st storage.Storage,
	formatter *ui.Formatter,
	lessons *LessonCommand,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		registry:  registry,
		runner:    runner,
		parser:    pytestParser,
		storage:   st,
		formatter: formatter,
		lessons:   lessons,
	}
}

// Execute runs the command. Input validation failures exit with the
// usage error code before the delegate is spawned; delegate failures
// surface through the mirrored exit code.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		rc.formatter.PrintTargets(targets.Names())
		return cli.NewUsageError(fmt.Errorf("run requires exactly one target"))
	}

	target, err := rc.registry.Resolve(args[0])
	if err != nil {
		return cli.NewUsageError(err)
	}

	if target.Kind == domain.KindLesson {
		return rc.lessons.runLessons(target.Lesson)
	}

	req := domain.RunRequest{
		Target: target,
		Headed: rc.config.Flags.Headed,
		Debug:  rc.config.Flags.Debug,
	}

	result, err := rc.runner.Run(cmd.Context(), req)
	if err != nil {
		return err
	}

	passed, failed := rc.parser.ParseTestCounts(result)
	failures := rc.parser.ParseFailures(result)

	output := domain.NewRunOutput(result, failures, passed, failed, req.Headed, req.Debug)
	if err := rc.storage.SaveOutput(output); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	rc.formatter.PrintRunStats(output)

	if result.ExitCode != 0 {
		// Mirror the delegate's exit code without re-wrapping its output
		return cli.NewExitError(result.ExitCode, nil)
	}
	return nil
}
