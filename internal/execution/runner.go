package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/config"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/domain"
)

// Runner spawns the delegate test framework for a run request. Exactly
// one child process per call; the runner blocks until it exits.
type Runner struct {
	config *config.Config

	// Stdout/Stderr receive the child's streams. Defaults to the
	// process's own streams; tests swap them out.
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg, Stdout: os.Stdout, Stderr: os.Stderr}
}

// BuildArgs maps a run request to the delegate argv (excluding the
// binary itself). Pure function: same request, same argv.
func BuildArgs(req domain.RunRequest, slowMoMillis int) []string {
	args := []string{"-v", req.Target.Path}
	if req.Headed {
		args = append(args, "--headed")
	}
	if req.Debug {
		args = append(args, "--slowmo", strconv.Itoa(slowMoMillis))
	}
	return args
}

// Run executes the delegate for the given request, streaming its output
// through verbatim while capturing a copy for parsing. The child's exit
// code is reported in the result; a non-zero code is not an error here.
func (r *Runner) Run(ctx context.Context, req domain.RunRequest) (domain.RunResult, error) {
	args := BuildArgs(req, r.config.SlowMoMillis)
	cmd := exec.CommandContext(ctx, r.config.PytestBin, args...)
	cmd.Dir = r.config.ProjectPath
	cmd.Env = append(os.Environ(), fmt.Sprintf("BASE_URL=%s", r.config.BaseURL))

	var captured bytes.Buffer
	cmd.Stdout = io.MultiWriter(r.Stdout, &captured)
	cmd.Stderr = io.MultiWriter(r.Stderr, &captured)
	cmd.Stdin = os.Stdin

	start := time.Now()
	err := cmd.Run()

	result := domain.RunResult{
		Target:   req.Target.Name,
		TestPath: req.Target.Path,
		Args:     args,
		Success:  err == nil,
		Output:   captured.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Delegate ran and failed; mirror its code, surface nothing extra.
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		// Delegate could not be spawned at all
		result.ExitCode = 1
		return result, fmt.Errorf("failed to start %s: %w", r.config.PytestBin, err)
	}

	return result, nil
}
