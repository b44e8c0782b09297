package domain

import "time"

// RunResult represents the outcome of one pytest invocation.
type RunResult struct {
	Target   string        // Target alias that selected this run
	TestPath string        // Path handed to pytest
	Args     []string      // Full argv of the delegate
	ExitCode int           // Child process exit code
	Success  bool          // Whether the run passed
	Output   string        // Captured combined output
	Duration time.Duration // Time taken to execute
}

// RunMeta contains metadata about a test run persisted for the results
// viewer.
type RunMeta struct {
	Target          string  `json:"target"`
	TestPath        string  `json:"test_path"`
	PassedTestCases int     `json:"passed_test_cases"`
	FailedTestCases int     `json:"failed_test_cases"`
	ExitCode        int     `json:"exit_code"`
	Headed          bool    `json:"headed"`
	Debug           bool    `json:"debug"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted structure for a run.
type RunOutput struct {
	Meta    RunMeta       `json:"meta"`
	Details []CaseFailure `json:"details"`
}

// NewRunOutput assembles the persisted record for one run.
func NewRunOutput(result RunResult, failures []CaseFailure, passed, failed int, headed, debug bool) *RunOutput {
	return &RunOutput{
		Meta: RunMeta{
			Target:          result.Target,
			TestPath:        result.TestPath,
			PassedTestCases: passed,
			FailedTestCases: failed,
			ExitCode:        result.ExitCode,
			Headed:          headed,
			Debug:           debug,
			Duration:        result.Duration.String(),
			DurationSeconds: result.Duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: failures,
	}
}
