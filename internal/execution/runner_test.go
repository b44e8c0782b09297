package execution

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/config"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/domain"
)

func TestBuildArgs(t *testing.T) {
	target := domain.Target{Name: "test_examples", Kind: domain.KindTests, Path: "tests/test_examples"}

	tests := []struct {
		name     string
		headed   bool
		debug    bool
		expected []string
	}{
		{
			name:     "defaults are headless normal speed",
			expected: []string{"-v", "tests/test_examples"},
		},
		{
			name:     "headed only",
			headed:   true,
			expected: []string{"-v", "tests/test_examples", "--headed"},
		},
		{
			name:     "debug only",
			debug:    true,
			expected: []string{"-v", "tests/test_examples", "--slowmo", "1000"},
		},
		{
			name:     "headed and debug",
			headed:   true,
			debug:    true,
			expected: []string{"-v", "tests/test_examples", "--headed", "--slowmo", "1000"},
		},
	}

	seen := make(map[string]string)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := domain.RunRequest{Target: target, Headed: tt.headed, Debug: tt.debug}
			args := BuildArgs(req, 1000)

			if len(args) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, args)
			}
			for i := range args {
				if args[i] != tt.expected[i] {
					t.Fatalf("expected %v, got %v", tt.expected, args)
				}
			}

			// All four flag combinations must map to distinct argv sets
			key := strings.Join(args, " ")
			if prev, dup := seen[key]; dup {
				t.Fatalf("argv %q duplicated between %q and %q", key, prev, tt.name)
			}
			seen[key] = tt.name
		})
	}
}

// fakeDelegate writes a shell script standing in for pytest and returns
// its path.
func fakeDelegate(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts unavailable on windows")
	}
	path := filepath.Join(t.TempDir(), "pytest")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("failed to write fake delegate: %v", err)
	}
	return path
}

func TestRunner_Run_MirrorsExitCode(t *testing.T) {
	cfg := config.New()
	cfg.PytestBin = fakeDelegate(t, "echo '1 failed, 2 passed in 0.10s'\nexit 1\n")

	runner := NewRunner(cfg)
	var stdout, stderr bytes.Buffer
	runner.Stdout = &stdout
	runner.Stderr = &stderr

	req := domain.RunRequest{Target: domain.Target{Name: "basics", Path: "tests/learn_examples/test_basics.py"}}
	result, err := runner.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("delegate failure should not be an error: %v", err)
	}

	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1, got %d", result.ExitCode)
	}
	if result.Success {
		t.Error("expected Success=false for failing delegate")
	}
	if !strings.Contains(result.Output, "1 failed, 2 passed") {
		t.Errorf("output not captured: %q", result.Output)
	}
	// Output must also stream through verbatim
	if !strings.Contains(stdout.String(), "1 failed, 2 passed") {
		t.Errorf("output not passed through: %q", stdout.String())
	}
}

func TestRunner_Run_Success(t *testing.T) {
	cfg := config.New()
	cfg.PytestBin = fakeDelegate(t, "echo '3 passed in 0.05s'\nexit 0\n")

	runner := NewRunner(cfg)
	var stdout bytes.Buffer
	runner.Stdout = &stdout
	runner.Stderr = &stdout

	req := domain.RunRequest{Target: domain.Target{Name: "basics", Path: "tests"}}
	result, err := runner.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ExitCode != 0 || !result.Success {
		t.Errorf("expected successful result, got exit=%d success=%v", result.ExitCode, result.Success)
	}
}

func TestRunner_Run_UnspawnableDelegate(t *testing.T) {
	cfg := config.New()
	cfg.PytestBin = filepath.Join(t.TempDir(), "does-not-exist")

	runner := NewRunner(cfg)
	runner.Stdout = &bytes.Buffer{}
	runner.Stderr = &bytes.Buffer{}

	req := domain.RunRequest{Target: domain.Target{Name: "all", Path: "tests"}}
	_, err := runner.Run(context.Background(), req)
	if err == nil {
		t.Fatal("expected error for unspawnable delegate")
	}
	if !strings.Contains(err.Error(), "failed to start") {
		t.Errorf("unexpected error: %v", err)
	}
}
