package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParser_FindTestCases(t *testing.T) {
	parser := NewParser()

	tmpDir, err := os.MkdirTemp("", "learn-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	testFile := filepath.Join(tmpDir, "test_basics.py")
	pyContent := `import pytest
from tests.conftest import describe, it


@describe("Python Basics - Output and Printing")
class TestBasicOutput:
    @it("should demonstrate basic print functionality")
    def test_basic_print(self, capsys):
        pass

    @it("should show print with multiple arguments")
    def test_print_multiple_args(self, capsys):
        pass

    def helper_method(self):
        pass


def test_module_level():
    pass


def not_a_test():
    pass
`
	if err := os.WriteFile(testFile, []byte(pyContent), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	t.Run("finds test cases with descriptions", func(t *testing.T) {
		cases, err := parser.FindTestCases(testFile)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(cases) != 3 {
			t.Fatalf("expected 3 test cases, got %d: %v", len(cases), cases)
		}

		first := cases[0]
		if first.Name != "test_basic_print" {
			t.Errorf("expected first case test_basic_print, got %s", first.Name)
		}
		if first.Suite != "TestBasicOutput" {
			t.Errorf("expected suite TestBasicOutput, got %q", first.Suite)
		}
		if first.SuiteDesc != "Python Basics - Output and Printing" {
			t.Errorf("unexpected suite description: %q", first.SuiteDesc)
		}
		if first.Desc != "should demonstrate basic print functionality" {
			t.Errorf("unexpected case description: %q", first.Desc)
		}

		last := cases[2]
		if last.Name != "test_module_level" {
			t.Errorf("expected module-level case, got %s", last.Name)
		}
		if last.Suite != "" {
			t.Errorf("module-level case should have no suite, got %q", last.Suite)
		}
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := parser.FindTestCases("/non/existent/test_file.py")
		if err == nil {
			t.Error("expected error for non-existent file")
		}
	})
}
