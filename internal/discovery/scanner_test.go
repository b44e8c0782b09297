package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	// Create a temporary directory structure for testing
	tmpDir, err := os.MkdirTemp("", "learn-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	testDirs := []string{
		"tests/learn_examples",
		"tests/test_examples",
		"node_modules",
		"__pycache__",
	}
	for _, dir := range testDirs {
		if err := os.MkdirAll(filepath.Join(tmpDir, dir), 0755); err != nil {
			t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}

	testFiles := []string{
		"tests/learn_examples/test_basics.py",
		"tests/learn_examples/test_data_types.py",
		"tests/test_examples/test_login_scope.py",
		"tests/test_examples/conftest.py",
		"node_modules/some/test_file.py",
		"__pycache__/test_basics.py",
		"not_a_test.py",
	}
	for _, file := range testFiles {
		fullPath := filepath.Join(tmpDir, file)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", file, err)
		}
		if err := os.WriteFile(fullPath, []byte("# test"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner([]string{"node_modules", "__pycache__"})

	t.Run("scans test files correctly", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Should find 3 test files, skipping conftest and ignored dirs
		if len(results) != 3 {
			t.Errorf("expected 3 test files, got %d: %v", len(results), results)
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/path")
		if err == nil {
			t.Error("expected error for non-existent directory")
		}
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "testfile.txt")
		os.WriteFile(testFile, []byte("test"), 0644)
		_, err := scanner.Scan(testFile)
		if err == nil {
			t.Error("expected error for file path")
		}
	})
}

func TestIsTestFile(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"test_basics.py", true},
		{"basics_test.py", true},
		{"conftest.py", false},
		{"test_basics.txt", false},
		{"utils.py", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTestFile(tt.name); got != tt.expected {
				t.Errorf("IsTestFile(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}
