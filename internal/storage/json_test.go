package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/config"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/domain"
)

func newTestStorage(t *testing.T) (*JSONStorage, *config.Config) {
	t.Helper()
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	return NewJSONStorage(cfg), cfg
}

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	st, cfg := newTestStorage(t)

	result := domain.RunResult{
		Target:   "test_examples",
		TestPath: "tests/test_examples",
		ExitCode: 1,
		Duration: 1200 * time.Millisecond,
	}
	failures := []domain.CaseFailure{
		{TestName: "test_special_chars", NodeID: "tests/test_examples/test_01_basics.py::TestBasicOutput::test_special_chars", FilePath: "tests/test_examples/test_01_basics.py", Message: "AssertionError"},
	}

	output := domain.NewRunOutput(result, failures, 4, 1, false, true)
	if err := st.SaveOutput(output); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(cfg.ProjectPath, cfg.OutputJSONDir, cfg.OutputJSONFile)); err != nil {
		t.Fatalf("expected results file under project path: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Meta.Target != "test_examples" {
		t.Errorf("expected target test_examples, got %q", loaded.Meta.Target)
	}
	if loaded.Meta.PassedTestCases != 4 || loaded.Meta.FailedTestCases != 1 {
		t.Errorf("unexpected counts: %+v", loaded.Meta)
	}
	if !loaded.Meta.Debug || loaded.Meta.Headed {
		t.Errorf("flag state not persisted: %+v", loaded.Meta)
	}
	if len(loaded.Details) != 1 || loaded.Details[0].TestName != "test_special_chars" {
		t.Errorf("failures not persisted: %+v", loaded.Details)
	}
}

func TestJSONStorage_ResolvedSurvivesRewrite(t *testing.T) {
	st, _ := newTestStorage(t)

	output := domain.NewRunOutput(domain.RunResult{Target: "all"}, []domain.CaseFailure{{TestName: "test_x"}}, 0, 1, false, false)
	if err := st.SaveOutput(output); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	loaded.Details[0].Resolved = true
	if err := st.SaveOutput(loaded); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}

	again, err := st.Load()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !again.Details[0].Resolved {
		t.Error("resolved mark should survive a save/load cycle")
	}
}

func TestJSONStorage_LoadMissingFile(t *testing.T) {
	st, _ := newTestStorage(t)
	if _, err := st.Load(); err == nil {
		t.Error("expected error when no results file exists")
	}
}
