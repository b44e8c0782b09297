package targets

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/config"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/discovery"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/domain"
)

// ErrUnknownTarget is returned when a target alias cannot be resolved.
// It carries the offending name and the full list of valid targets so
// the CLI can show both.
type ErrUnknownTarget struct {
	Name  string
	Valid []string
}

func (e *ErrUnknownTarget) Error() string {
	return fmt.Sprintf("test %q not found. Available targets: %s", e.Name, strings.Join(e.Valid, ", "))
}

// aliasPaths maps test target aliases to paths under the test root.
var aliasPaths = map[string]string{
	"all":             ".",
	"test_examples":   "test_examples",
	"learn_examples":  "learn_examples",
	"basics":          "learn_examples/test_basics.py",
	"data_types":      "learn_examples/test_data_types.py",
	"data_structures": "learn_examples/test_data_structures.py",
	"control_flow":    "learn_examples/test_control_flow.py",
	"functions":       "learn_examples/test_functions.py",
	"oop_basics":      "learn_examples/test_oop_basics.py",
	"advanced_oop":    "learn_examples/test_advanced_oop.py",
	"modules":         "learn_examples/test_modules_and_packages.py",
	"file_io":         "learn_examples/test_file_io.py",
	"exceptions":      "learn_examples/test_exceptions_handling.py",
	"iterators":       "learn_examples/test_iterators_and_generators.py",
	"decorators":      "learn_examples/test_decorators_and_context_managers.py",
	"advanced":        "learn_examples/test_advanced_concepts.py",
	"stdlib":          "learn_examples/test_standard_library_and_third_party.py",
	"pytest_basics":   "learn_examples/test_pytest_basics.py",
	"playwright":      "learn_examples/test_playwright_integration.py",
}

// lessonAliases maps interactive target aliases to lesson names. The
// bare "interactive" alias opens the lesson menu.
var lessonAliases = map[string]string{
	"interactive":              "",
	"interactive_basics":       "basics",
	"interactive_data_types":   "data_types",
	"interactive_control_flow": "control_flow",
	"interactive_functions":    "functions",
}

// Registry resolves target aliases to run targets. Alias resolution is
// a pure function of the alias; file-stem resolution additionally scans
// the test root once per call.
type Registry struct {
	config  *config.Config
	scanner *discovery.Scanner
	filter  *discovery.Filter
}

// NewRegistry creates a Registry backed by the given scanner and filter
func NewRegistry(cfg *config.Config, scanner *discovery.Scanner, filter *discovery.Filter) *Registry {
	return &Registry{config: cfg, scanner: scanner, filter: filter}
}

// Names returns all fixed target aliases, sorted.
func Names() []string {
	names := make([]string, 0, len(aliasPaths)+len(lessonAliases))
	for name := range aliasPaths {
		names = append(names, name)
	}
	for name := range lessonAliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve maps a target alias to a Target. Fixed aliases are tried
// first, then an exact file-stem match against discovered test files.
func (r *Registry) Resolve(name string) (domain.Target, error) {
	if lesson, ok := lessonAliases[name]; ok {
		return domain.Target{Name: name, Kind: domain.KindLesson, Lesson: lesson}, nil
	}

	if rel, ok := aliasPaths[name]; ok {
		return domain.Target{
			Name: name,
			Kind: domain.KindTests,
			Path: filepath.Join(r.config.GetTestPath(), rel),
		}, nil
	}

	// Fall back to an exact file-stem match (e.g. "login_scope" for
	// tests/test_examples/test_login_scope.py).
	if tests, err := r.scanner.Scan(r.config.GetTestPath()); err == nil {
		if path, ok := r.filter.MatchStem(tests, name); ok {
			return domain.Target{Name: name, Kind: domain.KindTests, Path: path}, nil
		}
	}

	return domain.Target{}, &ErrUnknownTarget{Name: name, Valid: Names()}
}
