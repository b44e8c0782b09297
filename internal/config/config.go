package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	TestPath    string

	// Delegate settings
	PytestBin    string
	BaseURL      string
	SlowMoMillis int

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Lesson settings
	Theme string

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags after parsing
type Flags struct {
	Headed     bool
	Debug      bool
	TestPath   string
	NameFilter string
	TestCases  bool
	Theme      string
}

// New creates a new Config with defaults, overridden by any .env file in
// the project and by process environment variables.
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		TestPath:       DefaultTestPath,
		PytestBin:      DefaultPytestBin,
		BaseURL:        DefaultBaseURL,
		SlowMoMillis:   DefaultSlowMoMillis,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Theme:          DefaultTheme,
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)

	cfg.loadEnv()
	return cfg
}

// loadEnv applies .env-file and environment overrides. A missing .env
// file is not an error.
func (c *Config) loadEnv() {
	envPath := filepath.Join(c.ProjectPath, DefaultEnvFile)
	_ = godotenv.Load(envPath)

	if v := os.Getenv("PYTEST_BIN"); v != "" {
		c.PytestBin = v
	}
	if v := os.Getenv("BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("TEST_PATH"); v != "" {
		c.TestPath = v
	}
	if v := os.Getenv("LEARN_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("SLOW_MO"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			c.SlowMoMillis = ms
		}
	}
}

// GetTestPath returns the test root, using the flag override if provided
func (c *Config) GetTestPath() string {
	if c.Flags.TestPath != "" {
		if filepath.IsAbs(c.Flags.TestPath) {
			return c.Flags.TestPath
		}
		return filepath.Join(c.ProjectPath, c.Flags.TestPath)
	}
	return filepath.Join(c.ProjectPath, c.TestPath)
}

// GetTheme returns the lesson theme, using the flag override if provided
func (c *Config) GetTheme() string {
	if c.Flags.Theme != "" {
		return c.Flags.Theme
	}
	return c.Theme
}

// GetOutputPath returns the full path to the run-results JSON file.
// Resolves to an absolute path so run and results always read/write the
// same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
