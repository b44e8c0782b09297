package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestPath is the directory scanned for tests
	DefaultTestPath = "tests"
	// DefaultPytestBin is the delegate test-framework binary
	DefaultPytestBin = "pytest"
	// DefaultBaseURL is the site exercised by the browser examples
	DefaultBaseURL = "https://magento.softwaretestingboard.com/"
	// DefaultSlowMoMillis is the delay applied per action in debug mode
	DefaultSlowMoMillis = 1000
	// DefaultOutputJSONFile is the persisted run-results file name
	DefaultOutputJSONFile = "run-results.json"
	// DefaultOutputJSONDir is the directory holding run results
	DefaultOutputJSONDir = "storage"
	// DefaultEnvFile is the optional env file loaded at startup
	DefaultEnvFile = ".env"
	// DefaultTheme is the lesson engine's syntax highlighting theme
	DefaultTheme = "monokai"
)

// DefaultPathsToIgnore are directories skipped when scanning for tests
var DefaultPathsToIgnore = []string{
	"node_modules",
	"venv",
	".venv",
	"__pycache__",
	".pytest_cache",
	"test-results",
	"storage",
}
