package cli

import "github.com/shane-reaume/pytest-playwright-learn-to-code/internal/config"

// Flags holds command-line flags
type Flags struct {
	Headed     bool
	Debug      bool
	TestPath   string
	NameFilter string
	TestCases  bool
	Theme      string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Headed:     f.Headed,
		Debug:      f.Debug,
		TestPath:   f.TestPath,
		NameFilter: f.NameFilter,
		TestCases:  f.TestCases,
		Theme:      f.Theme,
	}
}
