package discovery

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Parser extracts test cases and their BDD descriptions from test files
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// Case is one test case found in a file, with any describe/it metadata
// attached at its definition site.
type Case struct {
	Suite     string // Enclosing class name, empty for module-level tests
	SuiteDesc string // @describe("...") text on the class
	Name      string // Test function name
	Desc      string // @it("...") text on the function
}

var (
	describeRe = regexp.MustCompile(`^\s*@describe\(\s*["'](.*?)["']\s*\)`)
	itRe       = regexp.MustCompile(`^\s*@it\(\s*["'](.*?)["']\s*\)`)
	classRe    = regexp.MustCompile(`^class\s+(Test\w*)\s*[(:]`)
	funcRe     = regexp.MustCompile(`^(\s*)def\s+(test_\w+)\s*\(`)
)

// FindTestCases parses a test file and returns its test cases in
// definition order. Descriptions never affect the result set, only the
// metadata attached to each case.
func (p *Parser) FindTestCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read test file: %w", err)
	}

	var cases []Case
	var suite, suiteDesc string
	var pendingDesc string

	for _, line := range strings.Split(string(data), "\n") {
		if m := describeRe.FindStringSubmatch(line); m != nil {
			pendingDesc = m[1]
			continue
		}
		if m := itRe.FindStringSubmatch(line); m != nil {
			pendingDesc = m[1]
			continue
		}
		if m := classRe.FindStringSubmatch(line); m != nil {
			suite = m[1]
			suiteDesc = pendingDesc
			pendingDesc = ""
			continue
		}
		if m := funcRe.FindStringSubmatch(line); m != nil {
			c := Case{Name: m[2], Desc: pendingDesc}
			// Indented defs belong to the current class
			if len(m[1]) > 0 && suite != "" {
				c.Suite = suite
				c.SuiteDesc = suiteDesc
			}
			cases = append(cases, c)
			pendingDesc = ""
			continue
		}
		if strings.TrimSpace(line) != "" && !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") {
			// A new top-level statement ends the current class scope
			if !strings.HasPrefix(strings.TrimSpace(line), "@") {
				suite = ""
				suiteDesc = ""
			}
			pendingDesc = ""
		}
	}

	return cases, nil
}
