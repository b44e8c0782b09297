package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/domain"
)

// PytestParser parses pytest terminal output
type PytestParser struct{}

// NewPytestParser creates a new PytestParser
func NewPytestParser() *PytestParser {
	return &PytestParser{}
}

var (
	passedRe  = regexp.MustCompile(`(\d+) passed`)
	failedRe  = regexp.MustCompile(`(\d+) failed`)
	erroredRe = regexp.MustCompile(`(\d+) error`)
	failedLineRe = regexp.MustCompile(`^(FAILED|ERROR)\s+(\S+?)(?:\s+-\s+(.*))?$`)
	sectionRe    = regexp.MustCompile(`^_{3,}\s+(.+?)\s+_{3,}$`)
	traceLineRe  = regexp.MustCompile(`^(\S+\.py):(\d+)(?::|$)`)
)

// ParseTestCounts extracts passed and failed case counts from the final
// summary line. Falls back to one case per run when the summary is
// missing (e.g. collection errors).
func (p *PytestParser) ParseTestCounts(result domain.RunResult) (passed, failed int) {
	if m := passedRe.FindStringSubmatch(result.Output); m != nil {
		passed, _ = strconv.Atoi(m[1])
	}
	if m := failedRe.FindStringSubmatch(result.Output); m != nil {
		failed, _ = strconv.Atoi(m[1])
	}
	if m := erroredRe.FindStringSubmatch(result.Output); m != nil {
		n, _ := strconv.Atoi(m[1])
		failed += n
	}
	if passed > 0 || failed > 0 {
		return passed, failed
	}

	// Fallback: one "case" per invocation
	if result.Success {
		return 1, 0
	}
	return 0, 1
}

// ParseFailures extracts failed cases from the short test summary
// section, enriching each with its failure section and traceback
// locations when present.
func (p *PytestParser) ParseFailures(result domain.RunResult) []domain.CaseFailure {
	var failures []domain.CaseFailure

	lines := strings.Split(result.Output, "\n")
	for _, line := range lines {
		m := failedLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		nodeID := m[2]
		failure := domain.CaseFailure{
			NodeID:   nodeID,
			TestName: caseName(nodeID),
			FilePath: filePath(nodeID),
			Message:  m[3],
		}
		failure.ErrorDetails, failure.StackTrace = p.failureSection(lines, failure.TestName)
		failures = append(failures, failure)
	}

	return failures
}

// failureSection finds the "____ TestClass.test_name ____" block for a
// case and returns its full text plus any path:line traceback locations.
func (p *PytestParser) failureSection(lines []string, testName string) (string, []string) {
	var section []string
	var trace []string
	inSection := false

	for _, line := range lines {
		if m := sectionRe.FindStringSubmatch(line); m != nil {
			if inSection {
				break
			}
			header := m[1]
			if header == testName || strings.HasSuffix(header, "."+testName) || strings.HasPrefix(header, testName+"[") {
				inSection = true
				continue
			}
			continue
		}
		if !inSection {
			continue
		}
		// A new pytest section ("=== short test summary info ===") ends the block
		if strings.HasPrefix(line, "=") {
			break
		}
		section = append(section, line)
		if m := traceLineRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			trace = append(trace, m[1]+":"+m[2])
		}
	}

	return strings.TrimSpace(strings.Join(section, "\n")), trace
}

// caseName returns the bare test name from a node id like
// tests/test_x.py::TestSuite::test_case or tests/test_x.py::test_case.
func caseName(nodeID string) string {
	parts := strings.Split(nodeID, "::")
	name := parts[len(parts)-1]
	// Strip parametrize suffixes: test_case[param]
	if i := strings.Index(name, "["); i > 0 {
		name = name[:i]
	}
	return name
}

// filePath returns the file portion of a node id.
func filePath(nodeID string) string {
	if i := strings.Index(nodeID, "::"); i > 0 {
		return nodeID[:i]
	}
	return nodeID
}
