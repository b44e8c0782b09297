package domain

// CaseFailure represents a failed test case parsed from pytest output.
type CaseFailure struct {
	TestName     string   `json:"test_name"`               // Bare test function name
	NodeID       string   `json:"node_id"`                 // Full pytest node id (path::class::test)
	FilePath     string   `json:"file_path"`               // Test file containing the case
	Message      string   `json:"message"`                 // Short failure message from the summary line
	ErrorDetails string   `json:"error_details,omitempty"` // Full failure section when available
	StackTrace   []string `json:"stack_trace,omitempty"`   // path:line locations from the traceback
	Resolved     bool     `json:"resolved,omitempty"`      // Marked resolved in the results viewer
}
