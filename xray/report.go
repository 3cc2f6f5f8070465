package xray

import "time"

// Test statuses understood by the Xray import endpoint.
const (
	StatusPassed = "PASSED"
	StatusFailed = "FAILED"
)

// TimeLayout is the layout of every timestamp in a Report.
const TimeLayout = time.RFC3339

// State carries the keys shared between the test plan resolution and the report generation
// of a single run. TestPlanKey is written at most once, TestExecutionKey is only read.
type State struct {
	TestPlanKey      string
	TestExecutionKey string
}

// Report is the payload of the Xray "import execution results" endpoint.
type Report struct {
	TestExecutionKey string `json:"testExecutionKey,omitempty"`
	Info             Info   `json:"info"`
	Tests            []Test `json:"tests"`
}

// Info ...
type Info struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
	User        string `json:"user"`
	StartDate   string `json:"startDate"`
	FinishDate  string `json:"finishDate"`
	TestPlanKey string `json:"testPlanKey,omitempty"`
}

// Test ...
type Test struct {
	TestKey string `json:"testKey"`
	Start   string `json:"start"`
	Finish  string `json:"finish"`
	Comment string `json:"comment"`
	Status  string `json:"status"`
}

// HasFailures ...
func (r Report) HasFailures() bool {
	for _, test := range r.Tests {
		if test.Status == StatusFailed {
			return true
		}
	}
	return false
}

// KeysWithStatus ...
func (r Report) KeysWithStatus(status string) []string {
	var keys []string
	for _, test := range r.Tests {
		if test.Status == status {
			keys = append(keys, test.TestKey)
		}
	}
	return keys
}
