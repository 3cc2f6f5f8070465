package xray

import (
	"fmt"
	"time"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-k6-xray-report/k6summary"
)

const (
	passedComment = "Test execution passed"
	failedComment = "Test execution failed"
)

// Generator turns a k6 summary into an Xray import Report.
type Generator struct {
	state  *State
	user   string
	now    func() time.Time
	logger log.Logger
}

// NewGenerator ...
func NewGenerator(state *State, user string, now func() time.Time, logger log.Logger) Generator {
	return Generator{
		state:  state,
		user:   user,
		now:    now,
		logger: logger,
	}
}

// BuildReport creates one test entry per issue key found in the check labels of summary.
// The test plan key of the shared State wins over planKey.
func (g Generator) BuildReport(summary k6summary.Summary, planKey, issueKeyPrefix string) Report {
	timestamp := g.now().Truncate(time.Second).Format(TimeLayout)

	groups := summary.RootGroup.Flatten()
	results := classifyChecks(groups, IssueKeyPattern(issueKeyPrefix))
	counts := countChecks(groups)
	timing := IterationTiming{
		Min: summary.IterationDurationMin(),
		Max: summary.IterationDurationMax(),
	}

	g.logger.Debugf("Groups: %d, passed keys: %v, failed keys: %v", len(groups), results.passed, results.failed)
	g.logger.Printf("Iteration duration: min %ss, max %ss", timing.FormattedMin(), timing.FormattedMax())
	g.logger.Printf("Checks: %d passed, %d failed", counts.Passes, counts.Fails)

	tests := make([]Test, 0, len(results.passed)+len(results.failed))
	tests = appendTests(tests, results.passed, StatusPassed, passedComment, timestamp)
	tests = appendTests(tests, results.failed, StatusFailed, failedComment, timestamp)

	var state State
	if g.state != nil {
		state = *g.state
	}

	testPlanKey := planKey
	if state.TestPlanKey != "" {
		testPlanKey = state.TestPlanKey
	}

	return Report{
		TestExecutionKey: state.TestExecutionKey,
		Info: Info{
			Summary:     fmt.Sprintf("K6 Test execution - %s", timestamp),
			Description: Description(timing, counts),
			User:        g.user,
			StartDate:   timestamp,
			FinishDate:  timestamp,
			TestPlanKey: testPlanKey,
		},
		Tests: tests,
	}
}

// Description ...
func Description(timing IterationTiming, counts CheckCounts) string {
	return fmt.Sprintf("This is k6 test with maximum iteration duration of %ss, %d passed requests and %d failures on checks",
		timing.FormattedMax(), counts.Passes, counts.Fails)
}

func appendTests(tests []Test, keys []string, status, comment, timestamp string) []Test {
	for _, key := range keys {
		tests = append(tests, Test{
			TestKey: key,
			Start:   timestamp,
			Finish:  timestamp,
			Comment: comment,
			Status:  status,
		})
	}
	return tests
}
