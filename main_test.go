package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-k6-xray-report/jira"
	"github.com/bitrise-steplib/steps-k6-xray-report/step"
	"github.com/bitrise-steplib/steps-k6-xray-report/testplan"
	"github.com/bitrise-steplib/steps-k6-xray-report/xray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const summaryJSON = `{
  "root_group": {
    "name": "", "path": "", "id": "root",
    "groups": [
      {
        "name": "QA-1 login", "path": "::QA-1 login", "id": "g1",
        "groups": [],
        "checks": [{"name": "status is 200", "path": "::QA-1 login::status is 200", "id": "c1", "passes": 4, "fails": 0}]
      }
    ],
    "checks": []
  },
  "metrics": {"iteration_duration": {"type": "trend", "contains": "time", "values": {"min": 80, "max": 1625}}}
}`

func Test_GivenJiraWithExistingPlan_WhenRunnerRuns_ThenReportIsLinkedToThePlan(t *testing.T) {
	// Given
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`{"total": 1, "issues": [{"id": "10001", "key": "QA-42"}]}`))
	}))
	defer server.Close()

	summaryPath := filepath.Join(t.TempDir(), "summary.json")
	require.NoError(t, os.WriteFile(summaryPath, []byte(summaryJSON), 0644))

	config := step.Config{
		Jira: jira.Config{BaseURL: server.URL, Token: "token"},
		TestPlan: testplan.Options{
			ProjectKey:    "QA",
			SummaryPrefix: "Daily release Test Plan",
			IssueType:     "Test Plan",
		},
		ResolveTestPlan:  true,
		IssueKeyPrefix:   "QA",
		SummaryPath:      summaryPath,
		ReportUser:       "k6-user",
		TestExecutionKey: "QA-500",
	}

	runner := createRunner(config, env.NewRepository(), log.NewLogger())

	// When
	result, err := runner.Run(context.Background(), config)

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{jira.SearchEndpoint}, paths)
	assert.Equal(t, "QA-42", result.TestPlanKey)
	assert.Equal(t, "QA-500", result.Report.TestExecutionKey)
	assert.Equal(t, []string{"QA-1"}, result.Report.KeysWithStatus(xray.StatusPassed))
	assert.Equal(t, "This is k6 test with maximum iteration duration of 1.63s, 4 passed requests and 0 failures on checks", result.Report.Info.Description)
}
