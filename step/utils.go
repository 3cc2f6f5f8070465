package step

import (
	"strings"

	"github.com/bitrise-io/go-utils/colorstring"
	"github.com/bitrise-io/go-utils/pretty"
	"github.com/bitrise-steplib/steps-k6-xray-report/xray"
)

func (r Runner) printReport(report xray.Report) {
	passed := report.KeysWithStatus(xray.StatusPassed)
	failed := report.KeysWithStatus(xray.StatusFailed)

	r.logger.Printf("Summary: %s", report.Info.Summary)
	r.logger.Printf("Description: %s", report.Info.Description)
	if report.Info.TestPlanKey != "" {
		r.logger.Printf("Test Plan: %s", colorstring.Cyan(report.Info.TestPlanKey))
	}
	if len(passed) > 0 {
		r.logger.Printf("Passed (%d): %s", len(passed), colorstring.Green(strings.Join(passed, ", ")))
	}
	if len(failed) > 0 {
		r.logger.Printf("Failed (%d): %s", len(failed), colorstring.Red(strings.Join(failed, ", ")))
	}
	if len(report.Tests) == 0 {
		r.logger.Warnf("No check label contains an issue key, the report has no test entries")
	}

	r.logger.Debugf("Report:\n%s", pretty.Object(report))
}
