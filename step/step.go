package step

import (
	"context"
	"fmt"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-k6-xray-report/jira"
	"github.com/bitrise-steplib/steps-k6-xray-report/k6summary"
	"github.com/bitrise-steplib/steps-k6-xray-report/output"
	"github.com/bitrise-steplib/steps-k6-xray-report/xray"
)

// PlanResolver ...
type PlanResolver interface {
	ResolveOrCreateKey(ctx context.Context) (string, bool)
}

// ReportBuilder ...
type ReportBuilder interface {
	BuildReport(summary k6summary.Summary, planKey, issueKeyPrefix string) xray.Report
}

// Importer ...
type Importer interface {
	ImportExecution(ctx context.Context, report xray.Report) (jira.ImportResult, error)
}

// Result ...
type Result struct {
	Report      xray.Report
	TestPlanKey string
}

// ExportOpts ...
type ExportOpts struct {
	Result        Result
	DeployDir     string
	ImportResults bool
}

// Runner ...
type Runner struct {
	logger    log.Logger
	resolver  PlanResolver
	generator ReportBuilder
	importer  Importer
	exporter  output.Exporter
}

// NewRunner ...
func NewRunner(logger log.Logger, resolver PlanResolver, generator ReportBuilder, importer Importer, exporter output.Exporter) Runner {
	return Runner{
		logger:    logger,
		resolver:  resolver,
		generator: generator,
		importer:  importer,
		exporter:  exporter,
	}
}

// Run resolves the Test Plan of the day and converts the k6 summary into an Xray report.
func (r Runner) Run(ctx context.Context, config Config) (Result, error) {
	planKey := config.FallbackTestPlanKey
	if config.ResolveTestPlan {
		r.logger.Println()
		r.logger.Infof("Resolving Test Plan")

		if key, ok := r.resolver.ResolveOrCreateKey(ctx); ok {
			planKey = key
		} else if planKey != "" {
			r.logger.Warnf("Test Plan is unavailable, falling back to %s", planKey)
		} else {
			r.logger.Warnf("Test Plan is unavailable, the report will not be linked to any plan")
		}
	}

	r.logger.Println()
	r.logger.Infof("Generating Xray report")

	summary, err := k6summary.Load(config.SummaryPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read k6 summary: %w", err)
	}

	report := r.generator.BuildReport(summary, planKey, config.IssueKeyPrefix)
	r.printReport(report)

	return Result{
		Report:      report,
		TestPlanKey: report.Info.TestPlanKey,
	}, nil
}

// Export writes the report file and the step outputs, then uploads the report to Xray if asked to.
func (r Runner) Export(ctx context.Context, opts ExportOpts) error {
	r.logger.Println()
	r.logger.Infof("Exporting outputs")

	if opts.Result.TestPlanKey != "" {
		r.exporter.ExportTestPlanKey(opts.Result.TestPlanKey)
		r.logger.Donef("%s: %s", output.TestPlanKeyEnvKey, opts.Result.TestPlanKey)
	}

	pth, err := r.exporter.ExportReport(opts.DeployDir, opts.Result.Report)
	if err != nil {
		return err
	}
	r.logger.Donef("%s: %s", output.ReportPathEnvKey, pth)

	failed := opts.Result.Report.HasFailures()
	r.exporter.ExportTestRunResult(failed)

	if !opts.ImportResults {
		return nil
	}

	r.logger.Println()
	r.logger.Infof("Importing results to Xray")

	result, err := r.importer.ImportExecution(ctx, opts.Result.Report)
	if err != nil {
		return fmt.Errorf("failed to import results to Xray: %w", err)
	}

	if key := result.TestExecIssue.Key; key != "" {
		r.exporter.ExportTestExecutionKey(key)
		r.logger.Donef("%s: %s", output.TestExecutionKeyEnvKey, key)
	} else {
		r.logger.Warnf("Xray accepted the results but returned no Test Execution key")
	}

	return nil
}
