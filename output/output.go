package output

import (
	"fmt"
	"path/filepath"

	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-k6-xray-report/xray"
)

// Exported env keys ...
const (
	TestPlanKeyEnvKey      = "TEST_PLAN_KEY"
	TestExecutionKeyEnvKey = "XRAY_TEST_EXECUTION_KEY"
	TestResultEnvKey       = "K6_XRAY_TEST_RESULT"
	ReportPathEnvKey       = "K6_XRAY_REPORT_PATH"
)

const (
	reportFileName              = "k6-xray-report.json"
	reportTempDirPrefix         = "k6-xray-report"
	reportFilePermission        = 0644
	testRunResultSucceeded      = "succeeded"
	testRunResultFailed         = "failed"
	exportFailedMessageTemplate = "Failed to export: %s: %s"
)

// Exporter ...
type Exporter interface {
	ExportTestPlanKey(key string)
	ExportTestExecutionKey(key string)
	ExportTestRunResult(failed bool)
	ExportReport(deployDir string, report xray.Report) (string, error)
}

// FileExporter writes content to its destination and exposes the destination path for later steps.
type FileExporter interface {
	ExportStringToFileOutput(key, value, destinationPath string) error
}

type exporter struct {
	envRepository env.Repository
	logger        log.Logger
	fileExporter  FileExporter
	fileManager   fileutil.FileManager
	pathProvider  pathutil.PathProvider
}

// NewExporter ...
func NewExporter(envRepository env.Repository, logger log.Logger, fileExporter FileExporter, fileManager fileutil.FileManager, pathProvider pathutil.PathProvider) Exporter {
	return &exporter{
		envRepository: envRepository,
		logger:        logger,
		fileExporter:  fileExporter,
		fileManager:   fileManager,
		pathProvider:  pathProvider,
	}
}

func (e exporter) ExportTestPlanKey(key string) {
	if err := e.envRepository.Set(TestPlanKeyEnvKey, key); err != nil {
		e.logger.Warnf(exportFailedMessageTemplate, TestPlanKeyEnvKey, err)
	}
}

func (e exporter) ExportTestExecutionKey(key string) {
	if err := e.envRepository.Set(TestExecutionKeyEnvKey, key); err != nil {
		e.logger.Warnf(exportFailedMessageTemplate, TestExecutionKeyEnvKey, err)
	}
}

func (e exporter) ExportTestRunResult(failed bool) {
	status := testRunResultSucceeded
	if failed {
		status = testRunResultFailed
	}
	if err := e.envRepository.Set(TestResultEnvKey, status); err != nil {
		e.logger.Warnf(exportFailedMessageTemplate, TestResultEnvKey, err)
	}
}

// ExportReport writes the report as JSON and exposes its path. Without a deploy dir
// the report goes to a temporary directory.
func (e exporter) ExportReport(deployDir string, report xray.Report) (string, error) {
	content, err := encodeReport(report)
	if err != nil {
		return "", err
	}

	if deployDir == "" {
		pth, err := e.saveReport(content)
		if err != nil {
			return "", err
		}
		if err := e.envRepository.Set(ReportPathEnvKey, pth); err != nil {
			return "", fmt.Errorf("failed to export %s: %w", ReportPathEnvKey, err)
		}
		return pth, nil
	}

	deployPth := filepath.Join(deployDir, reportFileName)
	if err := e.fileExporter.ExportStringToFileOutput(ReportPathEnvKey, content, deployPth); err != nil {
		return "", fmt.Errorf("failed to export %s: %w", ReportPathEnvKey, err)
	}

	return deployPth, nil
}
