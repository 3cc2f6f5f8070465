package output

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-k6-xray-report/output/mocks"
	"github.com/bitrise-steplib/steps-k6-xray-report/xray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_GivenFailedRun_WhenExportingResult_ThenFailedIsExported(t *testing.T) {
	tests := []struct {
		name   string
		failed bool
		want   string
	}{
		{name: "failed", failed: true, want: testRunResultFailed},
		{name: "succeeded", failed: false, want: testRunResultSucceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			exporter, envRepository, _ := createSutAndMocks(t)
			envRepository.On("Set", TestResultEnvKey, tt.want).Return(nil)

			// When
			exporter.ExportTestRunResult(tt.failed)

			// Then
			envRepository.AssertCalled(t, "Set", TestResultEnvKey, tt.want)
		})
	}
}

func Test_GivenPlanKey_WhenExporting_ThenEnvIsSet(t *testing.T) {
	// Given
	exporter, envRepository, _ := createSutAndMocks(t)
	envRepository.On("Set", TestPlanKeyEnvKey, "QA-42").Return(nil)

	// When
	exporter.ExportTestPlanKey("QA-42")

	// Then
	envRepository.AssertCalled(t, "Set", TestPlanKeyEnvKey, "QA-42")
}

func Test_GivenEnvFailure_WhenExportingExecutionKey_ThenOnlyWarns(t *testing.T) {
	// Given
	exporter, envRepository, _ := createSutAndMocks(t)
	envRepository.On("Set", TestExecutionKeyEnvKey, "QA-100").Return(errors.New("envman missing"))

	// When
	exporter.ExportTestExecutionKey("QA-100")

	// Then
	envRepository.AssertCalled(t, "Set", TestExecutionKeyEnvKey, "QA-100")
}

func Test_GivenDeployDir_WhenExportingReport_ThenContentIsExportedToDeployDir(t *testing.T) {
	// Given
	exporter, _, fileExporter := createSutAndMocks(t)
	deployDir := t.TempDir()
	expectedPath := filepath.Join(deployDir, reportFileName)
	fileExporter.On("ExportStringToFileOutput", ReportPathEnvKey, mock.AnythingOfType("string"), expectedPath).Return(nil)

	// When
	pth, err := exporter.ExportReport(deployDir, sampleReport())

	// Then
	require.NoError(t, err)
	assert.Equal(t, expectedPath, pth)

	var report xray.Report
	require.NoError(t, json.Unmarshal([]byte(fileExporter.Calls[0].Arguments.String(1)), &report))
	assert.Equal(t, sampleReport(), report)
}

func Test_GivenNoDeployDir_WhenExportingReport_ThenTempPathIsExported(t *testing.T) {
	// Given
	exporter, envRepository, _ := createSutAndMocks(t)
	envRepository.On("Set", ReportPathEnvKey, mock.AnythingOfType("string")).Return(nil)

	// When
	pth, err := exporter.ExportReport("", sampleReport())

	// Then
	require.NoError(t, err)
	envRepository.AssertCalled(t, "Set", ReportPathEnvKey, pth)
	assertReportFile(t, pth)
}

func Test_GivenFileExportFails_WhenExportingReport_ThenErrorIsReturned(t *testing.T) {
	// Given
	exporter, _, fileExporter := createSutAndMocks(t)
	fileExporter.On("ExportStringToFileOutput", ReportPathEnvKey, mock.Anything, mock.Anything).Return(errors.New("write failed"))

	// When
	_, err := exporter.ExportReport(t.TempDir(), sampleReport())

	// Then
	require.Error(t, err)
	assert.Contains(t, err.Error(), ReportPathEnvKey)
	assert.Contains(t, err.Error(), "write failed")
}

func createSutAndMocks(t *testing.T) (Exporter, *mocks.Repository, *mocks.FileExporter) {
	envRepository := mocks.NewRepository(t)
	fileExporter := mocks.NewFileExporter(t)
	exporter := NewExporter(envRepository, log.NewLogger(), fileExporter, fileutil.NewFileManager(), pathutil.NewPathProvider())

	return exporter, envRepository, fileExporter
}

func sampleReport() xray.Report {
	return xray.Report{
		Info: xray.Info{
			Summary:     "K6 Test execution - 2024-03-07T10:30:00Z",
			TestPlanKey: "QA-42",
		},
		Tests: []xray.Test{
			{TestKey: "QA-1", Status: xray.StatusPassed, Comment: "Test execution passed"},
		},
	}
}

func assertReportFile(t *testing.T, pth string) {
	content, err := os.ReadFile(pth)
	require.NoError(t, err)

	var report xray.Report
	require.NoError(t, json.Unmarshal(content, &report))
	assert.Equal(t, sampleReport(), report)
}
