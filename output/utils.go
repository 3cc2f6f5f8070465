package output

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/bitrise-steplib/steps-k6-xray-report/xray"
)

func encodeReport(report xray.Report) (string, error) {
	content, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	return string(content), nil
}

func (e exporter) saveReport(content string) (string, error) {
	tmpDir, err := e.pathProvider.CreateTempDir(reportTempDirPrefix)
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}

	pth := filepath.Join(tmpDir, reportFileName)
	if err := e.fileManager.Write(pth, content, reportFilePermission); err != nil {
		return "", fmt.Errorf("failed to write report to file: %w", err)
	}

	return pth, nil
}
