package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-steputils/v2/stepenv"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-k6-xray-report/jira"
	"github.com/bitrise-steplib/steps-k6-xray-report/output"
	"github.com/bitrise-steplib/steps-k6-xray-report/step"
	"github.com/bitrise-steplib/steps-k6-xray-report/testplan"
	"github.com/bitrise-steplib/steps-k6-xray-report/xray"
	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.NewLogger()

	// Local runs read their inputs from a .env file, on CI the file is absent.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Errorf("Failed to load .env file: %s", err)
		return 1
	}

	envRepository := stepenv.NewRepository(env.NewRepository())
	configParser := step.NewConfigParser(stepconf.NewInputParser(envRepository), logger, pathutil.NewPathChecker(), pathutil.NewPathModifier())

	config, err := configParser.ProcessConfig()
	if err != nil {
		logger.Errorf("Process config: %s", err)
		return 1
	}

	runner := createRunner(config, envRepository, logger)
	ctx := context.Background()

	result, err := runner.Run(ctx, config)
	if err != nil {
		logger.Errorf("Run: %s", err)
		return 1
	}

	exportOpts := step.ExportOpts{
		Result:        result,
		DeployDir:     config.DeployDir,
		ImportResults: config.ImportResults,
	}
	if err := runner.Export(ctx, exportOpts); err != nil {
		logger.Errorf("Export outputs: %s", err)
		return 1
	}

	return 0
}

func createRunner(config step.Config, envRepository env.Repository, logger log.Logger) step.Runner {
	state := &xray.State{
		TestPlanKey:      config.TestPlanKey,
		TestExecutionKey: config.TestExecutionKey,
	}

	client := jira.NewClient(config.Jira, logger)
	resolver := testplan.NewResolver(client, state, config.TestPlan, time.Now, logger)
	generator := xray.NewGenerator(state, config.ReportUser, time.Now, logger)

	fileExporter := export.NewExporter(command.NewFactory(envRepository), export.NewFileManager())
	exporter := output.NewExporter(envRepository, logger, &fileExporter, fileutil.NewFileManager(), pathutil.NewPathProvider())

	return step.NewRunner(logger, resolver, generator, client, exporter)
}
