package step

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-k6-xray-report/jira"
	"github.com/bitrise-steplib/steps-k6-xray-report/testplan"
	shellquote "github.com/kballard/go-shellquote"
)

// Issue keys are <prefix>-<number>, so the prefix itself cannot contain a dash.
var issueKeyPrefixPattern = regexp.MustCompile(`^[^\s-]+$`)

// Input ...
type Input struct {
	// Jira
	JiraURL    string          `env:"jira_url,required"`
	JiraUser   string          `env:"jira_user"`
	JiraToken  stepconf.Secret `env:"jira_token,required"`
	ProjectKey string          `env:"project_key,required"`

	// Test Plan
	TestPlanSummaryPrefix string `env:"test_plan_summary_prefix,required"`
	TestPlanIssueType     string `env:"test_plan_issue_type,required"`
	TestPlanLabels        string `env:"test_plan_labels"`
	TestPlanCreator       string `env:"test_plan_creator"`
	ResolveTestPlan       bool   `env:"resolve_test_plan,opt[yes,no]"`
	FallbackTestPlanKey   string `env:"fallback_test_plan_key"`

	// Report
	IssueKeyPrefix     string `env:"issue_key_prefix,required"`
	SummaryPath        string `env:"summary_path,required"`
	ReportUser         string `env:"report_user"`
	ImportResults      bool   `env:"import_results,opt[yes,no]"`
	XrayImportEndpoint string `env:"xray_import_endpoint"`

	// Transport
	RequestTimeout int `env:"request_timeout,required"`
	RetryMax       int `env:"retry_max"`

	// Debug
	Verbose bool `env:"verbose,opt[yes,no]"`

	// Run state
	TestPlanKey      string `env:"TEST_PLAN_KEY"`
	TestExecutionKey string `env:"TEST_EXEC_KEY"`
	DeployDir        string `env:"BITRISE_DEPLOY_DIR"`
}

// Config ...
type Config struct {
	Jira     jira.Config
	TestPlan testplan.Options

	ResolveTestPlan     bool
	FallbackTestPlanKey string

	IssueKeyPrefix string
	SummaryPath    string
	ReportUser     string
	ImportResults  bool

	TestPlanKey      string
	TestExecutionKey string
	DeployDir        string
}

// ConfigParser ...
type ConfigParser struct {
	inputParser  stepconf.InputParser
	logger       log.Logger
	pathChecker  pathutil.PathChecker
	pathModifier pathutil.PathModifier
}

// NewConfigParser ...
func NewConfigParser(inputParser stepconf.InputParser, logger log.Logger, pathChecker pathutil.PathChecker, pathModifier pathutil.PathModifier) ConfigParser {
	return ConfigParser{
		inputParser:  inputParser,
		logger:       logger,
		pathChecker:  pathChecker,
		pathModifier: pathModifier,
	}
}

// ProcessConfig ...
func (p ConfigParser) ProcessConfig() (Config, error) {
	var input Input
	if err := p.inputParser.Parse(&input); err != nil {
		return Config{}, err
	}

	stepconf.Print(input)
	p.logger.Println()

	p.logger.EnableDebugLog(input.Verbose)

	baseURL, err := validateBaseURL(input.JiraURL)
	if err != nil {
		return Config{}, fmt.Errorf("invalid input: jira_url: %w", err)
	}

	labels, err := shellquote.Split(input.TestPlanLabels)
	if err != nil {
		return Config{}, fmt.Errorf("invalid input: test_plan_labels: %w", err)
	}

	if !issueKeyPrefixPattern.MatchString(input.IssueKeyPrefix) {
		return Config{}, fmt.Errorf("invalid input: issue_key_prefix: %q must not be empty or contain dashes or spaces", input.IssueKeyPrefix)
	}

	summaryPath, err := p.pathModifier.AbsPath(input.SummaryPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute summary path: %w", err)
	}
	if exists, err := p.pathChecker.IsPathExists(summaryPath); err != nil {
		return Config{}, fmt.Errorf("failed to check summary path: %w", err)
	} else if !exists {
		return Config{}, fmt.Errorf("invalid input: summary_path: %s does not exist", summaryPath)
	}

	if input.RequestTimeout <= 0 {
		return Config{}, fmt.Errorf("invalid input: request_timeout: must be positive, got %d", input.RequestTimeout)
	}
	if input.RetryMax < 0 {
		return Config{}, fmt.Errorf("invalid input: retry_max: must not be negative, got %d", input.RetryMax)
	}

	return Config{
		Jira: jira.Config{
			BaseURL:        baseURL,
			User:           input.JiraUser,
			Token:          string(input.JiraToken),
			ImportEndpoint: input.XrayImportEndpoint,
			Timeout:        time.Duration(input.RequestTimeout) * time.Second,
			RetryMax:       input.RetryMax,
		},
		TestPlan: testplan.Options{
			ProjectKey:       input.ProjectKey,
			SummaryPrefix:    input.TestPlanSummaryPrefix,
			IssueType:        input.TestPlanIssueType,
			Labels:           labels,
			CreatorAccountID: input.TestPlanCreator,
		},
		ResolveTestPlan:     input.ResolveTestPlan,
		FallbackTestPlanKey: input.FallbackTestPlanKey,
		IssueKeyPrefix:      input.IssueKeyPrefix,
		SummaryPath:         summaryPath,
		ReportUser:          input.ReportUser,
		ImportResults:       input.ImportResults,
		TestPlanKey:         input.TestPlanKey,
		TestExecutionKey:    input.TestExecutionKey,
		DeployDir:           input.DeployDir,
	}, nil
}

func validateBaseURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme: %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("missing host: %s", raw)
	}
	return strings.TrimSuffix(raw, "/"), nil
}
