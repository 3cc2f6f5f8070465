package testplan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bitrise-io/go-utils/colorstring"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-k6-xray-report/jira"
	"github.com/bitrise-steplib/steps-k6-xray-report/xray"
)

// DateLayout formats the day of the run in the Test Plan summary (DD-MM-YYYY).
const DateLayout = "02-01-2006"

// Client ...
type Client interface {
	SearchIssues(ctx context.Context, request jira.SearchRequest) (jira.SearchResult, error)
	CreateIssue(ctx context.Context, fields jira.IssueFields) (jira.Issue, error)
}

// Options describe the daily Test Plan issue.
type Options struct {
	ProjectKey    string
	SummaryPrefix string
	IssueType     string
	Labels        []string
	// CreatorAccountID limits the lookup to plans created by this account, if set.
	CreatorAccountID string
}

// Resolver finds today's Test Plan or creates it.
type Resolver struct {
	client  Client
	state   *xray.State
	options Options
	now     func() time.Time
	logger  log.Logger
}

// NewResolver ...
func NewResolver(client Client, state *xray.State, options Options, now func() time.Time, logger log.Logger) Resolver {
	return Resolver{
		client:  client,
		state:   state,
		options: options,
		now:     now,
		logger:  logger,
	}
}

// ResolveOrCreateKey returns the Test Plan key of the run.
// A key already in the State is returned without calling Jira. Otherwise the key of the
// newest matching plan is used, or a new plan is created. The key is stored in the State.
// Failures are logged and reported as ok == false, the State is left untouched then.
func (r Resolver) ResolveOrCreateKey(ctx context.Context) (string, bool) {
	if r.state.TestPlanKey != "" {
		r.logger.Donef("Test Plan %s exists on environment, using it", r.state.TestPlanKey)
		return r.state.TestPlanKey, true
	}

	key, err := r.findOrCreate(ctx)
	if err != nil {
		r.logger.Warnf("Failed to resolve Test Plan: %s", err)
		return "", false
	}

	r.state.TestPlanKey = key
	r.logger.Printf("Test Plan %s assigned to environment", colorstring.Cyan(key))

	return key, true
}

// Summary is the summary of today's Test Plan.
func (r Resolver) Summary() string {
	return fmt.Sprintf("%s %s", r.options.SummaryPrefix, r.now().Format(DateLayout))
}

// JQL selects the newest Test Plan with the given summary.
func (r Resolver) JQL(summary string) string {
	clauses := []string{
		fmt.Sprintf("project = %s", r.options.ProjectKey),
		fmt.Sprintf("summary ~ '%s'", escapeJQLString(summary)),
		fmt.Sprintf("type = '%s'", escapeJQLString(r.options.IssueType)),
	}
	if r.options.CreatorAccountID != "" {
		clauses = append(clauses, fmt.Sprintf("creator = '%s'", escapeJQLString(r.options.CreatorAccountID)))
	}
	return strings.Join(clauses, " AND ") + " ORDER BY created DESC"
}

func (r Resolver) findOrCreate(ctx context.Context) (string, error) {
	summary := r.Summary()

	key, err := r.find(ctx, summary)
	if err != nil {
		return "", fmt.Errorf("failed to search Test Plan: %w", err)
	}
	if key != "" {
		r.logger.Donef("Test Plan %s exists, reusing it", key)
		return key, nil
	}

	r.logger.Printf("No Test Plan found with summary: %s", summary)

	key, err = r.create(ctx, summary)
	if err != nil {
		return "", fmt.Errorf("failed to create Test Plan: %w", err)
	}
	r.logger.Donef("Test Plan %s created, using it", key)

	return key, nil
}

func (r Resolver) find(ctx context.Context, summary string) (string, error) {
	jql := r.JQL(summary)
	r.logger.Debugf("JQL: %s", jql)

	result, err := r.client.SearchIssues(ctx, jira.SearchRequest{
		JQL:        jql,
		StartAt:    0,
		MaxResults: 1,
		Fields:     []string{"id", "key"},
	})
	if err != nil {
		return "", err
	}

	if result.Total == 0 {
		return "", nil
	}
	if len(result.Issues) == 0 || result.Issues[0].Key == "" {
		return "", errors.New("search reported matches but returned no issue key")
	}

	return result.Issues[0].Key, nil
}

func (r Resolver) create(ctx context.Context, summary string) (string, error) {
	issue, err := r.client.CreateIssue(ctx, jira.IssueFields{
		Project:   jira.ProjectRef{Key: r.options.ProjectKey},
		Summary:   summary,
		IssueType: jira.IssueTypeRef{Name: r.options.IssueType},
		Labels:    r.options.Labels,
	})
	if err != nil {
		return "", err
	}
	return issue.Key, nil
}

func escapeJQLString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
