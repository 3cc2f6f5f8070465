package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/retryhttp"
	"github.com/bitrise-steplib/steps-k6-xray-report/xray"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

// Endpoints ...
const (
	SearchEndpoint              = "/rest/api/3/search"
	CreateIssueEndpoint         = "/rest/api/3/issue"
	DefaultImportEndpoint       = "/rest/raven/2.0/import/execution"
	DefaultRequestTimeout       = 300 * time.Second
	authorizationHeaderTemplate = "Basic %s"
)

// Config ...
type Config struct {
	BaseURL string
	// User is optional: without it Token is sent as already encoded basic credentials.
	User           string
	Token          string
	ImportEndpoint string
	Timeout        time.Duration
	RetryMax       int
}

// Client talks to the Jira REST API and the Xray import API of the same Jira instance.
type Client struct {
	httpClient     *retryablehttp.Client
	baseURL        string
	user           string
	token          string
	importEndpoint string
	logger         log.Logger
}

// NewClient ...
func NewClient(config Config, logger log.Logger) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	httpClient := retryhttp.NewClient(logger)
	httpClient.HTTPClient = cleanhttp.DefaultPooledClient()
	httpClient.HTTPClient.Timeout = timeout
	httpClient.RetryMax = config.RetryMax
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	importEndpoint := config.ImportEndpoint
	if importEndpoint == "" {
		importEndpoint = DefaultImportEndpoint
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimSuffix(config.BaseURL, "/"),
		user:           config.User,
		token:          config.Token,
		importEndpoint: importEndpoint,
		logger:         logger,
	}
}

// SearchIssues runs a JQL search.
func (c *Client) SearchIssues(ctx context.Context, request SearchRequest) (SearchResult, error) {
	var result SearchResult
	if err := c.post(ctx, SearchEndpoint, request, &result); err != nil {
		return SearchResult{}, err
	}
	return result, nil
}

// CreateIssue creates an issue and returns its identifiers.
func (c *Client) CreateIssue(ctx context.Context, fields IssueFields) (Issue, error) {
	var issue Issue
	if err := c.post(ctx, CreateIssueEndpoint, createIssueRequest{Fields: fields}, &issue); err != nil {
		return Issue{}, err
	}
	if issue.Key == "" {
		return Issue{}, errors.New("create issue response has no key")
	}
	return issue, nil
}

// ImportExecution uploads an Xray execution report.
func (c *Client) ImportExecution(ctx context.Context, report xray.Report) (ImportResult, error) {
	var result ImportResult
	if err := c.post(ctx, c.importEndpoint, report, &result); err != nil {
		return ImportResult{}, err
	}
	return result, nil
}

func (c *Client) post(ctx context.Context, endpoint string, body, v interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	url := c.baseURL + endpoint
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, payload)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	c.logger.Debugf("POST %s", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Failed to close response body: %s", err)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newResponseError(resp.StatusCode, respBody)
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return errors.New("empty response body")
	}
	if err := json.Unmarshal(respBody, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (c *Client) setHeaders(req *retryablehttp.Request) {
	if c.user != "" {
		req.SetBasicAuth(c.user, c.token)
	} else {
		req.Header.Set("Authorization", fmt.Sprintf(authorizationHeaderTemplate, c.token))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
}
