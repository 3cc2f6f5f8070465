package jira

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// SearchRequest is the body of POST /rest/api/3/search.
type SearchRequest struct {
	JQL        string   `json:"jql"`
	StartAt    int      `json:"startAt"`
	MaxResults int      `json:"maxResults"`
	Fields     []string `json:"fields"`
}

// SearchResult ...
type SearchResult struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

// Issue ...
type Issue struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self,omitempty"`
}

// ProjectRef ...
type ProjectRef struct {
	Key string `json:"key"`
}

// IssueTypeRef ...
type IssueTypeRef struct {
	Name string `json:"name"`
}

// IssueFields ...
type IssueFields struct {
	Project   ProjectRef   `json:"project"`
	Summary   string       `json:"summary"`
	IssueType IssueTypeRef `json:"issuetype"`
	Labels    []string     `json:"labels,omitempty"`
}

type createIssueRequest struct {
	Fields IssueFields `json:"fields"`
}

// ImportResult is the response of the Xray import endpoint.
type ImportResult struct {
	TestExecIssue Issue `json:"testExecIssue"`
}

// ResponseError is returned for non-2xx responses.
type ResponseError struct {
	StatusCode    int
	ErrorMessages []string
	Errors        map[string]string
	Body          string
}

func newResponseError(statusCode int, body []byte) *ResponseError {
	respErr := &ResponseError{
		StatusCode: statusCode,
		Body:       string(body),
	}

	var errorBody struct {
		ErrorMessages []string          `json:"errorMessages"`
		Errors        map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(body, &errorBody); err == nil {
		respErr.ErrorMessages = errorBody.ErrorMessages
		respErr.Errors = errorBody.Errors
	}

	return respErr
}

// Error ...
func (e *ResponseError) Error() string {
	var messages []string
	messages = append(messages, e.ErrorMessages...)

	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		messages = append(messages, fmt.Sprintf("%s: %s", field, e.Errors[field]))
	}

	if len(messages) == 0 {
		if body := strings.TrimSpace(e.Body); body != "" {
			messages = append(messages, body)
		}
	}

	if len(messages) == 0 {
		return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status code: %d: %s", e.StatusCode, strings.Join(messages, ", "))
}
