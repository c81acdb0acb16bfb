package jules

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/maravedi/jules-actions/internal/types"
)

// Client is an authenticated HTTP client for the Jules API. Every request
// carries the API key header, JSON content type, and the invocation run ID
// for correlation. The per-call timeout is fixed on the underlying
// http.Client at construction.
type Client struct {
	baseURL        string
	apiKey         string
	pageSize       int
	startingBranch string
	httpClient     *http.Client
	logger         *slog.Logger
	runID          types.RunID
}

// NewClient validates the transport configuration and builds a client.
// An empty API key is rejected here, before any network call is possible.
func NewClient(cfg Config, logger *slog.Logger, runID types.RunID) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, types.NewError(types.CONFIG_MISSING_API_KEY, "JULES_API_KEY is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	branch := cfg.StartingBranch
	if branch == "" {
		branch = DefaultStartingBranch
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		apiKey:         cfg.APIKey,
		pageSize:       pageSize,
		startingBranch: branch,
		httpClient:     &http.Client{Timeout: timeout},
		logger:         logger,
		runID:          runID,
	}, nil
}

// ListSources returns the repositories connected to Jules. A single page is
// requested; source lists are small and this client does not follow
// pagination.
func (c *Client) ListSources(ctx context.Context) ([]Source, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "sources", nil)
	if err != nil {
		return nil, err
	}

	var resp listSourcesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, types.WrapError(types.JULES_RESPONSE_INVALID, "failed to parse sources response", err)
	}
	return resp.Sources, nil
}

// CreateSession starts a remote planning run against sourceName with the
// given prompt and title. Creation is never retried: a failed call may
// still have started a run on the remote side.
func (c *Client) CreateSession(ctx context.Context, prompt, sourceName, title string) (*Session, error) {
	req := createSessionRequest{
		Prompt: prompt,
		SourceContext: sourceContext{
			Source:            sourceName,
			GithubRepoContext: githubRepoContext{StartingBranch: c.startingBranch},
		},
		Title:               title,
		RequirePlanApproval: false,
	}

	body, err := c.doRequest(ctx, http.MethodPost, "sessions", req)
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, types.WrapError(types.JULES_RESPONSE_INVALID, "failed to parse session response", err)
	}

	c.logger.Info("session created", "session_id", session.ID, "title", title)
	return &session, nil
}

// GetSession fetches the current state of one session.
func (c *Client) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "sessions/"+sessionID, nil)
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, types.WrapError(types.JULES_RESPONSE_INVALID, "failed to parse session response", err)
	}
	return &session, nil
}

// ListActivities returns the session's activity list from the beginning.
// Every call re-reads the full window at the configured page size; there is
// no cursor, so cost grows with session history within the page bound.
func (c *Client) ListActivities(ctx context.Context, sessionID string) ([]Activity, error) {
	endpoint := fmt.Sprintf("sessions/%s/activities?pageSize=%d", sessionID, c.pageSize)
	body, err := c.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var resp listActivitiesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, types.WrapError(types.JULES_RESPONSE_INVALID, "failed to parse activities response", err)
	}
	return resp.Activities, nil
}

// doRequest performs one authenticated API call and returns the raw body.
// Non-2xx statuses map to *HTTPError; failures without a response map to
// *RequestError.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, payload any) ([]byte, error) {
	url := c.baseURL + "/" + endpoint

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("X-Goog-Api-Key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	if !c.runID.IsZero() {
		httpReq.Header.Set("X-Request-Id", c.runID.String())
	}

	c.logger.Debug("jules API request", "method", method, "endpoint", endpoint)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &RequestError{Op: method + " " + endpoint, Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Op: method + " " + endpoint, Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("jules API error response",
			"status", resp.StatusCode, "method", method, "endpoint", endpoint)
		return nil, &HTTPError{StatusCode: resp.StatusCode, Reason: statusReason(resp)}
	}

	return body, nil
}

// statusReason extracts the reason phrase from a response status line,
// falling back to the standard text for the code.
func statusReason(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
