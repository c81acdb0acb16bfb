package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/maravedi/jules-actions/internal/types"
)

// Client posts comments through the GitHub REST API.
type Client struct {
	baseURL    string
	token      string
	repository string
	httpClient *http.Client
	logger     *slog.Logger
	runID      types.RunID
}

// NewClient builds a comment client for the configured repository. The
// token and repository are checked here rather than at config load so a
// run that never posts (dry runs, source listing) does not demand them.
func NewClient(cfg Config, logger *slog.Logger, runID types.RunID) (*Client, error) {
	if cfg.Token == "" {
		return nil, types.NewError(types.CONFIG_MISSING_TOKEN, "GITHUB_TOKEN is required")
	}
	if cfg.Repository == "" {
		return nil, types.NewError(types.CONFIG_MISSING_REPO, "GITHUB_REPOSITORY is required")
	}

	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      cfg.Token,
		repository: cfg.Repository,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		runID:      runID,
	}, nil
}

type commentRequest struct {
	Body string `json:"body"`
}

// PostIssueComment creates a comment on the issue or pull request. The
// API answers 201 on creation; any other status is reported with the
// response body for diagnosis.
func (c *Client) PostIssueComment(ctx context.Context, issueNumber int, body string) error {
	payload, err := json.Marshal(commentRequest{Body: body})
	if err != nil {
		return types.WrapError(types.GITHUB_COMMENT_FAILED, "encode comment", err)
	}

	url := fmt.Sprintf("%s/repos/%s/issues/%d/comments", c.baseURL, c.repository, issueNumber)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return types.WrapError(types.GITHUB_COMMENT_FAILED, "build comment request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Content-Type", "application/json")
	if !c.runID.IsZero() {
		req.Header.Set("X-Request-Id", c.runID.String())
	}

	c.logger.Debug("posting comment",
		"repository", c.repository, "issue", issueNumber, "bytes", len(body))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.WrapError(types.GITHUB_COMMENT_FAILED, "post comment", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.logger.Warn("comment rejected",
			"repository", c.repository, "issue", issueNumber, "status", resp.StatusCode)
		return types.NewError(types.GITHUB_COMMENT_FAILED,
			fmt.Sprintf("post comment: %d - %s", resp.StatusCode, strings.TrimSpace(string(detail))))
	}

	c.logger.Info("comment posted", "repository", c.repository, "issue", issueNumber)
	return nil
}
