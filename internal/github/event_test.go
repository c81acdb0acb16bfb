package github

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maravedi/jules-actions/internal/types"
)

func writeEventFile(t *testing.T, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "event.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))
	return path
}

func TestLoadEventIssueComment(t *testing.T) {
	path := writeEventFile(t, `{
		"issue": {
			"number": 42,
			"title": "Add rate limiting",
			"body": "The API needs per-client rate limits."
		},
		"comment": {
			"body": "@jules plan",
			"user": {"login": "maravedi"}
		}
	}`)

	event, err := LoadEvent(path)
	require.NoError(t, err)

	assert.Equal(t, 42, event.Issue.Number)
	assert.Equal(t, "Add rate limiting", event.Issue.Title)
	assert.Equal(t, "The API needs per-client rate limits.", event.Issue.Body)
	assert.Equal(t, "@jules plan", event.Comment.Body)
	assert.Equal(t, "maravedi", event.Author())
	assert.False(t, event.IsPullRequest())
}

func TestLoadEventPullRequestComment(t *testing.T) {
	path := writeEventFile(t, `{
		"issue": {
			"number": 7,
			"title": "Refactor config loading",
			"pull_request": {"url": "https://api.github.com/repos/maravedi/demo/pulls/7"}
		},
		"comment": {"body": "@jules plan", "user": {"login": "reviewer"}}
	}`)

	event, err := LoadEvent(path)
	require.NoError(t, err)

	assert.True(t, event.IsPullRequest())
}

func TestLoadEventAuthorDefaultsToUnknown(t *testing.T) {
	path := writeEventFile(t, `{
		"issue": {"number": 3, "title": "t"},
		"comment": {"body": "@jules plan"}
	}`)

	event, err := LoadEvent(path)
	require.NoError(t, err)

	assert.Equal(t, "unknown", event.Author())
}

func TestLoadEventErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		code    types.ErrorCode
		message string
	}{
		{
			name:    "empty path",
			path:    func(t *testing.T) string { return "" },
			code:    types.GITHUB_EVENT_NOT_FOUND,
			message: "GITHUB_EVENT_PATH is not set",
		},
		{
			name: "missing file",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist.json")
			},
			code:    types.GITHUB_EVENT_NOT_FOUND,
			message: "event payload not found",
		},
		{
			name: "invalid json",
			path: func(t *testing.T) string {
				return writeEventFile(t, `{"issue": `)
			},
			code:    types.GITHUB_EVENT_INVALID,
			message: "not valid JSON",
		},
		{
			name: "no issue number",
			path: func(t *testing.T) string {
				return writeEventFile(t, `{"comment": {"body": "@jules plan"}}`)
			},
			code:    types.GITHUB_EVENT_INVALID,
			message: "no issue number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := LoadEvent(tt.path(t))
			require.Error(t, err)
			assert.Nil(t, event)

			var actionErr *types.ActionError
			require.ErrorAs(t, err, &actionErr)
			assert.Equal(t, tt.code, actionErr.Code)
			assert.Contains(t, err.Error(), tt.message)
			assert.True(t, types.IsConfigError(err))
		})
	}
}

func TestOwnerRepo(t *testing.T) {
	owner, repo, err := Config{Repository: "maravedi/demo"}.OwnerRepo()
	require.NoError(t, err)
	assert.Equal(t, "maravedi", owner)
	assert.Equal(t, "demo", repo)
}

func TestOwnerRepoInvalid(t *testing.T) {
	tests := []struct {
		name       string
		repository string
	}{
		{"empty", ""},
		{"no slash", "maravedi"},
		{"missing owner", "/demo"},
		{"missing repo", "maravedi/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Config{Repository: tt.repository}.OwnerRepo()
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.NewError(types.CONFIG_MISSING_REPO, "")))
		})
	}
}
